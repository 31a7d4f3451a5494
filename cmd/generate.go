package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/records"
)

var person models.PersonInput

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the import files for one consultant.",
	Long: `Collects the consultant's fields from flags or, on a terminal, from an interactive
form pre-filled with the flag values. Derives the account name, display name, mail and
expiry, then writes the user CSV and, when requested, the computer and profiling CSVs
into the output directory. The mailbox request message is printed to stdout.`,
	Example: `  consultant-onboarding generate --given-name Mario --surname Rossi --expiry 30-06-2025 --non-interactive
  consultant-onboarding generate --config onboarding.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg := loadOrgConfig()
		mode := quotingMode()
		p := person

		if !nonInteractive && stdinIsTerminal() {
			var err error
			if p, err = runForm(p, cfg.Defaults); err != nil {
				slog.Error("Form aborted", "error", err)
				os.Exit(1)
			}
		} else if p.GivenName == "" || p.Surname == "" {
			slog.Error("Given name and surname are required in non-interactive mode.")
			os.Exit(1)
		}

		p = applyDefaults(prepareInput(p), cfg.Defaults)
		slog.Info("Starting generate process", "surname", p.Surname, "email_required", p.EmailRequired, "profiling", p.ProfilingRequested)

		sub, err := records.Generate(p, *cfg, mode)
		if err != nil {
			slog.Error("Failed to render records", "error", err)
			os.Exit(1)
		}

		out := cmd.OutOrStdout()
		printPreview(out, sub.Set.User)
		fmt.Fprintln(out)
		fmt.Fprint(out, sub.Message)

		if dryRun {
			for _, a := range sub.Artifacts {
				fmt.Fprintf(out, "\n# %s\n%s", a.Filename, a.Content)
			}
			slog.Info("Dry run: no files written", "account_name", sub.Identity.AccountName)
			return
		}

		s := openStore()
		paths, err := saveSubmission(s, "Generate", sub)
		if err != nil {
			errorBanner.Fprintf(os.Stderr, "Errore nella scrittura dei file: %v\n", err)
			os.Exit(1)
		}
		for _, path := range paths {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", path)
		}
		successBanner.Fprintf(cmd.ErrOrStderr(), "Generato %s\n", sub.Identity.AccountName)
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&person.GivenName, "given-name", "", "Consultant given name.")
	f.StringVar(&person.SecondGivenName, "second-given-name", "", "Optional second given name.")
	f.StringVar(&person.Surname, "surname", "", "Consultant surname.")
	f.StringVar(&person.SecondSurname, "second-surname", "", "Optional second surname.")
	f.StringVar(&person.TaxCode, "tax-code", "", "Codice fiscale, written as employeeNumber.")
	f.StringVar(&person.EmployeeID, "employee-id", "", "Employee ID (default from employee_id_default).")
	f.StringVar(&person.Mobile, "mobile", "", "Mobile number without prefix; spaces are removed.")
	f.StringVar(&person.PCDescription, "description", "", "PC description (default <PC>).")
	f.StringVar(&person.ExpiryRaw, "expiry", "", "End date as dd-mm-yyyy or dd/mm/yyyy (default from expire_default).")
	f.BoolVar(&person.EmailRequired, "email-required", true, "Whether the consultant needs a mailbox.")
	f.StringVar(&person.CustomEmail, "custom-email", "", "Mail address used when no mailbox is required.")
	f.BoolVar(&person.ProfilingRequested, "profiling", false, "Write a separate profiling file with the group memberships.")
	f.StringArrayVar(&person.ProfilingTargets, "profiling-target", nil, "System to profile on (repeatable).")
	f.BoolVar(&person.ComputerRequested, "computer", false, "Also write the computer record.")
	f.Bool("non-interactive", false, "Never prompt; use flag values only.")
	f.Bool("dry-run", false, "Print the CSV files instead of writing them.")
}
