package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/records"
)

// errRequired is returned by the form validators for mandatory fields.
var errRequired = errors.New("campo obbligatorio")

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

func ask(label, def string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validate,
	}
	return p.Run()
}

func askYesNo(label string, def bool) (bool, error) {
	items := []string{"Sì", "No"}
	cursor := 1
	if def {
		cursor = 0
	}
	s := promptui.Select{Label: label, Items: items, CursorPos: cursor}
	idx, _, err := s.Run()
	return idx == 0, err
}

// runForm collects a PersonInput interactively. Values already in p are
// offered as defaults, so flags pre-fill the form.
func runForm(p models.PersonInput, d config.OrgDefaults) (models.PersonInput, error) {
	description := p.PCDescription
	if description == "" {
		description = firstNonEmpty(d.Description, records.DescriptionPlaceholder)
	}

	fields := []struct {
		label    string
		dst      *string
		def      string
		validate promptui.ValidateFunc
	}{
		{"Nome Consulente", &p.GivenName, p.GivenName, required},
		{"Secondo Nome", &p.SecondGivenName, p.SecondGivenName, nil},
		{"Cognome", &p.Surname, p.Surname, required},
		{"Secondo Cognome", &p.SecondSurname, p.SecondSurname, nil},
		{"Numero di Telefono", &p.Mobile, p.Mobile, nil},
		{"Description (lascia vuoto per <PC>)", &p.PCDescription, description, nil},
		{"Codice Fiscale", &p.TaxCode, p.TaxCode, nil},
		{"Data di Fine (gg-mm-aaaa)", &p.ExpiryRaw, firstNonEmpty(p.ExpiryRaw, d.Expire), nil},
		{"Employee ID", &p.EmployeeID, firstNonEmpty(p.EmployeeID, d.EmployeeID), nil},
	}
	for _, f := range fields {
		v, err := ask(f.label, f.def, f.validate)
		if err != nil {
			return p, err
		}
		*f.dst = v
	}

	var err error
	if p.EmailRequired, err = askYesNo("Serve la casella di posta?", p.EmailRequired); err != nil {
		return p, err
	}

	if !p.EmailRequired {
		// Offer the UPN the account would get as the fallback address.
		upn := records.Derive(prepareInput(p)).UserPrincipalName
		if p.CustomEmail, err = ask("Email da usare", firstNonEmpty(p.CustomEmail, upn), nil); err != nil {
			return p, err
		}
		p.ProfilingRequested = false
	} else {
		if p.ProfilingRequested, err = askYesNo("Richiedere profilazione?", p.ProfilingRequested); err != nil {
			return p, err
		}
		if p.ProfilingRequested {
			if p.ProfilingTargets, err = askLines("Sistema da profilare (invio vuoto per terminare)", p.ProfilingTargets); err != nil {
				return p, err
			}
		}
	}

	if p.ComputerRequested, err = askYesNo("Generare anche il file computer?", p.ComputerRequested); err != nil {
		return p, err
	}
	return p, nil
}

// askLines reads free-text lines until an empty one. Existing lines are kept first.
func askLines(label string, existing []string) ([]string, error) {
	lines := append([]string(nil), existing...)
	for {
		v, err := ask(label, "", nil)
		if err != nil {
			return lines, err
		}
		if strings.TrimSpace(v) == "" {
			return lines, nil
		}
		lines = append(lines, strings.TrimSpace(v))
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
