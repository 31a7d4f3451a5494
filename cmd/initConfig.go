package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/records"
)

// sampleFile is the on-disk layout of the organisation config file.
type sampleFile struct {
	OutputDir string             `yaml:"output_dir"`
	Quoting   string             `yaml:"quoting"`
	OU        map[string]string  `yaml:"ou"`
	Gruppi    map[string]string  `yaml:"gruppi"`
	Defaults  config.OrgDefaults `yaml:"defaults"`
}

func sampleConfig() sampleFile {
	return sampleFile{
		OutputDir: "./out",
		Quoting:   string(records.QuotingPredicate),
		OU: map[string]string{
			config.WorkflowConsultant: "OU=Consulenti esterni,OU=Utenti,DC=consip,DC=it",
		},
		Gruppi: map[string]string{
			config.WorkflowConsultant:        "GRP_Consulenti",
			config.WorkflowConsultantNoEmail: "GRP_Consulenti_NoMail",
		},
		Defaults: config.OrgDefaults{
			Department:   "Utente esterno",
			Company:      "Consip S.p.A.",
			Description:  records.DescriptionPlaceholder,
			Expire:       "30-06-2025",
			O365Standard: "O365 Standard",
			O365Teams:    "O365 Teams",
			O365Copilot:  "O365 Copilot",
		},
	}
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Writes a sample organisation config file.",
	Long:  `Writes a YAML config file with every recognised key, ready to be edited. The default path is ./onboarding.yaml.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		path := "onboarding.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !force {
			slog.Error("Config file already exists. Use --force to overwrite.", "file", path)
			os.Exit(1)
		}

		data, err := yaml.Marshal(sampleConfig())
		if err != nil {
			slog.Error("Failed to marshal sample config", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			slog.Error("Failed to write sample config", "file", path, "error", err)
			os.Exit(1)
		}
		slog.Info("Sample config written", "file", path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

func init() {
	initConfigCmd.Flags().Bool("force", false, "Overwrite an existing file.")
}
