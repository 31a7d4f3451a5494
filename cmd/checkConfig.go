package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/directory"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/records"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Reports missing keys and suspicious values in the organisation config.",
	Long: `Loads the organisation config and lists the keys that resolve to empty values and
the OU entries that are not valid LDAP distinguished names. Problems are warnings:
generation still works with blank organisational fields.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadOrgConfig()
		if n := checkConfig(cmd.OutOrStdout(), cfg, quotingMode()); n > 0 {
			warnBanner.Fprintf(cmd.ErrOrStderr(), "%d avvisi\n", n)
			return
		}
		successBanner.Fprintln(cmd.ErrOrStderr(), "Configurazione completa")
	},
}

// checkConfig writes one line per finding and returns the number of warnings.
func checkConfig(w io.Writer, cfg *config.Config, mode records.QuotingMode) int {
	warnings := 0
	for _, key := range cfg.MissingKeys() {
		fmt.Fprintf(w, "missing  %s\n", key)
		warnings++
	}

	ous := make(map[string]string, len(cfg.OUs)+1)
	for k, v := range cfg.OUs {
		ous["ou."+k] = v
	}
	if cfg.Defaults.OU != "" {
		ous["effective OU"] = cfg.Defaults.OU
	}
	keys := make([]string, 0, len(ous))
	for k := range ous {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		ou := ous[k]
		if _, err := directory.ParseOU(ou); err != nil {
			fmt.Fprintf(w, "not-dn   %s: %q\n", k, ou)
			warnings++
			continue
		}
		fmt.Fprintf(w, "ok       %s: %d OU levels\n", k, directory.OUDepth(ou))
		// Unquoted commas split the OU column on import.
		if mode == records.QuotingPredicate && strings.Contains(ou, ",") && !strings.Contains(ou, " ") {
			fmt.Fprintf(w, "unquoted %s: contains commas but no space; use --quoting fixed\n", k)
			warnings++
		}
	}
	return warnings
}
