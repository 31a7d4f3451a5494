package records

import (
	"strings"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
)

// truncatedO365 is a label that lost its leading "O" in the source workbook.
const truncatedO365 = "365 "

// ProfilingGroups builds the ";"-joined group list of the profiling record.
// The O365 groups come from the delimited o365_groups default when present,
// otherwise from the standard, teams and copilot defaults in that order.
// consultantGroup is appended last. Empty tokens are dropped.
func ProfilingGroups(d config.OrgDefaults, consultantGroup string) string {
	var tokens []string
	if strings.TrimSpace(d.O365Groups) != "" {
		tokens = splitGroups(d.O365Groups)
	} else {
		tokens = []string{d.O365Standard, d.O365Teams, d.O365Copilot}
	}

	groups := make([]string, 0, len(tokens)+1)
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, truncatedO365) {
			tok = "O" + tok
		}
		groups = append(groups, tok)
	}
	if g := strings.TrimSpace(consultantGroup); g != "" {
		groups = append(groups, g)
	}
	return strings.Join(groups, ";")
}

func splitGroups(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
}
