package records

import (
	"fmt"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/csvout"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
)

// QuotingMode names the two quoting conventions of the import files.
type QuotingMode string

const (
	// QuotingPredicate quotes any field containing a space.
	QuotingPredicate QuotingMode = "predicate"
	// QuotingFixed quotes a fixed set of columns per record kind.
	QuotingFixed QuotingMode = "fixed"
)

// ParseQuotingMode validates a mode name from flags or configuration.
func ParseQuotingMode(s string) (QuotingMode, error) {
	switch QuotingMode(s) {
	case QuotingPredicate, QuotingFixed:
		return QuotingMode(s), nil
	case "":
		return QuotingPredicate, nil
	}
	return "", fmt.Errorf("unknown quoting mode %q (want %q or %q)", s, QuotingPredicate, QuotingFixed)
}

// Policy returns the quoting policy for a record kind.
func (m QuotingMode) Policy(k Kind, p models.PersonInput) csvout.Policy {
	if m != QuotingFixed {
		return csvout.QuoteIfSpace{}
	}
	switch k {
	case KindComputer:
		return csvout.NewFixedColumns(CompColDescription, CompColAddMobile, CompColAddUPN)
	case KindProfiling:
		return csvout.NewFixedColumns(ColInsertionGroup)
	}
	cols := []int{ColOU, ColName, ColDisplayName, ColCommonName, ColExpireDate, ColMobile}
	if p.SecondGivenName != "" {
		cols = append(cols, ColGivenName)
	}
	if p.SecondSurname != "" {
		cols = append(cols, ColSurname)
	}
	return csvout.NewFixedColumns(cols...)
}
