package records

import (
	"strings"
	"unicode/utf8"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
)

// Filename suffixes per record kind.
var fileSuffix = map[Kind]string{
	KindUser:      "_consulente.csv",
	KindComputer:  "_computer.csv",
	KindProfiling: "_profilazione.csv",
}

// FileStem is surname[_secondSurname]_givenInitial[_secondGivenInitial].
func FileStem(p models.PersonInput) string {
	parts := []string{p.Surname}
	if p.SecondSurname != "" {
		parts = append(parts, p.SecondSurname)
	}
	parts = append(parts, initial(p.GivenName))
	if p.SecondGivenName != "" {
		parts = append(parts, initial(p.SecondGivenName))
	}
	return strings.Join(parts, "_")
}

// Filename returns the download name of a record of the given kind.
func Filename(p models.PersonInput, k Kind) string {
	return FileStem(p) + fileSuffix[k]
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
