// Package records derives identities from captured input and assembles the
// fixed-column rows imported by the directory provisioning tooling.
package records

import (
	"strings"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/expiry"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/naming"
)

const (
	// MailDomain is the UPN and mailbox domain.
	MailDomain = "consip.it"
	// MobilePrefix is the international prefix added to non-empty phone numbers.
	MobilePrefix = "+39 "
)

// Derive computes the identity of a consultant. Consultants are always external.
func Derive(p models.PersonInput) models.DerivedIdentity {
	account := naming.AccountName(p.GivenName, p.Surname, p.SecondGivenName, p.SecondSurname, true)
	full := naming.FullName(p.Surname, p.SecondSurname, p.GivenName, p.SecondGivenName, true)
	upn := account + "@" + MailDomain

	mail := upn
	if !p.EmailRequired && p.CustomEmail != "" {
		mail = p.CustomEmail
	}

	mobile := ""
	if p.Mobile != "" {
		mobile = MobilePrefix + p.Mobile
	}

	return models.DerivedIdentity{
		AccountName:       account,
		DisplayName:       full,
		CommonName:        full,
		Name:              strings.TrimSuffix(full, naming.ExternalMarker),
		GivenNameField:    joinParts(p.GivenName, p.SecondGivenName),
		SurnameField:      joinParts(p.Surname, p.SecondSurname),
		UserPrincipalName: upn,
		Mail:              mail,
		MobileFormatted:   mobile,
		ExpiryFormatted:   expiry.Reformat(p.ExpiryRaw),
	}
}

// joinParts joins a primary and an optional secondary name with a space.
func joinParts(primary, secondary string) string {
	return strings.TrimSpace(primary + " " + secondary)
}
