// Package directory checks organisational-unit paths against LDAP DN syntax.
package directory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// ErrInvalidOU is returned when an OU value is not a distinguished name.
var ErrInvalidOU = errors.New("organizational unit is not a valid distinguished name")

// ParseOU parses an OU path such as "OU=Consulenti,DC=consip,DC=it".
// Labels without attribute types (the workbook sometimes carries plain
// descriptions) are rejected.
func ParseOU(ou string) (*ldap.DN, error) {
	ou = strings.TrimSpace(ou)
	if ou == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidOU)
	}
	dn, err := ldap.ParseDN(ou)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidOU, ou, err)
	}
	if len(dn.RDNs) == 0 {
		return nil, fmt.Errorf("%w: %q has no components", ErrInvalidOU, ou)
	}
	return dn, nil
}

// UserDN returns the distinguished name the account will get under ou.
// ok is false when ou is not a DN, in which case no preview is possible.
func UserDN(commonName, ou string) (dn string, ok bool) {
	if _, err := ParseOU(ou); err != nil {
		return "", false
	}
	return "CN=" + ldap.EscapeDN(commonName) + "," + strings.TrimSpace(ou), true
}

// OUDepth counts the OU components of a DN, ignoring DC and other types.
func OUDepth(ou string) int {
	dn, err := ParseOU(ou)
	if err != nil {
		return 0
	}
	depth := 0
	for _, rdn := range dn.RDNs {
		for _, attr := range rdn.Attributes {
			if strings.EqualFold(attr.Type, "OU") {
				depth++
			}
		}
	}
	return depth
}
