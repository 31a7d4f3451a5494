package records

import (
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
)

// Kind tags the record variants.
type Kind string

const (
	KindUser      Kind = "user"
	KindComputer  Kind = "computer"
	KindProfiling Kind = "profiling"
)

// DescriptionPlaceholder is used when neither the form nor the defaults give a description.
const DescriptionPlaceholder = "<PC>"

// UserHeader is the 23-column schema shared by user and profiling records.
var UserHeader = []string{
	"sAMAccountName", "Creation", "OU", "Name", "DisplayName", "cn", "GivenName", "Surname",
	"employeeNumber", "employeeID", "department", "Description", "passwordNeverExpired",
	"ExpireDate", "userprincipalname", "mail", "mobile", "RimozioneGruppo", "InserimentoGruppo",
	"disable", "moveToOU", "telephoneNumber", "company",
}

// User record column positions.
const (
	ColAccountName = iota
	ColCreation
	ColOU
	ColName
	ColDisplayName
	ColCommonName
	ColGivenName
	ColSurname
	ColEmployeeNumber
	ColEmployeeID
	ColDepartment
	ColDescription
	ColPasswordNeverExpires
	ColExpireDate
	ColUPN
	ColMail
	ColMobile
	ColRemovalGroup
	ColInsertionGroup
	ColDisable
	ColMoveToOU
	ColTelephoneNumber
	ColCompany
)

// ComputerHeader is the 10-column schema of the computer record.
var ComputerHeader = []string{
	"Description", "OU", "add_mail", "remove_mail", "add_mobile", "remove_mobile",
	"add_userprincipalname", "remove_userprincipalname", "disable", "moveToOU",
}

// Computer record column positions.
const (
	CompColDescription = iota
	CompColOU
	CompColAddMail
	CompColRemoveMail
	CompColAddMobile
	CompColRemoveMobile
	CompColAddUPN
	CompColRemoveUPN
	CompColDisable
	CompColMoveToOU
)

// Record is one immutable CSV row with its schema.
type Record struct {
	Kind   Kind
	Header []string
	Values []string
}

// Flags select which records are produced.
type Flags struct {
	EmailRequired bool
	// Profiling only applies when EmailRequired is set.
	Profiling bool
	Computer  bool
}

// FlagsFor extracts the assembly flags from captured input.
func FlagsFor(p models.PersonInput) Flags {
	return Flags{
		EmailRequired: p.EmailRequired,
		Profiling:     p.EmailRequired && p.ProfilingRequested,
		Computer:      p.ComputerRequested,
	}
}

// Set is the output of one submission. Computer and Profiling are nil when not requested.
type Set struct {
	User      Record
	Computer  *Record
	Profiling *Record
}

// Assemble builds the records for one submission. It never fails: missing
// configuration values produce empty columns.
func Assemble(p models.PersonInput, id models.DerivedIdentity, cfg config.Config, f Flags) Set {
	d := cfg.Defaults
	group := ConsultantGroup(cfg.Groups, f.EmailRequired)

	description := p.PCDescription
	if description == "" {
		description = d.Description
	}
	if description == "" {
		description = DescriptionPlaceholder
	}

	employeeID := p.EmployeeID
	if employeeID == "" {
		employeeID = d.EmployeeID
	}

	user := make([]string, len(UserHeader))
	user[ColAccountName] = id.AccountName
	user[ColCreation] = "SI"
	user[ColOU] = d.OU
	user[ColName] = id.Name
	user[ColDisplayName] = id.DisplayName
	user[ColCommonName] = id.CommonName
	user[ColGivenName] = id.GivenNameField
	user[ColSurname] = id.SurnameField
	user[ColEmployeeNumber] = p.TaxCode
	user[ColEmployeeID] = employeeID
	user[ColDepartment] = d.Department
	user[ColDescription] = description
	user[ColPasswordNeverExpires] = "No"
	user[ColExpireDate] = id.ExpiryFormatted
	user[ColUPN] = id.UserPrincipalName
	user[ColMail] = id.Mail
	user[ColMobile] = id.MobileFormatted
	user[ColTelephoneNumber] = p.Mobile
	user[ColCompany] = d.Company

	set := Set{User: Record{Kind: KindUser, Header: UserHeader, Values: user}}

	// The profiling record takes over the group list; the user row keeps none.
	if f.Profiling {
		prof := make([]string, len(UserHeader))
		prof[ColAccountName] = id.AccountName
		prof[ColInsertionGroup] = ProfilingGroups(d, group)
		set.Profiling = &Record{Kind: KindProfiling, Header: UserHeader, Values: prof}
	} else {
		user[ColInsertionGroup] = group
	}

	if f.Computer {
		comp := make([]string, len(ComputerHeader))
		comp[CompColDescription] = p.PCDescription
		comp[CompColAddMail] = id.UserPrincipalName
		comp[CompColAddMobile] = id.MobileFormatted
		// Holds the display name, not the UPN.
		comp[CompColAddUPN] = id.DisplayName
		set.Computer = &Record{Kind: KindComputer, Header: ComputerHeader, Values: comp}
	}
	return set
}

// ConsultantGroup picks the consultant group for the email branch.
func ConsultantGroup(g config.Groups, emailRequired bool) string {
	if emailRequired {
		return g.Consultant
	}
	return g.ConsultantNoEmail
}

// Records returns the produced records in output order: user, computer, profiling.
func (s Set) Records() []Record {
	out := []Record{s.User}
	if s.Computer != nil {
		out = append(out, *s.Computer)
	}
	if s.Profiling != nil {
		out = append(out, *s.Profiling)
	}
	return out
}
