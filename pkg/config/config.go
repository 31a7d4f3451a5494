// Package config loads the organisational defaults that drive record assembly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys. Viper lower-cases keys, so every lookup uses lower case.
const (
	KeyOUDefault           = "ou_default"
	KeyDepartmentDefault   = "department_default"
	KeyDepartmentConsult   = "department_consulente"
	KeyDescriptionDefault  = "description_default"
	KeyCompanyDefault      = "company_default"
	KeyExpireDefault       = "expire_default"
	KeyEmployeeIDDefault   = "employee_id_default"
	KeyO365Standard        = "grp_o365_standard"
	KeyO365Teams           = "grp_o365_teams"
	KeyO365Copilot         = "grp_o365_copilot"
	KeyO365Groups          = "o365_groups"
	KeySecondaryMailDomain = "secondary_mail_domain"

	// Workflow identifiers in the ou and gruppi tables.
	WorkflowConsultant        = "esterna_consulente"
	WorkflowConsultantNoEmail = "esterna_consulente_no_email"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// OrgDefaults holds the organisational values copied into every record.
// A zero value is valid and yields records with blank organisational fields.
type OrgDefaults struct {
	OU                  string `yaml:"ou_default"`
	Department          string `yaml:"department_default"`
	Company             string `yaml:"company_default"`
	Description         string `yaml:"description_default"`
	Expire              string `yaml:"expire_default"`
	EmployeeID          string `yaml:"employee_id_default"`
	O365Standard        string `yaml:"grp_o365_standard"`
	O365Teams           string `yaml:"grp_o365_teams"`
	O365Copilot         string `yaml:"grp_o365_copilot"`
	O365Groups          string `yaml:"o365_groups"`
	SecondaryMailDomain string `yaml:"secondary_mail_domain"`
}

// Groups holds the group-membership strings keyed by workflow.
type Groups struct {
	Consultant        string
	ConsultantNoEmail string
}

// Config is the typed view of the organisation configuration file.
type Config struct {
	Defaults OrgDefaults
	Groups   Groups
	// OUs is the raw ou table, kept for check-config reporting.
	OUs map[string]string
}

// Load reads the configuration file at path. YAML, JSON and TOML are accepted.
// Missing keys resolve to empty strings; a missing or unparsable file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrConfigNotFound
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("could not stat configuration file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	defaults := stringTable(v, "defaults")
	ous := stringTable(v, "ou")
	groups := stringTable(v, "gruppi")

	d := OrgDefaults{
		OU:                  firstNonEmpty(ous[WorkflowConsultant], defaults[KeyOUDefault]),
		Department:          firstNonEmpty(defaults[KeyDepartmentConsult], defaults[KeyDepartmentDefault]),
		Company:             defaults[KeyCompanyDefault],
		Description:         defaults[KeyDescriptionDefault],
		Expire:              defaults[KeyExpireDefault],
		EmployeeID:          defaults[KeyEmployeeIDDefault],
		O365Standard:        defaults[KeyO365Standard],
		O365Teams:           defaults[KeyO365Teams],
		O365Copilot:         defaults[KeyO365Copilot],
		O365Groups:          defaults[KeyO365Groups],
		SecondaryMailDomain: defaults[KeySecondaryMailDomain],
	}
	return &Config{
		Defaults: d,
		Groups: Groups{
			Consultant:        groups[WorkflowConsultant],
			ConsultantNoEmail: groups[WorkflowConsultantNoEmail],
		},
		OUs: ous,
	}
}

// MissingKeys lists the default keys that resolved to an empty value.
func (c *Config) MissingKeys() []string {
	var missing []string
	check := func(key, val string) {
		if val == "" {
			missing = append(missing, key)
		}
	}
	d := c.Defaults
	check(KeyOUDefault, d.OU)
	check(KeyDepartmentDefault, d.Department)
	check(KeyCompanyDefault, d.Company)
	check(KeyExpireDefault, d.Expire)
	if d.O365Groups == "" {
		check(KeyO365Standard, d.O365Standard)
		check(KeyO365Teams, d.O365Teams)
		check(KeyO365Copilot, d.O365Copilot)
	}
	check("gruppi."+WorkflowConsultant, c.Groups.Consultant)
	check("gruppi."+WorkflowConsultantNoEmail, c.Groups.ConsultantNoEmail)
	return missing
}

// stringTable flattens a config section into lower-cased string keys.
// Numeric or boolean cells are stringified; nested values are ignored.
func stringTable(v *viper.Viper, section string) map[string]string {
	out := make(map[string]string)
	for key, val := range v.GetStringMap(section) {
		switch val.(type) {
		case map[string]interface{}, []interface{}:
			continue
		}
		out[strings.ToLower(key)] = strings.TrimSpace(v.GetString(section + "." + key))
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
