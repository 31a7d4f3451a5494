package models

import "time"

// PersonInput holds the raw fields captured for one consultant.
// Name fields arrive trimmed and capitalised.
type PersonInput struct {
	Surname         string `json:"surname" yaml:"surname"`
	SecondSurname   string `json:"second_surname,omitempty" yaml:"second_surname,omitempty"`
	GivenName       string `json:"given_name" yaml:"given_name"`
	SecondGivenName string `json:"second_given_name,omitempty" yaml:"second_given_name,omitempty"`
	TaxCode         string `json:"tax_code,omitempty" yaml:"tax_code,omitempty"`
	EmployeeID      string `json:"employee_id,omitempty" yaml:"employee_id,omitempty"`
	Mobile          string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	PCDescription   string `json:"pc_description,omitempty" yaml:"pc_description,omitempty"`
	ExpiryRaw       string `json:"expiry,omitempty" yaml:"expiry,omitempty"`
	EmailRequired   bool   `json:"email_required" yaml:"email_required"`
	// CustomEmail is used as mail when EmailRequired is false.
	CustomEmail        string   `json:"custom_email,omitempty" yaml:"custom_email,omitempty"`
	ProfilingRequested bool     `json:"profiling_requested,omitempty" yaml:"profiling_requested,omitempty"`
	ProfilingTargets   []string `json:"profiling_targets,omitempty" yaml:"profiling_targets,omitempty"`
	ComputerRequested  bool     `json:"computer_requested,omitempty" yaml:"computer_requested,omitempty"`
}

// DerivedIdentity is computed once per submission from a PersonInput.
type DerivedIdentity struct {
	AccountName string `json:"account_name"`
	// DisplayName and CommonName are always identical.
	DisplayName       string `json:"display_name"`
	CommonName        string `json:"common_name"`
	Name              string `json:"name"`
	GivenNameField    string `json:"given_name"`
	SurnameField      string `json:"surname"`
	UserPrincipalName string `json:"user_principal_name"`
	Mail              string `json:"mail"`
	MobileFormatted   string `json:"mobile"`
	ExpiryFormatted   string `json:"expiry"`
}

// AuditEvent represents a single entry in the audit log.
type AuditEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UseCase   string    `json:"use_case"`
	Target    string    `json:"target"`
	Status    string    `json:"status"`
	Details   string    `json:"details,omitempty"`
}

// BatchTask is one person in a resumable batch run.
type BatchTask struct {
	Person PersonInput `json:"person" yaml:"person"`
	Status string      `json:"status" yaml:"status,omitempty"` // "pending", "completed", "failed"
	// AccountName is filled in once the task completes.
	AccountName string `json:"account_name,omitempty" yaml:"account_name,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}
