package records

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/directory"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/naming"
)

var messageTmpl = template.Must(template.New("request").Parse(`Richiesta creazione casella di posta

Account:          {{.Identity.AccountName}}
Alias:            {{.Alias}}
Display name:     {{.Identity.DisplayName}}
Common name:      {{.Identity.CommonName}}
Email primaria:   {{.Primary}}
{{- if .Secondary}}
Email secondaria: {{.Secondary}}
{{- end}}
{{- if .DN}}
DN:               {{.DN}}
{{- end}}
{{- if .Targets}}

Profilazione richiesta su:
{{- range .Targets}}
  - {{.}}
{{- end}}
{{- end}}
`))

type messageData struct {
	Identity  models.DerivedIdentity
	Alias     string
	Primary   string
	Secondary string
	DN        string
	Targets   []string
}

// Message renders the mailbox-provisioning request shown to the operator.
// The alias is the account name without the external suffix. The secondary
// address is the custom mail when it differs from the UPN, else the alias at
// the configured secondary domain.
func Message(p models.PersonInput, id models.DerivedIdentity, cfg config.Config) string {
	alias := strings.TrimSuffix(id.AccountName, naming.ExternalSuffix)
	data := messageData{
		Identity: id,
		Alias:    alias,
		Primary:  id.UserPrincipalName,
	}
	switch {
	case id.Mail != id.UserPrincipalName:
		data.Secondary = id.Mail
	case cfg.Defaults.SecondaryMailDomain != "":
		data.Secondary = alias + "@" + cfg.Defaults.SecondaryMailDomain
	}
	if dn, ok := directory.UserDN(id.CommonName, cfg.Defaults.OU); ok {
		data.DN = dn
	}
	if p.EmailRequired && p.ProfilingRequested {
		for _, t := range p.ProfilingTargets {
			if t = strings.TrimSpace(t); t != "" {
				data.Targets = append(data.Targets, t)
			}
		}
	}

	var buf bytes.Buffer
	_ = messageTmpl.Execute(&buf, data)
	return buf.String()
}
