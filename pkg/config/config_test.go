package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
ou:
  esterna_consulente: "OU=Consulenti,OU=Esterni,DC=consip,DC=it"
gruppi:
  esterna_consulente: "GRP_Consulenti"
  esterna_consulente_No_email: "GRP_Consulenti_NoMail"
defaults:
  ou_default: "OU=Utenti,DC=consip,DC=it"
  department_default: "Utente esterno"
  company_default: "Consip S.p.A."
  description_default: "<PC>"
  expire_default: "30-06-2025"
  employee_id_default: 4711
  o365_groups: "O365 Standard;365 Teams, O365 Copilot"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	d := cfg.Defaults
	assert.Equal(t, "OU=Consulenti,OU=Esterni,DC=consip,DC=it", d.OU, "ou table wins over ou_default")
	assert.Equal(t, "Utente esterno", d.Department)
	assert.Equal(t, "Consip S.p.A.", d.Company)
	assert.Equal(t, "<PC>", d.Description)
	assert.Equal(t, "30-06-2025", d.Expire)
	assert.Equal(t, "4711", d.EmployeeID)
	assert.Equal(t, "O365 Standard;365 Teams, O365 Copilot", d.O365Groups)
	assert.Empty(t, d.O365Standard)

	assert.Equal(t, "GRP_Consulenti", cfg.Groups.Consultant)
	assert.Equal(t, "GRP_Consulenti_NoMail", cfg.Groups.ConsultantNoEmail, "mixed-case keys are matched")
}

func TestLoadJSONDepartmentOverride(t *testing.T) {
	content := `{"defaults": {"department_default": "Generic", "department_consulente": "Consulenti", "ou_default": "OU=Fallback"}}`
	cfg, err := Load(writeFile(t, "config.json", content))
	require.NoError(t, err)
	assert.Equal(t, "Consulenti", cfg.Defaults.Department)
	assert.Equal(t, "OU=Fallback", cfg.Defaults.OU)
	assert.Empty(t, cfg.Groups.Consultant)
}

func TestLoadEmptyFileYieldsZeroDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, OrgDefaults{}, cfg.Defaults)
	assert.Equal(t, Groups{}, cfg.Groups)
}

func TestLoadErrors(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "defaults: [unclosed"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestMissingKeys(t *testing.T) {
	cfg := &Config{}
	missing := cfg.MissingKeys()
	assert.Contains(t, missing, KeyOUDefault)
	assert.Contains(t, missing, KeyO365Teams)
	assert.Contains(t, missing, "gruppi."+WorkflowConsultant)

	cfg.Defaults.O365Groups = "O365 Standard"
	assert.NotContains(t, cfg.MissingKeys(), KeyO365Teams)
}
