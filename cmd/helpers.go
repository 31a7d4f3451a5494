package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/naming"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/records"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/store"
)

var (
	successBanner = color.New(color.FgGreen, color.Bold)
	warnBanner    = color.New(color.FgYellow)
	errorBanner   = color.New(color.FgRed, color.Bold)
)

// logAndAudit provides a consistent way to log structured messages to the console
// and also append a human-readable event to the audit.log file.
func logAndAudit(s *store.Store, useCase, target, level, details string, args ...interface{}) {
	logArgs := append([]interface{}{"use_case", useCase, "target", target}, args...)

	switch level {
	case "warn":
		slog.Warn(details, logArgs...)
	case "error":
		slog.Error(details, logArgs...)
	case "fatal":
		// Log as error and then exit.
		slog.Error(details, logArgs...)
		errorBanner.Fprintf(os.Stderr, "%s: %s\n", target, details)
		os.Exit(1)
	default:
		slog.Info(details, logArgs...)
	}

	event := models.AuditEvent{
		Timestamp: time.Now(),
		UseCase:   useCase,
		Target:    target,
		Status:    level, // The status in the audit log reflects the log level
		Details:   fmt.Sprintf("%s (%v)", details, args),
	}
	if err := s.AppendToAuditLog(event); err != nil {
		slog.Warn("Failed to write to audit log", "error", err)
	}
}

// configPath returns the file viper resolved, or the --config value when
// nothing was found so the loader can report it.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return cfgFile
}

// loadOrgConfig loads the organisation defaults. A missing or invalid file is fatal.
func loadOrgConfig() *config.Config {
	cfg, err := config.Load(configPath())
	if err != nil {
		slog.Error("Failed to load organisation config. Run 'init-config' to create one.", "error", err)
		errorBanner.Fprintln(os.Stderr, "Carica il file di configurazione per procedere.")
		os.Exit(1)
	}
	if missing := cfg.MissingKeys(); len(missing) > 0 {
		slog.Warn("Config keys missing; affected columns will be empty", "keys", missing)
	}
	return cfg
}

func quotingMode() records.QuotingMode {
	mode, err := records.ParseQuotingMode(viper.GetString("quoting"))
	if err != nil {
		slog.Error("Invalid quoting mode", "error", err)
		os.Exit(1)
	}
	return mode
}

func openStore() *store.Store {
	dir := viper.GetString("output_dir")
	if dir == "" {
		dir = "./out"
	}
	s, err := store.NewStore(dir)
	if err != nil {
		slog.Error("Failed to create output store", "error", err)
		os.Exit(1)
	}
	return s
}

// prepareInput applies the form capture rules: names are trimmed and
// capitalised, the phone loses its spaces and free text is trimmed.
func prepareInput(p models.PersonInput) models.PersonInput {
	p.GivenName = naming.Capitalize(p.GivenName)
	p.SecondGivenName = naming.Capitalize(p.SecondGivenName)
	p.Surname = naming.Capitalize(p.Surname)
	p.SecondSurname = naming.Capitalize(p.SecondSurname)
	p.Mobile = strings.ReplaceAll(strings.TrimSpace(p.Mobile), " ", "")
	p.PCDescription = strings.TrimSpace(p.PCDescription)
	p.TaxCode = strings.TrimSpace(p.TaxCode)
	p.EmployeeID = strings.TrimSpace(p.EmployeeID)
	p.ExpiryRaw = strings.TrimSpace(p.ExpiryRaw)
	p.CustomEmail = strings.TrimSpace(p.CustomEmail)
	return p
}

// applyDefaults fills empty form fields with the organisation defaults the
// form would have pre-filled.
func applyDefaults(p models.PersonInput, d config.OrgDefaults) models.PersonInput {
	if p.ExpiryRaw == "" {
		p.ExpiryRaw = d.Expire
	}
	if p.EmployeeID == "" {
		p.EmployeeID = d.EmployeeID
	}
	return p
}

// saveSubmission writes every artifact and audits it. It returns the written paths.
func saveSubmission(s *store.Store, useCase string, sub *records.Submission) ([]string, error) {
	paths := make([]string, 0, len(sub.Artifacts))
	for _, a := range sub.Artifacts {
		path, err := s.WriteArtifact(a.Filename, a.Content)
		if err != nil {
			logAndAudit(s, useCase, sub.Identity.AccountName, "error", "Failed to write artifact", "kind", a.Kind, "error", err)
			return paths, err
		}
		logAndAudit(s, useCase, sub.Identity.AccountName, "info", "Wrote artifact", "kind", a.Kind, "file", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// printPreview echoes the user record as header/value pairs.
func printPreview(w io.Writer, r records.Record) {
	width := 0
	for _, h := range r.Header {
		if len(h) > width {
			width = len(h)
		}
	}
	for i, h := range r.Header {
		fmt.Fprintf(w, "%-*s  %s\n", width, h, r.Values[i])
	}
}
