package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
)

const (
	auditFile = "audit.log"
	queueFile = "batch_queue.json"
)

// Store manages the output directory where import files and the audit log are written.
type Store struct {
	dataDir string
	mu      sync.Mutex
}

// NewStore creates a new store manager. It ensures the output directory exists.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create output directory %s: %w", dataDir, err)
	}
	return &Store{dataDir: dataDir}, nil
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dataDir
}

// WriteArtifact writes one rendered CSV file and returns its path.
// Existing files with the same name are replaced.
func (s *Store) WriteArtifact(name, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return path, nil
}

// QueuePath returns the location of the resumable batch queue.
func (s *Store) QueuePath() string {
	return filepath.Join(s.dataDir, queueFile)
}

// LoadQueue reads a saved batch queue. It returns (nil, nil) when none exists.
func (s *Store) LoadQueue() ([]models.BatchTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.QueuePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read batch queue: %w", err)
	}

	var queue []models.BatchTask
	if err := json.Unmarshal(data, &queue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch queue: %w", err)
	}
	return queue, nil
}

// SaveQueue writes the batch queue so an interrupted run can resume.
func (s *Store) SaveQueue(queue []models.BatchTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(queue, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch queue: %w", err)
	}
	if err := os.WriteFile(s.QueuePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write batch queue: %w", err)
	}
	return nil
}

// ArchiveQueue renames a finished queue with the given suffix.
func (s *Store) ArchiveQueue(suffix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	archived := fmt.Sprintf("%s.completed_%s", s.QueuePath(), suffix)
	if err := os.Rename(s.QueuePath(), archived); err != nil {
		return "", fmt.Errorf("failed to archive batch queue: %w", err)
	}
	return archived, nil
}

// AppendToAuditLog appends a new event to the audit log file.
func (s *Store) AppendToAuditLog(event models.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	path := filepath.Join(s.dataDir, auditFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log for writing: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(string(data) + "\n"); err != nil {
		return fmt.Errorf("failed to write to audit log: %w", err)
	}

	return nil
}
