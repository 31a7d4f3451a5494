package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	return s
}

func TestWriteArtifact(t *testing.T) {
	s := newTestStore(t)

	path, err := s.WriteArtifact("Rossi_M_consulente.csv", "a,b\r\n1,2\r\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "Rossi_M_consulente.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\r\n1,2\r\n", string(data))

	for _, bad := range []string{"", "../x.csv", `a\b.csv`} {
		_, err := s.WriteArtifact(bad, "x")
		assert.Error(t, err, bad)
	}
}

func TestQueueLifecycle(t *testing.T) {
	s := newTestStore(t)

	queue, err := s.LoadQueue()
	require.NoError(t, err)
	assert.Nil(t, queue)

	in := []models.BatchTask{
		{Person: models.PersonInput{Surname: "Rossi", GivenName: "Mario"}, Status: "completed", AccountName: "mario.rossi.ext"},
		{Person: models.PersonInput{Surname: "Bianchi", GivenName: "Anna"}, Status: "pending"},
	}
	require.NoError(t, s.SaveQueue(in))

	out, err := s.LoadQueue()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	archived, err := s.ArchiveQueue("20261016-120000")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(archived, "batch_queue.json.completed_20261016-120000"))
	assert.FileExists(t, archived)
	assert.NoFileExists(t, s.QueuePath())
}

func TestAppendToAuditLog(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendToAuditLog(models.AuditEvent{Timestamp: ts, UseCase: "Generate", Target: "a", Status: "info"}))
	require.NoError(t, s.AppendToAuditLog(models.AuditEvent{Timestamp: ts, UseCase: "Generate", Target: "b", Status: "error"}))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "audit.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var ev models.AuditEvent
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &ev))
	assert.Equal(t, "b", ev.Target)
	assert.Equal(t, "error", ev.Status)
}
