package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/records"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/store"
)

const (
	statusPending   = "pending"
	statusCompleted = "completed"
	statusFailed    = "failed"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generates import files for a list of consultants.",
	Long: `Reads a YAML or JSON file containing a list of consultants and generates their
import files sequentially. The run is resumable; if it's interrupted, re-running it
continues with the remaining pending consultants.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		fromFile, _ := cmd.Flags().GetString("from-file")
		slog.Info("Starting batch process", "from_file", fromFile)

		cfg := loadOrgConfig()
		mode := quotingMode()
		s := openStore()

		queue, err := s.LoadQueue()
		if err != nil {
			slog.Error("Failed to read existing batch queue", "error", err)
			os.Exit(1)
		}
		if queue == nil {
			slog.Info("No existing batch queue found. Creating one from source file.")
			if queue, err = readBatchFile(fromFile); err != nil {
				slog.Error("Failed to read source file", "file", fromFile, "error", err)
				os.Exit(1)
			}
		} else {
			slog.Info("Existing batch queue found. Resuming process.", "size", len(queue))
		}

		completed, interrupted := runQueue(ctx, s, *cfg, mode, queue)
		if interrupted {
			return
		}

		if completed == len(queue) && len(queue) > 0 {
			archived, err := s.ArchiveQueue(time.Now().Format("20060102-150405"))
			if err != nil {
				slog.Error("Failed to archive completed batch queue.", "error", err)
				return
			}
			slog.Info("All consultants processed. Archived batch queue.", "new_name", archived)
			successBanner.Fprintf(cmd.ErrOrStderr(), "Generati %d consulenti\n", completed)
			return
		}
		warnBanner.Fprintf(cmd.ErrOrStderr(), "Completati %d di %d; rilanciare per riprovare i falliti\n", completed, len(queue))
	},
}

// readBatchFile decodes a list of PersonInput. JSON input is valid YAML.
func readBatchFile(path string) ([]models.BatchTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var people []models.PersonInput
	if err := yaml.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("failed to decode consultants: %w", err)
	}
	queue := make([]models.BatchTask, len(people))
	for i, p := range people {
		queue[i] = models.BatchTask{Person: p, Status: statusPending}
	}
	return queue, nil
}

// runQueue processes every pending or failed task and saves progress every
// five tasks. It stops early, saving the queue, when ctx is cancelled.
func runQueue(ctx context.Context, s *store.Store, cfg config.Config, mode records.QuotingMode, queue []models.BatchTask) (completed int, interrupted bool) {
	var processed int
	for i := range queue {
		if ctx.Err() != nil {
			slog.Warn("Shutdown signal received. Saving progress and exiting.", "reason", ctx.Err())
			saveQueue(s, queue)
			return countCompleted(queue), true
		}

		task := &queue[i]
		if task.Status == statusCompleted {
			continue
		}

		p := applyDefaults(prepareInput(task.Person), cfg.Defaults)
		sub, err := records.Generate(p, cfg, mode)
		if err == nil {
			_, err = saveSubmission(s, "Batch", sub)
		}
		if err != nil {
			task.Status = statusFailed
			task.Error = err.Error()
			logAndAudit(s, "Batch", p.Surname, "error", "Task failed", "error", err)
		} else {
			task.Status = statusCompleted
			task.AccountName = sub.Identity.AccountName
			task.Error = ""
		}

		processed++
		if processed%5 == 0 {
			slog.Info("...Saving progress...", "progress", processed)
			saveQueue(s, queue)
		}
	}
	saveQueue(s, queue)
	return countCompleted(queue), false
}

func countCompleted(queue []models.BatchTask) int {
	n := 0
	for _, t := range queue {
		if t.Status == statusCompleted {
			n++
		}
	}
	return n
}

func saveQueue(s *store.Store, queue []models.BatchTask) {
	if err := s.SaveQueue(queue); err != nil {
		slog.Warn("Could not save batch queue progress", "error", err)
	}
}

func init() {
	batchCmd.Flags().String("from-file", "", "Path to the YAML or JSON file listing the consultants.")
	batchCmd.MarkFlagRequired("from-file")
}
