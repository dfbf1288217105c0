package app

import (
	"context"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

var sampleTasks = []services.CreateTaskParams{
	{
		Title:       "Set up the CI pipeline",
		Description: "Configure the build and deploy pipeline",
		Status:      models.StatusPending,
		Priority:    models.PriorityHigh,
	},
	{
		Title:       "Write unit tests",
		Description: "Cover every API endpoint",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityMedium,
	},
	{
		Title:       "Document the API",
		Description: "Describe every endpoint and its responses",
		Status:      models.StatusCompleted,
		Priority:    models.PriorityLow,
	},
}

// MustSeedSampleTasks fills an empty table with sample tasks when seeding
// is enabled.
func MustSeedSampleTasks() {
	if !config.Global().SQLite.Seed {
		return
	}

	err := seedSampleTasks(context.Background(), services.NewTaskService(globalLogger, globalSQLite))
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to seed sample tasks")
		panic(err)
	}
}

func seedSampleTasks(ctx context.Context, tasks services.TaskService) error {
	count, err := tasks.CountTasks(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		globalLogger.Info().
			Int("count", count).
			Msg("tasks table already populated, skipping seed")
		return nil
	}

	for _, params := range sampleTasks {
		_, err = tasks.CreateTask(ctx, params)
		if err != nil {
			return err
		}
	}
	globalLogger.Info().
		Int("count", len(sampleTasks)).
		Msg("seeded sample tasks")
	return nil
}
