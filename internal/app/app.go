// Package app wires the generator and the reading repository into the
// two actions the seeder supports: insert a fresh series or clear the
// collection.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"meterseed/internal/simulator"
	"meterseed/internal/storage"
)

// Action selects what the seeder does with the collection.
type Action int

const (
	// ActionInsert generates a series and inserts it.
	ActionInsert Action = iota + 1
	// ActionDelete removes every existing reading.
	ActionDelete
)

// ParseAction validates a numeric action selection. Anything outside
// {1, 2} is rejected rather than defaulted.
func ParseAction(v int) (Action, error) {
	switch v {
	case 1:
		return ActionInsert, nil
	case 2:
		return ActionDelete, nil
	default:
		return 0, fmt.Errorf("invalid action: %d", v)
	}
}

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// App holds the seeder's collaborators.
type App struct {
	logger     *logrus.Logger
	repo       storage.ReadingRepository
	gen        *simulator.Generator
	monthsBack int
	now        func() time.Time
}

func New(logger *logrus.Logger, repo storage.ReadingRepository, gen *simulator.Generator, monthsBack int) *App {
	return &App{
		logger:     logger,
		repo:       repo,
		gen:        gen,
		monthsBack: monthsBack,
		now:        time.Now,
	}
}

// Run executes the selected action. A single attempt is made against
// storage; failures propagate wrapped for the caller to report.
func (a *App) Run(ctx context.Context, mode simulator.Mode, action Action) error {
	switch action {
	case ActionInsert:
		return a.insert(ctx, mode)
	case ActionDelete:
		return a.deleteAll(ctx)
	default:
		return fmt.Errorf("invalid action: %d", int(action))
	}
}

// insert generates one record per day for the configured trailing range
// and hands the whole series to the repository in one call.
func (a *App) insert(ctx context.Context, mode simulator.Mode) error {
	end := a.now()
	start := end.AddDate(0, -a.monthsBack, 0)

	records, err := a.gen.Generate(start, end, mode)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("empty date range %s - %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	inserted, err := a.repo.InsertMany(ctx, records)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}

	a.logger.WithFields(logrus.Fields{
		"run_id":   uuid.NewString(),
		"mode":     mode.String(),
		"from":     records[0].Date,
		"to":       records[len(records)-1].Date,
		"inserted": inserted,
	}).Info("Inserted telemetry readings")
	return nil
}

func (a *App) deleteAll(ctx context.Context) error {
	deleted, err := a.repo.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	a.logger.WithFields(logrus.Fields{
		"deleted": deleted,
	}).Info("Deleted telemetry readings")
	return nil
}
