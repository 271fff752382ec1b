package reader

import (
	"github.com/colonyops/citereader/internal/core/config"
	"github.com/colonyops/citereader/internal/core/eventbus"
	"github.com/colonyops/citereader/internal/data/db"
	"github.com/colonyops/citereader/internal/data/stores"
)

// App is the central entry point for reader operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	State    *State
	Papers   *PaperService
	Feedback *FeedbackService

	Bus    *eventbus.EventBus
	Config *config.Config
	DB     *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, database *db.DB, bus *eventbus.EventBus) *App {
	return &App{
		State:    NewState(bus),
		Papers:   NewPaperService(stores.NewPaperStore(database)),
		Feedback: NewFeedbackService(stores.NewFeedbackStore(database), bus),
		Bus:      bus,
		Config:   cfg,
		DB:       database,
	}
}
