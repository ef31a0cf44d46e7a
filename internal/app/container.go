// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/infra/config"
	"github.com/tarefa-app/tarefa/internal/infra/jsonstore"
	"github.com/tarefa-app/tarefa/internal/infra/logging"
	"github.com/tarefa-app/tarefa/internal/usecase"
)

// Paths holds the resolved filesystem locations for the application.
type Paths struct {
	DataDir   string // Directory holding the store and log file
	StorePath string // Path to tarefa.json
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Progression      domain.ProgressionRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader

	// Pointer fields
	Logger *logging.Logger

	// Configuration
	Config *domain.Config
	Paths  Paths
}

// New creates a new Container wired against the default data and config
// directories. A [store] path in the config file overrides the store
// location; the log file always lives in the data directory.
func New() (*Container, error) {
	configLoader := config.NewLoader()
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := domain.DefaultDataDir()
	storePath := domain.StorePath(dataDir)
	if cfg.Store.Path != "" {
		storePath = cfg.Store.Path
	}

	store := jsonstore.New(storePath)
	logger := logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:            store,
		Progression:      store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		ConfigLoader:     configLoader,
		Logger:           logger,
		Config:           cfg,
		Paths: Paths{
			DataDir:   dataDir,
			StorePath: storePath,
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	tasks domain.TaskRepository,
	progression domain.ProgressionRepository,
	storeInit domain.StoreInitializer,
	clock domain.Clock,
	configLoader domain.ConfigLoader,
) *Container {
	cfg, _ := configLoader.Load()
	return &Container{
		Tasks:            tasks,
		Progression:      progression,
		StoreInitializer: storeInit,
		Clock:            clock,
		ConfigLoader:     configLoader,
		Logger:           logging.New("", logging.ParseLevel("info")),
		Config:           cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Tasks)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Progression)
}

// DashboardUseCase returns a new Dashboard use case.
func (c *Container) DashboardUseCase() *usecase.Dashboard {
	return usecase.NewDashboard(c.Tasks, c.Clock)
}

// DayPlanUseCase returns a new DayPlan use case.
func (c *Container) DayPlanUseCase() *usecase.DayPlan {
	return usecase.NewDayPlan(c.Tasks, c.Clock)
}

// StatsUseCase returns a new Stats use case.
func (c *Container) StatsUseCase() *usecase.Stats {
	return usecase.NewStats(c.Tasks, c.Clock)
}

// ShowProgressUseCase returns a new ShowProgress use case.
func (c *Container) ShowProgressUseCase() *usecase.ShowProgress {
	return usecase.NewShowProgress(c.Progression)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.Progression, c.Clock)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock)
}
