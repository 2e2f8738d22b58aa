package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/contactbook/internal/tui/state"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	Close()
}

// Client defines dependencies needed by the tui command.
type Client interface {
	CreateModel(ctx context.Context) (Model, error)
	RunProgram(ctx context.Context, model Model) error
	Close() error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	directoryFactory DirectoryFactory
	programRunner    ProgramRunner

	mu          sync.Mutex
	directories []Directory
}

// NewDefaultClient creates a default TUI client adapter.
// If directoryFactory is nil, a ConfigDirectoryFactory will be used.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(directoryFactory DirectoryFactory, programRunner ProgramRunner) *DefaultClient {
	if directoryFactory == nil {
		directoryFactory = ConfigDirectoryFactory{}
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		directoryFactory: directoryFactory,
		programRunner:    programRunner,
	}
}

// CreateModel builds a TUI model over a new Directory.
func (d *DefaultClient) CreateModel(ctx context.Context) (Model, error) {
	dir, err := d.directoryFactory.NewDirectory()
	if err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	d.mu.Lock()
	d.directories = append(d.directories, dir)
	d.mu.Unlock()
	return state.NewModel(ctx, dir), nil
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
func (d *DefaultClient) RunProgram(ctx context.Context, model Model) error {
	if model == nil {
		return errors.New("run program: nil model")
	}
	err := d.programRunner.Run(ctx, model)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// Close releases every directory created by CreateModel.
func (d *DefaultClient) Close() error {
	d.mu.Lock()
	dirs := d.directories
	d.directories = nil
	d.mu.Unlock()

	var errs []error
	for _, dir := range dirs {
		if err := dir.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
