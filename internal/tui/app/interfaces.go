// Package app provides TUI application adapters for command wiring.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	contactapp "github.com/cristianoliveira/contactbook/internal/app"
	"github.com/cristianoliveira/contactbook/internal/tui/state"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model and stops it
	// when ctx is cancelled.
	Run(ctx context.Context, model tea.Model) error
}

// DefaultProgramRunner wraps tea.NewProgram with the options the contact
// list needs.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program on the alternate screen. All mouse motion
// is reported so suggestions can follow the pointer.
func (r *DefaultProgramRunner) Run(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}

// Directory is the contact source behind a model, closed when the
// program exits.
type Directory interface {
	state.Directory
	Close() error
}

// DirectoryFactory creates the session's Directory.
type DirectoryFactory interface {
	NewDirectory() (Directory, error)
}

// DirectoryFactoryFunc adapts a function to DirectoryFactory.
type DirectoryFactoryFunc func() (Directory, error)

// NewDirectory calls f.
func (f DirectoryFactoryFunc) NewDirectory() (Directory, error) { return f() }

// ConfigDirectoryFactory builds directories from the loaded configuration.
type ConfigDirectoryFactory struct{}

// NewDirectory implements DirectoryFactory.
func (ConfigDirectoryFactory) NewDirectory() (Directory, error) {
	dir, err := contactapp.NewDirectoryFromConfig()
	if err != nil {
		return nil, err
	}
	return dir, nil
}
