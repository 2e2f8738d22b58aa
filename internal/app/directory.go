// Package app wires configuration, the contact source and the session
// store into the use-cases shared by the CLI and the TUI.
package app

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/config"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/logging"
	"github.com/cristianoliveira/contactbook/internal/search"
	"github.com/cristianoliveira/contactbook/internal/source"
	"github.com/cristianoliveira/contactbook/internal/storage"
)

// Options configures a Directory. Zero values fall back to defaults.
type Options struct {
	Fetcher    source.Fetcher
	Repository storage.Repository
	Engine     *search.Engine
	Logger     logging.Logger

	// Presort orders the collection by name once it has been loaded.
	Presort       bool
	SortOrder     domain.SortOrder
	PageSize      int
	LoaderOptions []source.LoaderOption
}

// Directory owns the session's contact collection: it loads it once,
// keeps it in the repository and exposes the search engine over it.
type Directory struct {
	loader   *source.Loader
	repo     storage.Repository
	engine   *search.Engine
	log      logging.Logger
	presort  bool
	order    domain.SortOrder
	pageSize int
}

// NewDirectory creates a Directory. It panics if opts.Fetcher is nil.
func NewDirectory(opts Options) *Directory {
	if opts.Fetcher == nil {
		panic("NewDirectory: fetcher dependency cannot be nil")
	}
	if opts.Repository == nil {
		opts.Repository = storage.NewMemoryRepository()
	}
	if opts.Engine == nil {
		opts.Engine = search.NewEngine()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if !opts.SortOrder.IsValid() {
		opts.SortOrder = domain.SortOrderAsc
	}
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageSize
	}

	loaderOpts := append([]source.LoaderOption{source.WithLogger(opts.Logger)}, opts.LoaderOptions...)
	return &Directory{
		loader:   source.NewLoader(opts.Fetcher, loaderOpts...),
		repo:     opts.Repository,
		engine:   opts.Engine,
		log:      opts.Logger,
		presort:  opts.Presort,
		order:    opts.SortOrder,
		pageSize: opts.PageSize,
	}
}

// NewDirectoryFromConfig builds a Directory from the loaded configuration.
func NewDirectoryFromConfig() (*Directory, error) {
	mode, err := search.ParseMatchMode(config.Get("match_mode", string(search.MatchToken)))
	if err != nil {
		return nil, err
	}
	order, err := domain.ParseSortOrder(config.Get("sort_order", domain.SortOrderAsc.String()))
	if err != nil {
		return nil, err
	}
	repo, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	fetcher := source.NewHTTPFetcher(
		config.Get("api_url", config.DefaultAPIURL),
		source.WithTimeout(config.GetDuration("fetch_timeout", 0)),
	)
	log := logging.With("component", "directory")

	return NewDirectory(Options{
		Fetcher:    fetcher,
		Repository: repo,
		Engine: search.NewEngine(
			search.WithProvider(search.NewProvider(mode)),
			search.WithSuggestionLimit(config.GetInt("suggestion_limit", 0)),
		),
		Logger:        log,
		Presort:       config.GetBool("presort", true),
		SortOrder:     order,
		PageSize:      config.GetInt("page_size", domain.DefaultPageSize),
		LoaderOptions: []source.LoaderOption{source.WithDelay(config.GetDuration("fetch_delay", 0))},
	}), nil
}

// Load performs the one read and stores the collection. A failed fetch is
// reported in the Result, not as an error; the error return is reserved
// for the session store.
func (d *Directory) Load(ctx context.Context) (source.Result, error) {
	res := d.loader.Load(ctx)
	contacts := res.Contacts
	if d.presort {
		contacts = domain.SortByName(contacts, d.order)
	}
	if err := d.repo.Replace(ctx, contacts); err != nil {
		return res, fmt.Errorf("store contacts: %w", err)
	}
	stored, err := d.repo.All(ctx)
	if err != nil {
		return res, fmt.Errorf("read contacts: %w", err)
	}
	res.Contacts = stored
	if res.Err != nil {
		colors.StructuredWarn("app", "load", "empty", res.Err, nil)
	}
	return res, nil
}

// Contacts returns the stored collection.
func (d *Directory) Contacts(ctx context.Context) ([]domain.Contact, error) {
	return d.repo.All(ctx)
}

// Engine returns the search engine.
func (d *Directory) Engine() *search.Engine { return d.engine }

// PageSize returns the configured page size.
func (d *Directory) PageSize() int { return d.pageSize }

// SortOrder returns the initial sort order.
func (d *Directory) SortOrder() domain.SortOrder { return d.order }

// Presorted reports whether Load orders the collection by SortOrder.
func (d *Directory) Presorted() bool { return d.presort }

// Close releases the session store.
func (d *Directory) Close() error {
	return d.repo.Close()
}
