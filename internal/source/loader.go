package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/logging"
	"golang.org/x/sync/singleflight"
)

const loadKey = "contacts"

// Result is the outcome of the one read. Contacts is never nil; on failure
// it is empty and Err carries the cause.
type Result struct {
	Contacts []domain.Contact
	Dropped  int
	Err      error
}

// Loader performs the read at most once. Concurrent callers share the
// in-flight request and later callers receive the cached Result.
type Loader struct {
	fetcher Fetcher
	delay   time.Duration
	log     logging.Logger

	group singleflight.Group
	mu    sync.Mutex
	done  bool
	res   Result
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDelay waits d before issuing the request.
func WithDelay(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.delay = d
	}
}

// WithLogger sets the logger used for failures and dropped records.
func WithLogger(log logging.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader wraps fetcher. It panics if fetcher is nil.
func NewLoader(fetcher Fetcher, opts ...LoaderOption) *Loader {
	if fetcher == nil {
		panic("NewLoader: fetcher dependency cannot be nil")
	}
	l := &Loader{fetcher: fetcher, log: logging.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Loaded reports whether the read has completed.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Load returns the contact collection. Failures are logged and converted
// into an empty collection; they are never retried.
func (l *Loader) Load(ctx context.Context) Result {
	l.mu.Lock()
	if l.done {
		res := l.res
		l.mu.Unlock()
		return res
	}
	l.mu.Unlock()

	v, _, _ := l.group.Do(loadKey, func() (any, error) {
		l.mu.Lock()
		if l.done {
			res := l.res
			l.mu.Unlock()
			return res, nil
		}
		l.mu.Unlock()

		res := l.load(ctx)

		l.mu.Lock()
		l.done = true
		l.res = res
		l.mu.Unlock()
		return res, nil
	})
	return v.(Result)
}

func (l *Loader) load(ctx context.Context) Result {
	if err := wait(ctx, l.delay); err != nil {
		return l.fail(err)
	}

	raw, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return l.fail(err)
	}

	contacts, dropped := Sanitize(raw, l.log)
	l.log.Info("contacts loaded", "count", len(contacts), "dropped", dropped)
	colors.StructuredInfo("source", "load", "success", nil, map[string]any{"count": len(contacts), "dropped": dropped})
	return Result{Contacts: contacts, Dropped: dropped}
}

func (l *Loader) fail(err error) Result {
	l.log.Error("contacts load failed", "error", err)
	colors.Debug(fmt.Sprintf("load contacts: %v", err))
	colors.StructuredError("source", "load", "failed", err, nil)
	return Result{Contacts: []domain.Contact{}, Err: err}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Sanitize drops records that fail validation and repeated IDs, keeping the
// first occurrence. It returns the kept records and how many were dropped.
func Sanitize(raw []domain.Contact, log logging.Logger) ([]domain.Contact, int) {
	if log == nil {
		log = logging.Nop()
	}
	kept := make([]domain.Contact, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))
	for i, c := range raw {
		if err := c.Validate(); err != nil {
			log.Warn("dropping invalid contact", "index", i, "id", c.ID, "error", err)
			continue
		}
		if _, dup := seen[c.ID]; dup {
			log.Warn("dropping duplicate contact", "index", i, "id", c.ID)
			continue
		}
		seen[c.ID] = struct{}{}
		kept = append(kept, c)
	}
	return kept, len(raw) - len(kept)
}
