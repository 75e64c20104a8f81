// Package translation resolves verse text from lazily-loaded, cached
// per-translation tables. A table is loaded at most once per translation id
// (loads are single-flighted), retained for the life of the resolver, and
// never mutated after load. Translations that follow source-language
// (Masoretic) verse numbering are aligned to logical numbering on the way
// out, so parallel-text callers can iterate one verse sequence across
// differently-numbered translations.
package translation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/CedarScript/core/corpus"
	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
	"github.com/FocuswithJustin/CedarScript/core/versification"
	"github.com/FocuswithJustin/CedarScript/internal/logging"
)

// Status is the load state of one translation table.
type Status int

const (
	// StatusNotLoaded means no load has been requested.
	StatusNotLoaded Status = iota
	// StatusLoading means a load is in flight.
	StatusLoading
	// StatusLoaded means the table is cached and resolvable.
	StatusLoaded
	// StatusFailed means the last load failed; the failure is sticky until
	// Retry is called.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotLoaded:
		return "not-loaded"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loader retrieves a translation's verse table. Loading is the resolver's
// sole blocking operation; the context carries the load timeout.
type Loader interface {
	Load(ctx context.Context, translationID string) (*corpus.Table, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, translationID string) (*corpus.Table, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, translationID string) (*corpus.Table, error) {
	return f(ctx, translationID)
}

// Config contains resolver configuration options.
type Config struct {
	// LoadTimeout bounds one table load. Zero means DefaultLoadTimeout.
	LoadTimeout time.Duration

	// SourceNumbered lists translation ids whose own tables follow
	// source-language (Masoretic) verse numbering and need alignment.
	SourceNumbered []string
}

// DefaultLoadTimeout bounds a translation table load when the config does
// not say otherwise.
const DefaultLoadTimeout = 30 * time.Second

// DefaultConfig returns a default resolver configuration. The default
// allow-list covers the Hebrew original-language corpora shipped with the
// data set.
func DefaultConfig() Config {
	return Config{
		LoadTimeout:    DefaultLoadTimeout,
		SourceNumbered: []string{"wlc", "bhs", "masoretic"},
	}
}

// Verse is one resolved verse.
type Verse struct {
	// Text is the verse text under logical (destination) numbering.
	Text string
	// Superscription carries the unnumbered heading of a chapter whose
	// source numbering counts it as a verse. It is attached only to logical
	// verse 1 and only for source-numbered translations; callers that
	// ignore it see a verse sequence of unchanged length.
	Superscription string
}

// entry is the cache slot for one translation id.
type entry struct {
	status Status
	table  *corpus.Table
	err    error
	done   chan struct{}
}

// Resolver caches translation tables and resolves verses against them.
// It is safe for concurrent use. The cache is unbounded: the universe of
// translations is small and tables are retained for the session lifetime.
type Resolver struct {
	loader         Loader
	timeout        time.Duration
	sourceNumbered map[string]bool

	mu      sync.Mutex
	entries map[string]*entry
}

// NewResolver creates a resolver backed by the given loader.
func NewResolver(loader Loader, cfg Config) *Resolver {
	timeout := cfg.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	allow := make(map[string]bool, len(cfg.SourceNumbered))
	for _, id := range cfg.SourceNumbered {
		allow[strings.ToLower(id)] = true
	}
	return &Resolver{
		loader:         loader,
		timeout:        timeout,
		sourceNumbered: allow,
		entries:        make(map[string]*entry),
	}
}

// ResolveVerse resolves the text of a logical verse from a translation.
//
// If the translation's table is cached, the verse is resolved directly,
// applying the versification offset for source-numbered translations. If it
// is not cached, a load is started (at most one per translation id) and a
// NotLoadedError is returned; callers re-invoke after the load resolves. A
// failed load is sticky: every call returns the LoadError until Retry.
func (r *Resolver) ResolveVerse(translationID, book string, chapter, verse int) (Verse, error) {
	if translationID == "" || book == "" || chapter < 1 || verse < 1 {
		return Verse{}, cerrors.NewVerseNotFound(translationID, book, chapter, verse)
	}

	r.mu.Lock()
	e, ok := r.entries[translationID]
	if !ok {
		e = r.startLoadLocked(translationID)
	}
	status := e.status
	table := e.table
	loadErr := e.err
	r.mu.Unlock()

	switch status {
	case StatusLoading:
		return Verse{}, cerrors.NewNotLoaded(translationID, true)
	case StatusFailed:
		return Verse{}, loadErr
	case StatusLoaded:
		return r.resolveFromTable(table, translationID, book, chapter, verse)
	default:
		return Verse{}, cerrors.NewNotLoaded(translationID, false)
	}
}

// resolveFromTable maps a logical verse into the table's own numbering and
// reads it.
func (r *Resolver) resolveFromTable(table *corpus.Table, translationID, book string, chapter, verse int) (Verse, error) {
	physical := verse
	superscription := ""

	if r.sourceNumbered[strings.ToLower(translationID)] {
		offset := r.chapterOffset(table, book, chapter)
		physical = versification.ResolveSourceVerse(verse, offset)
		if offset > 0 && verse == 1 {
			superscription = headingText(table, book, chapter, offset)
		}
	}

	text, ok := table.Verse(book, chapter, physical)
	if !ok {
		return Verse{}, cerrors.NewVerseNotFound(translationID, book, chapter, verse)
	}
	return Verse{Text: text, Superscription: superscription}, nil
}

// chapterOffset derives the superscription offset for a chapter of a
// source-numbered table by comparing the table's own verse count with the
// destination-numbering count. Books without tabulated destination counts
// fail open at offset 0.
func (r *Resolver) chapterOffset(table *corpus.Table, book string, chapter int) int {
	destCount, ok := versification.EnglishVerseCount(book, chapter)
	if !ok {
		return 0
	}
	sourceCount := table.VerseCount(book, chapter)
	return versification.ComputeOffset(book, chapter, sourceCount, destCount)
}

// headingText joins the physical superscription verses (1..offset).
func headingText(table *corpus.Table, book string, chapter, offset int) string {
	parts := make([]string, 0, offset)
	for v := 1; v <= offset; v++ {
		if text, ok := table.Verse(book, chapter, v); ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Superscription returns the unnumbered heading of a chapter for a
// source-numbered translation, or "" when the chapter has none, the table
// is not loaded, or the translation follows destination numbering.
func (r *Resolver) Superscription(translationID, book string, chapter int) string {
	r.mu.Lock()
	e, ok := r.entries[translationID]
	var table *corpus.Table
	if ok && e.status == StatusLoaded {
		table = e.table
	}
	r.mu.Unlock()
	if table == nil || !r.sourceNumbered[strings.ToLower(translationID)] {
		return ""
	}
	offset := r.chapterOffset(table, book, chapter)
	if offset == 0 {
		return ""
	}
	return headingText(table, book, chapter, offset)
}

// Status reports the load state of a translation.
func (r *Resolver) Status(translationID string) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[translationID]
	if !ok {
		return StatusNotLoaded
	}
	return e.status
}

// Preload ensures a load has been started for a translation without
// resolving anything.
func (r *Resolver) Preload(translationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[translationID]; !ok {
		r.startLoadLocked(translationID)
	}
}

// Retry clears a failed load and starts a new one. It reports whether a
// load was started; loads that are in flight or already succeeded are left
// alone.
func (r *Resolver) Retry(translationID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[translationID]
	if ok && e.status != StatusFailed {
		return false
	}
	r.startLoadLocked(translationID)
	return true
}

// WaitLoaded blocks until the translation's current load settles or ctx is
// done. It starts a load if none has been requested. The returned error is
// the sticky load error, if any; waiting does not own or cancel the load.
func (r *Resolver) WaitLoaded(ctx context.Context, translationID string) error {
	r.mu.Lock()
	e, ok := r.entries[translationID]
	if !ok {
		e = r.startLoadLocked(translationID)
	}
	done := e.done
	r.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[translationID].err
}

// startLoadLocked installs a Loading entry for the id and launches the
// load. Callers must hold r.mu; the one-entry-per-id invariant under the
// lock is what single-flights concurrent requests.
func (r *Resolver) startLoadLocked(translationID string) *entry {
	e := &entry{
		status: StatusLoading,
		done:   make(chan struct{}),
	}
	r.entries[translationID] = e

	jobID := uuid.NewString()
	logging.TranslationLoad("start", translationID, jobID)
	go r.load(translationID, jobID, e)
	return e
}

// load runs one table load to completion and publishes the result. The
// load is not owned by any caller: it runs on a detached context so a
// requester's teardown cannot abandon a table other callers will reuse.
func (r *Resolver) load(translationID, jobID string, e *entry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	table, err := r.loader.Load(ctx, translationID)

	r.mu.Lock()
	if err != nil {
		e.status = StatusFailed
		e.err = cerrors.NewLoad(translationID, err)
		logging.TranslationLoadError(translationID, jobID, err, "duration_ms", time.Since(start).Milliseconds())
	} else {
		e.status = StatusLoaded
		e.table = table
		e.err = nil
		logging.TranslationLoad("loaded", translationID, jobID,
			"verses", table.VerseTotal(),
			"checksum", table.Checksum,
			"duration_ms", time.Since(start).Milliseconds())
	}
	r.mu.Unlock()
	close(e.done)
}
