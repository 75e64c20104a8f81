package translation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FocuswithJustin/CedarScript/core/corpus"
	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// psalm23Source builds a Masoretic-numbered Psalm 23: seven physical verses,
// the first being the superscription.
func psalm23Source() *corpus.Table {
	t := corpus.NewTable("wlc")
	t.AddVerse("Psalms", 23, 1, "מזמור לדוד")
	t.AddVerse("Psalms", 23, 2, "יהוה רעי לא אחסר")
	t.AddVerse("Psalms", 23, 3, "בנאות דשא ירביצני")
	t.AddVerse("Psalms", 23, 4, "נפשי ישובב")
	t.AddVerse("Psalms", 23, 5, "גם כי אלך")
	t.AddVerse("Psalms", 23, 6, "תערך לפני שלחן")
	t.AddVerse("Psalms", 23, 7, "אך טוב וחסד")
	return t
}

// psalm23English builds an English-numbered Psalm 23 with six verses.
func psalm23English() *corpus.Table {
	t := corpus.NewTable("kjv")
	t.AddVerse("Psalms", 23, 1, "The LORD is my shepherd; I shall not want.")
	t.AddVerse("Psalms", 23, 2, "He maketh me to lie down in green pastures.")
	t.AddVerse("Psalms", 23, 3, "He restoreth my soul.")
	t.AddVerse("Psalms", 23, 4, "Yea, though I walk through the valley.")
	t.AddVerse("Psalms", 23, 5, "Thou preparest a table before me.")
	t.AddVerse("Psalms", 23, 6, "Surely goodness and mercy shall follow me.")
	return t
}

// tableLoader serves canned tables and counts invocations.
type tableLoader struct {
	mu     sync.Mutex
	tables map[string]*corpus.Table
	errs   map[string]error
	calls  atomic.Int64
	gate   chan struct{} // if non-nil, Load blocks until closed
}

func (l *tableLoader) Load(ctx context.Context, id string) (*corpus.Table, error) {
	l.calls.Add(1)
	if l.gate != nil {
		select {
		case <-l.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.errs[id]; ok {
		return nil, err
	}
	if table, ok := l.tables[id]; ok {
		return table, nil
	}
	return nil, errors.New("no such translation")
}

func newTestResolver(t *testing.T, loader Loader) *Resolver {
	t.Helper()
	return NewResolver(loader, Config{
		LoadTimeout:    5 * time.Second,
		SourceNumbered: []string{"wlc"},
	})
}

func waitLoaded(t *testing.T, r *Resolver, id string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.WaitLoaded(ctx, id); err != nil {
		t.Fatalf("WaitLoaded(%s): %v", id, err)
	}
}

func TestResolveVerseLazyLoad(t *testing.T) {
	loader := &tableLoader{tables: map[string]*corpus.Table{"kjv": psalm23English()}}
	r := newTestResolver(t, loader)

	// First call misses the cache, starts a load, and reports NotLoaded.
	_, err := r.ResolveVerse("kjv", "Psalms", 23, 1)
	if !errors.Is(err, cerrors.ErrNotLoaded) {
		t.Fatalf("first call error = %v, want ErrNotLoaded", err)
	}

	waitLoaded(t, r, "kjv")
	if got := r.Status("kjv"); got != StatusLoaded {
		t.Fatalf("Status = %v, want loaded", got)
	}

	// Re-invoking after the load resolves succeeds.
	v, err := r.ResolveVerse("kjv", "Psalms", 23, 1)
	if err != nil {
		t.Fatalf("ResolveVerse after load: %v", err)
	}
	if v.Text != "The LORD is my shepherd; I shall not want." {
		t.Errorf("Text = %q", v.Text)
	}
	if v.Superscription != "" {
		t.Errorf("Superscription = %q, want empty for default numbering", v.Superscription)
	}
}

func TestResolveVerseSourceNumberedOffset(t *testing.T) {
	loader := &tableLoader{tables: map[string]*corpus.Table{
		"wlc": psalm23Source(),
		"kjv": psalm23English(),
	}}
	r := newTestResolver(t, loader)

	r.Preload("wlc")
	r.Preload("kjv")
	waitLoaded(t, r, "wlc")
	waitLoaded(t, r, "kjv")

	// Logical Psalm 23:1 resolves to the source table's physical verse 2,
	// while the default-numbering translation resolves its own verse 1.
	src, err := r.ResolveVerse("wlc", "Psalms", 23, 1)
	if err != nil {
		t.Fatalf("ResolveVerse(wlc): %v", err)
	}
	if src.Text != "יהוה רעי לא אחסר" {
		t.Errorf("wlc 23:1 = %q, want physical verse 2", src.Text)
	}
	if src.Superscription != "מזמור לדוד" {
		t.Errorf("Superscription = %q, want the heading verse", src.Superscription)
	}

	dst, err := r.ResolveVerse("kjv", "Psalms", 23, 1)
	if err != nil {
		t.Fatalf("ResolveVerse(kjv): %v", err)
	}
	if dst.Text != "The LORD is my shepherd; I shall not want." {
		t.Errorf("kjv 23:1 = %q", dst.Text)
	}

	// The logical sequence has unchanged length: verse 6 is the last.
	if _, err := r.ResolveVerse("wlc", "Psalms", 23, 6); err != nil {
		t.Errorf("wlc 23:6: %v", err)
	}
	if _, err := r.ResolveVerse("wlc", "Psalms", 23, 7); err == nil {
		t.Error("wlc 23:7 resolved; logical numbering should end at 6")
	}

	// Superscription is attached to logical verse 1 only.
	v2, err := r.ResolveVerse("wlc", "Psalms", 23, 2)
	if err != nil {
		t.Fatalf("wlc 23:2: %v", err)
	}
	if v2.Superscription != "" {
		t.Errorf("verse 2 Superscription = %q, want empty", v2.Superscription)
	}
}

func TestSuperscription(t *testing.T) {
	loader := &tableLoader{tables: map[string]*corpus.Table{
		"wlc": psalm23Source(),
		"kjv": psalm23English(),
	}}
	r := newTestResolver(t, loader)
	r.Preload("wlc")
	r.Preload("kjv")
	waitLoaded(t, r, "wlc")
	waitLoaded(t, r, "kjv")

	if got := r.Superscription("wlc", "Psalms", 23); got != "מזמור לדוד" {
		t.Errorf("Superscription(wlc) = %q", got)
	}
	// Default-numbering translations never expose a heading.
	if got := r.Superscription("kjv", "Psalms", 23); got != "" {
		t.Errorf("Superscription(kjv) = %q, want empty", got)
	}
	// Unloaded translations report nothing rather than blocking.
	if got := r.Superscription("bhs", "Psalms", 23); got != "" {
		t.Errorf("Superscription(bhs) = %q, want empty", got)
	}
}

func TestSingleFlight(t *testing.T) {
	gate := make(chan struct{})
	loader := &tableLoader{
		tables: map[string]*corpus.Table{"kjv": psalm23English()},
		gate:   gate,
	}
	r := newTestResolver(t, loader)

	// Many concurrent requests for the same uncached translation must
	// collapse into one load.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.ResolveVerse("kjv", "Psalms", 23, 1)
			if !errors.Is(err, cerrors.ErrNotLoaded) {
				t.Errorf("concurrent call error = %v, want ErrNotLoaded", err)
			}
		}()
	}
	wg.Wait()

	if got := r.Status("kjv"); got != StatusLoading {
		t.Fatalf("Status = %v, want loading", got)
	}
	close(gate)
	waitLoaded(t, r, "kjv")

	if got := loader.calls.Load(); got != 1 {
		t.Errorf("loader invoked %d times, want 1", got)
	}
}

func TestLoadFailureIsSticky(t *testing.T) {
	loader := &tableLoader{errs: map[string]error{"esv": errors.New("corrupt document")}}
	r := newTestResolver(t, loader)

	_, err := r.ResolveVerse("esv", "Genesis", 1, 1)
	if !errors.Is(err, cerrors.ErrNotLoaded) {
		t.Fatalf("first call error = %v, want ErrNotLoaded", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.WaitLoaded(ctx, "esv"); !errors.Is(err, cerrors.ErrLoadFailed) {
		t.Fatalf("WaitLoaded error = %v, want ErrLoadFailed", err)
	}
	if got := r.Status("esv"); got != StatusFailed {
		t.Fatalf("Status = %v, want failed", got)
	}

	// Every verse of the translation fails until a retry; the failure is
	// not auto-retried.
	before := loader.calls.Load()
	for i := 0; i < 3; i++ {
		if _, err := r.ResolveVerse("esv", "Genesis", 1, 1); !errors.Is(err, cerrors.ErrLoadFailed) {
			t.Fatalf("call %d error = %v, want ErrLoadFailed", i, err)
		}
	}
	if got := loader.calls.Load(); got != before {
		t.Errorf("failed state triggered %d extra loads", got-before)
	}
}

func TestRetryAfterFailure(t *testing.T) {
	loader := &tableLoader{
		tables: map[string]*corpus.Table{},
		errs:   map[string]error{"esv": errors.New("transient outage")},
	}
	r := newTestResolver(t, loader)

	r.Preload("esv")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.WaitLoaded(ctx, "esv"); err == nil {
		t.Fatal("WaitLoaded = nil, want load failure")
	}

	// Heal the loader, then retry.
	loader.mu.Lock()
	delete(loader.errs, "esv")
	loader.tables["esv"] = psalm23English()
	loader.mu.Unlock()

	if !r.Retry("esv") {
		t.Fatal("Retry = false, want true for failed translation")
	}
	waitLoaded(t, r, "esv")

	if _, err := r.ResolveVerse("esv", "Psalms", 23, 1); err != nil {
		t.Errorf("ResolveVerse after retry: %v", err)
	}

	// Retrying a healthy translation is a no-op.
	if r.Retry("esv") {
		t.Error("Retry = true for loaded translation, want false")
	}
}

func TestLoadTimeout(t *testing.T) {
	loader := &tableLoader{gate: make(chan struct{})} // never opened
	r := NewResolver(loader, Config{LoadTimeout: 20 * time.Millisecond})

	r.Preload("slow")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.WaitLoaded(ctx, "slow")
	if !errors.Is(err, cerrors.ErrLoadFailed) {
		t.Fatalf("WaitLoaded error = %v, want ErrLoadFailed", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("timeout cause not surfaced: %v", err)
	}
}

func TestVerseNotFoundDistinctFromNotLoaded(t *testing.T) {
	loader := &tableLoader{tables: map[string]*corpus.Table{"kjv": psalm23English()}}
	r := newTestResolver(t, loader)
	r.Preload("kjv")
	waitLoaded(t, r, "kjv")

	_, err := r.ResolveVerse("kjv", "Psalms", 23, 99)
	var vnf *cerrors.VerseNotFoundError
	if !errors.As(err, &vnf) {
		t.Fatalf("error = %v, want VerseNotFoundError", err)
	}
	if errors.Is(err, cerrors.ErrNotLoaded) {
		t.Error("missing verse reported as not-loaded")
	}
}

func TestResolveVerseRejectsMalformedReference(t *testing.T) {
	loader := &tableLoader{tables: map[string]*corpus.Table{"kjv": psalm23English()}}
	r := newTestResolver(t, loader)

	for _, tc := range []struct {
		name        string
		translation string
		book        string
		chapter     int
		verse       int
	}{
		{"empty translation", "", "Psalms", 23, 1},
		{"empty book", "kjv", "", 23, 1},
		{"chapter zero", "kjv", "Psalms", 0, 1},
		{"verse zero", "kjv", "Psalms", 23, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.ResolveVerse(tc.translation, tc.book, tc.chapter, tc.verse)
			if !errors.Is(err, cerrors.ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
		})
	}

	// Malformed references never start loads.
	if got := loader.calls.Load(); got != 0 {
		t.Errorf("loader invoked %d times for malformed references", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusNotLoaded, "not-loaded"},
		{StatusLoading, "loading"},
		{StatusLoaded, "loaded"},
		{StatusFailed, "failed"},
		{Status(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
