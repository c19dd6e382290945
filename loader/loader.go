package loader

import (
	"context"
	"log"
	"sync/atomic"

	"pitchside/preferences"
	"pitchside/query"
	"pitchside/types"

	"github.com/google/uuid"
)

// EmptyMessage is shown by the display when a load produced no articles
const EmptyMessage = "No articles available."

// Fetcher runs the fetch-and-parse pipeline for one URL
type Fetcher interface {
	FetchArticles(ctx context.Context, rawURL string) []types.Article
}

// Display receives finished article lists. All calls happen on the
// goroutine that owns the display.
type Display interface {
	SetItems(articles []types.Article)
	Clear()
	SetEmptyMessage(msg string)
}

// Request is one issued load
type Request struct {
	Generation uint64
	ID         string
	URL        string
}

// Result is the outcome of a Request. Articles is never nil.
type Result struct {
	Generation uint64
	RequestID  string
	Articles   []types.Article
}

// Loader issues loads and decides which completions reach the display
type Loader struct {
	builder    *query.Builder
	prefs      preferences.Store
	fetcher    Fetcher
	generation atomic.Uint64
}

// New creates a loader that reads preferences from prefs on every request
func New(builder *query.Builder, prefs preferences.Store, fetcher Fetcher) *Loader {
	return &Loader{
		builder: builder,
		prefs:   prefs,
		fetcher: fetcher,
	}
}

// Begin issues a new request, superseding any request still in flight
func (l *Loader) Begin(ctx context.Context) Request {
	return l.Prepare(ctx, l.Next())
}

// Next reserves the next generation without touching the preference store.
// The display goroutine calls it so that issue order matches generation order.
func (l *Loader) Next() Request {
	return Request{
		Generation: l.generation.Add(1),
		ID:         uuid.NewString(),
	}
}

// Prepare fills in the request URL from the stored preferences.
// A URL that cannot be built leaves req.URL empty.
func (l *Loader) Prepare(ctx context.Context, req Request) Request {
	values := preferences.Resolve(ctx, l.prefs)
	rawURL, err := l.builder.Build(values)
	if err != nil {
		log.Printf("[load %s] building request url: %v", req.ID, err)
		return req
	}
	req.URL = rawURL
	return req
}

// Load runs the request to completion. It blocks and must not be called
// from the display goroutine.
func (l *Loader) Load(ctx context.Context, req Request) Result {
	res := Result{
		Generation: req.Generation,
		RequestID:  req.ID,
		Articles:   []types.Article{},
	}
	if req.URL == "" {
		return res
	}

	if articles := l.fetcher.FetchArticles(ctx, req.URL); articles != nil {
		res.Articles = articles
	}
	log.Printf("[load %s] generation %d finished with %d articles", req.ID, req.Generation, len(res.Articles))
	return res
}

// Current returns the generation of the most recently issued request
func (l *Loader) Current() uint64 {
	return l.generation.Load()
}

// IsCurrent reports whether gen belongs to the most recently issued request
func (l *Loader) IsCurrent(gen uint64) bool {
	return gen == l.generation.Load()
}

// Deliver replaces the display contents with res. Results from superseded
// requests are dropped and Deliver returns false.
func (l *Loader) Deliver(d Display, res Result) bool {
	if !l.IsCurrent(res.Generation) {
		log.Printf("[load %s] dropping stale generation %d (current %d)", res.RequestID, res.Generation, l.Current())
		return false
	}

	d.Clear()
	d.SetEmptyMessage(EmptyMessage)
	if len(res.Articles) > 0 {
		d.SetItems(res.Articles)
	}
	return true
}

// Reset clears the display when the load is torn down
func (l *Loader) Reset(d Display) {
	d.Clear()
}
