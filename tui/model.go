package tui

import (
	"context"

	"pitchside/browser"
	"pitchside/extract"
	"pitchside/history"
	"pitchside/loader"
	"pitchside/preferences"
	"pitchside/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents which pane is in front
type State string

const (
	StateList    State = "list"
	StatePreview State = "preview"
)

// Previewer extracts readable text from an article page
type Previewer interface {
	Preview(ctx context.Context, rawURL string) (extract.Page, error)
}

// Options wires the model to its collaborators. Zero fields get defaults.
type Options struct {
	Loader    *loader.Loader
	Store     preferences.Store
	Host      string
	Probe     func(ctx context.Context, addr string) error
	Previewer Previewer
	History   history.Tracker
	Open      func(rawURL string) error
}

// Model is the article list screen
type Model struct {
	ctx       context.Context
	loader    *loader.Loader
	store     preferences.Store
	host      string
	probe     func(ctx context.Context, addr string) error
	previewer Previewer
	history   history.Tracker
	open      func(rawURL string) error

	State        State
	Loading      bool
	Articles     []types.Article
	EmptyMessage string
	Cursor       int
	Read         map[string]bool
	Prefs        preferences.Values
	Status       string
	Err          error

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

// NewModel creates the list screen in the loading state; Init issues the first load.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Probe == nil {
		opts.Probe = probeHost
	}
	if opts.Previewer == nil {
		opts.Previewer = extract.New()
	}
	if opts.History == nil {
		opts.History = history.NewMemoryTracker()
	}
	if opts.Open == nil {
		opts.Open = browser.Open
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StatusStyle

	return Model{
		ctx:       ctx,
		loader:    opts.Loader,
		store:     opts.Store,
		host:      opts.Host,
		probe:     opts.Probe,
		previewer: opts.Previewer,
		history:   opts.History,
		open:      opts.Open,
		State:     StateList,
		Loading:   true,
		Articles:  []types.Article{},
		Read:      map[string]bool{},
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		viewport:  viewport.New(0, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadArticles(m.ctx, m.loader, m.loader.Next(), m.host, m.probe),
		m.spinner.Tick,
	)
}

// SetItems implements loader.Display
func (m *Model) SetItems(articles []types.Article) {
	m.Articles = articles
	if m.Cursor >= len(m.Articles) {
		m.Cursor = 0
	}
}

// Clear implements loader.Display
func (m *Model) Clear() {
	m.Articles = []types.Article{}
	m.Cursor = 0
}

// SetEmptyMessage implements loader.Display
func (m *Model) SetEmptyMessage(msg string) {
	m.EmptyMessage = msg
}

// Selected returns the article under the cursor
func (m Model) Selected() (types.Article, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Articles) {
		return types.Article{}, false
	}
	return m.Articles[m.Cursor], true
}

// currentPrefs returns the preferences of the last load, with defaults filled in
func (m Model) currentPrefs() preferences.Values {
	v := m.Prefs
	if v.PageSize == "" {
		v.PageSize = preferences.DefaultPageSize
	}
	if v.OrderBy == "" {
		v.OrderBy = preferences.DefaultOrderBy
	}
	return v
}
