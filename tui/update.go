package tui

import (
	"fmt"
	"log"
	"maps"

	"pitchside/preferences"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ArticlesLoadedMsg:
		return m.handleArticlesLoaded(msg)
	case PreferencesSavedMsg:
		return m.handlePreferencesSaved(msg)
	case PreviewLoadedMsg:
		return m.handlePreviewLoaded(msg)
	case ArticleOpenedMsg:
		return m.handleArticleOpened(msg)
	case ReadStateMsg:
		return m.handleReadState(msg)
	case ArticleMarkedMsg:
		if msg.Err != nil {
			log.Printf("recording %s as read: %v", msg.URL, msg.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.viewport.Width = max(msg.Width-4, 0)
	m.viewport.Height = max(msg.Height-8, 0)
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.loader.Reset(&m)
		return m, tea.Quit
	}

	if m.State == StatePreview {
		return m.handlePreviewKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(m.Articles)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if a, ok := m.Selected(); ok {
			return m, openArticle(m.open, a.URL)
		}
	case key.Matches(msg, m.keys.Preview):
		if a, ok := m.Selected(); ok {
			m.Status = TextPreviewLoading
			m.Err = nil
			return m, previewArticle(m.ctx, m.previewer, a.URL)
		}
	case key.Matches(msg, m.keys.Reload):
		return m.startLoad()
	case key.Matches(msg, m.keys.Order):
		v := m.currentPrefs()
		v.OrderBy = preferences.NextOrderBy(v.OrderBy)
		return m.changePreferences(v)
	case key.Matches(msg, m.keys.MorePage):
		v := m.currentPrefs()
		v.PageSize = preferences.StepPageSize(v.PageSize, pageSizeStep)
		return m.changePreferences(v)
	case key.Matches(msg, m.keys.LessPage):
		v := m.currentPrefs()
		v.PageSize = preferences.StepPageSize(v.PageSize, -pageSizeStep)
		return m.changePreferences(v)
	}
	return m, nil
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Preview):
		m.State = StateList
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if a, ok := m.Selected(); ok {
			return m, openArticle(m.open, a.URL)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// changePreferences shows v right away so that repeated keys build on it,
// then persists it
func (m Model) changePreferences(v preferences.Values) (tea.Model, tea.Cmd) {
	previous := m.Prefs
	m.Prefs = v
	return m, savePreferences(m.ctx, m.store, v, previous)
}

// startLoad shows the loading indicator and issues a fresh request.
// The generation is taken here so that it follows key order.
func (m Model) startLoad() (tea.Model, tea.Cmd) {
	m.Err = nil
	m.Status = ""
	load := loadArticles(m.ctx, m.loader, m.loader.Next(), m.host, m.probe)
	if m.Loading {
		return m, load
	}
	m.Loading = true
	return m, tea.Batch(load, m.spinner.Tick)
}

// handleArticlesLoaded hands a finished load to the display; stale loads are dropped
func (m Model) handleArticlesLoaded(msg ArticlesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Offline {
		if !m.loader.IsCurrent(msg.Result.Generation) {
			return m, nil
		}
		m.Loading = false
		m.Clear()
		m.SetEmptyMessage(TextNoConnection)
		m.Err = msg.Err
		return m, nil
	}

	if !m.loader.Deliver(&m, msg.Result) {
		return m, nil
	}
	m.Loading = false
	if msg.Prefs != (preferences.Values{}) {
		m.Prefs = msg.Prefs
	}
	m.Status = fmt.Sprintf("%d articles", len(m.Articles))
	if len(m.Articles) == 0 {
		return m, nil
	}
	return m, lookupRead(m.ctx, m.history, msg.Result.Generation, m.Articles)
}

func (m Model) handleReadState(msg ReadStateMsg) (tea.Model, tea.Cmd) {
	if !m.loader.IsCurrent(msg.Generation) {
		return m, nil
	}
	if msg.Err != nil {
		log.Printf("looking up read history: %v", msg.Err)
	}
	m.Read = msg.Read
	return m, nil
}

// markAsRead flags url locally and persists it to the history
func (m Model) markAsRead(url string) (Model, tea.Cmd) {
	read := maps.Clone(m.Read)
	if read == nil {
		read = map[string]bool{}
	}
	read[url] = true
	m.Read = read
	return m, markRead(m.ctx, m.history, url)
}

// handlePreferencesSaved reloads with the new preferences once they are persisted
func (m Model) handlePreferencesSaved(msg PreferencesSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if m.Prefs == msg.Prefs {
			m.Prefs = msg.Previous
		}
		m.Err = fmt.Errorf("saving preferences: %w", msg.Err)
		return m, nil
	}
	return m.startLoad()
}

func (m Model) handlePreviewLoaded(msg PreviewLoadedMsg) (tea.Model, tea.Cmd) {
	m.Status = ""
	if msg.Err != nil {
		m.Err = fmt.Errorf("preview: %w", msg.Err)
		return m, nil
	}
	if a, ok := m.Selected(); !ok || a.URL != msg.URL {
		return m, nil
	}
	m.State = StatePreview
	m.viewport.SetContent(formatPreview(msg.Page, m.viewport.Width))
	m.viewport.GotoTop()
	m, cmd := m.markAsRead(msg.URL)
	return m, cmd
}

func (m Model) handleArticleOpened(msg ArticleOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = fmt.Errorf("opening article: %w", msg.Err)
		return m, nil
	}
	m.Err = nil
	m.Status = TextOpened
	m, cmd := m.markAsRead(msg.URL)
	return m, cmd
}
