package tui

import (
	"fmt"
	"strings"

	"pitchside/extract"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")

	prefs := m.currentPrefs()
	b.WriteString(InfoStyle.Render(fmt.Sprintf("order: %s · page size: %s", prefs.OrderBy, prefs.PageSize)))
	b.WriteString("\n\n")

	if m.State == StatePreview {
		b.WriteString(BoxStyle.Render(m.viewport.View()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.listView())
	}

	if m.Err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %v", m.Err)))
		b.WriteString("\n")
	} else if m.Status != "" {
		b.WriteString(StatusStyle.Render(m.Status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder

	if m.Loading {
		b.WriteString(m.spinner.View() + " " + StatusStyle.Render(TextLoading))
		b.WriteString("\n\n")
	}

	if len(m.Articles) == 0 {
		if !m.Loading && m.EmptyMessage != "" {
			b.WriteString(InfoStyle.Render(m.EmptyMessage))
			b.WriteString("\n\n")
		}
		return b.String()
	}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		a := m.Articles[i]
		title := a.Title
		if m.width > 4 {
			title = truncate(title, m.width-4)
		}
		marker := "  "
		if m.Read[a.URL] {
			marker = "✓ "
		}
		switch {
		case i == m.Cursor:
			b.WriteString(SelectedStyle.Render("› " + marker + title))
		case m.Read[a.URL]:
			b.WriteString(InfoStyle.Render("  " + marker + title))
		default:
			b.WriteString("  " + marker + title)
		}
		b.WriteString("\n")

		meta := a.Section
		if byline := a.Byline(); byline != "" {
			meta += " · " + byline
		}
		b.WriteString(InfoStyle.Render("    " + meta))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// visibleRange keeps the cursor on screen; each article takes two lines
func (m Model) visibleRange() (int, int) {
	n := len(m.Articles)
	if m.height <= 0 {
		return 0, n
	}
	rows := max((m.height-10)/2, 1)
	if n <= rows {
		return 0, n
	}
	start := 0
	if m.Cursor >= rows {
		start = m.Cursor - rows + 1
	}
	return start, min(start+rows, n)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// formatPreview lays out extracted article text for the viewport
func formatPreview(p extract.Page, width int) string {
	var b strings.Builder
	if p.Title != "" {
		b.WriteString(SelectedStyle.Render(p.Title))
		b.WriteString("\n")
	}
	if p.Byline != "" {
		b.WriteString(InfoStyle.Render(p.Byline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	text := p.Text
	if text == "" {
		text = p.Excerpt
	}
	if width > 0 {
		text = lipgloss.NewStyle().Width(width).Render(text)
	}
	b.WriteString(text)
	return b.String()
}
