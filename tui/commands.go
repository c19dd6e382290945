package tui

import (
	"context"
	"fmt"
	"net"
	"time"

	"pitchside/history"
	"pitchside/loader"
	"pitchside/preferences"
	"pitchside/query"
	"pitchside/types"

	tea "github.com/charmbracelet/bubbletea"
)

const probeTimeout = 3 * time.Second

// probeHost dials addr to see whether the network is reachable at all
func probeHost(ctx context.Context, addr string) error {
	if addr == "" {
		return fmt.Errorf("no host to probe")
	}
	d := net.Dialer{Timeout: probeTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}

// loadArticles runs an already issued request: it builds the url,
// checks connectivity and runs the pipeline
func loadArticles(ctx context.Context, l *loader.Loader, req loader.Request, host string, probe func(context.Context, string) error) tea.Cmd {
	return func() tea.Msg {
		req = l.Prepare(ctx, req)
		msg := ArticlesLoadedMsg{Prefs: prefsFromURL(req.URL)}

		if err := probe(ctx, host); err != nil {
			msg.Offline = true
			msg.Err = err
			msg.Result = loader.Result{
				Generation: req.Generation,
				RequestID:  req.ID,
				Articles:   []types.Article{},
			}
			return msg
		}

		msg.Result = l.Load(ctx, req)
		return msg
	}
}

// prefsFromURL recovers the preferences a request was built with
func prefsFromURL(rawURL string) preferences.Values {
	if rawURL == "" {
		return preferences.Values{}
	}
	params, err := query.ParseParams(rawURL)
	if err != nil {
		return preferences.Values{}
	}
	return preferences.Values{
		PageSize: params[preferences.KeyPageSize],
		OrderBy:  params[preferences.KeyOrderBy],
	}
}

func savePreferences(ctx context.Context, store preferences.Store, v, previous preferences.Values) tea.Cmd {
	return func() tea.Msg {
		msg := PreferencesSavedMsg{Prefs: v, Previous: previous}
		if store == nil {
			msg.Err = fmt.Errorf("no preference store configured")
			return msg
		}
		msg.Err = preferences.Save(ctx, store, v)
		return msg
	}
}

func previewArticle(ctx context.Context, p Previewer, rawURL string) tea.Cmd {
	return func() tea.Msg {
		page, err := p.Preview(ctx, rawURL)
		return PreviewLoadedMsg{URL: rawURL, Page: page, Err: err}
	}
}

func openArticle(open func(string) error, rawURL string) tea.Cmd {
	return func() tea.Msg {
		return ArticleOpenedMsg{URL: rawURL, Err: open(rawURL)}
	}
}

func lookupRead(ctx context.Context, tracker history.Tracker, gen uint64, articles []types.Article) tea.Cmd {
	urls := make([]string, len(articles))
	for i, a := range articles {
		urls[i] = a.URL
	}
	return func() tea.Msg {
		read, err := history.ReadSet(ctx, tracker, urls)
		return ReadStateMsg{Generation: gen, Read: read, Err: err}
	}
}

func markRead(ctx context.Context, tracker history.Tracker, rawURL string) tea.Cmd {
	return func() tea.Msg {
		return ArticleMarkedMsg{URL: rawURL, Err: tracker.MarkRead(ctx, rawURL)}
	}
}
