package tui

import (
	"pitchside/extract"
	"pitchside/loader"
	"pitchside/preferences"
)

// ArticlesLoadedMsg is sent when a load finishes or is abandoned for lack of connectivity
type ArticlesLoadedMsg struct {
	Result  loader.Result
	Prefs   preferences.Values
	Offline bool
	Err     error
}

// PreviewLoadedMsg carries the readable text of one article
type PreviewLoadedMsg struct {
	URL  string
	Page extract.Page
	Err  error
}

// ArticleOpenedMsg is sent after handing an article to the system browser
type ArticleOpenedMsg struct {
	URL string
	Err error
}

// PreferencesSavedMsg is sent after a preference change is persisted
type PreferencesSavedMsg struct {
	Prefs    preferences.Values
	Previous preferences.Values
	Err      error
}

// ReadStateMsg reports which articles of a load were opened before
type ReadStateMsg struct {
	Generation uint64
	Read       map[string]bool
	Err        error
}

// ArticleMarkedMsg is sent after an article is recorded in the read history
type ArticleMarkedMsg struct {
	URL string
	Err error
}
