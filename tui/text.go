package tui

// UI Text Constants
const (
	TextTitle          = "⚽ Pitchside"
	TextLoading        = "Loading articles..."
	TextNoConnection   = "No internet connection."
	TextPreviewLoading = "Fetching article text..."
	TextOpened         = "Opened in browser"

	// pageSizeStep is how far +/- move the page size
	pageSizeStep = 5
)
