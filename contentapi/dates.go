package contentapi

import (
	"regexp"
	"time"
)

const (
	publicationLayout = "2006-01-02T15:04:05Z"
	displayLayout     = "02 Jan 2006"
)

// time.Parse tolerates fractional seconds after the seconds field, the pattern does not
var publicationPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// FormatPublishedDate renders a UTC publication timestamp as "02 Jan 2006".
// Anything that is not exactly yyyy-mm-ddThh:mm:ssZ yields "".
func FormatPublishedDate(raw string) string {
	if !publicationPattern.MatchString(raw) {
		return ""
	}
	t, err := time.Parse(publicationLayout, raw)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}
