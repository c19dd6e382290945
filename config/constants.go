package config

import "time"

// Content API Constants
const (
	// DefaultBaseURL is the search endpoint of the content API
	DefaultBaseURL = "https://content.guardianapis.com/search"

	// DefaultAPIKey is the public developer key accepted by the content API
	DefaultAPIKey = "test"

	// DefaultSection restricts results to one section
	DefaultSection = "football"

	// DefaultFromDate is the oldest publication date requested
	DefaultFromDate = "2018-06-20"

	// DefaultShowTags asks the API to embed contributor tags (used for the author)
	DefaultShowTags = "contributor"

	// DefaultQuery is the free-text search term
	DefaultQuery = "football"

	// FromDateLayout is the accepted format of the from-date parameter
	FromDateLayout = "2006-01-02"
)

// Query Parameter Keys
const (
	ParamSection  = "section"
	ParamOrderBy  = "order-by"
	ParamFromDate = "from-date"
	ParamShowTags = "show-tags"
	ParamPageSize = "page-size"
	ParamQuery    = "q"
	ParamAPIKey   = "api-key"
)

// Network Constants
const (
	// ConnectTimeout bounds establishing the TCP/TLS connection
	ConnectTimeout = 15 * time.Second

	// ReadTimeout bounds every individual read from the connection
	ReadTimeout = 10 * time.Second
)

// Preference Storage Constants
const (
	// DefaultRedisAddr is used when REDIS_ADDR is unset
	DefaultRedisAddr = "localhost:6379"

	// DefaultPreferencesKey is the Redis hash holding user preferences
	DefaultPreferencesKey = "pitchside:preferences"

	// DefaultHistoryKey is the Redis set of read article hashes
	DefaultHistoryKey = "pitchside:read"

	// DefaultHistoryTTL expires the read set after this long without a new entry
	DefaultHistoryTTL = 30 * 24 * time.Hour
)

// Server Constants
const (
	DefaultPort = "8080"
)
