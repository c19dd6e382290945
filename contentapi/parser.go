package contentapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"pitchside/types"
)

// ErrMalformedDocument is returned when the response lacks the expected structure
var ErrMalformedDocument = errors.New("malformed content api document")

// authorSeparator joins contributor names
const authorSeparator = ", "

// object holds one JSON object's members by their exact key.
// encoding/json matches struct tags case-insensitively, so keys are looked up here instead.
type object map[string]json.RawMessage

// Decode converts a search response body into articles, in source order.
// An empty body yields no articles. Any structural problem, including a
// result without webTitle, sectionName or webUrl, fails the whole document.
func Decode(body string) ([]types.Article, error) {
	if strings.TrimSpace(body) == "" {
		return []types.Article{}, nil
	}

	var doc object
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	response, err := requiredObject(doc, "response")
	if err != nil {
		return nil, err
	}
	raw, ok := response["results"]
	if !ok {
		return nil, fmt.Errorf("%w: missing results array", ErrMalformedDocument)
	}
	var results []object
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("%w: results: %v", ErrMalformedDocument, err)
	}
	if results == nil {
		return nil, fmt.Errorf("%w: results is null", ErrMalformedDocument)
	}

	articles := make([]types.Article, 0, len(results))
	for i, r := range results {
		title, err := requiredString(r, "webTitle")
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		section, err := requiredString(r, "sectionName")
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		webURL, err := requiredString(r, "webUrl")
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}

		articles = append(articles, types.NewArticle(
			title,
			section,
			authorFromTags(r["tags"]),
			publishedDate(r["webPublicationDate"]),
			webURL,
		))
	}

	return articles, nil
}

func requiredObject(obj object, key string) (object, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s object", ErrMalformedDocument, key)
	}
	var out object
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, key, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s is null", ErrMalformedDocument, key)
	}
	return out, nil
}

func requiredString(obj object, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: no %s", ErrMalformedDocument, key)
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedDocument, key, err)
	}
	if s == nil {
		return "", fmt.Errorf("%w: %s is null", ErrMalformedDocument, key)
	}
	return *s, nil
}

// Parse is Decode with failures logged and converted into an empty list
func Parse(body string) []types.Article {
	return parseWith(log.Default(), body)
}

func parseWith(logger *log.Logger, body string) []types.Article {
	articles, err := Decode(body)
	if err != nil {
		logger.Printf("contentapi: parse failed: %v", err)
		return []types.Article{}
	}
	return articles
}

// authorFromTags joins contributor tag titles; any problem yields ""
func authorFromTags(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var tags []object
	if err := json.Unmarshal(raw, &tags); err != nil || len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		name, err := requiredString(t, "webTitle")
		if err != nil {
			return ""
		}
		names = append(names, name)
	}
	return strings.Join(names, authorSeparator)
}

func publishedDate(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return FormatPublishedDate(s)
}
