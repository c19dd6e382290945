package contentapi

import (
	"errors"
	"testing"

	"pitchside/types"
)

func TestDecodeSingleResult(t *testing.T) {
	body := `{"response":{"results":[{"webTitle":"A","sectionName":"Football","webUrl":"http://x","webPublicationDate":"2018-06-20T10:00:00Z","tags":[{"webTitle":"J. Doe"}]}]}}`

	got, err := Decode(body)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	want := types.Article{Title: "A", Section: "Football", Author: "J. Doe", PublishedDate: "20 Jun 2018", URL: "http://x"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Decode() = %+v; want [%+v]", got, want)
	}
}

func TestDecodeAuthor(t *testing.T) {
	cases := []struct {
		name string
		tags string
		want string
	}{
		{"omitted", ``, ""},
		{"empty", `,"tags":[]`, ""},
		{"one", `,"tags":[{"webTitle":"J. Doe"}]`, "J. Doe"},
		{"two", `,"tags":[{"webTitle":"A"},{"webTitle":"B"}]`, "A, B"},
		{"not an array", `,"tags":{"webTitle":"A"}`, ""},
		{"tag without title", `,"tags":[{"webTitle":"A"},{"id":"profile/b"}]`, ""},
		{"null", `,"tags":null`, ""},
		{"wrong-case key", `,"TAGS":[{"webTitle":"Z"}]`, ""},
		{"wrong-case title", `,"tags":[{"WEBTITLE":"Z"}]`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := `{"response":{"results":[{"webTitle":"T","sectionName":"S","webUrl":"http://x"` + c.tags + `}]}}`
			got, err := Decode(body)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("got %d articles; want 1", len(got))
			}
			if got[0].Author != c.want {
				t.Fatalf("Author = %q; want %q", got[0].Author, c.want)
			}
		})
	}
}

func TestDecodeFieldFailuresStayLocal(t *testing.T) {
	body := `{"response":{"results":[
		{"webTitle":"one","sectionName":"S","webUrl":"http://1","webPublicationDate":"yesterday","tags":[{"webTitle":"A"}]},
		{"webTitle":"two","sectionName":"S","webUrl":"http://2","webPublicationDate":"2019-01-05T08:30:00Z","tags":"bad"},
		{"webTitle":"three","sectionName":"S","webUrl":"http://3","webPublicationDate":42}
	]}}`

	got, err := Decode(body)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	want := []types.Article{
		{Title: "one", Section: "S", Author: "A", PublishedDate: "", URL: "http://1"},
		{Title: "two", Section: "S", Author: "", PublishedDate: "05 Jan 2019", URL: "http://2"},
		{Title: "three", Section: "S", Author: "", PublishedDate: "", URL: "http://3"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d articles; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("article %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":            `<html>`,
		"array":               `[]`,
		"null":                `null`,
		"missing response":    `{"status":"ok"}`,
		"response scalar":     `{"response":"ok"}`,
		"missing results":     `{"response":{"total":0}}`,
		"results object":      `{"response":{"results":{}}}`,
		"element scalar":      `{"response":{"results":["x"]}}`,
		"missing title":       `{"response":{"results":[{"sectionName":"S","webUrl":"http://x"}]}}`,
		"missing section":     `{"response":{"results":[{"webTitle":"T","webUrl":"http://x"}]}}`,
		"missing url":         `{"response":{"results":[{"webTitle":"T","sectionName":"S"}]}}`,
		"null title":          `{"response":{"results":[{"webTitle":null,"sectionName":"S","webUrl":"http://x"}]}}`,
		"numeric section":     `{"response":{"results":[{"webTitle":"T","sectionName":7,"webUrl":"http://x"}]}}`,
		"second bad record":   `{"response":{"results":[{"webTitle":"T","sectionName":"S","webUrl":"http://x"},{"webTitle":"U"}]}}`,
		"null response":       `{"response":null}`,
		"null results":        `{"response":{"results":null}}`,
		"wrong-case response": `{"Response":{"results":[{"webTitle":"T","sectionName":"S","webUrl":"http://x"}]}}`,
		"wrong-case results":  `{"response":{"RESULTS":[{"webTitle":"T","sectionName":"S","webUrl":"http://x"}]}}`,
		"wrong-case title":    `{"response":{"results":[{"WEBTITLE":"T","sectionName":"S","webUrl":"http://x"}]}}`,
		"wrong-case section":  `{"response":{"results":[{"webTitle":"T","SectionName":"S","webUrl":"http://x"}]}}`,
		"wrong-case url":      `{"response":{"results":[{"webTitle":"T","sectionName":"S","WebURL":"http://x"}]}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(body)
			if !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("Decode() error = %v; want ErrMalformedDocument", err)
			}
			if got != nil {
				t.Fatalf("Decode() returned partial list %+v", got)
			}
			if parsed := Parse(body); parsed == nil || len(parsed) != 0 {
				t.Fatalf("Parse() = %#v; want empty non-nil slice", parsed)
			}
		})
	}
}

func TestParseEmptyBody(t *testing.T) {
	for _, body := range []string{"", "   \n"} {
		got := Parse(body)
		if got == nil || len(got) != 0 {
			t.Fatalf("Parse(%q) = %#v; want empty non-nil slice", body, got)
		}
	}
}

func TestParseKeepsSourceOrder(t *testing.T) {
	body := `{"response":{"results":[
		{"webTitle":"first","sectionName":"S","webUrl":"http://1"},
		{"webTitle":"second","sectionName":"S","webUrl":"http://2"},
		{"webTitle":"third","sectionName":"S","webUrl":"http://3"}
	]}}`

	got := Parse(body)
	titles := []string{"first", "second", "third"}
	if len(got) != len(titles) {
		t.Fatalf("got %d articles; want %d", len(got), len(titles))
	}
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("article %d title = %q; want %q", i, got[i].Title, title)
		}
	}
}

func TestFormatPublishedDate(t *testing.T) {
	cases := map[string]string{
		"2018-06-20T10:00:00Z":      "20 Jun 2018",
		"2021-12-01T23:59:59Z":      "01 Dec 2021",
		"":                          "",
		"2018-06-20":                "",
		"2018-06-20T10:00:00+01:00": "",
		"2018-06-20T10:00:00.5Z":    "",
		"2018-13-20T10:00:00Z":      "",
		"20 Jun 2018":               "",
	}
	for in, want := range cases {
		if got := FormatPublishedDate(in); got != want {
			t.Errorf("FormatPublishedDate(%q) = %q; want %q", in, got, want)
		}
	}
}
