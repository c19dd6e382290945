package types

import (
	"encoding/json"
	"testing"
)

func TestByline(t *testing.T) {
	cases := []struct {
		name   string
		author string
		date   string
		want   string
	}{
		{"both", "J. Doe", "20 Jun 2018", "J. Doe · 20 Jun 2018"},
		{"author only", "J. Doe", "", "J. Doe"},
		{"date only", "", "20 Jun 2018", "20 Jun 2018"},
		{"neither", "", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewArticle("A", "Football", c.author, c.date, "http://x")
			if got := a.Byline(); got != c.want {
				t.Fatalf("Byline() = %q; want %q", got, c.want)
			}
		})
	}
}

func TestNewArticleListEncodesEmptyArray(t *testing.T) {
	b, err := json.Marshal(NewArticleList(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"count":0,"articles":[]}` {
		t.Fatalf("unexpected encoding: %s", b)
	}
}
