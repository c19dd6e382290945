package contentapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleBody = `{"response":{"results":[{"webTitle":"A","sectionName":"Football","webUrl":"http://x","webPublicationDate":"2018-06-20T10:00:00Z","tags":[{"webTitle":"J. Doe"}]}]}}`

func quietClient(opts ...Option) (*Client, *bytes.Buffer) {
	var buf bytes.Buffer
	opts = append([]Option{WithLogger(log.New(&buf, "", 0))}, opts...)
	return NewClient(opts...), &buf
}

func TestFetchSuccess(t *testing.T) {
	var gotMethod, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleBody)
	}))
	defer srv.Close()

	c, _ := quietClient()
	body, err := c.Fetch(context.Background(), srv.URL+"/search?q=football")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if body != sampleBody {
		t.Fatalf("Fetch() body = %q", body)
	}
	if gotMethod != http.MethodGet || gotQuery != "q=football" {
		t.Fatalf("server saw %s ?%s", gotMethod, gotQuery)
	}
}

func TestFetchNonOK(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, logs := quietClient()
	_, err := c.Fetch(context.Background(), srv.URL)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusUnauthorized {
		t.Fatalf("Fetch() error = %v; want *StatusError 401", err)
	}

	got := c.FetchArticles(context.Background(), srv.URL)
	if got == nil || len(got) != 0 {
		t.Fatalf("FetchArticles() = %#v; want empty non-nil slice", got)
	}
	if calls != 2 {
		t.Fatalf("server called %d times; want 2 (no retries)", calls)
	}
	if !strings.Contains(logs.String(), "401") {
		t.Fatalf("failure not logged: %q", logs.String())
	}
}

func TestFetchInvalidURL(t *testing.T) {
	c, _ := quietClient()
	for _, raw := range []string{"", "not a url", "ftp://example.com/x", "http://%zz", "/search"} {
		if _, err := c.Fetch(context.Background(), raw); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Fetch(%q) error = %v; want ErrInvalidURL", raw, err)
		}
		if got := c.FetchArticles(context.Background(), raw); got == nil || len(got) != 0 {
			t.Errorf("FetchArticles(%q) = %#v; want empty", raw, got)
		}
	}
}

func TestFetchArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, sampleBody)
	}))
	defer srv.Close()

	c, _ := quietClient()
	got := c.FetchArticles(context.Background(), srv.URL)
	if len(got) != 1 || got[0].Title != "A" || got[0].Author != "J. Doe" || got[0].PublishedDate != "20 Jun 2018" {
		t.Fatalf("FetchArticles() = %+v", got)
	}
}

func TestFetchArticlesMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"response":{}}`)
	}))
	defer srv.Close()

	c, logs := quietClient()
	if got := c.FetchArticles(context.Background(), srv.URL); got == nil || len(got) != 0 {
		t.Fatalf("FetchArticles() = %#v; want empty non-nil slice", got)
	}
	if !strings.Contains(logs.String(), "parse failed") {
		t.Fatalf("parse failure not logged: %q", logs.String())
	}
}

func TestFetchReadTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	hc := &http.Client{Transport: newTransport(time.Second, 50*time.Millisecond)}
	c, _ := quietClient(WithHTTPClient(hc))

	start := time.Now()
	if _, err := c.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Fetch() took %v; read timeout not applied", elapsed)
	}
}
