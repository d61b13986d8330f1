package redirect

import (
	"net/url"
	"testing"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query %q: %v", raw, err)
	}
	return q
}

func TestResolve(t *testing.T) {
	cfg := Config{BaseURL: "https://www.example.com/club-login", DelaySeconds: 3}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "empty query returns base",
			query: "",
			want:  "https://www.example.com/club-login",
		},
		{
			name:  "to override with passthrough",
			query: "to=https://foo.com/x&ref=abc",
			want:  "https://foo.com/x?ref=abc",
		},
		{
			name:  "destination override",
			query: "destination=https://bar.com/welcome",
			want:  "https://bar.com/welcome",
		},
		{
			name:  "destination wins over to",
			query: "destination=https://first.com/&to=https://second.com/",
			want:  "https://first.com/",
		},
		{
			name:  "unparsable destination falls back with passthrough",
			query: "destination=not-a-url&session=99",
			want:  "https://www.example.com/club-login?session=99",
		},
		{
			name:  "relative path destination falls back",
			query: "destination=/login&next=1",
			want:  "https://www.example.com/club-login?next=1",
		},
		{
			name:  "control keys never forwarded",
			query: "destination=https://foo.com/&to=https://bar.com/&lang=en",
			want:  "https://foo.com/?lang=en",
		},
		{
			name:  "passthrough appended to target's own params",
			query: "destination=" + url.QueryEscape("https://foo.com/p?ref=keep") + "&ref=abc",
			want:  "https://foo.com/p?ref=keep&ref=abc",
		},
		{
			name:  "duplicate passthrough keys kept as repeats",
			query: "to=https://foo.com/&tag=a&tag=b",
			want:  "https://foo.com/?tag=a&tag=b",
		},
		{
			name:  "empty destination value yields to",
			query: "destination=&to=https://foo.com/y",
			want:  "https://foo.com/y",
		},
		{
			name:  "passthrough only appends to base",
			query: "ref=abc",
			want:  "https://www.example.com/club-login?ref=abc",
		},
		{
			name:  "fragment on target survives",
			query: "to=" + url.QueryEscape("https://foo.com/doc#sec2") + "&ref=abc",
			want:  "https://foo.com/doc?ref=abc#sec2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(mustQuery(t, tc.query), cfg)
			if got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestResolveFirstControlValueWins(t *testing.T) {
	cfg := DefaultConfig()
	q := url.Values{"to": {"https://first.com/", "https://second.com/"}}
	if got := Resolve(q, cfg); got != "https://first.com/" {
		t.Fatalf("expected first to value, got %q", got)
	}
}

func TestResolveUnusableBaseReturnedVerbatim(t *testing.T) {
	cfg := Config{BaseURL: "club-login"}
	q := url.Values{"destination": {"also-not-a-url"}}
	if got := Resolve(q, cfg); got != "club-login" {
		t.Fatalf("expected base returned verbatim, got %q", got)
	}
}

func TestResolveNilQuery(t *testing.T) {
	cfg := DefaultConfig()
	if got := Resolve(nil, cfg); got != cfg.BaseURL {
		t.Fatalf("expected base URL for nil query, got %q", got)
	}
}
