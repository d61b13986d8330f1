// Package redirect computes the final URL a countdown navigates to.
package redirect

import (
	"fmt"
	"net/url"
	"os"
)

// destinationKey and toKey select the redirect target; they are consumed
// here and never forwarded to the target URL.
const (
	destinationKey = "destination"
	toKey          = "to"
)

// Resolve computes the redirect target for the given query.
//
// The first destination value wins, then the first to value, then
// cfg.BaseURL. Every other parameter is forwarded to the target, appended
// after any same-named parameter the target already carries. Resolve never
// fails: an unusable target degrades to cfg.BaseURL, and an unusable base
// is returned verbatim.
func Resolve(query url.Values, cfg Config) string {
	target := firstValue(query, destinationKey)
	if target == "" {
		target = firstValue(query, toKey)
	}
	if target == "" {
		target = cfg.BaseURL
	}

	u, err := parseAbsolute(target)
	if err != nil {
		if target != cfg.BaseURL {
			fmt.Fprintf(os.Stderr, "redirect: unusable target %q, falling back: %v\n", target, err)
		}
		if u, err = parseAbsolute(cfg.BaseURL); err != nil {
			fmt.Fprintf(os.Stderr, "redirect: unusable base %q: %v\n", cfg.BaseURL, err)
			return cfg.BaseURL
		}
	}

	q := u.Query()
	passthrough := false
	for key, values := range query {
		if key == destinationKey || key == toKey {
			continue
		}
		for _, v := range values {
			q.Add(key, v)
			passthrough = true
		}
	}
	if passthrough {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// firstValue mirrors the first-match lookup of the control keys; an empty
// value counts as absent so the next candidate gets a chance.
func firstValue(query url.Values, key string) string {
	for _, v := range query[key] {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("not an absolute URL: %q", raw)
	}
	return u, nil
}
