package open

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"tableflip.dev/detour/pkg/browser"
	"tableflip.dev/detour/pkg/countdown"
	"tableflip.dev/detour/pkg/printers"
	"tableflip.dev/detour/pkg/redirect"
	"tableflip.dev/detour/pkg/store"
	openui "tableflip.dev/detour/pkg/tui/open"
)

// Open runs the countdown redirect for a single target.
type Open struct {
	// Raw is the positional argument: a query string (to=...&ref=...),
	// an absolute URL, or the name of a saved destination.
	Raw   string
	Now   bool
	Print bool

	Config      redirect.Config
	Persistence store.Persistence
	Navigator   browser.Navigator
}

func (o *Open) Do(ctx context.Context) error {
	query, err := o.buildQuery(ctx)
	if err != nil {
		return err
	}

	if o.Print {
		pp := printers.PrettyPrint{}
		pp.URL(redirect.Resolve(query, o.Config))
		return nil
	}

	cfg := o.Config
	if o.Now {
		cfg.DelaySeconds = 0
	}

	nav := o.Navigator
	if nav == nil {
		nav = browser.System()
	}

	return openui.Run(countdown.New(query, cfg), nav)
}

// buildQuery turns the raw argument into the query the resolver consumes.
// An absolute URL becomes the destination override; anything with a '='
// is parsed as a query string; a bare word is looked up in the store.
func (o *Open) buildQuery(ctx context.Context) (url.Values, error) {
	raw := strings.TrimSpace(o.Raw)
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return url.Values{}, nil
	}

	if u, err := url.Parse(raw); err == nil && u.IsAbs() && u.Host != "" {
		return url.Values{"destination": {raw}}, nil
	}

	if strings.Contains(raw, "=") {
		q, err := url.ParseQuery(raw)
		if err != nil {
			return nil, fmt.Errorf("parse query %q: %w", raw, err)
		}
		return q, nil
	}

	if o.Persistence != nil {
		d, err := o.Persistence.Get(ctx, raw)
		if err == nil {
			return url.Values{"destination": {d.URL}}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("no saved destination named %q", raw)
}
