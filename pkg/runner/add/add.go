package add

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"tableflip.dev/detour/pkg/dest"
	"tableflip.dev/detour/pkg/printers"
	"tableflip.dev/detour/pkg/store"
)

type Add struct {
	Name  string
	URL   string
	Notes string

	Persistence store.Persistence
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	u, err := url.Parse(a.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("destination must be an absolute URL, got %q", a.URL)
	}

	d := dest.New(a.Name, a.URL)
	d.Notes = a.Notes
	if err := a.Persistence.Store(d); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Saved")
	pp.Destinations(d)
	return nil
}
