package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/detour/pkg/printers"
	"tableflip.dev/detour/pkg/store"
)

type Get struct {
	Name string

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if g.Name != "" {
		d, err := g.Persistence.Get(ctx, g.Name)
		if err != nil {
			return err
		}
		pp.Title(d.Name)
		pp.Destinations(d)
		return nil
	}

	all := g.Persistence.List(ctx)
	pp.Title("Destinations")
	pp.Destinations(all...)
	return nil
}
