package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/detour/pkg/store"
)

type Remove struct {
	Name string

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	if err := r.Persistence.Delete(r.Name); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", r.Name)
	return nil
}
