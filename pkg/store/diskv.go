package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/detour/pkg/dest"
)

// ErrNotFound reports a name with no saved destination behind it.
var ErrNotFound = errors.New("store: destination not found")

// Persistence defines the persistence contract for saved destinations.
type Persistence interface {
	List(ctx context.Context) []*dest.Dest
	Get(ctx context.Context, name string) (*dest.Dest, error)
	Store(d *dest.Dest) error
	Delete(name string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) read(key string) (*dest.Dest, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	d := &dest.Dest{}
	if err := json.Unmarshal(val, d); err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = fromKey(key)
	}
	return d, nil
}

func (p *persistence) List(ctx context.Context) []*dest.Dest {
	all := make([]*dest.Dest, 0)
	for key := range p.d.Keys(ctx.Done()) {
		d, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, d)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func (p *persistence) Get(ctx context.Context, name string) (*dest.Dest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("store: destination name required")
	}
	key := toKey(name)
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p.read(key)
}

func (p *persistence) Store(d *dest.Dest) error {
	if d == nil || strings.TrimSpace(d.Name) == "" {
		return errors.New("store: destination name required")
	}
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(d.Name), data)
}

func (p *persistence) Delete(name string) error {
	key := toKey(strings.TrimSpace(name))
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p.d.Erase(key)
}

// toKey encodes names so any destination name is a safe diskv key.
func toKey(name string) string {
	return base64.URLEncoding.EncodeToString([]byte(name))
}

func fromKey(key string) string {
	name, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		return key
	}
	return string(name)
}
