package store

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/detour/pkg/dest"
)

type testConfig string

func (c testConfig) BasePath() string { return string(c) }

func testStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)

	d := dest.New("club", "https://www.example.com/club-login")
	d.Notes = "weekly signin"
	if err := p.Store(d); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := p.Get(ctx, "club")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.URL != d.URL || got.Notes != d.Notes {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestStoreListSorted(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := p.Store(dest.New(name, "https://"+name+".example.com/")); err != nil {
			t.Fatalf("store %s: %v", name, err)
		}
	}

	all := p.List(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 destinations, got %d", len(all))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if all[i].Name != want {
			t.Fatalf("expected %s at %d, got %s", want, i, all[i].Name)
		}
	}
}

func TestStoreGetMissing(t *testing.T) {
	p := testStore(t)
	if _, err := p.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)

	if err := p.Store(dest.New("club", "https://foo.com/")); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Delete("club"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, "club"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := p.Delete("club"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for double delete, got %v", err)
	}
}

func TestStoreNameWithSlashes(t *testing.T) {
	ctx := context.Background()
	p := testStore(t)

	if err := p.Store(dest.New("work/jira", "https://jira.example.com/board")); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := p.Get(ctx, "work/jira")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "work/jira" {
		t.Fatalf("name mangled: %q", got.Name)
	}
}
