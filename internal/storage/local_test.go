package storage

import (
	"path/filepath"
	"testing"
)

func openTestLocal(t *testing.T) *Local {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() err = %v, want nil", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLocal_SetGet(t *testing.T) {
	l := openTestLocal(t)

	if err := l.Set("zenith.tasks", `[{"id":1}]`); err != nil {
		t.Fatalf("Set() err = %v, want nil", err)
	}
	got, ok, err := l.Get("zenith.tasks")
	if err != nil {
		t.Fatalf("Get() err = %v, want nil", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if got != `[{"id":1}]` {
		t.Fatalf("Get() = %q, want %q", got, `[{"id":1}]`)
	}
}

func TestLocal_GetMissingKey(t *testing.T) {
	l := openTestLocal(t)

	_, ok, err := l.Get("absent")
	if err != nil {
		t.Fatalf("Get() err = %v, want nil", err)
	}
	if ok {
		t.Fatal("Get() ok = true, want false")
	}
}

func TestLocal_SetReplaces(t *testing.T) {
	l := openTestLocal(t)

	if err := l.Set("zenith.theme", "dark"); err != nil {
		t.Fatalf("Set() err = %v, want nil", err)
	}
	if err := l.Set("zenith.theme", "light"); err != nil {
		t.Fatalf("Set() err = %v, want nil", err)
	}
	got, _, _ := l.Get("zenith.theme")
	if got != "light" {
		t.Fatalf("Get() = %q, want %q", got, "light")
	}
}

func TestLocal_Delete(t *testing.T) {
	l := openTestLocal(t)

	if err := l.Set("k", "v"); err != nil {
		t.Fatalf("Set() err = %v, want nil", err)
	}
	if err := l.Delete("k"); err != nil {
		t.Fatalf("Delete() err = %v, want nil", err)
	}
	_, ok, _ := l.Get("k")
	if ok {
		t.Fatal("Get() after Delete ok = true, want false")
	}

	// deleting an absent key is a no-op
	if err := l.Delete("k"); err != nil {
		t.Fatalf("Delete() absent err = %v, want nil", err)
	}
}

func TestLocal_ValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() err = %v, want nil", err)
	}
	if err := l.Set("k", "persisted"); err != nil {
		t.Fatalf("Set() err = %v, want nil", err)
	}
	l.Close()

	l2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen err = %v, want nil", err)
	}
	defer l2.Close()

	got, ok, err := l2.Get("k")
	if err != nil || !ok || got != "persisted" {
		t.Fatalf("Get() after reopen = (%q, %v, %v), want (persisted, true, nil)", got, ok, err)
	}
}
