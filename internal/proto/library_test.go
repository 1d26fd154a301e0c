package proto

import (
	"errors"
	"testing"
)

type sample struct {
	Name     string
	Walkable bool
}

func TestRegisterLookup(t *testing.T) {
	lib := NewLibrary[sample]("tile")
	grass := &sample{Name: "grass", Walkable: true}
	lib.Register("grass", grass)

	if got := lib.Lookup("grass"); got != grass {
		t.Errorf("Lookup() = %p, expected %p", got, grass)
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", lib.Len())
	}
	if lib.Kind() != "tile" {
		t.Errorf("Kind() = %q, expected %q", lib.Kind(), "tile")
	}
}

func TestRegisterOverwriteKeepsOldPointer(t *testing.T) {
	lib := NewLibrary[sample]("tile")
	old := &sample{Name: "water"}
	lib.Register("water", old)

	held := lib.Lookup("water")

	replacement := &sample{Name: "water", Walkable: true}
	lib.Register("water", replacement)

	if lib.Lookup("water") != replacement {
		t.Error("Lookup() after overwrite should return the replacement")
	}
	if held != old || held.Name != "water" {
		t.Error("previously looked-up pointer should still reference the old prototype")
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 after overwrite", lib.Len())
	}
}

func TestLookupUnknownPanics(t *testing.T) {
	lib := NewLibrary[sample]("decoration")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Lookup() of an unknown name should panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = %T, expected error", r)
		}
		if !errors.Is(err, ErrUnknown) {
			t.Errorf("panic error = %v, expected ErrUnknown", err)
		}
	}()

	lib.Lookup("bush")
}

func TestFindAndGet(t *testing.T) {
	lib := NewLibrary[sample]("tile")
	lib.Register("sand", &sample{Name: "sand", Walkable: true})

	if _, ok := lib.Find("sand"); !ok {
		t.Error("Find(sand) should succeed")
	}
	if _, ok := lib.Find("lava"); ok {
		t.Error("Find(lava) should fail")
	}

	if _, err := lib.Get("lava"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Get(lava) error = %v, expected ErrUnknown", err)
	}
	if p, err := lib.Get("sand"); err != nil || p.Name != "sand" {
		t.Errorf("Get(sand) = %v, %v", p, err)
	}
}

func TestNamesSorted(t *testing.T) {
	lib := NewLibrary[sample]("tile")
	for _, n := range []string{"water", "grass", "stone"} {
		lib.Register(n, &sample{Name: n})
	}

	names := lib.Names()
	expected := []string{"grass", "stone", "water"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}
}

func TestRegisterNilPanics(t *testing.T) {
	lib := NewLibrary[sample]("tile")
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) should panic")
		}
	}()
	lib.Register("void", nil)
}
