package store

import "testing"

type item struct {
	ID   string
	Name string
}

func (i item) Key() string { return i.ID }

func TestSnapshot_PreservesSeedOrder(t *testing.T) {
	s := New(item{ID: "a"}, item{ID: "b"}, item{ID: "c"})
	snap := s.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 items, got %d", len(snap))
	}
	for i, want := range []string{"a", "b", "c"} {
		if snap[i].ID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, snap[i].ID)
		}
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New(item{ID: "a", Name: "one"})
	snap := s.Snapshot()
	snap[0].Name = "mutated"
	if got, _ := s.Get("a"); got.Name != "one" {
		t.Errorf("store was mutated through a snapshot: %q", got.Name)
	}
}

func TestPrepend_NewestFirst(t *testing.T) {
	s := New(item{ID: "a"})
	if err := s.Prepend(item{ID: "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if snap[0].ID != "b" || snap[1].ID != "a" {
		t.Errorf("expected [b a], got [%s %s]", snap[0].ID, snap[1].ID)
	}
}

func TestPrepend_DuplicateID(t *testing.T) {
	s := New(item{ID: "a"})
	if err := s.Prepend(item{ID: "a"}); err != ErrDuplicateID {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected store unchanged, got len %d", s.Len())
	}
}

func TestUpdate_ReplacesMatchingOnly(t *testing.T) {
	s := New(item{ID: "a", Name: "one"}, item{ID: "b", Name: "two"})
	ok := s.Update("b", func(i item) item {
		i.Name = "changed"
		return i
	})
	if !ok {
		t.Fatal("expected update to report a change")
	}
	if got, _ := s.Get("a"); got.Name != "one" {
		t.Errorf("unrelated entity changed: %q", got.Name)
	}
	if got, _ := s.Get("b"); got.Name != "changed" {
		t.Errorf("expected 'changed', got %q", got.Name)
	}
}

func TestUpdate_MissIsNoOp(t *testing.T) {
	s := New(item{ID: "a", Name: "one"})
	if s.Update("nope", func(i item) item { i.Name = "x"; return i }) {
		t.Error("expected miss to report no change")
	}
	if got, _ := s.Get("a"); got.Name != "one" {
		t.Errorf("store changed on miss: %q", got.Name)
	}
}

func TestDelete(t *testing.T) {
	s := New(item{ID: "a"}, item{ID: "b"}, item{ID: "c"})
	if !s.Delete("b") {
		t.Fatal("expected delete to report a change")
	}
	snap := s.Snapshot()
	if len(snap) != 2 || snap[0].ID != "a" || snap[1].ID != "c" {
		t.Errorf("expected [a c], got %v", snap)
	}
}

func TestDelete_MissIsNoOp(t *testing.T) {
	s := New(item{ID: "a"})
	if s.Delete("nope") {
		t.Error("expected miss to report no change")
	}
	if s.Len() != 1 {
		t.Errorf("expected len 1, got %d", s.Len())
	}
}
