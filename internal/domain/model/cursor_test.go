package model

import (
	"math"
	"testing"
)

func TestNewCursor_defaultsPageSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -3} {
		if got := NewCursor(size); got.PageSize != DefaultPageSize || got.Offset != 0 {
			t.Fatalf("NewCursor(%d) got %+v, want offset 0 page size %d", size, got, DefaultPageSize)
		}
	}
}

func TestCursor_AdvanceAndReset(t *testing.T) {
	t.Parallel()

	c := NewCursor(5)
	c = c.Advance().Advance()
	if c.Offset != 10 || c.PageSize != 5 {
		t.Fatalf("after two advances got %+v, want offset 10 page size 5", c)
	}
	if !c.HasMore(11) {
		t.Fatalf("HasMore(11) got false, want true")
	}
	if c.HasMore(10) {
		t.Fatalf("HasMore(10) got true, want false")
	}

	if r := c.Reset(); r.Offset != 0 || r.PageSize != 5 {
		t.Fatalf("Reset got %+v, want offset 0 page size 5", r)
	}
}

func TestCursor_AdvanceClampsNegativeOffset(t *testing.T) {
	t.Parallel()

	c := Cursor{Offset: -4, PageSize: 3}
	if got := c.Advance(); got.Offset != 3 {
		t.Fatalf("Advance got offset %d, want 3", got.Offset)
	}
}

func TestCursor_Params(t *testing.T) {
	t.Parallel()

	got := Cursor{Offset: 24, PageSize: 12}.Params("tele", "communication")
	want := ViewParams{Query: "tele", CategoryID: "communication", Offset: 24, PageSize: 12}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCursor_AdvanceSaturates(t *testing.T) {
	t.Parallel()

	c := Cursor{Offset: 1, PageSize: math.MaxInt}
	if got := c.Advance(); got.Offset != math.MaxInt {
		t.Fatalf("Advance got offset %d, want %d", got.Offset, math.MaxInt)
	}
}
