package tap

import (
	"testing"
)

func TestTap_ReturnsValueUnchanged(t *testing.T) {
	t.Parallel()
	acc := 5

	got := Tap(10, func(v *int) { acc += *v })
	if got != 10 {
		t.Fatalf("expected tapped value 10, got %d", got)
	}
	if acc != 15 {
		t.Fatalf("expected accumulator 15, got %d", acc)
	}
}

func TestTap_MutationIsVisible(t *testing.T) {
	t.Parallel()

	got := Tap(3, func(v *int) { *v *= 7 })
	if got != 21 {
		t.Fatalf("expected mutated value 21, got %d", got)
	}
}

func TestTap_SliceElementsMutateInPlace(t *testing.T) {
	t.Parallel()

	got := Tap([]int{1, 2, 3}, func(s *[]int) {
		for i := range *s {
			(*s)[i] *= 2
		}
	})

	want := []int{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestTap_StructByValue(t *testing.T) {
	t.Parallel()

	type point struct{ x, y int }

	p := point{x: 1, y: 2}
	got := Tap(p, func(v *point) { v.x = 10 })

	if got.x != 10 || got.y != 2 {
		t.Fatalf("expected {10 2}, got %+v", got)
	}
	if p.x != 1 {
		t.Fatalf("tap should operate on its own copy, original changed: %+v", p)
	}
}

func TestTap_ClosurePanicPropagates(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("expected panic 'boom' to propagate, got %v", r)
		}
	}()

	Tap(1, func(*int) { panic("boom") })
	t.Fatalf("unreachable: panic should have propagated")
}

func TestTapAll_RunsInOrder(t *testing.T) {
	t.Parallel()

	got := TapAll("a",
		func(s *string) { *s += "b" },
		func(s *string) { *s += "c" },
	)
	if got != "abc" {
		t.Fatalf("expected 'abc', got %q", got)
	}
}

func TestTapAll_NoClosures(t *testing.T) {
	t.Parallel()

	if got := TapAll(42); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}
