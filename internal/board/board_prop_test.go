package board

import (
	"testing"

	"pgregory.net/rapid"
)

// drawBoard generates a board with a random non-empty item slice and a random
// walk of the cursor so properties start from arbitrary states.
func drawBoard(t *rapid.T) *Board {
	n := rapid.IntRange(1, 40).Draw(t, "n")
	b := New(testItems(n))
	steps := rapid.IntRange(0, 2*n).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		b.SelectNext()
	}
	return b
}

func TestBoardProp_SelectNextIsCyclicOrderN(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		b.SelectNext()
		start, _ := b.Selected()
		for i := 0; i < b.Len(); i++ {
			b.SelectNext()
		}
		got, ok := b.Selected()
		if !ok || got != start {
			t.Fatalf("after %d SelectNext: selected = %d,%v, want %d", b.Len(), got, ok, start)
		}
	})
}

func TestBoardProp_PrevInvertsNext(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		b.SelectNext() // establish a selection
		start, _ := b.Selected()

		b.SelectNext()
		b.SelectPrev()
		if got, _ := b.Selected(); got != start {
			t.Fatalf("SelectPrev∘SelectNext: selected = %d, want %d", got, start)
		}

		b.SelectPrev()
		b.SelectNext()
		if got, _ := b.Selected(); got != start {
			t.Fatalf("SelectNext∘SelectPrev: selected = %d, want %d", got, start)
		}
	})
}

func TestBoardProp_SelectionAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 60).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				b.SelectNext()
			case 1:
				b.SelectPrev()
			case 2:
				b.DeleteSelected()
			case 3:
				b.Unselect()
			}
			if i, ok := b.Selected(); ok && (i < 0 || i >= b.Len()) {
				t.Fatalf("selected = %d out of bounds for %d items", i, b.Len())
			}
		}
	})
}

func TestBoardProp_DeleteShrinksByExactlyOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		b.SelectNext()
		before := b.Len()
		i, _ := b.Selected()
		b.DeleteSelected()
		if got := b.Len(); got != before-1 {
			t.Fatalf("Len() = %d after delete, want %d", got, before-1)
		}
		if b.Len() == 0 {
			if _, ok := b.Selected(); ok {
				t.Fatal("empty board should have no selection after delete")
			}
			return
		}
		want := i - 1
		if want < 0 {
			want = 0
		}
		if got, _ := b.Selected(); got != want {
			t.Fatalf("selected = %d after deleting %d, want %d", got, i, want)
		}
	})
}

func TestBoardProp_StatusCycleIdentities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New(testItems(rapid.IntRange(1, 10).Draw(t, "n")))
		forward := rapid.IntRange(0, 12).Draw(t, "forward")
		for i := 0; i < forward; i++ {
			b.CycleColumnForward()
		}
		for i := 0; i < forward; i++ {
			b.CycleColumnBackward()
		}
		if got := b.ActiveColumn(); got != StatusTodo {
			t.Fatalf("ActiveColumn() = %v after %d forward+backward, want StatusTodo", got, forward)
		}
	})
}
