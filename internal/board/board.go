package board

// Status is the lifecycle state of an item. Exactly one status per item; the
// three columns on screen are filters over the single backing slice, not
// separate containers.
type Status int

const (
	StatusTodo Status = iota
	StatusUpNext
	StatusInProgress
)

// statusCount is the size of the Status cycle.
const statusCount = 3

// Next returns the following status in the column cycle:
// ToDo → UpNext → InProgress → ToDo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusUpNext
	case StatusUpNext:
		return StatusInProgress
	default:
		return StatusTodo
	}
}

// Prev returns the preceding status in the column cycle, the exact inverse of
// Next: ToDo → InProgress → UpNext → ToDo.
func (s Status) Prev() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusUpNext
	default:
		return StatusTodo
	}
}

// String returns the column title for the status.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusUpNext:
		return "Up Next"
	case StatusInProgress:
		return "In Progress"
	default:
		return "Unknown"
	}
}

// Statuses returns all statuses in column display order.
func Statuses() [statusCount]Status {
	return [statusCount]Status{StatusTodo, StatusUpNext, StatusInProgress}
}

// Item is a single work item on the board. Weight is a positive integer used
// by the rendering layer to size the card.
type Item struct {
	Label  string
	Weight int
	Status Status
}

// noSelection marks the cursor as cleared.
const noSelection = -1

// Board owns the item slice, the selection cursor, and the active column.
//
// The cursor indexes the full backing slice, not any column's filtered view.
// Each rendered column re-filters the slice on every draw and interprets the
// cursor within its own filtered view; navigation and deletion stay
// filter-unaware. That mismatch is observable behavior and is kept as is.
type Board struct {
	items    []Item
	selected int
	active   Status
}

// New creates a board over the given items with no selection and the To Do
// column active. The board takes ownership of the slice.
func New(items []Item) *Board {
	return &Board{
		items:    items,
		selected: noSelection,
		active:   StatusTodo,
	}
}

// Items returns the full backing slice in order.
func (b *Board) Items() []Item {
	return b.items
}

// Len returns the number of items across all columns.
func (b *Board) Len() int {
	return len(b.items)
}

// Selected returns the cursor as a full-slice index, and whether a selection
// exists.
func (b *Board) Selected() (int, bool) {
	if b.selected == noSelection {
		return 0, false
	}
	return b.selected, true
}

// ActiveColumn returns the currently emphasized column.
func (b *Board) ActiveColumn() Status {
	return b.active
}

// ColumnItems returns the items whose status matches s, in backing-slice
// order. Called per draw; the result is a fresh slice.
func (b *Board) ColumnItems(s Status) []Item {
	var out []Item
	for _, it := range b.items {
		if it.Status == s {
			out = append(out, it)
		}
	}
	return out
}

// SelectNext moves the cursor down one item, wrapping from the last index to
// 0. With no selection it selects index 0. No-op on an empty board.
func (b *Board) SelectNext() {
	if len(b.items) == 0 {
		return
	}
	if b.selected == noSelection || b.selected >= len(b.items)-1 {
		b.selected = 0
		return
	}
	b.selected++
}

// SelectPrev moves the cursor up one item, wrapping from 0 to the last index.
// With no selection it selects index 0. No-op on an empty board.
func (b *Board) SelectPrev() {
	if len(b.items) == 0 {
		return
	}
	if b.selected == noSelection {
		b.selected = 0
		return
	}
	if b.selected == 0 {
		b.selected = len(b.items) - 1
		return
	}
	b.selected--
}

// Unselect clears the cursor. Idempotent.
func (b *Board) Unselect() {
	b.selected = noSelection
}

// DeleteSelected removes the item under the cursor from the backing slice,
// then re-selects max(0, i−1) if items remain, else clears the cursor.
// No-op without a selection.
func (b *Board) DeleteSelected() {
	if b.selected == noSelection {
		return
	}
	i := b.selected
	b.items = append(b.items[:i], b.items[i+1:]...)
	if len(b.items) == 0 {
		b.selected = noSelection
		return
	}
	b.selected = max(0, i-1)
}

// CycleColumnForward advances the active column: ToDo → UpNext → InProgress.
func (b *Board) CycleColumnForward() {
	b.active = b.active.Next()
}

// CycleColumnBackward retreats the active column: ToDo → InProgress → UpNext.
func (b *Board) CycleColumnBackward() {
	b.active = b.active.Prev()
}
