// Package buffer holds the scrolling window of practice lines.
package buffer

import "github.com/verte-zerg/ttypr/internal/model"

// Buffer keeps the target characters, the typed characters and one status per
// target character for the lines currently on screen. Lines enter at the tail
// and leave from the head.
type Buffer struct {
	target   []rune
	typed    []rune
	status   []model.Status
	lineLens []int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// AppendLine adds text as a new untyped line at the tail.
func (b *Buffer) AppendLine(text string) {
	runes := []rune(text)
	b.lineLens = append(b.lineLens, len(runes))
	b.target = append(b.target, runes...)
	for range runes {
		b.status = append(b.status, model.Untyped)
	}
}

// Record stores a typed rune at the next position and tags it. It reports the
// expected rune and whether the keystroke matched. ok is false when every
// target character has already been typed; nothing changes in that case.
func (b *Buffer) Record(r rune) (expected rune, correct, ok bool) {
	pos := len(b.typed)
	if pos >= len(b.target) {
		return 0, false, false
	}
	expected = b.target[pos]
	b.typed = append(b.typed, r)
	if r == expected {
		b.status[pos] = model.Correct
		return expected, true, true
	}
	b.status[pos] = model.Incorrect
	return expected, false, true
}

// Backspace removes the last typed rune. It reports false when nothing was typed.
func (b *Buffer) Backspace() bool {
	if len(b.typed) == 0 {
		return false
	}
	pos := len(b.typed) - 1
	b.typed = b.typed[:pos]
	b.status[pos] = model.Untyped
	return true
}

// NeedsRetire reports whether the user just finished the second line.
func (b *Buffer) NeedsRetire() bool {
	if len(b.lineLens) < 2 {
		return false
	}
	return len(b.typed) == b.lineLens[0]+b.lineLens[1]
}

// RetireAndRefill drops the head line from every sequence and appends next as
// the new tail line. It returns the length of the retired line.
func (b *Buffer) RetireAndRefill(next string) int {
	if len(b.lineLens) == 0 {
		b.AppendLine(next)
		return 0
	}
	head := b.lineLens[0]
	b.target = append(b.target[:0:0], b.target[head:]...)
	b.status = append(b.status[:0:0], b.status[head:]...)
	if len(b.typed) >= head {
		b.typed = append(b.typed[:0:0], b.typed[head:]...)
	} else {
		b.typed = b.typed[:0]
	}
	b.lineLens = append(b.lineLens[:0:0], b.lineLens[1:]...)
	b.AppendLine(next)
	return head
}

// Clear empties all sequences.
func (b *Buffer) Clear() {
	b.target = nil
	b.typed = nil
	b.status = nil
	b.lineLens = nil
}

// Len returns the number of target characters.
func (b *Buffer) Len() int {
	return len(b.target)
}

// TypedLen returns the number of typed characters.
func (b *Buffer) TypedLen() int {
	return len(b.typed)
}

// Empty reports whether no lines are buffered.
func (b *Buffer) Empty() bool {
	return len(b.lineLens) == 0
}

// Target returns a copy of the target characters.
func (b *Buffer) Target() []rune {
	return append([]rune(nil), b.target...)
}

// Typed returns a copy of the typed characters.
func (b *Buffer) Typed() []rune {
	return append([]rune(nil), b.typed...)
}

// Statuses returns a copy of the status tags.
func (b *Buffer) Statuses() []model.Status {
	return append([]model.Status(nil), b.status...)
}

// LineLens returns a copy of the line-length queue.
func (b *Buffer) LineLens() []int {
	return append([]int(nil), b.lineLens...)
}

// Snapshot is a read-only view of the buffer handed to the renderer.
type Snapshot struct {
	Target   []rune
	Typed    []rune
	Status   []model.Status
	LineLens []int
}

// Snapshot copies the current buffer state.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{
		Target:   b.Target(),
		Typed:    b.Typed(),
		Status:   b.Statuses(),
		LineLens: b.LineLens(),
	}
}

// Lines splits the snapshot into per-line slices of target, typed and status.
func (s Snapshot) Lines() []Line {
	lines := make([]Line, 0, len(s.LineLens))
	start := 0
	for _, n := range s.LineLens {
		end := start + n
		line := Line{
			Target: s.Target[start:end],
			Status: s.Status[start:end],
		}
		if start < len(s.Typed) {
			typedEnd := end
			if typedEnd > len(s.Typed) {
				typedEnd = len(s.Typed)
			}
			line.Typed = s.Typed[start:typedEnd]
		}
		lines = append(lines, line)
		start = end
	}
	return lines
}

// Line is one buffered line of a Snapshot.
type Line struct {
	Target []rune
	Typed  []rune
	Status []model.Status
}
