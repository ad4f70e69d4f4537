package freqtablelib

import (
	"errors"
	"iter"
)

// ErrModified is reported by an Enumeration whose table was changed under it
var ErrModified = errors.New("table modified during enumeration")

// Enumeration walks the stored words once, slot by slot and in chain order within
// a slot. Like bufio.Scanner it cannot be restarted.
//
//	e := table.Elements()
//	for e.Next() {
//		fmt.Println(e.Word())
//	}
//	if err := e.Err(); err != nil { ... }
type Enumeration struct {
	t        *Table
	modCount int
	slot     int
	pos      int // position inside slots[slot], counting down
	word     string
	err      error
	done     bool
}

// Elements returns a fresh enumeration of every stored word. Inserting or
// rehashing before it is drained stops it with ErrModified.
func (t *Table) Elements() *Enumeration {
	return &Enumeration{t: t, modCount: t.modCount, slot: -1}
}

// Next advances to the next word and reports whether there is one
func (e *Enumeration) Next() bool {
	if e.done {
		return false
	}
	if e.modCount != e.t.modCount {
		e.err = ErrModified
		e.done = true
		return false
	}

	for e.pos <= 0 {
		e.slot++
		if e.slot >= len(e.t.slots) {
			e.done = true
			e.word = ""
			return false
		}
		e.pos = len(e.t.slots[e.slot])
	}
	e.pos--
	e.word = e.t.slots[e.slot][e.pos].word

	return true
}

// Word returns the word the last call to Next moved to
func (e *Enumeration) Word() string {
	return e.word
}

// Err returns ErrModified if the table changed during the walk
func (e *Enumeration) Err() error {
	return e.err
}

// Seq drains the enumeration as a range-over-func sequence. It shares the
// enumeration cursor, so a second range over it yields nothing.
func (e *Enumeration) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e.Next() {
			if !yield(e.word) {
				return
			}
		}
	}
}
