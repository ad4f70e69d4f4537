// Package freqtablelib provides a word frequency hash table with separate chaining
// that doubles its size when the collision lists grow too long
package freqtablelib

import (
	"errors"
	"fmt"
	"hash/fnv"
)

// DefaultInitialSize is the number of slots of a new table, enough for moderately large files
const DefaultInitialSize = 128

// DefaultMaxListSize is the average collision list length that triggers a rehash
const DefaultMaxListSize = 5

// ErrNotFound is returned when incrementing a word that is not stored
var ErrNotFound = errors.New("word not found")

type entry struct {
	word  string
	count int
}

// bucket holds the entries hashed to one slot. Entries are appended, so the chain
// (most recent first) is read from the tail.
type bucket []entry

// Table maps words to occurrence counts
type Table struct {
	slots       []bucket
	numItems    int
	maxListSize int
	modCount    int
}

// Option configures a Table
type Option func(*Table)

// WithInitialSize sets the number of slots the table starts with
func WithInitialSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.slots = make([]bucket, n)
		}
	}
}

// WithMaxListSize sets the load threshold above which the next insert rehashes first
func WithMaxListSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.maxListSize = n
		}
	}
}

// New creates an empty table
func New(opts ...Option) *Table {
	t := &Table{
		slots:       make([]bucket, DefaultInitialSize),
		maxListSize: DefaultMaxListSize,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Table) index(word string) int {
	h := fnv.New32a()
	h.Write([]byte(word))

	return int(h.Sum32() % uint32(len(t.slots)))
}

// Insert stores a new word with the given frequency. It does not check for an
// existing entry; callers Search first (see Add).
func (t *Table) Insert(word string, frequency int) {
	if t.AverageListLength() > t.maxListSize {
		t.Rehash()
	}

	i := t.index(word)
	t.slots[i] = append(t.slots[i], entry{word: word, count: frequency})
	t.numItems++
	t.modCount++
}

// find returns the slot and position of word, or -1, -1
func (t *Table) find(word string) (int, int) {
	i := t.index(word)
	b := t.slots[i]
	for j := len(b) - 1; j >= 0; j-- {
		if b[j].word == word {
			return i, j
		}
	}

	return -1, -1
}

// Search returns the frequency of word, 0 if absent
func (t *Table) Search(word string) int {
	i, j := t.find(word)
	if i < 0 {
		return 0
	}

	return t.slots[i][j].count
}

// IncrementFrequency adds one to the frequency of a stored word
func (t *Table) IncrementFrequency(word string) error {
	i, j := t.find(word)
	if i < 0 {
		return fmt.Errorf("increment %q: %w", word, ErrNotFound)
	}
	t.slots[i][j].count++

	return nil
}

// Add counts one more occurrence of word, inserting it with frequency 1 when new.
// It returns the resulting frequency.
func (t *Table) Add(word string) int {
	if i, j := t.find(word); i >= 0 {
		t.slots[i][j].count++
		return t.slots[i][j].count
	}
	t.Insert(word, 1)

	return 1
}

// Rehash doubles the number of slots and reinserts every entry
func (t *Table) Rehash() {
	old := t.slots
	t.slots = make([]bucket, 2*len(old))
	t.numItems = 0
	for _, b := range old {
		for j := len(b) - 1; j >= 0; j-- {
			t.Insert(b[j].word, b[j].count)
		}
	}
	t.modCount++
}

// Size returns the number of slots
func (t *Table) Size() int {
	return len(t.slots)
}

// NumWords returns the number of distinct words stored
func (t *Table) NumWords() int {
	return t.numItems
}

// AverageListLength returns numWords / size, rounded down
func (t *Table) AverageListLength() int {
	return t.numItems / len(t.slots)
}

// Stats is a snapshot of the table shape
type Stats struct {
	NumWords          int
	Size              int
	AverageListLength int
	LongestList       int
}

// Stats returns the current table statistics. LongestList walks every slot.
func (t *Table) Stats() Stats {
	longest := 0
	for _, b := range t.slots {
		if len(b) > longest {
			longest = len(b)
		}
	}

	return Stats{
		NumWords:          t.NumWords(),
		Size:              t.Size(),
		AverageListLength: t.AverageListLength(),
		LongestList:       longest,
	}
}
