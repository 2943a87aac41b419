package kv

import (
	"iter"

	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type entry struct {
	key, value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which is the case for parsed parameter lists. Keys are compared case-insensitively
// and the insertion order is kept.
type Storage struct {
	entries []entry
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		entries: make([]entry, 0, n),
	}
}

// ParseListInto parses data as ParseList does and adds the resulting pairs to s. At most
// limit tokens are accepted. Stored strings are views into data, so data must outlive s
// and stay unmodified.
func ParseListInto(s *Storage, data []byte, sep byte, limit int) error {
	if limit <= 0 {
		return status.ErrInvalidArgument
	}

	pairs := make([]Pair, limit)
	n, err := ParseList(data, sep, pairs)
	if err != nil {
		return err
	}

	for _, pair := range pairs[:n] {
		s.Add(uf.B2S(pair.Key), uf.B2S(pair.Value))
	}

	return nil
}

// Add adds a new pair of key and value.
func (s *Storage) Add(key, value string) *Storage {
	s.entries = append(s.entries, entry{key, value})
	return s
}

// Set replaces the value of the first entry of the key and drops the rest of them. If there
// was no such key, it's added.
func (s *Storage) Set(key, value string) *Storage {
	for i, e := range s.entries {
		if strcomp.EqualFold(e.key, key) {
			s.entries[i].value = value
			rest := deleteKey(s.entries[i+1:], key)
			s.entries = s.entries[:i+1+len(rest)]
			return s
		}
	}

	return s.Add(key, value)
}

// Delete removes all the entries of the key.
func (s *Storage) Delete(key string) *Storage {
	s.entries = deleteKey(s.entries, key)
	return s
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, e := range s.entries {
		if strcomp.EqualFold(e.key, key) {
			return e.value, true
		}
	}

	return "", false
}

// Values returns an iterator over all values of the key.
func (s *Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range s.entries {
			if strcomp.EqualFold(e.key, key) && !yield(e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over unique keys, in order of their first appearance.
func (s *Storage) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, e := range s.entries {
			if seenBefore(s.entries[:i], e.key) {
				continue
			}

			if !yield(e.key) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all the pairs.
func (s *Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range s.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.entries)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() *Storage {
	s.entries = s.entries[:0]
	return s
}

func deleteKey(entries []entry, key string) []entry {
	kept := entries[:0]
	for _, e := range entries {
		if !strcomp.EqualFold(e.key, key) {
			kept = append(kept, e)
		}
	}

	clear(entries[len(kept):])

	return kept
}

func seenBefore(entries []entry, key string) bool {
	for _, e := range entries {
		if strcomp.EqualFold(e.key, key) {
			return true
		}
	}

	return false
}
