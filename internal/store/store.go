// Package store implements the ordered, keyed object store that backs the
// rows and patterns of alignment containers.
//
// A Store is addressable both by position and by string key. Values can be
// cleared in place (Nullify) without losing their slot or key, which lets
// containers keep derived caches aligned with their primary storage.
// Insertions and removals shift every later position by one; callers must
// not keep positions across a mutation.
package store

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/alignstore/pkg/types"
)

type slot[T any] struct {
	key   string
	value T
	set   bool
}

// Store is an ordered collection of values with string keys.
// A Store is not safe for concurrent use.
type Store[T any] struct {
	slots      []slot[T]
	uniqueKeys bool
	byKey      map[string]int // only maintained when uniqueKeys is set
}

// New returns an empty store. When uniqueKeys is set, every key must be
// distinct and key lookups are O(1); otherwise keys are informative and
// lookups return the first match.
func New[T any](uniqueKeys bool) *Store[T] {
	s := &Store[T]{uniqueKeys: uniqueKeys}
	if uniqueKeys {
		s.byKey = make(map[string]int)
	}
	return s
}

// Len returns the number of slots, including nullified ones.
func (s *Store[T]) Len() int {
	return len(s.slots)
}

func (s *Store[T]) checkPosition(pos int) error {
	if pos < 0 || pos >= len(s.slots) {
		return fmt.Errorf("%w: position %d, size %d", types.ErrOutOfRange, pos, len(s.slots))
	}
	return nil
}

// checkKey reports ErrDuplicateKey when key is used by a slot other than
// except. Pass -1 to check against every slot.
func (s *Store[T]) checkKey(key string, except int) error {
	if !s.uniqueKeys {
		return nil
	}
	if pos, ok := s.byKey[key]; ok && pos != except {
		return fmt.Errorf("%w: %q", types.ErrDuplicateKey, key)
	}
	return nil
}

// reindex rebuilds the key map from position from onwards.
func (s *Store[T]) reindex(from int) {
	if !s.uniqueKeys {
		return
	}
	for i := from; i < len(s.slots); i++ {
		s.byKey[s.slots[i].key] = i
	}
}

// Append adds value under key at the end and returns its position.
func (s *Store[T]) Append(value T, key string) (int, error) {
	if err := s.checkKey(key, -1); err != nil {
		return 0, err
	}
	s.slots = append(s.slots, slot[T]{key: key, value: value, set: true})
	pos := len(s.slots) - 1
	s.reindex(pos)
	return pos, nil
}

// Insert places value under key at pos, shifting later slots. pos may equal
// Len, which appends.
func (s *Store[T]) Insert(value T, pos int, key string) error {
	if pos < 0 || pos > len(s.slots) {
		return fmt.Errorf("%w: insert position %d, size %d", types.ErrOutOfRange, pos, len(s.slots))
	}
	if err := s.checkKey(key, -1); err != nil {
		return err
	}
	s.slots = slices.Insert(s.slots, pos, slot[T]{key: key, value: value, set: true})
	s.reindex(pos)
	return nil
}

// Get returns the value at pos. Returns ErrNotFound when the slot was
// nullified.
func (s *Store[T]) Get(pos int) (T, error) {
	var zero T
	if err := s.checkPosition(pos); err != nil {
		return zero, err
	}
	if !s.slots[pos].set {
		return zero, fmt.Errorf("%w: position %d is empty", types.ErrNotFound, pos)
	}
	return s.slots[pos].value, nil
}

// Lookup returns the value at pos and whether the slot holds one. It is the
// probe used by caches; out-of-range positions report false.
func (s *Store[T]) Lookup(pos int) (T, bool) {
	if pos < 0 || pos >= len(s.slots) || !s.slots[pos].set {
		var zero T
		return zero, false
	}
	return s.slots[pos].value, true
}

// Position returns the position of key.
func (s *Store[T]) Position(key string) (int, error) {
	if s.uniqueKeys {
		if pos, ok := s.byKey[key]; ok {
			return pos, nil
		}
	} else {
		for i := range s.slots {
			if s.slots[i].key == key {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: key %q", types.ErrNotFound, key)
}

// GetByKey returns the value stored under key.
func (s *Store[T]) GetByKey(key string) (T, error) {
	pos, err := s.Position(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Get(pos)
}

// Key returns the key of pos.
func (s *Store[T]) Key(pos int) (string, error) {
	if err := s.checkPosition(pos); err != nil {
		return "", err
	}
	return s.slots[pos].key, nil
}

// Keys returns every key in order.
func (s *Store[T]) Keys() []string {
	keys := make([]string, len(s.slots))
	for i := range s.slots {
		keys[i] = s.slots[i].key
	}
	return keys
}

// Set stores value at pos, keeping its key.
func (s *Store[T]) Set(pos int, value T) error {
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	s.slots[pos].value = value
	s.slots[pos].set = true
	return nil
}

// Replace stores value under key at pos.
func (s *Store[T]) Replace(pos int, value T, key string) error {
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	if err := s.checkKey(key, pos); err != nil {
		return err
	}
	if s.uniqueKeys {
		delete(s.byKey, s.slots[pos].key)
		s.byKey[key] = pos
	}
	s.slots[pos] = slot[T]{key: key, value: value, set: true}
	return nil
}

// SetKey renames the slot at pos.
func (s *Store[T]) SetKey(pos int, key string) error {
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	if err := s.checkKey(key, pos); err != nil {
		return err
	}
	if s.uniqueKeys {
		delete(s.byKey, s.slots[pos].key)
		s.byKey[key] = pos
	}
	s.slots[pos].key = key
	return nil
}

// Rename replaces every key at once. Nothing changes when keys has the
// wrong length or, for unique stores, contains duplicates.
func (s *Store[T]) Rename(keys []string) error {
	if len(keys) != len(s.slots) {
		return fmt.Errorf("%w: %d keys for %d entries", types.ErrSizeMismatch, len(keys), len(s.slots))
	}
	if s.uniqueKeys {
		seen := make(map[string]int, len(keys))
		for i, k := range keys {
			if _, dup := seen[k]; dup {
				return fmt.Errorf("%w: %q", types.ErrDuplicateKey, k)
			}
			seen[k] = i
		}
		s.byKey = seen
	}
	for i, k := range keys {
		s.slots[i].key = k
	}
	return nil
}

// Remove detaches the value at pos and returns it. The store keeps no
// reference to the returned value.
func (s *Store[T]) Remove(pos int) (T, error) {
	var zero T
	if err := s.checkPosition(pos); err != nil {
		return zero, err
	}
	value := s.slots[pos].value
	if s.uniqueKeys {
		delete(s.byKey, s.slots[pos].key)
	}
	s.slots = slices.Delete(s.slots, pos, pos+1)
	s.reindex(pos)
	return value, nil
}

// RemoveByKey detaches the value stored under key.
func (s *Store[T]) RemoveByKey(key string) (T, error) {
	pos, err := s.Position(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Remove(pos)
}

// Delete removes the slot at pos and drops its value.
func (s *Store[T]) Delete(pos int) error {
	_, err := s.Remove(pos)
	return err
}

// DeleteByKey removes the slot stored under key.
func (s *Store[T]) DeleteByKey(key string) error {
	_, err := s.RemoveByKey(key)
	return err
}

// DeleteRange removes length slots starting at start with a single shift.
func (s *Store[T]) DeleteRange(start, length int) error {
	if start < 0 || length < 0 || start+length > len(s.slots) {
		return fmt.Errorf("%w: range [%d,%d), size %d", types.ErrOutOfRange, start, start+length, len(s.slots))
	}
	if s.uniqueKeys {
		for i := start; i < start+length; i++ {
			delete(s.byKey, s.slots[i].key)
		}
	}
	s.slots = slices.Delete(s.slots, start, start+length)
	s.reindex(start)
	return nil
}

// Nullify clears the value at pos, keeping the slot and its key.
func (s *Store[T]) Nullify(pos int) error {
	if err := s.checkPosition(pos); err != nil {
		return err
	}
	var zero T
	s.slots[pos].value = zero
	s.slots[pos].set = false
	return nil
}

// NullifyAll clears every value, keeping size and keys.
func (s *Store[T]) NullifyAll() {
	var zero T
	for i := range s.slots {
		s.slots[i].value = zero
		s.slots[i].set = false
	}
}

// Clear removes every slot and key.
func (s *Store[T]) Clear() {
	s.slots = nil
	if s.uniqueKeys {
		s.byKey = make(map[string]int)
	}
}
