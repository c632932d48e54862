package indexes

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDuplicateIndex    = errors.New("index already defined")
	ErrUnknownIndex      = errors.New("unknown index")
	ErrIndexAfterInsert  = errors.New("index defined after records were inserted")
	ErrInvalidDefinition = errors.New("invalid index definition")
)

// Definition declares an equality index. Key must be a pure function of the record: it is
// evaluated once at insertion and never again.
type Definition[T any] struct {
	Name string
	Key  func(record *T) string
}

// Store keeps one append-only arena of records and any number of equality indexes over it.
//
// Layout:
//
//	arena:   [r0, r1, r2, r3, r4]                one pointer per record
//	level:   {"DEBUG": [0, 1, 2, 4], "WARN": [3]}  positions into arena
//	session: {"34523": [0, 1], "42111": [2, 3, 4]}
//
// An index costs one int per record, never a copy of the record. Lookups hash the key and
// materialize only the matching positions; Scan walks the arena for predicates with no index
// (such as time ranges).
//
// Store does no locking. Callers serialize Insert against Lookup and Scan; concurrent readers
// are safe with each other.
type Store[T any] struct {
	records []*T
	indexes map[string]*index[T]
}

type index[T any] struct {
	key       func(record *T) string
	positions map[string][]int
}

// NewStore creates a store with all indexes declared up front, which is the preferred way to
// configure one.
func NewStore[T any](definitions ...Definition[T]) (*Store[T], error) {
	s := &Store[T]{indexes: make(map[string]*index[T], len(definitions))}
	for _, definition := range definitions {
		if err := s.DefineIndex(definition); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DefineIndex registers a new index. It is refused once any record has been inserted, so an
// index is always complete over the arena.
func (s *Store[T]) DefineIndex(definition Definition[T]) error {
	if definition.Name == "" || definition.Key == nil {
		return fmt.Errorf("%w: name and key function are required", ErrInvalidDefinition)
	}
	if _, exists := s.indexes[definition.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIndex, definition.Name)
	}
	if len(s.records) > 0 {
		return fmt.Errorf("%w: %q (%d records stored)", ErrIndexAfterInsert, definition.Name, len(s.records))
	}
	s.indexes[definition.Name] = &index[T]{
		key:       definition.Key,
		positions: make(map[string][]int),
	}
	return nil
}

// Insert appends record to the arena and files its position under every index.
func (s *Store[T]) Insert(record *T) {
	position := len(s.records)
	s.records = append(s.records, record)
	for _, idx := range s.indexes {
		key := idx.key(record)
		idx.positions[key] = append(idx.positions[key], position)
	}
}

// Lookup returns the records whose key under the named index equals key, in insertion order.
// An absent key yields an empty, non-nil slice.
func (s *Store[T]) Lookup(indexName, key string) ([]*T, error) {
	idx, ok := s.indexes[indexName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, indexName)
	}
	positions := idx.positions[key]
	matches := make([]*T, len(positions))
	for i, position := range positions {
		matches[i] = s.records[position]
	}
	return matches, nil
}

// Scan returns every record satisfying predicate, in insertion order.
func (s *Store[T]) Scan(predicate func(record *T) bool) []*T {
	matches := make([]*T, 0)
	for _, record := range s.records {
		if predicate(record) {
			matches = append(matches, record)
		}
	}
	return matches
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	return len(s.records)
}

// IndexNames returns the defined index names, sorted.
func (s *Store[T]) IndexNames() []string {
	names := make([]string, 0, len(s.indexes))
	for name := range s.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the distinct keys of the named index, sorted.
func (s *Store[T]) Keys(indexName string) ([]string, error) {
	idx, ok := s.indexes[indexName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, indexName)
	}
	keys := make([]string, 0, len(idx.positions))
	for key := range idx.positions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
