package store

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both rows that do not exist and rows the caller
	// does not own; callers surface the two identically.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidKind means a content kind outside text/video/image/file.
	ErrInvalidKind = errors.New("invalid content kind")
)

// ValidationError carries per-field messages from item schema validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Store owns persistence for the course hierarchy: position assignment and
// ordered retrieval for modules and contents, the content item registry,
// and the bulk reorder operation.
type Store struct {
	db *gorm.DB

	groups [64]sync.Mutex
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers doing plain scoped reads.
func (s *Store) DB() *gorm.DB { return s.db }

// lockGroup serializes writers of one sibling group. Default position
// assignment is read-max-then-insert; without serialization two creations
// in the same empty group would both read max and both get position 0.
// Group keys hash onto a fixed set of stripes, so memory stays bounded no
// matter how many groups are ever written; a hash collision only makes two
// groups share a lock.
// The app runs as a single process, so a process-local lock suffices; a
// multi-instance deployment would swap this for SELECT ... FOR UPDATE on
// the parent row.
func (s *Store) lockGroup(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &s.groups[h.Sum32()%uint32(len(s.groups))]
	m.Lock()
	return m.Unlock
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
