package store

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/flavono123/schemer/internal/config"
	"github.com/flavono123/schemer/internal/field"
)

// Edit mutates a private deep copy of the root sequence.
type Edit func(fields *[]*field.Node)

// Store owns the root sequence of the schema tree. Every edit installs a
// fresh deep copy, so a snapshot returned by Fields never changes.
type Store struct {
	fields   []*field.Node
	revision uint64

	undo  []snapshot
	redo  []snapshot
	limit int

	mu sync.RWMutex
}

type snapshot struct {
	fields   []*field.Node
	revision uint64
}

// StoreOptions configures the store.
type StoreOptions struct {
	HistoryLimit int
}

// NewStore creates a store holding a copy of fields.
func NewStore(fields []*field.Node, opts ...StoreOptions) *Store {
	opt := StoreOptions{HistoryLimit: config.DefaultHistoryLimit}
	if len(opts) > 0 && opts[0].HistoryLimit > 0 {
		opt = opts[0]
	}

	return &Store{
		fields: field.CloneAll(fields),
		limit:  opt.HistoryLimit,
	}
}

// Fields returns the current root sequence. Do not mutate it.
func (s *Store) Fields() []*field.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fields
}

// Revision changes every time a new tree is installed.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// Apply runs edit on a deep copy of the tree and installs the copy.
func (s *Store) Apply(edit Edit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := field.CloneAll(s.fields)
	edit(&clone)
	s.install(clone)
}

// applyAt locates id in a deep copy and installs the copy only when the id
// was found, so stale ids leave the tree and history untouched.
func (s *Store) applyAt(id string, op field.Op) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := field.CloneAll(s.fields)
	if !field.Locate(&clone, id, op) {
		return false
	}
	s.install(clone)
	return true
}

// install makes fields current. An edit passed to Apply can break the tree
// invariants; that is logged, the tree is installed anyway.
func (s *Store) install(fields []*field.Node) {
	if err := field.Validate(fields); err != nil {
		log.WithError(err).WithField("revision", s.revision+1).Error("invalid field tree installed")
	}

	s.undo = append(s.undo, snapshot{fields: s.fields, revision: s.revision})
	if len(s.undo) > s.limit {
		s.undo = s.undo[len(s.undo)-s.limit:]
	}
	s.redo = nil

	s.fields = fields
	s.revision++
}

// AddRoot appends a default field to the root sequence.
func (s *Store) AddRoot() string {
	created := field.NewNode()
	s.Apply(func(fields *[]*field.Node) {
		*fields = append(*fields, created)
	})
	return created.ID
}

func (s *Store) Rename(id string, key string) bool {
	return s.applyAt(id, field.RenameOp(key))
}

// Retype ignores an invalid type and reports only whether id exists.
func (s *Store) Retype(id string, t field.Type) bool {
	if !t.Valid() {
		return field.Find(s.Fields(), id) != nil
	}
	return s.applyAt(id, field.RetypeOp(t))
}

// AddSibling inserts a default field right after id and returns its id.
func (s *Store) AddSibling(id string) (string, bool) {
	created := field.NewNode()
	if !s.applyAt(id, field.InsertAfterOp(created)) {
		return "", false
	}
	return created.ID, true
}

// AddChild appends a default field to the object id. The returned id is
// empty, and nothing is installed, when id is not an object.
func (s *Store) AddChild(id string) (string, bool) {
	target := field.Find(s.Fields(), id)
	if target == nil {
		return "", false
	}
	if !target.IsObject() {
		return "", true
	}

	created := field.NewNode()
	if !s.applyAt(id, field.AppendChildOp(created)) {
		return "", false
	}
	return created.ID, true
}

func (s *Store) Delete(id string) bool {
	return s.applyAt(id, field.DeleteOp())
}

// Undo restores the tree before the last edit.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return false
	}
	prev := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, snapshot{fields: s.fields, revision: s.revision})

	s.fields = prev.fields
	s.revision++
	return true
}

// Redo reapplies the last undone edit.
func (s *Store) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redo) == 0 {
		return false
	}
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, snapshot{fields: s.fields, revision: s.revision})

	s.fields = next.fields
	s.revision++
	return true
}

func (s *Store) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.undo) > 0
}

func (s *Store) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.redo) > 0
}
