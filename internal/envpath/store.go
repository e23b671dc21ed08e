package envpath

// Store is read-modify-write access to the single persisted configuration
// slot holding the PATH value. Read reports ok=false when the slot does not
// exist, which callers treat as an empty sequence. Implementations are not
// required to provide any isolation between Read and Write; the installer
// accepts the race window against other writers of the same slot.
type Store interface {
	Read() (value string, ok bool, err error)
	Write(value string) error
}

// MemoryStore is an in-process Store. It backs tests and the installer's
// dry-run mode, where the PATH cycle runs against a copy of the real value.
type MemoryStore struct {
	value  string
	exists bool
}

// NewMemoryStore returns an empty MemoryStore with no persisted value.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore returns a MemoryStore pre-populated with value.
func NewSeededMemoryStore(value string) *MemoryStore {
	return &MemoryStore{value: value, exists: true}
}

func (s *MemoryStore) Read() (string, bool, error) {
	return s.value, s.exists, nil
}

func (s *MemoryStore) Write(value string) error {
	s.value = value
	s.exists = true
	return nil
}

// Value returns the current stored value and whether one exists.
func (s *MemoryStore) Value() (string, bool) {
	return s.value, s.exists
}
