package store

// Memory is an in-memory KV used by tests and as a fallback when no
// database is available.
type Memory struct {
	m map[string][]byte
}

var _ KV = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Get(key string) ([]byte, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.m[key] = cp
	return nil
}

func (s *Memory) Delete(key string) error {
	delete(s.m, key)
	return nil
}
