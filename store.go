package rpn

// Store is a table of named values that persists across expressions.
// Assignment writes through to it and symbol lookup reads from it. It is
// not safe to use a Store concurrently.
type Store struct {
	vals map[string]float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{vals: make(map[string]float64)}
}

// Set inserts or overwrites the value of a variable.
func (s *Store) Set(name string, value float64) {
	s.vals[name] = value
}

// Get returns the value of a variable. The second result is false if the
// variable has never been assigned.
func (s *Store) Get(name string) (float64, bool) {
	v, ok := s.vals[name]
	return v, ok
}

// Entry is one variable in a store.
type Entry struct {
	Name  string
	Value float64
}

// Entries returns every variable in the store, sorted by name.
func (s *Store) Entries() []Entry {
	v := make([]Entry, 0, len(s.vals))
	for name, val := range s.vals {
		v = append(v, Entry{Name: name, Value: val})
	}
	sortentries(v)
	return v
}

// sortentries sorts entries by name without using package sort because
// that has reflection and allocation problems.
func sortentries(v []Entry) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j].Name < v[j-1].Name; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
