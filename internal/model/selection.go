package model

// Selection is an ordered set of breed names. Insertion order is preserved
// because the gallery concatenates per-breed results in that order. It is not
// safe for concurrent use; the gallery service guards it with its own mutex.
type Selection struct {
	names []string
	index map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{
		index: make(map[string]struct{}),
	}
}

// Toggle adds name if absent and removes it if present. Returns true if the
// name is selected after the call.
func (s *Selection) Toggle(name string) bool {
	if _, exists := s.index[name]; exists {
		s.remove(name)
		return false
	}

	s.names = append(s.names, name)
	s.index[name] = struct{}{}
	return true
}

// Replace discards the current selection and installs names in order,
// dropping duplicates.
func (s *Selection) Replace(names []string) {
	s.names = s.names[:0]
	s.index = make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, exists := s.index[name]; exists {
			continue
		}
		s.names = append(s.names, name)
		s.index[name] = struct{}{}
	}
}

// Clear removes all selected breeds.
func (s *Selection) Clear() {
	s.names = s.names[:0]
	s.index = make(map[string]struct{})
}

// Contains reports whether name is currently selected.
func (s *Selection) Contains(name string) bool {
	_, exists := s.index[name]
	return exists
}

// Names returns the selected breeds in insertion order. The returned slice is
// a copy and safe to hold across later mutations.
func (s *Selection) Names() []string {
	result := make([]string, len(s.names))
	copy(result, s.names)
	return result
}

// Len returns the number of selected breeds.
func (s *Selection) Len() int {
	return len(s.names)
}

func (s *Selection) remove(name string) {
	delete(s.index, name)
	for i, existing := range s.names {
		if existing == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return
		}
	}
}
