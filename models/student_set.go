package models

import "encoding/json"

// StudentSet is an insertion-ordered collection of student records keyed by name.
// Setting a name that is already present replaces that record in place, so the
// student keeps the position of its first appearance.
type StudentSet struct {
	records []StudentRecord
	index   map[string]int
}

// NewStudentSet creates an empty StudentSet
func NewStudentSet() *StudentSet {
	return &StudentSet{index: make(map[string]int)}
}

// Set inserts or replaces the record stored under record.Name
func (s *StudentSet) Set(record StudentRecord) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[record.Name]; ok {
		s.records[i] = record
		return
	}
	s.index[record.Name] = len(s.records)
	s.records = append(s.records, record)
}

// Get returns the record for name
func (s *StudentSet) Get(name string) (StudentRecord, bool) {
	if s == nil {
		return StudentRecord{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return StudentRecord{}, false
	}
	return s.records[i], true
}

// Len returns the number of distinct students
func (s *StudentSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Names returns student names in insertion order
func (s *StudentSet) Names() []string {
	names := make([]string, 0, s.Len())
	for _, r := range s.Records() {
		names = append(names, r.Name)
	}
	return names
}

// Records returns the records in insertion order. The slice must not be modified.
func (s *StudentSet) Records() []StudentRecord {
	if s == nil {
		return nil
	}
	return s.records
}

// MarshalJSON encodes the set as an ordered array of records
func (s *StudentSet) MarshalJSON() ([]byte, error) {
	records := s.Records()
	if records == nil {
		records = []StudentRecord{}
	}
	return json.Marshal(records)
}

// UnmarshalJSON rebuilds the set from an ordered array of records
func (s *StudentSet) UnmarshalJSON(data []byte) error {
	var records []StudentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	*s = StudentSet{index: make(map[string]int, len(records))}
	for _, r := range records {
		s.Set(r)
	}
	return nil
}
