package record

import (
	"fmt"
	"strconv"

	"github.com/kbukum/peoplequery/errors"
	"github.com/kbukum/peoplequery/validation"
)

const resourceName = "record"

// Store is a read-only, ordered collection of records indexed by id.
type Store struct {
	records []Record
	byID    map[int]int
}

// NewStore copies records into a new Store. Ids must be positive and unique.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records: make([]Record, len(records)),
		byID:    make(map[int]int, len(records)),
	}
	copy(s.records, records)

	for i, r := range s.records {
		v := validation.New().Min(fmt.Sprintf("records[%d].id", i), r.ID, 1)
		if appErr := v.Validate(); appErr != nil {
			return nil, appErr
		}
		if _, exists := s.byID[r.ID]; exists {
			return nil, errors.AlreadyExists(resourceName, strconv.Itoa(r.ID))
		}
		s.byID[r.ID] = i
	}
	return s, nil
}

// All returns the records in store order. The slice is a copy.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// ByID returns the record with the given id. The second result is false when
// no such record exists.
func (s *Store) ByID(id int) (Record, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
