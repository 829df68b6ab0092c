package record

import "fmt"

// Record is a single person entry. Records are values and are never mutated
// once stored.
type Record struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// String returns a console-friendly representation of the record.
func (r Record) String() string {
	return fmt.Sprintf("#%d %s %s", r.ID, r.FirstName, r.LastName)
}
