package record

// Sample returns the seed records used by the CLI when no people are
// configured. Each call returns a fresh slice.
func Sample() []Record {
	return []Record{
		{ID: 1, FirstName: "Michael", LastName: "Weston"},
		{ID: 2, FirstName: "Sam", LastName: "Axe"},
		{ID: 3, FirstName: "Fiona", LastName: "Glenanne"},
		{ID: 4, FirstName: "Jesse", LastName: "Porter"},
	}
}
