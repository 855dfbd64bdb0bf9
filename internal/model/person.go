package model

// Person is a read-only catalogue entity, referenced only by favorites.
// BirthYear is an opaque string ("19BBY") rather than a number.
type Person struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthYear string `json:"birth_year"`
}
