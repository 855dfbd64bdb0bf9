package model

// Planet is a read-only catalogue entity. There is no create/update/delete
// surface for planets — rows are seeded externally (see cmd/seed) and only
// referenced by favorites.
//
// Population is a string, not an int: the source data mixes numbers with
// values like "unknown", so the column is treated as an opaque string.
type Planet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population string `json:"population"`
}
