package model

// Favorite is an association row linking a User to either a Planet or a
// Person. Exactly one of PlanetID / PeopleID is non-nil; the schema enforces
// this with a CHECK constraint.
//
// WHY *int64 AND NOT int64?
// The two target columns are nullable — a planet favorite has no people_id and
// vice versa. A plain int64 can't distinguish "no value" from "id 0", so we use
// pointers: nil maps to SQL NULL and serializes as JSON null. Both keys are
// always present in the serialized form, one of them null.
//
// Note there is no uniqueness across (user_id, target): duplicate favorites
// are allowed, and removal deletes only the first match.
type Favorite struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PlanetID *int64 `json:"planet_id"`
	PeopleID *int64 `json:"people_id"`
}
