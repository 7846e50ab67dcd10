package domain

// Country, State and City are read-only location reference rows. They are
// seeded at bootstrap and referenced from users by id.

type Country struct {
	ID   int64
	Name string
}

type State struct {
	ID        int64
	CountryID int64
	Name      string
}

type City struct {
	ID      int64
	StateID int64
	Name    string
}

// Coordinates is a latitude/longitude pair. It is only ever produced as a
// complete pair; a partial coordinate is not usable.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
