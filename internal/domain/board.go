package domain

// Board is read-only from the client's perspective; it exists to scope
// agents and to populate the board selector.
type Board struct {
	ID   string
	Name string
	Slug string
}
