package models

// Room describes a bookable room. Static reference data owned by the caller;
// the store never persists it.
type Room struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// DefaultRooms returns the built-in room catalog.
func DefaultRooms() []Room {
	return []Room{
		{ID: 1, Name: "Aurora", Capacity: 4, Amenities: []string{"whiteboard", "tv"}},
		{ID: 2, Name: "Baltic", Capacity: 8, Amenities: []string{"whiteboard", "projector", "conference-phone"}},
		{ID: 3, Name: "Cascade", Capacity: 2, Amenities: []string{"tv"}},
		{ID: 4, Name: "Dune", Capacity: 12, Amenities: []string{"projector", "conference-phone", "whiteboard"}},
		{ID: 5, Name: "Ember", Capacity: 6},
	}
}
