package models

// DestinationRecord is one row of the static destination catalog. Catalog
// rows always carry at least four places, cuisine items, cultural highlights
// and tips so the three-day itinerary template never runs out of material.
type DestinationRecord struct {
	Name        string
	Country     string
	MainCity    string
	Description string
	Aliases     []string
	Places      []string
	Cuisine     []string
	Culture     []string
	Tips        []string
	BestTime    string
}
