// Package catalog holds the static destination reference data used by the
// deterministic plan synthesizer. The table is fixed at compile time; Lookup
// never fails and falls back to a generic record for unknown destinations.
package catalog

import (
	"strings"
	"unicode"

	"travel-planner-api/internal/models"
)

// records is iterated in declaration order. Substring matching can produce
// several candidates ("rajasthan desert tour" vs a hypothetical "desert"
// entry), so the order here is part of the contract: first match wins.
var records = []models.DestinationRecord{
	{
		Name:        "Uttar Pradesh",
		Country:     "India",
		MainCity:    "Lucknow",
		Description: "The heartland of India with rich cultural heritage and historical monuments",
		Aliases:     []string{"up"},
		Places:      []string{"Taj Mahal (Agra)", "Varanasi Ghats", "Mathura-Vrindavan", "Lucknow", "Ayodhya", "Allahabad (Prayagraj)", "Fatehpur Sikri", "Sarnath"},
		Cuisine:     []string{"Lucknowi Biryani", "Petha (Agra)", "Kachori-Sabzi", "Tunde Kabab", "Malaiyo", "Bedai-Jalebi"},
		Culture:     []string{"Ganga Aarti at Varanasi", "Holi at Mathura", "Mughal Architecture", "Classical Music Traditions", "Kathak Dance", "Religious Festivals"},
		Tips:        []string{"Visit Taj Mahal at sunrise", "Respect religious customs at temples", "Try street food safely", "Book trains in advance", "Carry hand sanitizer", "Dress modestly at religious places"},
		BestTime:    "October to March (Winter season)",
	},
	{
		Name:        "Rajasthan",
		Country:     "India",
		MainCity:    "Jaipur",
		Description: "Land of Kings with magnificent palaces, forts, and desert landscapes",
		Places:      []string{"Jaipur (Pink City)", "Udaipur (City of Lakes)", "Jodhpur (Blue City)", "Jaisalmer (Golden City)", "Pushkar", "Mount Abu", "Bikaner", "Chittorgarh"},
		Cuisine:     []string{"Dal Baati Churma", "Laal Maas", "Gatte ki Sabzi", "Pyaaz Kachori", "Ghevar", "Mawa Kachori"},
		Culture:     []string{"Folk Music and Dance", "Camel Safari", "Palace Architecture", "Puppet Shows", "Desert Festivals", "Royal Heritage"},
		Tips:        []string{"Carry sunscreen and water", "Bargain at local markets", "Try camel safari in Jaisalmer", "Book heritage hotels", "Respect local customs", "Stay hydrated"},
		BestTime:    "October to March (Winter season)",
	},
	{
		Name:        "Kerala",
		Country:     "India",
		MainCity:    "Kochi",
		Description: "God's Own Country with backwaters, hill stations, and pristine beaches",
		Places:      []string{"Alleppey Backwaters", "Munnar Hill Station", "Kochi (Fort Kochi)", "Thekkady (Periyar)", "Wayanad", "Kovalam Beach", "Kumarakom", "Varkala"},
		Cuisine:     []string{"Kerala Fish Curry", "Appam with Stew", "Puttu and Kadala", "Banana Chips", "Payasam", "Karimeen Fish"},
		Culture:     []string{"Kathakali Dance", "Ayurvedic Treatments", "Houseboat Experience", "Spice Plantations", "Temple Festivals", "Traditional Architecture"},
		Tips:        []string{"Book houseboat in advance", "Try Ayurvedic massage", "Carry mosquito repellent", "Respect local customs", "Try fresh coconut water", "Pack light cotton clothes"},
		BestTime:    "September to March (Post-monsoon and Winter)",
	},
	{
		Name:        "Goa",
		Country:     "India",
		MainCity:    "Panaji",
		Description: "Beach paradise with Portuguese heritage and vibrant nightlife",
		Places:      []string{"Baga Beach", "Calangute Beach", "Old Goa Churches", "Dudhsagar Falls", "Anjuna Beach", "Palolem Beach", "Basilica of Bom Jesus", "Aguada Fort"},
		Cuisine:     []string{"Fish Curry Rice", "Bebinca", "Vindaloo", "Xacuti", "Feni", "Prawn Balchao"},
		Culture:     []string{"Portuguese Architecture", "Beach Shacks", "Carnival Festival", "Flea Markets", "Water Sports", "Sunset Views"},
		Tips:        []string{"Try water sports", "Visit flea markets", "Respect beach rules", "Try local seafood", "Book accommodation early", "Carry sunscreen"},
		BestTime:    "November to February (Winter season)",
	},
	{
		Name:        "Himachal Pradesh",
		Country:     "India",
		MainCity:    "Shimla",
		Description: "Mountain paradise with snow-capped peaks, valleys, and adventure activities",
		Places:      []string{"Shimla", "Manali", "Dharamshala-McLeod Ganj", "Kasol", "Spiti Valley", "Dalhousie", "Kullu", "Rohtang Pass"},
		Cuisine:     []string{"Himachali Dham", "Chana Madra", "Siddu", "Babru", "Aktori", "Mittha"},
		Culture:     []string{"Buddhist Monasteries", "Adventure Sports", "Mountain Trekking", "Local Handicrafts", "Apple Orchards", "Tibetan Culture"},
		Tips:        []string{"Carry warm clothes", "Check road conditions", "Book in advance during peak season", "Try adventure activities", "Respect mountain environment", "Stay hydrated"},
		BestTime:    "March to June and September to November",
	},
}

// Lookup resolves a free-text destination to a catalog record. Matching is
// case-insensitive and bidirectional on substrings, so "Uttar Pradesh Tour"
// matches the "uttar pradesh" key and "UP" matches via its alias. Unknown
// destinations get a synthesized generic record; this function never fails.
func Lookup(name string) models.DestinationRecord {
	input := strings.ToLower(strings.TrimSpace(name))

	for _, rec := range records {
		keys := append([]string{strings.ToLower(rec.Name)}, rec.Aliases...)
		for _, key := range keys {
			if strings.Contains(input, key) || strings.Contains(key, input) {
				return rec
			}
		}
	}

	return defaultRecord(input)
}

// defaultRecord builds a placeholder entry for destinations the catalog does
// not know about, so the synthesizer always has something to template over.
func defaultRecord(input string) models.DestinationRecord {
	display := titleCase(input)
	return models.DestinationRecord{
		Name:        display,
		Country:     "Various",
		MainCity:    display,
		Description: "A wonderful destination to explore - " + display,
		Places:      []string{"Main City Center", "Local Attractions", "Cultural Sites", "Shopping Areas"},
		Cuisine:     []string{"Local Specialties", "Traditional Dishes", "Street Food", "Regional Delicacies"},
		Culture:     []string{"Local Traditions", "Cultural Sites", "Festivals", "Art and Crafts"},
		Tips:        []string{"Research local customs", "Try local cuisine", "Respect traditions", "Stay safe", "Keep documents safe", "Enjoy the experience"},
		BestTime:    "Check local weather patterns",
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
