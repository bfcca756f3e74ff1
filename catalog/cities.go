package catalog

import "strings"

// cityStates maps lowercase city names to state abbreviations for the
// city-to-state auto-fill. Reference data only; unknown cities simply miss.
var cityStates = map[string]string{
	"new york":       "NY",
	"buffalo":        "NY",
	"rochester":      "NY",
	"los angeles":    "CA",
	"san diego":      "CA",
	"san jose":       "CA",
	"san francisco":  "CA",
	"sacramento":     "CA",
	"fresno":         "CA",
	"chicago":        "IL",
	"houston":        "TX",
	"san antonio":    "TX",
	"dallas":         "TX",
	"austin":         "TX",
	"fort worth":     "TX",
	"el paso":        "TX",
	"phoenix":        "AZ",
	"tucson":         "AZ",
	"mesa":           "AZ",
	"philadelphia":   "PA",
	"pittsburgh":     "PA",
	"jacksonville":   "FL",
	"miami":          "FL",
	"tampa":          "FL",
	"orlando":        "FL",
	"columbus":       "OH",
	"cleveland":      "OH",
	"cincinnati":     "OH",
	"charlotte":      "NC",
	"raleigh":        "NC",
	"indianapolis":   "IN",
	"seattle":        "WA",
	"spokane":        "WA",
	"denver":         "CO",
	"washington":     "DC",
	"boston":         "MA",
	"nashville":      "TN",
	"memphis":        "TN",
	"detroit":        "MI",
	"grand rapids":   "MI",
	"portland":       "OR",
	"las vegas":      "NV",
	"reno":           "NV",
	"oklahoma city":  "OK",
	"tulsa":          "OK",
	"louisville":     "KY",
	"baltimore":      "MD",
	"milwaukee":      "WI",
	"albuquerque":    "NM",
	"kansas city":    "MO",
	"st. louis":      "MO",
	"atlanta":        "GA",
	"savannah":       "GA",
	"omaha":          "NE",
	"minneapolis":    "MN",
	"new orleans":    "LA",
	"salt lake city": "UT",
	"birmingham":     "AL",
	"boise":          "ID",
	"richmond":       "VA",
	"virginia beach": "VA",
	"des moines":     "IA",
	"little rock":    "AR",
	"wichita":        "KS",
	"charleston":     "SC",
	"columbia":       "SC",
	"jackson":        "MS",
	"hartford":       "CT",
	"providence":     "RI",
	"anchorage":      "AK",
	"honolulu":       "HI",
}

// StateForCity looks up the state for a city, case-insensitively and ignoring
// surrounding whitespace.
func StateForCity(city string) (string, bool) {
	state, ok := cityStates[strings.ToLower(strings.TrimSpace(city))]
	return state, ok
}
