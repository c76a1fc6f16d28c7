package domain

// Feed represents a configured content source with its delivery destinations
type Feed struct {
	URL          string
	Name         string
	Destinations []string // destination channel ids, fan-out order preserved
}
