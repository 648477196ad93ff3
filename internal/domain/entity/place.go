package entity

// Place is a candidate returned by the place-name search.
type Place struct {
	ID        string
	Label     string
	Latitude  float64
	Longitude float64
}

// Location returns the coordinates of the place.
func (p *Place) Location() Location {
	return Location{Latitude: p.Latitude, Longitude: p.Longitude}
}
