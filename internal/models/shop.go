package models

// Shop represents a repair workshop returned by the proximity search
type Shop struct {
	ID        int64   `json:"id"`
	Name      string  `json:"nome"`
	Address   string  `json:"endereco,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasCoordinates reports whether the shop can be placed on a map
func (s *Shop) HasCoordinates() bool {
	return s.Latitude != 0 && s.Longitude != 0
}
