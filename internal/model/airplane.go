package model

import "fmt"

// CargoRef is an embedded reference to a cargo carried by an airplane.
// The weight is denormalized so capacity checks need only the airplane record.
type CargoRef struct {
	ID     int64  `json:"id"`
	Weight int    `json:"weight"`
	Self   string `json:"self,omitempty"`
}

// Airplane represents an aircraft owned by a pilot
type Airplane struct {
	ID         int64      `json:"id"`
	TailNumber string     `json:"tail_number"`
	Type       string     `json:"type"`
	Capacity   int        `json:"capacity"`
	Pilot      string     `json:"pilot"`
	Cargo      []CargoRef `json:"cargo"`
	Self       string     `json:"self,omitempty"`
}

// CargoWeight returns the total weight of all cargo currently embedded
// in the airplane's cargo list.
func (a *Airplane) CargoWeight() int {
	total := 0
	for _, ref := range a.Cargo {
		total += ref.Weight
	}
	return total
}

// HasCapacityFor reports whether adding the given weight would keep the
// airplane within its capacity.
func (a *Airplane) HasCapacityFor(weight int) bool {
	return a.CargoWeight()+weight <= a.Capacity
}

// FillSelf sets absolute self links on the airplane and its embedded cargo
// references, using the request's base URL (scheme://host).
func (a *Airplane) FillSelf(base string) {
	a.Self = fmt.Sprintf("%s/airplanes/%d", base, a.ID)
	for i := range a.Cargo {
		a.Cargo[i].Self = fmt.Sprintf("%s/cargo/%d", base, a.Cargo[i].ID)
	}
}

// AirplaneFields holds the client-settable airplane attributes. Pointers
// distinguish absent/null fields, which update operations drop before
// applying.
type AirplaneFields struct {
	TailNumber *string `json:"tail_number,omitempty"`
	Type       *string `json:"type,omitempty"`
	Capacity   *int    `json:"capacity,omitempty"`
}

// AirplaneList is the paginated response for a pilot's airplanes.
// Next is null on the last page.
type AirplaneList struct {
	Airplanes []*Airplane `json:"airplanes"`
	Total     int         `json:"total"`
	Next      *string     `json:"next"`
}
