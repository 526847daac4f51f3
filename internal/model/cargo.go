package model

import (
	"fmt"
	"time"
)

// CarrierRef is a cargo's reference to the airplane carrying it.
type CarrierRef struct {
	ID         int64  `json:"id"`
	TailNumber string `json:"tail_number"`
	Self       string `json:"self,omitempty"`
}

// Cargo represents a load, carried by at most one airplane at a time.
// Carrier is nil while the cargo is unassigned.
type Cargo struct {
	ID         int64       `json:"id"`
	Weight     int         `json:"weight"`
	Item       string      `json:"item"`
	Carrier    *CarrierRef `json:"carrier"`
	LastUpdate time.Time   `json:"last_update"`
	Self       string      `json:"self,omitempty"`
}

// FillSelf sets absolute self links on the cargo and its carrier reference,
// using the request's base URL (scheme://host).
func (c *Cargo) FillSelf(base string) {
	c.Self = fmt.Sprintf("%s/cargo/%d", base, c.ID)
	if c.Carrier != nil {
		c.Carrier.Self = fmt.Sprintf("%s/airplanes/%d", base, c.Carrier.ID)
	}
}

// CargoFields holds the client-settable cargo attributes. Pointers
// distinguish absent/null fields, which update operations drop before
// applying.
type CargoFields struct {
	Weight *int    `json:"weight,omitempty"`
	Item   *string `json:"item,omitempty"`
}

// CargoList is the paginated response for all cargo records.
// The Cargos key casing is part of the public API. Next is null on the
// last page.
type CargoList struct {
	Cargos []*Cargo `json:"Cargos"`
	Total  int      `json:"total"`
	Next   *string  `json:"next"`
}
