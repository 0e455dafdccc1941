package entity

// Product es una pieza registrada. Code es secuencial y legible ("1001", "1002", ...).
// Client y Sector son referencias por nombre.
type Product struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Client string `json:"client"`
	Sector string `json:"sector"`
}
