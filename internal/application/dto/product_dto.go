package dto

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Doc     string `json:"doc"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CreateProductRequest alta de pieza. El código se genera en el servidor.
type CreateProductRequest struct {
	Name   string `json:"name"`
	Client string `json:"client"`
	Sector string `json:"sector"`
}

// NextCodeResponse próximo código secuencial disponible.
type NextCodeResponse struct {
	Code string `json:"code"`
}

// SectorRequest alta o edición de sector.
type SectorRequest struct {
	Name        string `json:"name"`
	Manager     string `json:"manager"`
	Description string `json:"description"`
}
