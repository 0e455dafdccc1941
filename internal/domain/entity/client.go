package entity

// Client representa un cliente que encarga piezas.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Doc     string `json:"doc"`     // CPF o CNPJ
	Contact string `json:"contact"` // teléfono
	Email   string `json:"email"`
	Address string `json:"address"`
}
