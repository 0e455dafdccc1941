package entity

// Sector es una etapa del flujo de producción. Name es la clave de unión entre entidades.
type Sector struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Manager     string `json:"manager"`
	Description string `json:"description"`
}
