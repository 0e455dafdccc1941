package dto

import "github.com/jhoicas/recout-api/internal/domain/entity"

// SessionResponse estado de la máquina de producción del operador.
// Applied=false indica una transición ilegal ignorada (no es un error).
type SessionResponse struct {
	State          string                   `json:"state"` // idle | running | finished
	Session        entity.ProductionSession `json:"session"`
	ElapsedSeconds int64                    `json:"elapsedSeconds"`
	Elapsed        string                   `json:"elapsed"` // HH:MM:SS
	Applied        bool                     `json:"applied"`
}

// SelectPartRequest selección de pieza por código.
type SelectPartRequest struct {
	Code string `json:"code"`
}

// SelectSectorRequest selección de sector actual o siguiente.
type SelectSectorRequest struct {
	Sector string `json:"sector"`
}
