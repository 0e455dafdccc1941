package ports

import "context"

// LLMService define el puerto de salida hacia el modelo de lenguaje que redacta
// planes de recuperación. Cualquier adaptador (Gemini, Anthropic, mock) lo implementa.
type LLMService interface {
	// GenerateRecoveryPlan envía la descripción libre y devuelve el texto markdown tal cual.
	// Cadena vacía significa que el modelo no devolvió texto.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateRecoveryPlan(ctx context.Context, description string) (string, error)
}
