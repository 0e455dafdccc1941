// Package recovery genera planes de reconstrucción con un modelo de lenguaje externo.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
	"github.com/jhoicas/recout-api/internal/domain"
)

// FallbackPlan se devuelve cuando el modelo responde sin texto.
const FallbackPlan = "Não foi possível gerar o plano. Tente novamente com mais detalhes."

const defaultTimeout = 60 * time.Second

// UseCase una llamada por pedido, sin reintentos.
type UseCase struct {
	llm     ports.LLMService
	timeout time.Duration
	log     zerolog.Logger
}

// NewUseCase construye el caso de uso. timeout <= 0 usa 60s.
func NewUseCase(llm ports.LLMService, timeout time.Duration, log zerolog.Logger) *UseCase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UseCase{llm: llm, timeout: timeout, log: log.With().Str("component", "recovery").Logger()}
}

// GeneratePlan valida la descripción y delega al LLM. Cualquier falla del colaborador
// se informa como domain.ErrRecoveryUnavailable; el detalle queda solo en el log.
func (uc *UseCase) GeneratePlan(ctx context.Context, req dto.RecoveryRequest) (*dto.RecoveryResponse, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: descripción vacía", domain.ErrInvalidInput)
	}
	if uc.llm == nil {
		return nil, domain.ErrRecoveryUnavailable
	}

	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	started := time.Now()
	plan, err := uc.llm.GenerateRecoveryPlan(ctx, description)
	if err != nil {
		evt := uc.log.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			evt = uc.log.Warn()
		}
		evt.Err(err).Str("request_id", requestID).Msg("plan de recuperación falló")
		return nil, domain.ErrRecoveryUnavailable
	}
	if strings.TrimSpace(plan) == "" {
		plan = FallbackPlan
	}
	uc.log.Info().Str("request_id", requestID).Dur("took", time.Since(started)).Int("chars", len(plan)).Msg("plan de recuperación generado")
	return &dto.RecoveryResponse{RequestID: requestID, Plan: plan}, nil
}
