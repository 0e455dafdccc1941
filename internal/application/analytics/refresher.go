package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/recout-api/internal/application/dto"
)

const defaultRefreshInterval = time.Second

// Refresher recalcula el resumen periódicamente y lo entrega al suscriptor.
// Lo usa el stream SSE del panel; se detiene con Stop o al cancelar el contexto.
type Refresher struct {
	uc       *DashboardUseCase
	interval time.Duration
	notify   func(*dto.DashboardSummaryDTO)
	log      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher crea el refresher. interval <= 0 usa 1s.
func NewRefresher(uc *DashboardUseCase, interval time.Duration, notify func(*dto.DashboardSummaryDTO), log zerolog.Logger) *Refresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Refresher{uc: uc, interval: interval, notify: notify, log: log}
}

// Start lanza el ciclo. Emite un resumen inmediato y luego uno por tick.
// Llamarlo dos veces sin Stop no hace nada.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.run(ctx, r.done)
}

// Stop cancela el ciclo y espera a que termine.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done se cierra cuando el ciclo termina (Stop o contexto cancelado).
func (r *Refresher) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return r.done
}

func (r *Refresher) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	summary, err := r.uc.Summary(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.log.Warn().Err(err).Msg("refresco del panel falló")
		}
		return
	}
	r.notify(summary)
}
