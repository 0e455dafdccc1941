package usecase

import "github.com/jhoicas/recout-api/internal/application/ports"

// nextID usa los milisegundos actuales como id; si ya existe, el siguiente libre.
func nextID(clock ports.Clock, taken func(int64) bool) int64 {
	id := clock.Now().UnixMilli()
	for taken(id) {
		id++
	}
	return id
}

func clockOrSystem(c ports.Clock) ports.Clock {
	if c == nil {
		return ports.SystemClock{}
	}
	return c
}
