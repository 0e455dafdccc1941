// Package analytics calcula los contadores derivados del ledger: producción diaria y
// mensual por empleado, ocupación de sectores y las vistas del panel. Nunca escribe.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// TrackedSectors sectores que muestra el panel de ocupación, en orden.
var TrackedSectors = []string{"Triagem", "Corte", "Costura", "Bordado", "Montagem Final", "Embalagem", "Expedição"}

const defaultCapacity = 100

// DefaultCapacities capacidades de fábrica; el resto de sectores usa 100.
func DefaultCapacities() map[string]int {
	return map[string]int{"Expedição": 1000, "Triagem": 500}
}

const alertPercent = 80

var hundred = decimal.NewFromInt(100)

// dayWindow devuelve [medianoche local, medianoche siguiente) en milisegundos.
func dayWindow(now time.Time) (int64, int64) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli()
}

// monthWindow devuelve [día 1 a las 00:00, día 1 del mes siguiente) en milisegundos.
func monthWindow(now time.Time) (int64, int64) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start.UnixMilli(), start.AddDate(0, 1, 0).UnixMilli()
}

func baseOf(employees []entity.Employee, name string) int {
	for _, e := range employees {
		if e.Name == name {
			return e.DailyProductionBase
		}
	}
	return 0
}

func finishedBetween(ledger []entity.ProductionEntry, name string, from, to int64) int {
	n := 0
	for _, p := range ledger {
		if p.EmployeeName == name && p.Status == entity.StatusFinished && p.StartTime >= from && p.StartTime < to {
			n++
		}
	}
	return n
}

// dailyCount = base + entradas finished del empleado iniciadas hoy.
func dailyCount(employees []entity.Employee, ledger []entity.ProductionEntry, name string, now time.Time) int {
	from, to := dayWindow(now)
	return baseOf(employees, name) + finishedBetween(ledger, name, from, to)
}

// monthlyCount = base × día del mes + entradas finished del mes. Es una extrapolación
// del histórico anterior al ledger; no cuadra con la suma de los diarios.
func monthlyCount(employees []entity.Employee, ledger []entity.ProductionEntry, name string, now time.Time) int {
	from, to := monthWindow(now)
	return baseOf(employees, name)*now.Day() + finishedBetween(ledger, name, from, to)
}

// occupancy = productos en el sector + entradas working en el sector.
func occupancy(products []entity.Product, ledger []entity.ProductionEntry, sector string) int {
	n := 0
	for _, p := range products {
		if p.Sector == sector {
			n++
		}
	}
	for _, p := range ledger {
		if p.CurrentSector == sector && p.Status == entity.StatusWorking {
			n++
		}
	}
	return n
}

// fillPercent redondea count/capacity a entero y lo limita a 100.
func fillPercent(count, capacity int) decimal.Decimal {
	if capacity <= 0 {
		return hundred
	}
	pct := decimal.NewFromInt(int64(count)).Mul(hundred).Div(decimal.NewFromInt(int64(capacity))).Round(0)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

func sectorOccupancy(products []entity.Product, ledger []entity.ProductionEntry, capacities map[string]int) []dto.SectorOccupancyDTO {
	out := make([]dto.SectorOccupancyDTO, 0, len(TrackedSectors))
	for _, name := range TrackedSectors {
		capacity, ok := capacities[name]
		if !ok {
			capacity = defaultCapacity
		}
		count := occupancy(products, ledger, name)
		pct := fillPercent(count, capacity)
		out = append(out, dto.SectorOccupancyDTO{
			Name:         name,
			Count:        count,
			Capacity:     capacity,
			FillPercent:  pct,
			OverCapacity: count > capacity,
			Alert:        pct.GreaterThan(decimal.NewFromInt(alertPercent)),
		})
	}
	return out
}
