package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/recout-api/internal/domain/entity"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary (y de cada evento SSE).
type DashboardSummaryDTO struct {
	TodayTotal  int                  `json:"todayTotal"` // producción de hoy de todos los empleados
	Live        []LiveProductionDTO  `json:"live"`
	Sectors     []SectorOccupancyDTO `json:"sectors"`
	TotalWIP    int                  `json:"totalWip"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// LiveProductionDTO una entrada working/paused con su tiempo transcurrido.
type LiveProductionDTO struct {
	ID             string  `json:"id"`
	EmployeeName   string  `json:"employeeName"`
	Avatar         *string `json:"avatar"`
	PartName       string  `json:"partName"`
	PartCode       string  `json:"partCode"`
	CurrentSector  string  `json:"currentSector"`
	Status         string  `json:"status"`
	DailyCount     int     `json:"dailyCount"`
	ElapsedSeconds int64   `json:"elapsedSeconds"`
}

// SectorOccupancyDTO ocupación de un sector. Count es el valor crudo; FillPercent está limitado a 100.
// La capacidad es solo informativa: nada impide superarla.
type SectorOccupancyDTO struct {
	Name         string          `json:"name"`
	Count        int             `json:"count"`
	Capacity     int             `json:"capacity"`
	FillPercent  decimal.Decimal `json:"fillPercent"`
	OverCapacity bool            `json:"overCapacity"`
	Alert        bool            `json:"alert"` // FillPercent > 80
}

// MonthlyReportDTO producción mensual por empleado, de mayor a menor.
type MonthlyReportDTO struct {
	MonthLabel  string             `json:"monthLabel"` // ej: "Outubro 2026"
	Rows        []MonthlyReportRow `json:"rows"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

// MonthlyReportRow fila del reporte mensual.
type MonthlyReportRow struct {
	Name   string  `json:"name"`
	Sector string  `json:"sector"`
	Avatar *string `json:"avatar"`
	Count  int     `json:"count"`
}

// DetailsDTO vista de detalle: ledger separado, empleados con su conteo diario y clientes.
type DetailsDTO struct {
	Pending   []entity.ProductionEntry `json:"pending"`
	Finished  []entity.ProductionEntry `json:"finished"`
	Employees []EmployeeDailyDTO       `json:"employees"`
	Clients   []entity.Client          `json:"clients"`
}

// EmployeeDailyDTO empleado con su producción de hoy.
type EmployeeDailyDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Sector     string  `json:"sector"`
	Avatar     *string `json:"avatar"`
	Status     string  `json:"status,omitempty"`
	DailyCount int     `json:"dailyCount"`
}

// RecoveryRequest descripción libre del proyecto a reconstruir.
type RecoveryRequest struct {
	Description string `json:"description"`
}

// RecoveryResponse plan en markdown devuelto por el LLM.
type RecoveryResponse struct {
	RequestID string `json:"requestId"`
	Plan      string `json:"plan"`
}
