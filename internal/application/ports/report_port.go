package ports

import "github.com/jhoicas/recout-api/internal/application/dto"

// MonthlyReportRenderer genera el PDF del reporte mensual de producción.
type MonthlyReportRenderer interface {
	RenderMonthlyReport(report dto.MonthlyReportDTO) ([]byte, error)
}
