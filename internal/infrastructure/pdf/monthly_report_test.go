package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/infrastructure/pdf"
)

func TestRenderMonthlyReport(t *testing.T) {
	g := pdf.NewMonthlyReportGenerator("Recout")

	out, err := g.RenderMonthlyReport(dto.MonthlyReportDTO{
		MonthLabel: "Outubro 2026",
		Rows: []dto.MonthlyReportRow{
			{Name: "Carlos", Sector: "Corte", Count: 98},
			{Name: "Beatriz", Sector: "Costura", Count: 38},
		},
		GeneratedAt: time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderMonthlyReport_Empty(t *testing.T) {
	out, err := pdf.NewMonthlyReportGenerator("Recout").RenderMonthlyReport(dto.MonthlyReportDTO{MonthLabel: "Janeiro 2027"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
