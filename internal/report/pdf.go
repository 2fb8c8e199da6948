package report

// pdf.go — local PDF export of the dashboard summary using go-pdf/fpdf.
// Unlike the backend reports, this one is rendered entirely from the
// aggregation output already in memory.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stockfront/internal/dashboard"

	"github.com/go-pdf/fpdf"
)

var nombresMes = [13]string{"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

// GenerarResumenPDF writes an A4 one-pager with the overview figures and
// returns the path of the generated file.
func GenerarResumenPDF(resumen dashboard.Resumen, directorio string) (string, error) {
	if err := os.MkdirAll(directorio, 0755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}
	ruta := filepath.Join(directorio, "Resumen-Inventario.pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Resumen de Inventario", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if resumen.SinDatos {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(contentW, 8, "Sin movimientos registrados", "", 1, "C", false, 0, "")
		if err := pdf.OutputFileAndClose(ruta); err != nil {
			return "", fmt.Errorf("pdf: escribir archivo: %w", err)
		}
		return ruta, nil
	}

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	linea := func(etiqueta, valor string) {
		pdf.CellFormat(contentW*0.6, 7, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 7, valor, "", 1, "R", false, 0, "")
	}
	linea("Salidas (insumos):", "S/ "+resumen.TotalSalidas.Neg().StringFixed(2))
	linea("Entradas (productos):", "S/ "+resumen.TotalEntradas.StringFixed(2))

	pdf.SetFont("Helvetica", "B", 11)
	linea("Total:", "S/ "+resumen.Total.StringFixed(2))
	pdf.SetFont("Helvetica", "", 10)
	linea("Presupuesto:", "S/ "+resumen.Presupuesto.StringFixed(2))
	linea("Ingreso:", resumen.PorcentajeEntrada.StringFixed(2)+" %")
	linea("Salida:", resumen.PorcentajeSalida.StringFixed(2)+" %")
	pdf.Ln(4)

	// ── Monthly series ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.6, 7, "Mes", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 7, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for mes := 1; mes <= 12; mes++ {
		importe, hay := resumen.PorMes[mes]
		if !hay {
			continue
		}
		pdf.CellFormat(contentW*0.6, 6, nombresMes[mes], "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, "S/ "+importe.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(ruta); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return ruta, nil
}
