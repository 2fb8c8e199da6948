// Package dashboard turns the full movement ledger into the summary figures
// behind the overview page: totals split by item kind and sign, a
// month-bucketed series, and the derived percentages for the composition
// chart.
//
// The partition rule counts only insumo outflows (cantidad < 0, tipo 2) and
// producto inflows (cantidad >= 0, tipo 1); the two remaining combinations
// are dropped from every total. That predicate is inherited from the
// business rule as shipped and is preserved verbatim pending product-owner
// confirmation — do not generalize it here.
package dashboard

import (
	"time"

	"stockfront/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var tres = decimal.NewFromInt(3)
var cien = decimal.NewFromInt(100)

// Resumen is the aggregation output consumed by the overview cards and charts.
type Resumen struct {
	// TotalSalidas accumulates cantidad*precio over insumo outflows; it is
	// negative by construction (cantidad < 0).
	TotalSalidas decimal.Decimal `json:"total_salidas"`
	// TotalEntradas accumulates cantidad*precio over producto inflows.
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	// Total = -TotalSalidas - TotalEntradas, a positive cost figure.
	Total decimal.Decimal `json:"total"`
	// PorMes buckets -cantidad*precio by calendar month (1–12), applying
	// the same partition rule per bucket.
	PorMes map[int]decimal.Decimal `json:"por_mes"`
	// Percentage split of the composition chart, rounded to 2 decimals.
	// Both are zero when SinDatos is set.
	PorcentajeEntrada decimal.Decimal `json:"porcentaje_entrada"`
	PorcentajeSalida  decimal.Decimal `json:"porcentaje_salida"`
	// Presupuesto = Total / 3, rounded to 2 decimals. The divisor is a
	// business heuristic carried over as-is.
	Presupuesto decimal.Decimal `json:"presupuesto"`
	// SinDatos is set when no movement matched the partition rule; the
	// percentage split is undefined then and the caller must render
	// "no data" instead of numbers.
	SinDatos bool `json:"sin_datos"`
}

// cuenta reports whether a movement participates in the aggregation.
func cuenta(m model.Movimiento) bool {
	if m.Cantidad < 0 {
		return m.TipoItem == model.TipoItemInsumo
	}
	return m.TipoItem == model.TipoItemProducto
}

// Resumir aggregates the full ledger into a Resumen. Pure function of its
// input; movements with unparseable dates are excluded from the monthly
// series only.
func Resumir(movimientos []model.Movimiento) Resumen {
	salidas := decimal.Zero
	entradas := decimal.Zero
	porMes := make(map[int]decimal.Decimal)

	for _, m := range movimientos {
		if !cuenta(m) {
			continue
		}
		importe := decimal.NewFromFloat(m.Cantidad).Mul(m.Precio)
		if m.Cantidad < 0 {
			salidas = salidas.Add(importe)
		} else {
			entradas = entradas.Add(importe)
		}

		mes, ok := mesDe(m.Fecha)
		if !ok {
			log.Debug().Int64("movimiento_id", m.ID).Str("fecha", m.Fecha).
				Msg("fecha de movimiento no interpretable, excluida de la serie mensual")
			continue
		}
		porMes[mes] = porMes[mes].Add(importe.Neg())
	}

	r := Resumen{
		TotalSalidas:  salidas,
		TotalEntradas: entradas,
		Total:         salidas.Neg().Sub(entradas),
		PorMes:        porMes,
	}
	r.Presupuesto = r.Total.Div(tres).Round(2)

	// denominador = -salidas + entradas; zero when nothing matched the
	// partition rule, which would make the split divide by zero.
	denominador := salidas.Neg().Add(entradas)
	if denominador.IsZero() {
		r.SinDatos = true
		return r
	}
	r.PorcentajeEntrada = entradas.Mul(cien).Div(denominador).Round(2)
	r.PorcentajeSalida = salidas.Neg().Mul(cien).Div(denominador).Round(2)
	return r
}

// mesDe extracts the calendar month (1–12) from a movement date, which the
// backend serves either as a bare ISO date or a full timestamp.
func mesDe(fecha string) (int, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, fecha); err == nil {
			return int(t.Month()), true
		}
	}
	return 0, false
}
