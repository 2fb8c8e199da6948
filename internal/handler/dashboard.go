package handler

import (
	"net/http"

	"stockfront/internal/apierror"
	"stockfront/internal/dashboard"
	"stockfront/internal/model"
	"stockfront/internal/report"
	"stockfront/internal/resource"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the overview figures aggregated from the full
// movement ledger. Every request re-reads the ledger; nothing is cached.
type DashboardHandler struct {
	movimientos *resource.Cliente[model.Movimiento]
	directorio  string // where the PDF export lands
}

func NuevoDashboard(movimientos *resource.Cliente[model.Movimiento], directorio string) *DashboardHandler {
	return &DashboardHandler{movimientos: movimientos, directorio: directorio}
}

func (h *DashboardHandler) resumen(c *gin.Context) (dashboard.Resumen, bool) {
	movimientos, err := h.movimientos.Listar(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("fallo al cargar los movimientos")
		responderFallo(c, err)
		return dashboard.Resumen{}, false
	}
	return dashboard.Resumir(movimientos), true
}

// Resumen answers the aggregated overview figures.
func (h *DashboardHandler) Resumen(c *gin.Context) {
	r, ok := h.resumen(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r)
}

// PDF renders the overview as a one-page PDF and streams the file back.
func (h *DashboardHandler) PDF(c *gin.Context) {
	r, ok := h.resumen(c)
	if !ok {
		return
	}
	ruta, err := report.GenerarResumenPDF(r, h.directorio)
	if err != nil {
		log.Error().Err(err).Msg("fallo al generar el PDF del resumen")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el PDF"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Resumen-Inventario.pdf"`)
	c.File(ruta)
}
