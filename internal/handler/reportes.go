package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"stockfront/internal/apierror"
	"stockfront/internal/report"
	"stockfront/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReportesHandler enqueues backend report downloads and serves the files
// once a worker has fetched them. The backend can take a while to render a
// report, so the POST answers immediately with a job id.
type ReportesHandler struct {
	dispatcher *worker.Dispatcher
	directorio string
}

func NuevosReportes(dispatcher *worker.Dispatcher, directorio string) *ReportesHandler {
	return &ReportesHandler{dispatcher: dispatcher, directorio: directorio}
}

// Solicitar enqueues the download of one report type. Parameterized types
// take their values from the query string, mandatory checks included, so a
// bad request never reaches the queue.
func (h *ReportesHandler) Solicitar(c *gin.Context) {
	tipo := report.Tipo(c.Param("tipo"))
	if !report.ValidarTipo(tipo) {
		c.JSON(http.StatusNotFound, apierror.New("Tipo de reporte desconocido"))
		return
	}

	params := report.Parametros{
		Nombre:      c.Query("nombre"),
		FechaInicio: c.Query("fechaInicio"),
		FechaFin:    c.Query("fechaFin"),
	}
	switch tipo {
	case report.TipoNombre:
		if params.Nombre == "" {
			c.JSON(http.StatusBadRequest, apierror.New("El reporte por nombre requiere el parametro nombre"))
			return
		}
	case report.TipoFecha:
		if params.FechaInicio == "" || params.FechaFin == "" {
			c.JSON(http.StatusBadRequest, apierror.New("El reporte por fecha requiere fechaInicio y fechaFin"))
			return
		}
	}

	trabajo := worker.ReporteJob{ID: uuid.NewString(), Tipo: tipo, Parametros: params}
	if err := h.dispatcher.EnqueueReporte(c.Request.Context(), trabajo); err != nil {
		log.Error().Str("tipo", string(tipo)).Err(err).Msg("fallo al encolar el reporte")
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo encolar el reporte"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": trabajo.ID, "tipo": tipo})
}

// Descargar serves the last fetched file of one report type, or 404 until
// a worker has completed the download.
func (h *ReportesHandler) Descargar(c *gin.Context) {
	tipo := report.Tipo(c.Param("tipo"))
	nombre, ok := report.NombreArchivo(tipo)
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Tipo de reporte desconocido"))
		return
	}
	ruta := filepath.Join(h.directorio, nombre)
	if _, err := os.Stat(ruta); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("El reporte aun no esta disponible"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.File(ruta)
}
