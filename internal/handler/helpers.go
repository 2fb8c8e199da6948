package handler

import (
	"errors"
	"net/http"
	"strconv"

	"stockfront/internal/apierror"
	"stockfront/internal/controller"
	"stockfront/internal/resource"

	"github.com/gin-gonic/gin"
)

// idParam parses the numeric :id path parameter. Entities are only ever
// keyed by numeric id, never by name.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return id, true
}

// responder maps a controller outcome onto the HTTP response. The
// controller itself never touches presentation concerns.
func responder(c *gin.Context, r controller.Resultado) {
	switch r.Tipo {
	case controller.ResultadoCreado:
		c.JSON(http.StatusCreated, gin.H{"resultado": "creado", "mensaje": r.Mensaje})
	case controller.ResultadoCreadoSinLimite:
		// Partial failure: the entity exists, its limit record does not.
		c.JSON(http.StatusCreated, gin.H{"resultado": "creado_sin_limite", "mensaje": r.Mensaje})
	case controller.ResultadoActualizado:
		c.JSON(http.StatusOK, gin.H{"resultado": "actualizado", "mensaje": r.Mensaje})
	case controller.ResultadoEliminado:
		c.JSON(http.StatusOK, gin.H{"resultado": "eliminado", "mensaje": r.Mensaje})
	case controller.ResultadoValidacion:
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(r.Campos))
	default:
		responderFallo(c, r.Err)
	}
}

// responderFallo translates backend failures without leaking their bodies.
func responderFallo(c *gin.Context, err error) {
	switch {
	case resource.EsNoEncontrado(err):
		c.JSON(http.StatusNotFound, apierror.New("No encontrado"))
	case errors.Is(err, resource.ErrBreakerAbierto):
		c.JSON(http.StatusServiceUnavailable, apierror.New("Backend no disponible"))
	case errors.Is(err, resource.ErrNoSoportado):
		c.JSON(http.StatusMethodNotAllowed, apierror.New("Operacion no soportada"))
	case errors.Is(err, controller.ErrLimiteNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Limite no encontrado"))
	default:
		c.JSON(http.StatusBadGateway, apierror.New("Error al comunicarse con el backend"))
	}
}
