package handler

import (
	"net/http"

	"stockfront/internal/apierror"
	"stockfront/internal/controller"

	"github.com/gin-gonic/gin"
)

// LimitesHandler exposes the secondary limits modal of one entity type.
// The :id parameter is always the owning entity's id, not the limit's.
type LimitesHandler[L any] struct {
	ctrl *controller.ControladorLimites[L]
}

func NuevosLimites[L any](ctrl *controller.ControladorLimites[L]) *LimitesHandler[L] {
	return &LimitesHandler[L]{ctrl: ctrl}
}

// Obtener pre-populates the modal. An entity created without its limit
// (partial create) answers 404 with a defined body instead of failing.
func (h *LimitesHandler[L]) Obtener(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	lim, existe, err := h.ctrl.Buscar(c.Request.Context(), id)
	if err != nil {
		responderFallo(c, err)
		return
	}
	if !existe {
		c.JSON(http.StatusNotFound, apierror.New("Limite no encontrado"))
		return
	}
	c.JSON(http.StatusOK, lim)
}

// Actualizar validates the threshold form and PUTs the merged record. The
// parent entity list is deliberately not reloaded — limits are not shown
// in the entity table.
func (h *LimitesHandler[L]) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	responder(c, h.ctrl.Actualizar(c.Request.Context(), id, input))
}
