package handler

import (
	"net/http"
	"strconv"

	"stockfront/internal/apierror"
	"stockfront/internal/controller"

	"github.com/gin-gonic/gin"
)

// EntidadHandler exposes one entity's CRUD-list page over HTTP. Six
// entities share this one implementation; everything entity-specific lives
// in the controller's descriptor.
type EntidadHandler[T any] struct {
	ctrl *controller.Controlador[T]
}

func NuevaEntidad[T any](ctrl *controller.Controlador[T]) *EntidadHandler[T] {
	return &EntidadHandler[T]{ctrl: ctrl}
}

// ListaResponse is the page the table renders.
type ListaResponse[T any] struct {
	Total     int  `json:"total"` // filtered length, for the paginator
	Pagina    int  `json:"pagina"`
	PorPagina int  `json:"por_pagina"`
	Filas     []T  `json:"filas"`
	// Obsoleto flags that the reload failed and Filas is last-known-good.
	Obsoleto bool `json:"obsoleto,omitempty"`
}

// Listar reloads the full list from the backend, applies the client-side
// filter and pagination, and returns the page. On reload failure the
// last-known-good list is served, flagged stale.
func (h *EntidadHandler[T]) Listar(c *gin.Context) {
	obsoleto := false
	if err := h.ctrl.Cargar(c.Request.Context()); err != nil {
		obsoleto = true
	}

	// Query params fully describe the view: an absent param means the default,
	// so nothing lingers from a previous caller's request.
	h.ctrl.SetFiltro(c.Query("filtro"))
	pagina, _ := strconv.Atoi(c.Query("pagina"))
	h.ctrl.SetPagina(pagina)
	porPagina, _ := strconv.Atoi(c.Query("por_pagina"))
	h.ctrl.SetPorPagina(porPagina)

	filtrados := h.ctrl.Filtrados()
	pagina, porPagina = h.ctrl.Paginacion()
	c.JSON(http.StatusOK, ListaResponse[T]{
		Total:     len(filtrados),
		Pagina:    pagina,
		PorPagina: porPagina,
		Filas:     h.ctrl.Pagina(),
		Obsoleto:  obsoleto,
	})
}

func (h *EntidadHandler[T]) Crear(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	responder(c, h.ctrl.Crear(c.Request.Context(), input))
}

func (h *EntidadHandler[T]) Actualizar(c *gin.Context) {
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

func (h *EntidadHandler[T]) Eliminar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	responder(c, h.ctrl.Eliminar(c.Request.Context(), id))
}
