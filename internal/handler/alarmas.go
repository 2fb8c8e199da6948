package handler

import (
	"net/http"

	"stockfront/internal/model"
	"stockfront/internal/resource"

	"github.com/gin-gonic/gin"
)

// Alarma is the merged view of both alarm feeds. EntidadID points at the
// insumo or producto that crossed its limit, depending on Origen.
type Alarma struct {
	ID         int64  `json:"id"`
	Origen     string `json:"origen"` // "insumo" or "producto"
	EntidadID  int64  `json:"entidad_id"`
	TipoAlarma int    `json:"tipo_alarma"`
	Tipo       string `json:"tipo"` // "sobreabastecimiento" or "stockout"
	Fecha      string `json:"fecha"`
}

func tipoAlarma(codigo int) string {
	if codigo == model.TipoAlarmaSobreabastecimiento {
		return "sobreabastecimiento"
	}
	return "stockout"
}

// AlarmasHandler lists the limit-crossing alarms raised by the insumos and
// productos backends. Alarms are read-only; the backends own their
// lifecycle.
type AlarmasHandler struct {
	insumos   *resource.Cliente[model.AlarmaInsumo]
	productos *resource.Cliente[model.AlarmaProducto]
}

func NuevasAlarmas(insumos *resource.Cliente[model.AlarmaInsumo], productos *resource.Cliente[model.AlarmaProducto]) *AlarmasHandler {
	return &AlarmasHandler{insumos: insumos, productos: productos}
}

// Listar fetches both alarm feeds and merges them. If one feed fails the
// other is still served, flagged stale, so the bell icon keeps working when
// a single backend is down.
func (h *AlarmasHandler) Listar(c *gin.Context) {
	ctx := c.Request.Context()
	obsoleto := false
	alarmas := make([]Alarma, 0)

	deInsumos, err := h.insumos.Listar(ctx)
	if err != nil {
		obsoleto = true
	}
	for _, a := range deInsumos {
		alarmas = append(alarmas, Alarma{
			ID: a.ID, Origen: "insumo", EntidadID: a.InsumoID,
			TipoAlarma: a.TipoAlarma, Tipo: tipoAlarma(a.TipoAlarma), Fecha: a.Fecha,
		})
	}

	deProductos, err := h.productos.Listar(ctx)
	if err != nil {
		obsoleto = true
	}
	for _, a := range deProductos {
		alarmas = append(alarmas, Alarma{
			ID: a.ID, Origen: "producto", EntidadID: a.ProductoID,
			TipoAlarma: a.TipoAlarma, Tipo: tipoAlarma(a.TipoAlarma), Fecha: a.Fecha,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(alarmas),
		"alarmas":  alarmas,
		"obsoleto": obsoleto,
	})
}
