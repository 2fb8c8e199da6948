package controller

import (
	"context"
	"errors"

	"stockfront/internal/resource"
	"stockfront/internal/schema"

	"github.com/rs/zerolog/log"
)

// ErrLimiteNoEncontrado is returned when an entity has no limit record —
// a state the system tolerates, since limit creation can fail after the
// entity itself was persisted.
var ErrLimiteNoEncontrado = errors.New("la entidad no tiene limite de stock")

// ControladorLimites drives the secondary "modify limits" modal. Limits are
// looked up by the owning entity's id, and updates PUT directly without
// reloading the parent list (thresholds are not shown in the entity table).
type ControladorLimites[L any] struct {
	nombre  string
	cliente *resource.Cliente[L]
	// aplicar writes the validated thresholds onto the fetched record.
	aplicar func(*L, schema.LimitesEditados)
	// idPropio extracts the limit record's own id, which keys the update.
	idPropio func(L) int64
}

func NuevoLimites[L any](nombre string, cliente *resource.Cliente[L],
	aplicar func(*L, schema.LimitesEditados), idPropio func(L) int64) *ControladorLimites[L] {
	return &ControladorLimites[L]{nombre: nombre, cliente: cliente, aplicar: aplicar, idPropio: idPropio}
}

// Buscar fetches the limit record for an entity id. An entity created
// without its limit (partial create failure) yields found=false, not an
// error.
func (c *ControladorLimites[L]) Buscar(ctx context.Context, entidadID int64) (*L, bool, error) {
	lim, err := c.cliente.Buscar(ctx, entidadID)
	if err != nil {
		if resource.EsNoEncontrado(err) {
			return nil, false, nil
		}
		log.Error().Str("recurso", c.nombre).Int64("entidad_id", entidadID).Err(err).
			Msg("fallo al buscar el limite")
		return nil, false, err
	}
	return lim, true, nil
}

// Actualizar validates the threshold form, merges it into the entity's
// current limit record, and PUTs it keyed by the record's own id.
func (c *ControladorLimites[L]) Actualizar(ctx context.Context, entidadID int64, input map[string]interface{}) Resultado {
	editados, errs := schema.ValidarLimites(input)
	if len(errs) > 0 {
		return validacion(errs)
	}

	lim, existe, err := c.Buscar(ctx, entidadID)
	if err != nil {
		return fallo(err)
	}
	if !existe {
		return fallo(ErrLimiteNoEncontrado)
	}

	c.aplicar(lim, *editados)
	if _, err := c.cliente.Actualizar(ctx, c.idPropio(*lim), *lim); err != nil {
		log.Error().Str("recurso", c.nombre).Int64("entidad_id", entidadID).Err(err).
			Msg("fallo al actualizar el limite")
		return fallo(err)
	}
	return Resultado{Tipo: ResultadoActualizado, Mensaje: "Limite actualizado exitosamente"}
}
