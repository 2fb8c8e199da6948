// Package controller holds the stateful orchestration unit behind one
// entity's list page: full list as last fetched, client-side text filter,
// pagination, and validate-then-call-then-reload mutations.
//
// One generic Controlador is instantiated per entity from a Descriptor;
// there is no per-entity controller code.
package controller

import (
	"context"
	"strings"
	"sync"

	"stockfront/internal/resource"
	"stockfront/internal/schema"

	"github.com/rs/zerolog/log"
)

// PasoDependiente creates the dependent record of a just-created entity
// (the stock limit). It runs only after the entity create succeeded and
// receives the persisted copy, since it needs the server-assigned id.
type PasoDependiente[T any] func(ctx context.Context, creado *T) error

// Descriptor declares everything entity-specific about a list page.
type Descriptor[T any] struct {
	Nombre  string // for log context
	Cliente *resource.Cliente[T]
	// Validar coerces and checks the create form; on success it returns the
	// wire record and, when the entity carries a stock limit, the dependent
	// create step bound to the validated thresholds.
	Validar func(input map[string]interface{}) (*T, PasoDependiente[T], schema.FieldErrors)
	// ValidarEdicion checks the edit form, which for entities with a stock
	// limit carries the entity fields only (thresholds have their own modal).
	ValidarEdicion func(input map[string]interface{}) (*T, schema.FieldErrors)
	// CampoFiltro extracts the display field the text filter matches against.
	CampoFiltro func(T) string
}

// Controlador orchestrates one entity's list page. All state is guarded by
// a single mutex; completion of any network call is the only writer.
type Controlador[T any] struct {
	d Descriptor[T]

	mu        sync.Mutex
	lista     []T
	filtro    string
	pagina    int
	porPagina int

	porPaginaDefecto int
}

func Nuevo[T any](d Descriptor[T], porPagina int) *Controlador[T] {
	return &Controlador[T]{d: d, porPagina: porPagina, porPaginaDefecto: porPagina}
}

// Cargar fetches the full list. On failure the previous list is kept
// (last-known-good) and the error is both logged and returned.
func (c *Controlador[T]) Cargar(ctx context.Context) error {
	lista, err := c.d.Cliente.Listar(ctx)
	if err != nil {
		log.Error().Str("recurso", c.d.Nombre).Err(err).Msg("fallo al cargar la lista")
		return err
	}
	c.mu.Lock()
	c.lista = lista
	c.mu.Unlock()
	return nil
}

// SetFiltro replaces the filter text. The page index is intentionally left
// unchanged even if it now exceeds the filtered length; Pagina then yields
// an empty slice until the caller moves back.
func (c *Controlador[T]) SetFiltro(texto string) {
	c.mu.Lock()
	c.filtro = texto
	c.mu.Unlock()
}

func (c *Controlador[T]) SetPagina(pagina int) {
	c.mu.Lock()
	c.pagina = pagina
	c.mu.Unlock()
}

// SetPorPagina replaces the page size; a non-positive n restores the size the
// controller was built with.
func (c *Controlador[T]) SetPorPagina(n int) {
	c.mu.Lock()
	if n <= 0 {
		n = c.porPaginaDefecto
	}
	c.porPagina = n
	c.mu.Unlock()
}

// Paginacion returns the current page index and page size.
func (c *Controlador[T]) Paginacion() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagina, c.porPagina
}

// Filtrados returns the rows whose display field contains the filter text
// case-insensitively as a substring.
func (c *Controlador[T]) Filtrados() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filtro == "" {
		return append([]T(nil), c.lista...)
	}
	aguja := strings.ToLower(c.filtro)
	var out []T
	for _, fila := range c.lista {
		if strings.Contains(strings.ToLower(c.d.CampoFiltro(fila)), aguja) {
			out = append(out, fila)
		}
	}
	return out
}

// Pagina returns the current page of the filtered view.
func (c *Controlador[T]) Pagina() []T {
	filas := c.Filtrados()
	c.mu.Lock()
	pagina, porPagina := c.pagina, c.porPagina
	c.mu.Unlock()
	return Paginar(filas, pagina, porPagina)
}

// Paginar returns the contiguous slice [pagina*porPagina,
// pagina*porPagina+porPagina) clipped to the available length; empty when
// the page is beyond range.
func Paginar[T any](filas []T, pagina, porPagina int) []T {
	if pagina < 0 || porPagina <= 0 {
		return nil
	}
	desde := pagina * porPagina
	if desde >= len(filas) {
		return nil
	}
	hasta := desde + porPagina
	if hasta > len(filas) {
		hasta = len(filas)
	}
	return filas[desde:hasta]
}

// Crear validates the form, posts the entity and, when the entity carries a
// stock limit, posts the dependent limit record with the server-assigned id,
// then reloads the list.
//
// The two calls are strictly sequential and not atomic: if the limit call
// fails the entity persists anyway, reported as ResultadoCreadoSinLimite.
func (c *Controlador[T]) Crear(ctx context.Context, input map[string]interface{}) Resultado {
	rec, dependiente, errs := c.d.Validar(input)
	if len(errs) > 0 {
		return validacion(errs)
	}

	persistido, err := c.d.Cliente.Crear(ctx, *rec)
	if err != nil {
		log.Error().Str("recurso", c.d.Nombre).Err(err).Msg("fallo al crear")
		return fallo(err)
	}

	resultado := creado("Creado exitosamente")
	if dependiente != nil {
		if err := dependiente(ctx, persistido); err != nil {
			log.Warn().Str("recurso", c.d.Nombre).Err(err).
				Msg("entidad creada pero fallo el limite asociado")
			resultado = Resultado{
				Tipo:    ResultadoCreadoSinLimite,
				Mensaje: "Creado sin limite de stock",
				Err:     err,
			}
		}
	}

	// Full reload, not incremental patch. A reload failure keeps the
	// last-known-good list and does not demote the create outcome.
	if err := c.Cargar(ctx); err != nil {
		log.Warn().Str("recurso", c.d.Nombre).Err(err).Msg("fallo la recarga tras crear")
	}
	return resultado
}

// Actualizar validates the edit form and replaces the record, then reloads.
func (c *Controlador[T]) Actualizar(ctx context.Context, id int64, input map[string]interface{}) Resultado {
	rec, errs := c.d.ValidarEdicion(input)
	if len(errs) > 0 {
		return validacion(errs)
	}
	if _, err := c.d.Cliente.Actualizar(ctx, id, *rec); err != nil {
		log.Error().Str("recurso", c.d.Nombre).Int64("id", id).Err(err).Msg("fallo al actualizar")
		return fallo(err)
	}
	if err := c.Cargar(ctx); err != nil {
		log.Warn().Str("recurso", c.d.Nombre).Err(err).Msg("fallo la recarga tras actualizar")
	}
	return Resultado{Tipo: ResultadoActualizado, Mensaje: "Actualizado exitosamente"}
}

// Eliminar deletes by id and reloads. A failure leaves the list untouched.
func (c *Controlador[T]) Eliminar(ctx context.Context, id int64) Resultado {
	if err := c.d.Cliente.Eliminar(ctx, id); err != nil {
		log.Error().Str("recurso", c.d.Nombre).Int64("id", id).Err(err).Msg("fallo al eliminar")
		return fallo(err)
	}
	if err := c.Cargar(ctx); err != nil {
		log.Warn().Str("recurso", c.d.Nombre).Err(err).Msg("fallo la recarga tras eliminar")
	}
	return Resultado{Tipo: ResultadoEliminado, Mensaje: "Eliminado exitosamente"}
}
