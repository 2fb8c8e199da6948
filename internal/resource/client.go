// Package resource issues list/create/update/delete requests against the
// external inventory backends and decodes their JSON responses.
//
// Path suffixes differ per resource (some use /save, /update/{id},
// /delete/{id}, some a findBy lookup) and are configuration, not
// convention: the backends are externally defined and inconsistent, and we
// preserve whatever each one expects. No operation is ever retried.
package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Rutas configures the verb-specific path suffixes of one resource.
// An empty suffix means the backend does not offer that operation.
// Suffixes that key off an id carry a %d placeholder.
type Rutas struct {
	SinListado bool   // true for resources with no list endpoint (limits)
	Crear      string // e.g. "/save"
	Actualizar string // e.g. "/update/%d"
	Eliminar   string // e.g. "/delete/%d"
	Buscar     string // e.g. "/findByInsumoId/%d"
}

// Cliente performs HTTP JSON requests for one entity resource.
type Cliente[T any] struct {
	nombre  string // resource name, for error context
	base    string // e.g. http://localhost:8085/api/almacen
	rutas   Rutas
	http    *http.Client
	breaker *Breaker
}

// NuevoCliente builds a client for one resource. breaker may be nil; when
// set it is typically shared among all resources on the same backend host.
func NuevoCliente[T any](nombre, base string, rutas Rutas, timeout time.Duration, breaker *Breaker) *Cliente[T] {
	return &Cliente[T]{
		nombre:  nombre,
		base:    base,
		rutas:   rutas,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

// Listar fetches the full resource collection.
func (c *Cliente[T]) Listar(ctx context.Context) ([]T, error) {
	if c.rutas.SinListado {
		return nil, fmt.Errorf("%s: listar: %w", c.nombre, ErrNoSoportado)
	}
	var out []T
	if err := c.hacer(ctx, http.MethodGet, c.base, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear posts a new record and returns the persisted copy, including the
// server-assigned id.
func (c *Cliente[T]) Crear(ctx context.Context, rec T) (*T, error) {
	if c.rutas.Crear == "" {
		return nil, fmt.Errorf("%s: crear: %w", c.nombre, ErrNoSoportado)
	}
	var out T
	if err := c.hacer(ctx, http.MethodPost, c.base+c.rutas.Crear, rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar replaces the record with the given id.
func (c *Cliente[T]) Actualizar(ctx context.Context, id int64, rec T) (*T, error) {
	if c.rutas.Actualizar == "" {
		return nil, fmt.Errorf("%s: actualizar: %w", c.nombre, ErrNoSoportado)
	}
	var out T
	url := c.base + fmt.Sprintf(c.rutas.Actualizar, id)
	if err := c.hacer(ctx, http.MethodPut, url, rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar deletes the record with the given id. The backend returns no
// required body.
func (c *Cliente[T]) Eliminar(ctx context.Context, id int64) error {
	if c.rutas.Eliminar == "" {
		return fmt.Errorf("%s: eliminar: %w", c.nombre, ErrNoSoportado)
	}
	url := c.base + fmt.Sprintf(c.rutas.Eliminar, id)
	return c.hacer(ctx, http.MethodDelete, url, nil, nil)
}

// Buscar looks a single record up by id through the resource's findBy path.
func (c *Cliente[T]) Buscar(ctx context.Context, id int64) (*T, error) {
	if c.rutas.Buscar == "" {
		return nil, fmt.Errorf("%s: buscar: %w", c.nombre, ErrNoSoportado)
	}
	var out T
	url := c.base + fmt.Sprintf(c.rutas.Buscar, id)
	if err := c.hacer(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Estado exposes the breaker state for the health endpoint ("cerrado" when
// no breaker is configured).
func (c *Cliente[T]) Estado() string {
	if c.breaker == nil {
		return BreakerCerrado.String()
	}
	return c.breaker.Estado().String()
}

func (c *Cliente[T]) hacer(ctx context.Context, metodo, url string, cuerpo, out interface{}) error {
	if c.breaker == nil {
		return c.viaje(ctx, metodo, url, cuerpo, out)
	}
	// A 4xx means the backend answered: expected lookups of absent records
	// (404) and client mistakes must not poison the shared breaker. Only
	// transport failures and 5xx count against it.
	var errViaje error
	if err := c.breaker.Ejecutar(func() error {
		errViaje = c.viaje(ctx, metodo, url, cuerpo, out)
		var he *ErrorHTTP
		if errors.As(errViaje, &he) && he.Status < 500 {
			return nil
		}
		return errViaje
	}); err != nil {
		return err
	}
	return errViaje
}

func (c *Cliente[T]) viaje(ctx context.Context, metodo, url string, cuerpo, out interface{}) error {
	var lector io.Reader
	if cuerpo != nil {
		data, err := json.Marshal(cuerpo)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", c.nombre, err)
		}
		lector = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, url, lector)
	if err != nil {
		return fmt.Errorf("%s: crear request: %w", c.nombre, err)
	}
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", c.nombre, metodo, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: leer respuesta: %w", c.nombre, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ErrorHTTP{Recurso: c.nombre, Status: resp.StatusCode, Cuerpo: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decodificar respuesta: %w", c.nombre, err)
		}
	}
	return nil
}
