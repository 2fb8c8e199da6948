// Package report fetches the backend-generated report files and renders a
// local PDF summary of the dashboard figures.
package report

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"stockfront/internal/resource"
)

// Tipo identifies one of the report endpoints offered by the productos
// backend.
type Tipo string

const (
	TipoGeneral             Tipo = "general"
	TipoStockout            Tipo = "stockout"
	TipoSobreabastecimiento Tipo = "sobreabastecimiento"
	TipoMovimiento          Tipo = "movimiento"
	TipoNombre              Tipo = "nombre" // requires Parametros.Nombre
	TipoFecha               Tipo = "fecha"  // requires FechaInicio and FechaFin
)

// nombresArchivo carries the download filename per report type.
var nombresArchivo = map[Tipo]string{
	TipoGeneral:             "Reporte-General-Productos",
	TipoStockout:            "Reporte-Stockout",
	TipoSobreabastecimiento: "Reporte-Sobreabastecimiento",
	TipoMovimiento:          "Reporte-Movimientos",
	TipoNombre:              "Reporte-por-Nombre",
	TipoFecha:               "Reporte-por-Fecha",
}

// Parametros holds the query parameters of the parameterized reports.
// Dates travel as ISO strings, as the backend expects.
type Parametros struct {
	Nombre      string `json:"nombre,omitempty"`
	FechaInicio string `json:"fecha_inicio,omitempty"`
	FechaFin    string `json:"fecha_fin,omitempty"`
}

// Cliente downloads report files from the backend and saves them under the
// storage directory by the report's filename.
type Cliente struct {
	base       string // e.g. http://localhost:8084/api/report
	directorio string
	http       *http.Client
}

func NuevoCliente(base, directorio string, timeout time.Duration) *Cliente {
	return &Cliente{
		base:       base,
		directorio: directorio,
		http:       &http.Client{Timeout: timeout},
	}
}

// ValidarTipo reports whether t names a known report endpoint.
func ValidarTipo(t Tipo) bool {
	_, ok := nombresArchivo[t]
	return ok
}

// NombreArchivo returns the download filename of a report type.
func NombreArchivo(t Tipo) (string, bool) {
	nombre, ok := nombresArchivo[t]
	return nombre, ok
}

// Descargar fetches one report and writes it to disk, returning the path of
// the saved file. The body is treated as an opaque binary blob.
func (c *Cliente) Descargar(ctx context.Context, tipo Tipo, p Parametros) (string, error) {
	if !ValidarTipo(tipo) {
		return "", fmt.Errorf("report: tipo desconocido %q", tipo)
	}

	destino := c.base + "/" + string(tipo)
	valores := url.Values{}
	switch tipo {
	case TipoNombre:
		if p.Nombre == "" {
			return "", fmt.Errorf("report: el reporte por nombre requiere el parametro nombre")
		}
		valores.Set("nombre", p.Nombre)
	case TipoFecha:
		if p.FechaInicio == "" || p.FechaFin == "" {
			return "", fmt.Errorf("report: el reporte por fecha requiere fechaInicio y fechaFin")
		}
		valores.Set("fechaInicio", p.FechaInicio)
		valores.Set("fechaFin", p.FechaFin)
	}
	if len(valores) > 0 {
		destino += "?" + valores.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, destino, nil)
	if err != nil {
		return "", fmt.Errorf("report: crear request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("report: GET %s: %w", destino, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cuerpo, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &resource.ErrorHTTP{Recurso: "report", Status: resp.StatusCode, Cuerpo: string(cuerpo)}
	}

	if err := os.MkdirAll(c.directorio, 0755); err != nil {
		return "", fmt.Errorf("report: crear directorio: %w", err)
	}
	ruta := filepath.Join(c.directorio, nombresArchivo[tipo])
	archivo, err := os.Create(ruta)
	if err != nil {
		return "", fmt.Errorf("report: crear archivo: %w", err)
	}
	defer archivo.Close()

	if _, err := io.Copy(archivo, resp.Body); err != nil {
		return "", fmt.Errorf("report: guardar archivo: %w", err)
	}
	return ruta, nil
}
