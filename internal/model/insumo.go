package model

import "github.com/shopspring/decimal"

// UnidadesMedida are the unit-of-measure codes accepted on insumo creation.
// The catalog is fixed; the backend stores the code verbatim.
var UnidadesMedida = []string{
	"M", "CM", "IN", "KG", "G", "LB", "M2", "CM2", "L", "ML",
	"TEX", "DEN", "GSM", "H", "MIN", "NUM_HILOS", "SPI", "PIEZAS", "DOCENAS",
}

// Insumo is a raw-material item served by the insumos backend.
type Insumo struct {
	ID                int64           `json:"id"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	CostoDeCompra     decimal.Decimal `json:"costo_de_compra"`
	UnidadMedida      string          `json:"unidad_medida"`
	FechaAdquisicion  string          `json:"fecha_adquisicion"` // ISO date, e.g. 2024-05-31
	Stock             int             `json:"stock"`
	AlmacenID         int64           `json:"almacen_id"`
	ProveedorID       int64           `json:"proveedor_id"`
	CategoriaInsumoID int64           `json:"categoria_insumo_id"`
}

