package model

import "github.com/shopspring/decimal"

// Producto is a finished product served by the productos backend.
type Producto struct {
	ID                  int64           `json:"id"`
	Nombre              string          `json:"nombre"`
	Descripcion         string          `json:"descripcion"`
	PrecioDeVenta       decimal.Decimal `json:"precio_de_venta"`
	FechaProduccion     string          `json:"fecha_produccion"` // ISO date
	Stock               int             `json:"stock"`
	AlmacenID           int64           `json:"almacen_id"`
	CategoriaProductoID int64           `json:"categoria_producto_id"`
}

