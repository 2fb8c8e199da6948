package model

import "github.com/shopspring/decimal"

// LimiteInsumo is the stock-limit record created alongside each insumo.
// Nombre, Stock and Costo are denormalized copies taken from the insumo
// at creation time (Costo = costo_de_compra * stock).
type LimiteInsumo struct {
	ID                        int64           `json:"id"`
	InsumoID                  int64           `json:"insumoId"`
	Nombre                    string          `json:"nombre"`
	Stock                     int             `json:"stock"`
	LimiteStockout            float64         `json:"limite_stockout"`
	LimiteSobreabastecimiento float64         `json:"limite_sobreabastecimiento"`
	Costo                     decimal.Decimal `json:"costo"`
}

// LimiteProducto mirrors LimiteInsumo for productos; the denormalized cash
// value is EfectivoAproximado = precio_de_venta * stock.
type LimiteProducto struct {
	ID                        int64           `json:"id"`
	ProductoID                int64           `json:"productoId"`
	Nombre                    string          `json:"nombre"`
	Stock                     int             `json:"stock"`
	LimiteStockout            float64         `json:"limite_stockout"`
	LimiteSobreabastecimiento float64         `json:"limite_sobreabastecimiento"`
	EfectivoAproximado        decimal.Decimal `json:"efectivo_aproximado"`
}

