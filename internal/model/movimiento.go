package model

import "github.com/shopspring/decimal"

// TipoItem distinguishes what kind of entity a ledger movement refers to.
type TipoItem int

const (
	TipoItemProducto TipoItem = 1
	TipoItemInsumo   TipoItem = 2
)

// Movimiento is a read-only ledger entry produced by the core backend.
// Cantidad is signed: positive = inflow, negative = outflow.
// The wire name tipo_Item (mixed case) is the backend's — do not fix it here.
type Movimiento struct {
	ID       int64           `json:"id"`
	TipoMov  int             `json:"tipo_mov"`
	TipoItem TipoItem        `json:"tipo_Item"`
	Nombre   string          `json:"nombre"`
	Cantidad float64         `json:"cantidad"`
	Fecha    string          `json:"fecha"`
	Precio   decimal.Decimal `json:"precio"`
}

