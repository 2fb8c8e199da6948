package model

// Alarm type codes as emitted by the backends.
const (
	TipoAlarmaSobreabastecimiento = 2 // anything else is a stockout alarm
)

// AlarmaInsumo is raised by the insumos backend when a limit is crossed.
type AlarmaInsumo struct {
	ID         int64  `json:"id"`
	InsumoID   int64  `json:"insumo_id"`
	TipoAlarma int    `json:"tipo_alarma"`
	Fecha      string `json:"fecha"`
}

// AlarmaProducto mirrors AlarmaInsumo for productos.
type AlarmaProducto struct {
	ID         int64  `json:"id"`
	ProductoID int64  `json:"producto_id"`
	TipoAlarma int    `json:"tipo_alarma"`
	Fecha      string `json:"fecha"`
}

