package model

// Almacen is a warehouse as served by the core backend. Field names follow
// the backend's wire format and must not be renamed.
type Almacen struct {
	ID            int64  `json:"id"`
	Nombre        string `json:"nombre_almacen"`
	Responsable   string `json:"responsable"`
	Ciudad        string `json:"ciudad"`
	Direccion     string `json:"direccion"`
	NumTelefonico int64  `json:"num_telefonico"`
	EmailContacto string `json:"email_contacto"`
}

