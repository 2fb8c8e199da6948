package model

// Proveedor is a supplier as served by the core backend.
type Proveedor struct {
	ID             int64  `json:"id"`
	NombreEmpresa  string `json:"nombre_empresa"`
	NombreContacto string `json:"nombre_contacto"`
	RUC            int64  `json:"ruc"`
	Descripcion    string `json:"descripcion"`
	Ciudad         string `json:"ciudad"`
	Direccion      string `json:"direccion"`
	NumTelefonico  int64  `json:"num_telefonico"`
	EmailContacto  string `json:"email_contacto"`
}

