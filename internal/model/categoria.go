package model

// Categoria is the shared shape for insumo and producto categories.
// Both category backends serve the same three fields.
type Categoria struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

