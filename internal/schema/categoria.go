package schema

import (
	"strings"

	"stockfront/internal/model"
)

type categoriaForm struct {
	Nombre      string `json:"nombre" validate:"min=1,max=20"`
	Descripcion string `json:"descripcion" validate:"min=1,max=50"`
}

// ValidarCategoria checks a category form (shared by insumo and producto
// categories).
func ValidarCategoria(input map[string]interface{}) (*model.Categoria, FieldErrors) {
	c := nuevaCoercion(input)
	form := categoriaForm{
		Nombre:      strings.TrimSpace(c.texto("nombre")),
		Descripcion: c.texto("descripcion"),
	}
	if errs := correr(form, nil, c.errs); len(errs) > 0 {
		return nil, errs
	}
	return &model.Categoria{Nombre: form.Nombre, Descripcion: form.Descripcion}, nil
}
