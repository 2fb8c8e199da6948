package schema

import (
	"strings"

	"stockfront/internal/model"
)

type almacenForm struct {
	Nombre        string `json:"nombre_almacen" validate:"min=3,max=20,soloLetras"`
	Responsable   string `json:"responsable" validate:"min=1,max=30,soloLetras"`
	Ciudad        string `json:"ciudad" validate:"min=1,max=20,soloLetras"`
	Direccion     string `json:"direccion" validate:"min=1,max=20"`
	NumTelefonico string `json:"num_telefonico" validate:"telefono9"`
	EmailContacto string `json:"email_contacto" validate:"email"`
}

var almacenMensajes = mensajes{
	"responsable": {"soloLetras": "El nombre del responsable debe contener solo letras"},
	"ciudad":      {"soloLetras": "La ciudad debe contener solo letras"},
}

// ValidarAlmacen checks a warehouse form and returns the coerced record
// ready for the backend, or one error per offending field.
func ValidarAlmacen(input map[string]interface{}) (*model.Almacen, FieldErrors) {
	c := nuevaCoercion(input)
	form := almacenForm{
		Nombre:        strings.TrimSpace(c.texto("nombre_almacen")),
		Responsable:   c.texto("responsable"),
		Ciudad:        c.texto("ciudad"),
		Direccion:     c.texto("direccion"),
		NumTelefonico: c.texto("num_telefonico"),
		EmailContacto: c.texto("email_contacto"),
	}
	if errs := correr(form, almacenMensajes, c.errs); len(errs) > 0 {
		return nil, errs
	}
	// telefono9 guarantees nine digits, so this parse cannot fail
	tel, _ := parseDigits(form.NumTelefonico)
	return &model.Almacen{
		Nombre:        form.Nombre,
		Responsable:   form.Responsable,
		Ciudad:        form.Ciudad,
		Direccion:     form.Direccion,
		NumTelefonico: tel,
		EmailContacto: form.EmailContacto,
	}, nil
}
