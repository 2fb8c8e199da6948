package schema

import (
	"strings"

	"stockfront/internal/model"
)

type proveedorForm struct {
	NombreEmpresa  string `json:"nombre_empresa" validate:"min=3,max=20,soloLetras"`
	NombreContacto string `json:"nombre_contacto" validate:"min=3,max=20,soloLetras"`
	RUC            string `json:"ruc" validate:"ruc11"`
	Descripcion    string `json:"descripcion" validate:"min=1,max=50"`
	Ciudad         string `json:"ciudad" validate:"min=1,max=20,soloLetras"`
	Direccion      string `json:"direccion" validate:"min=1,max=20"`
	NumTelefonico  string `json:"num_telefonico" validate:"telefono9"`
	EmailContacto  string `json:"email_contacto" validate:"email"`
}

var proveedorMensajes = mensajes{
	"ciudad": {"soloLetras": "La ciudad debe contener solo letras"},
}

// ValidarProveedor checks a supplier form and returns the coerced record.
func ValidarProveedor(input map[string]interface{}) (*model.Proveedor, FieldErrors) {
	c := nuevaCoercion(input)
	form := proveedorForm{
		NombreEmpresa:  strings.TrimSpace(c.texto("nombre_empresa")),
		NombreContacto: strings.TrimSpace(c.texto("nombre_contacto")),
		RUC:            c.texto("ruc"),
		Descripcion:    c.texto("descripcion"),
		Ciudad:         c.texto("ciudad"),
		Direccion:      c.texto("direccion"),
		NumTelefonico:  c.texto("num_telefonico"),
		EmailContacto:  c.texto("email_contacto"),
	}
	if errs := correr(form, proveedorMensajes, c.errs); len(errs) > 0 {
		return nil, errs
	}
	ruc, _ := parseDigits(form.RUC)
	tel, _ := parseDigits(form.NumTelefonico)
	return &model.Proveedor{
		NombreEmpresa:  form.NombreEmpresa,
		NombreContacto: form.NombreContacto,
		RUC:            ruc,
		Descripcion:    form.Descripcion,
		Ciudad:         form.Ciudad,
		Direccion:      form.Direccion,
		NumTelefonico:  tel,
		EmailContacto:  form.EmailContacto,
	}, nil
}
