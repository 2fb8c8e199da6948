package schema

import (
	"strings"

	"stockfront/internal/model"
)

type productoForm struct {
	Nombre                    string  `json:"nombre" validate:"min=3,max=20,soloLetras"`
	Descripcion               string  `json:"descripcion" validate:"min=1,max=50"`
	PrecioDeVenta             float64 `json:"precio_de_venta" validate:"min=0"`
	FechaProduccion           string  `json:"fecha_produccion" validate:"datetime=2006-01-02"`
	Stock                     float64 `json:"stock" validate:"gte=0,lte=100"`
	AlmacenID                 int64   `json:"almacen_id" validate:"min=1"`
	CategoriaProductoID       int64   `json:"categoria_producto_id" validate:"min=1"`
	LimiteStockout            float64 `json:"limite_stockout" validate:"gt=0"`
	LimiteSobreabastecimiento float64 `json:"limite_sobreabastecimiento" validate:"gt=0"`
}

var productoMensajes = mensajes{
	"stock": {
		"gte": "Stock debe ser un número entre 0 y 100",
		"lte": "Stock debe ser un número entre 0 y 100",
	},
	"limite_stockout":            {"gt": "Limite debe ser un número mayor a 0"},
	"limite_sobreabastecimiento": {"gt": "Limite debe ser un número mayor a 0"},
}

// productoEdicionForm validates the edit modal: entity fields only, and the
// stock ceiling does not apply there (the edit form only requires a
// non-negative stock).
type productoEdicionForm struct {
	Nombre              string  `json:"nombre" validate:"min=3,max=20,soloLetras"`
	Descripcion         string  `json:"descripcion" validate:"min=1,max=50"`
	PrecioDeVenta       float64 `json:"precio_de_venta" validate:"min=0"`
	FechaProduccion     string  `json:"fecha_produccion" validate:"datetime=2006-01-02"`
	Stock               float64 `json:"stock" validate:"gte=0"`
	AlmacenID           int64   `json:"almacen_id" validate:"min=1"`
	CategoriaProductoID int64   `json:"categoria_producto_id" validate:"min=1"`
}

var productoEdicionMensajes = mensajes{
	"stock": {"gte": "Stock debe ser un número mayor a 0"},
}

// ValidarProductoEdicion checks a producto edit form.
func ValidarProductoEdicion(input map[string]interface{}) (*model.Producto, FieldErrors) {
	c := nuevaCoercion(input)
	form := productoEdicionForm{
		Nombre:              strings.TrimSpace(c.texto("nombre")),
		Descripcion:         c.texto("descripcion"),
		PrecioDeVenta:       c.numero("precio_de_venta"),
		FechaProduccion:     c.texto("fecha_produccion"),
		Stock:               c.numero("stock"),
		AlmacenID:           c.entero("almacen_id"),
		CategoriaProductoID: c.entero("categoria_producto_id"),
	}
	if errs := correr(form, productoEdicionMensajes, c.errs); len(errs) > 0 {
		return nil, errs
	}
	return &model.Producto{
		Nombre:              form.Nombre,
		Descripcion:         form.Descripcion,
		PrecioDeVenta:       decimalDe(form.PrecioDeVenta),
		FechaProduccion:     form.FechaProduccion,
		Stock:               int(form.Stock),
		AlmacenID:           form.AlmacenID,
		CategoriaProductoID: form.CategoriaProductoID,
	}, nil
}

// ProductoConLimites is the coerced result of a valid producto create form.
type ProductoConLimites struct {
	Producto                  model.Producto
	LimiteStockout            float64
	LimiteSobreabastecimiento float64
}

// ValidarProducto checks a producto create form.
func ValidarProducto(input map[string]interface{}) (*ProductoConLimites, FieldErrors) {
	c := nuevaCoercion(input)
	form := productoForm{
		Nombre:                    strings.TrimSpace(c.texto("nombre")),
		Descripcion:               c.texto("descripcion"),
		PrecioDeVenta:             c.numero("precio_de_venta"),
		FechaProduccion:           c.texto("fecha_produccion"),
		Stock:                     c.numero("stock"),
		AlmacenID:                 c.entero("almacen_id"),
		CategoriaProductoID:       c.entero("categoria_producto_id"),
		LimiteStockout:            c.numero("limite_stockout"),
		LimiteSobreabastecimiento: c.numero("limite_sobreabastecimiento"),
	}
	if errs := correr(form, productoMensajes, c.errs); len(errs) > 0 {
		return nil, errs
	}
	return &ProductoConLimites{
		Producto: model.Producto{
			Nombre:              form.Nombre,
			Descripcion:         form.Descripcion,
			PrecioDeVenta:       decimalDe(form.PrecioDeVenta),
			FechaProduccion:     form.FechaProduccion,
			Stock:               int(form.Stock),
			AlmacenID:           form.AlmacenID,
			CategoriaProductoID: form.CategoriaProductoID,
		},
		LimiteStockout:            form.LimiteStockout,
		LimiteSobreabastecimiento: form.LimiteSobreabastecimiento,
	}, nil
}
