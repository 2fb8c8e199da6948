package schema

import (
	"strings"

	"stockfront/internal/model"
)

// insumoForm validates the full create modal: the insumo itself plus the
// stock-limit thresholds that are captured in the same form but posted to
// the limits resource afterwards.
// The oneof list must stay in sync with model.UnidadesMedida.
type insumoForm struct {
	Nombre                    string  `json:"nombre" validate:"min=3,max=20,soloLetras"`
	Descripcion               string  `json:"descripcion" validate:"min=1,max=50"`
	CostoDeCompra             float64 `json:"costo_de_compra" validate:"min=0"`
	UnidadMedida              string  `json:"unidad_medida" validate:"oneof=M CM IN KG G LB M2 CM2 L ML TEX DEN GSM H MIN NUM_HILOS SPI PIEZAS DOCENAS"`
	FechaAdquisicion          string  `json:"fecha_adquisicion" validate:"datetime=2006-01-02"`
	Stock                     float64 `json:"stock" validate:"gte=0,lte=100"`
	AlmacenID                 int64   `json:"almacen_id" validate:"min=1"`
	ProveedorID               int64   `json:"proveedor_id" validate:"min=1"`
	CategoriaInsumoID         int64   `json:"categoria_insumo_id" validate:"min=1"`
	LimiteStockout            float64 `json:"limite_stockout" validate:"gt=0"`
	LimiteSobreabastecimiento float64 `json:"limite_sobreabastecimiento" validate:"gt=0"`
}

var insumoMensajes = mensajes{
	"unidad_medida": {"oneof": "Unidad de medida invalida"},
	"stock": {
		"gte": "Stock debe ser un número entre 0 y 100",
		"lte": "Stock debe ser un número entre 0 y 100",
	},
	"limite_stockout":            {"gt": "Limite debe ser un número mayor a 0"},
	"limite_sobreabastecimiento": {"gt": "Limite debe ser un número mayor a 0"},
}

// insumoEdicionForm validates the edit modal, which carries the entity
// fields only; thresholds are edited in the limits modal, never here.
type insumoEdicionForm struct {
	Nombre            string  `json:"nombre" validate:"min=3,max=20,soloLetras"`
	Descripcion       string  `json:"descripcion" validate:"min=1,max=50"`
	CostoDeCompra     float64 `json:"costo_de_compra" validate:"min=0"`
	UnidadMedida      string  `json:"unidad_medida" validate:"oneof=M CM IN KG G LB M2 CM2 L ML TEX DEN GSM H MIN NUM_HILOS SPI PIEZAS DOCENAS"`
	FechaAdquisicion  string  `json:"fecha_adquisicion" validate:"datetime=2006-01-02"`
	Stock             float64 `json:"stock" validate:"gte=0,lte=100"`
	AlmacenID         int64   `json:"almacen_id" validate:"min=1"`
	ProveedorID       int64   `json:"proveedor_id" validate:"min=1"`
	CategoriaInsumoID int64   `json:"categoria_insumo_id" validate:"min=1"`
}

// ValidarInsumoEdicion checks an insumo edit form.
func ValidarInsumoEdicion(input map[string]interface{}) (*model.Insumo, FieldErrors) {
	c := nuevaCoercion(input)
	form := insumoEdicionForm{
		Nombre:            strings.TrimSpace(c.texto("nombre")),
		Descripcion:       c.texto("descripcion"),
		CostoDeCompra:     c.numero("costo_de_compra"),
		UnidadMedida:      c.texto("unidad_medida"),
		FechaAdquisicion:  c.texto("fecha_adquisicion"),
		Stock:             c.numero("stock"),
		AlmacenID:         c.entero("almacen_id"),
		ProveedorID:       c.entero("proveedor_id"),
		CategoriaInsumoID: c.entero("categoria_insumo_id"),
	}
	if errs := correr(form, insumoMensajes, c.errs); len(errs) > 0 {
		return nil, errs
	}
	return &model.Insumo{
		Nombre:            form.Nombre,
		Descripcion:       form.Descripcion,
		CostoDeCompra:     decimalDe(form.CostoDeCompra),
		UnidadMedida:      form.UnidadMedida,
		FechaAdquisicion:  form.FechaAdquisicion,
		Stock:             int(form.Stock),
		AlmacenID:         form.AlmacenID,
		ProveedorID:       form.ProveedorID,
		CategoriaInsumoID: form.CategoriaInsumoID,
	}, nil
}

// InsumoConLimites is the coerced result of a valid insumo create form.
type InsumoConLimites struct {
	Insumo                    model.Insumo
	LimiteStockout            float64
	LimiteSobreabastecimiento float64
}

// ValidarInsumo checks an insumo create form.
func ValidarInsumo(input map[string]interface{}) (*InsumoConLimites, FieldErrors) {
	c := nuevaCoercion(input)
	form := insumoForm{
		Nombre:                    strings.TrimSpace(c.texto("nombre")),
		Descripcion:               c.texto("descripcion"),
		CostoDeCompra:             c.numero("costo_de_compra"),
		UnidadMedida:              c.texto("unidad_medida"),
		FechaAdquisicion:          c.texto("fecha_adquisicion"),
		Stock:                     c.numero("stock"),
		AlmacenID:                 c.entero("almacen_id"),
		ProveedorID:               c.entero("proveedor_id"),
		CategoriaInsumoID:         c.entero("categoria_insumo_id"),
		LimiteStockout:            c.numero("limite_stockout"),
		LimiteSobreabastecimiento: c.numero("limite_sobreabastecimiento"),
	}
	if errs := correr(form, insumoMensajes, c.errs); len(errs) > 0 {
		return nil, errs
	}
	return &InsumoConLimites{
		Insumo: model.Insumo{
			Nombre:            form.Nombre,
			Descripcion:       form.Descripcion,
			CostoDeCompra:     decimalDe(form.CostoDeCompra),
			UnidadMedida:      form.UnidadMedida,
			FechaAdquisicion:  form.FechaAdquisicion,
			Stock:             int(form.Stock),
			AlmacenID:         form.AlmacenID,
			ProveedorID:       form.ProveedorID,
			CategoriaInsumoID: form.CategoriaInsumoID,
		},
		LimiteStockout:            form.LimiteStockout,
		LimiteSobreabastecimiento: form.LimiteSobreabastecimiento,
	}, nil
}
