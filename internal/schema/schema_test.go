package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func almacenValido() map[string]interface{} {
	return map[string]interface{}{
		"nombre_almacen": "Central",
		"responsable":    "Maria",
		"ciudad":         "Lima",
		"direccion":      "Av. Industrial 450",
		"num_telefonico": "987654321",
		"email_contacto": "central@acme.pe",
	}
}

func insumoValido() map[string]interface{} {
	return map[string]interface{}{
		"nombre":                     "Algodon",
		"descripcion":                "Fardo de algodon crudo",
		"costo_de_compra":            "12.50",
		"unidad_medida":              "KG",
		"fecha_adquisicion":          "2024-05-31",
		"stock":                      "40",
		"almacen_id":                 float64(1),
		"proveedor_id":               float64(2),
		"categoria_insumo_id":        float64(3),
		"limite_stockout":            float64(5),
		"limite_sobreabastecimiento": float64(90),
	}
}

// ── Almacen ──────────────────────────────────────────────────────────────────

func TestValidarAlmacen_Valido(t *testing.T) {
	rec, errs := ValidarAlmacen(almacenValido())
	require.Empty(t, errs)
	require.NotNil(t, rec)
	assert.Equal(t, "Central", rec.Nombre)
	assert.Equal(t, int64(987654321), rec.NumTelefonico)
}

func TestValidarAlmacen_NombreCorto(t *testing.T) {
	in := almacenValido()
	in["nombre_almacen"] = "Ce"
	_, errs := ValidarAlmacen(in)
	assert.Equal(t, MsgDemasiadoPequeno, errs["nombre_almacen"])
}

func TestValidarAlmacen_NombreConDigitos(t *testing.T) {
	in := almacenValido()
	in["nombre_almacen"] = "Central2"
	_, errs := ValidarAlmacen(in)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgSoloLetras, errs["nombre_almacen"])
}

func TestValidarAlmacen_NombreConEspacios(t *testing.T) {
	in := almacenValido()
	in["nombre_almacen"] = "Dos Palabras"
	_, errs := ValidarAlmacen(in)
	assert.Equal(t, MsgSoloLetras, errs["nombre_almacen"])
}

func TestValidarAlmacen_TelefonoInvalido(t *testing.T) {
	in := almacenValido()
	in["num_telefonico"] = "12345678" // eight digits
	_, errs := ValidarAlmacen(in)
	assert.Equal(t, MsgFormato, errs["num_telefonico"])
}

func TestValidarAlmacen_CorreoInvalido(t *testing.T) {
	in := almacenValido()
	in["email_contacto"] = "no-es-un-correo"
	_, errs := ValidarAlmacen(in)
	assert.Equal(t, MsgCorreo, errs["email_contacto"])
}

func TestValidarAlmacen_MensajePersonalizadoResponsable(t *testing.T) {
	in := almacenValido()
	in["responsable"] = "Maria123"
	_, errs := ValidarAlmacen(in)
	assert.Equal(t, "El nombre del responsable debe contener solo letras", errs["responsable"])
}

func TestValidarAlmacen_VariosCamposInvalidos(t *testing.T) {
	in := almacenValido()
	in["nombre_almacen"] = "x1"
	in["num_telefonico"] = "abc"
	_, errs := ValidarAlmacen(in)
	// one message per offending field, valid fields stay clean
	assert.Len(t, errs, 2)
	assert.NotContains(t, errs, "ciudad")
}

func TestValidarAlmacen_DireccionLarga(t *testing.T) {
	in := almacenValido()
	in["direccion"] = "Av. Los Industriales 4500, Mz. B" // over twenty characters
	_, errs := ValidarAlmacen(in)
	assert.Equal(t, MsgDemasiadoGrande, errs["direccion"])
}

// ── Proveedor ────────────────────────────────────────────────────────────────

func TestValidarProveedor_RUC(t *testing.T) {
	in := map[string]interface{}{
		"nombre_empresa":  "Textiles",
		"nombre_contacto": "Jorge",
		"ruc":             "20123456789",
		"descripcion":     "Proveedor de telas",
		"ciudad":          "Arequipa",
		"direccion":       "Calle Uno 12",
		"num_telefonico":  "912345678",
		"email_contacto":  "ventas@textiles.pe",
	}
	rec, errs := ValidarProveedor(in)
	require.Empty(t, errs)
	assert.Equal(t, int64(20123456789), rec.RUC)

	in["ruc"] = "2012345678" // ten digits
	_, errs = ValidarProveedor(in)
	assert.Equal(t, MsgFormato, errs["ruc"])
}

// ── Insumo ───────────────────────────────────────────────────────────────────

func TestValidarInsumo_CoercionDeCadenas(t *testing.T) {
	rec, errs := ValidarInsumo(insumoValido())
	require.Empty(t, errs)
	assert.Equal(t, 40, rec.Insumo.Stock)
	assert.Equal(t, "12.5", rec.Insumo.CostoDeCompra.String())
	assert.Equal(t, float64(5), rec.LimiteStockout)
}

func TestValidarInsumo_StockFueraDeRango(t *testing.T) {
	in := insumoValido()
	in["stock"] = float64(150)
	_, errs := ValidarInsumo(in)
	assert.Equal(t, "Stock debe ser un número entre 0 y 100", errs["stock"])

	in["stock"] = float64(-1)
	_, errs = ValidarInsumo(in)
	assert.Equal(t, "Stock debe ser un número entre 0 y 100", errs["stock"])
}

func TestValidarInsumo_UnidadInvalida(t *testing.T) {
	in := insumoValido()
	in["unidad_medida"] = "TONELADAS"
	_, errs := ValidarInsumo(in)
	assert.Equal(t, "Unidad de medida invalida", errs["unidad_medida"])
}

func TestValidarInsumo_LimiteCero(t *testing.T) {
	in := insumoValido()
	in["limite_stockout"] = float64(0)
	_, errs := ValidarInsumo(in)
	assert.Equal(t, "Limite debe ser un número mayor a 0", errs["limite_stockout"])
}

func TestValidarInsumo_NaNRechazadoAntesDeLosRangos(t *testing.T) {
	in := insumoValido()
	in["stock"] = math.NaN()
	_, errs := ValidarInsumo(in)
	// the type check is the field's first constraint, so it masks the bounds
	assert.Equal(t, MsgTipoInvalido, errs["stock"])
}

func TestValidarInsumo_FechaInvalida(t *testing.T) {
	in := insumoValido()
	in["fecha_adquisicion"] = "31/05/2024"
	_, errs := ValidarInsumo(in)
	assert.Equal(t, MsgTipoInvalido, errs["fecha_adquisicion"])
}

func TestValidarInsumo_StockNoNumerico(t *testing.T) {
	in := insumoValido()
	in["stock"] = "muchos"
	_, errs := ValidarInsumo(in)
	assert.Equal(t, MsgTipoInvalido, errs["stock"])
}

// ── Producto ─────────────────────────────────────────────────────────────────

func TestValidarProducto_Valido(t *testing.T) {
	rec, errs := ValidarProducto(map[string]interface{}{
		"nombre":                     "Polera",
		"descripcion":                "Polera de algodon",
		"precio_de_venta":            float64(35),
		"fecha_produccion":           "2024-06-15",
		"stock":                      float64(10),
		"almacen_id":                 float64(1),
		"categoria_producto_id":      float64(4),
		"limite_stockout":            float64(2),
		"limite_sobreabastecimiento": float64(80),
	})
	require.Empty(t, errs)
	assert.Equal(t, "Polera", rec.Producto.Nombre)
	assert.Equal(t, float64(80), rec.LimiteSobreabastecimiento)
}

// ── Edit forms ───────────────────────────────────────────────────────────────

func TestValidarInsumoEdicion_SinLimites(t *testing.T) {
	in := insumoValido()
	delete(in, "limite_stockout")
	delete(in, "limite_sobreabastecimiento")
	rec, errs := ValidarInsumoEdicion(in)
	require.Empty(t, errs)
	assert.Equal(t, "Algodon", rec.Nombre)
	assert.Equal(t, 40, rec.Stock)
}

func TestValidarProductoEdicion_StockSinTecho(t *testing.T) {
	in := map[string]interface{}{
		"nombre":                "Polera",
		"descripcion":           "Polera de algodon",
		"precio_de_venta":       float64(35),
		"fecha_produccion":      "2024-06-15",
		"stock":                 float64(150),
		"almacen_id":            float64(1),
		"categoria_producto_id": float64(4),
	}
	rec, errs := ValidarProductoEdicion(in)
	require.Empty(t, errs)
	assert.Equal(t, 150, rec.Stock)

	in["stock"] = float64(-3)
	_, errs = ValidarProductoEdicion(in)
	assert.Equal(t, "Stock debe ser un número mayor a 0", errs["stock"])
}

// ── Limites ──────────────────────────────────────────────────────────────────

func TestValidarLimites_CadenasDeDigitos(t *testing.T) {
	rec, errs := ValidarLimites(map[string]interface{}{
		"limite_stockout":            "7",
		"limite_sobreabastecimiento": "95",
	})
	require.Empty(t, errs)
	assert.Equal(t, float64(7), rec.LimiteStockout)
	assert.Equal(t, float64(95), rec.LimiteSobreabastecimiento)
}

func TestValidarLimites_DecimalRechazado(t *testing.T) {
	_, errs := ValidarLimites(map[string]interface{}{
		"limite_stockout":            "7.5",
		"limite_sobreabastecimiento": "95",
	})
	assert.Equal(t, MsgFormato, errs["limite_stockout"])
}

// ── General properties ───────────────────────────────────────────────────────

func TestValidarCategoria_Idempotente(t *testing.T) {
	rec, errs := ValidarCategoria(map[string]interface{}{
		"nombre":      "  Hilos ",
		"descripcion": "Hilos de coser",
	})
	require.Empty(t, errs)

	// re-submitting the coerced record yields the identical success value
	rec2, errs2 := ValidarCategoria(map[string]interface{}{
		"nombre":      rec.Nombre,
		"descripcion": rec.Descripcion,
	})
	require.Empty(t, errs2)
	assert.Equal(t, rec, rec2)
}

func TestValidarCategoria_CamposVacios(t *testing.T) {
	_, errs := ValidarCategoria(map[string]interface{}{})
	assert.Equal(t, MsgDemasiadoPequeno, errs["nombre"])
	assert.Equal(t, MsgDemasiadoPequeno, errs["descripcion"])
}
