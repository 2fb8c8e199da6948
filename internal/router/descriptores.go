package router

import (
	"context"

	"stockfront/internal/controller"
	"stockfront/internal/model"
	"stockfront/internal/resource"
	"stockfront/internal/schema"

	"github.com/shopspring/decimal"
)

// validarInsumo builds the insumo Descriptor.Validar: the create form
// carries the stock-limit thresholds too, and the returned dependent step
// posts the limit record once the insumo has its server-assigned id.
// The limit denormalizes nombre, stock and costo = costo_de_compra * stock.
func validarInsumo(limites *resource.Cliente[model.LimiteInsumo]) func(map[string]interface{}) (*model.Insumo, controller.PasoDependiente[model.Insumo], schema.FieldErrors) {
	return func(input map[string]interface{}) (*model.Insumo, controller.PasoDependiente[model.Insumo], schema.FieldErrors) {
		conLimites, errs := schema.ValidarInsumo(input)
		if len(errs) > 0 {
			return nil, nil, errs
		}
		dependiente := func(ctx context.Context, creado *model.Insumo) error {
			_, err := limites.Crear(ctx, model.LimiteInsumo{
				InsumoID:                  creado.ID,
				Nombre:                    creado.Nombre,
				Stock:                     creado.Stock,
				LimiteStockout:            conLimites.LimiteStockout,
				LimiteSobreabastecimiento: conLimites.LimiteSobreabastecimiento,
				Costo:                     creado.CostoDeCompra.Mul(decimal.NewFromInt(int64(creado.Stock))),
			})
			return err
		}
		return &conLimites.Insumo, dependiente, nil
	}
}

// validarProducto mirrors validarInsumo; the denormalized cash value is
// efectivo_aproximado = precio_de_venta * stock.
func validarProducto(limites *resource.Cliente[model.LimiteProducto]) func(map[string]interface{}) (*model.Producto, controller.PasoDependiente[model.Producto], schema.FieldErrors) {
	return func(input map[string]interface{}) (*model.Producto, controller.PasoDependiente[model.Producto], schema.FieldErrors) {
		conLimites, errs := schema.ValidarProducto(input)
		if len(errs) > 0 {
			return nil, nil, errs
		}
		dependiente := func(ctx context.Context, creado *model.Producto) error {
			_, err := limites.Crear(ctx, model.LimiteProducto{
				ProductoID:                creado.ID,
				Nombre:                    creado.Nombre,
				Stock:                     creado.Stock,
				LimiteStockout:            conLimites.LimiteStockout,
				LimiteSobreabastecimiento: conLimites.LimiteSobreabastecimiento,
				EfectivoAproximado:        creado.PrecioDeVenta.Mul(decimal.NewFromInt(int64(creado.Stock))),
			})
			return err
		}
		return &conLimites.Producto, dependiente, nil
	}
}
