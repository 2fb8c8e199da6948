package router

import (
	"time"

	"stockfront/internal/config"
	"stockfront/internal/controller"
	"stockfront/internal/handler"
	"stockfront/internal/middleware"
	"stockfront/internal/model"
	"stockfront/internal/resource"
	"stockfront/internal/schema"
	"stockfront/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Path suffixes per resource. The backends are externally defined and not
// uniform; whatever each one expects is recorded here, not normalized.
var (
	rutasCRUD = resource.Rutas{
		Crear:      "/save",
		Actualizar: "/update/%d",
		Eliminar:   "/delete/%d",
	}
	// categoria-insumo offers no create endpoint
	rutasSinCrear = resource.Rutas{
		Actualizar: "/update/%d",
		Eliminar:   "/delete/%d",
	}
	rutasLimiteInsumo = resource.Rutas{
		SinListado: true,
		Crear:      "/save",
		Actualizar: "/update/%d",
		Buscar:     "/findByInsumoId/%d",
	}
	rutasLimiteProducto = resource.Rutas{
		SinListado: true,
		Crear:      "/save",
		Actualizar: "/update/%d",
		Buscar:     "/findByProductoId/%d",
	}
	rutasSoloListado = resource.Rutas{}
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Controlador ← Cliente ← backend HTTP APIs.
func New(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	timeout := cfg.RequestTimeout()

	// ── Breakers ─────────────────────────────────────────────────────────────
	// One breaker per backend host, shared by every resource on it. They
	// only fast-fail while a host is down; no call is ever retried.
	breakerInsumos := resource.NuevoBreaker(resource.BreakerConfig{})
	breakerProductos := resource.NuevoBreaker(resource.BreakerConfig{})
	breakerCore := resource.NuevoBreaker(resource.BreakerConfig{})

	// ── Resource clients ─────────────────────────────────────────────────────
	almacenes := resource.NuevoCliente[model.Almacen]("almacen", cfg.CoreBaseURL+"/almacen", rutasCRUD, timeout, breakerCore)
	proveedores := resource.NuevoCliente[model.Proveedor]("proveedores", cfg.CoreBaseURL+"/proveedores", rutasCRUD, timeout, breakerCore)
	movimientos := resource.NuevoCliente[model.Movimiento]("movimiento", cfg.CoreBaseURL+"/movimiento", rutasSoloListado, timeout, breakerCore)

	insumos := resource.NuevoCliente[model.Insumo]("insumo", cfg.InsumosBaseURL+"/insumo", rutasCRUD, timeout, breakerInsumos)
	categoriasInsumo := resource.NuevoCliente[model.Categoria]("categoria-insumo", cfg.InsumosBaseURL+"/categoria-insumo", rutasSinCrear, timeout, breakerInsumos)
	limitesInsumo := resource.NuevoCliente[model.LimiteInsumo]("limite-insumo", cfg.InsumosBaseURL+"/limite-insumo", rutasLimiteInsumo, timeout, breakerInsumos)
	alarmasInsumo := resource.NuevoCliente[model.AlarmaInsumo]("alarma-insumo", cfg.InsumosBaseURL+"/alarma-insumo", rutasSoloListado, timeout, breakerInsumos)

	productos := resource.NuevoCliente[model.Producto]("producto", cfg.ProductosBaseURL+"/producto", rutasCRUD, timeout, breakerProductos)
	categoriasProducto := resource.NuevoCliente[model.Categoria]("categoria-producto", cfg.ProductosBaseURL+"/categoria-producto", rutasCRUD, timeout, breakerProductos)
	limitesProducto := resource.NuevoCliente[model.LimiteProducto]("limite-producto", cfg.ProductosBaseURL+"/limite-producto", rutasLimiteProducto, timeout, breakerProductos)
	alarmasProducto := resource.NuevoCliente[model.AlarmaProducto]("alarma-producto", cfg.ProductosBaseURL+"/alarma-producto", rutasSoloListado, timeout, breakerProductos)

	// ── Controllers ──────────────────────────────────────────────────────────
	almacenCtrl := controller.Nuevo(controller.Descriptor[model.Almacen]{
		Nombre:         "almacen",
		Cliente:        almacenes,
		Validar:        sinDependiente(schema.ValidarAlmacen),
		ValidarEdicion: schema.ValidarAlmacen,
		CampoFiltro:    func(a model.Almacen) string { return a.Nombre },
	}, cfg.PageSize)

	proveedorCtrl := controller.Nuevo(controller.Descriptor[model.Proveedor]{
		Nombre:         "proveedores",
		Cliente:        proveedores,
		Validar:        sinDependiente(schema.ValidarProveedor),
		ValidarEdicion: schema.ValidarProveedor,
		CampoFiltro:    func(p model.Proveedor) string { return p.NombreEmpresa },
	}, cfg.PageSize)

	categoriaInsumoCtrl := controller.Nuevo(controller.Descriptor[model.Categoria]{
		Nombre:         "categoria-insumo",
		Cliente:        categoriasInsumo,
		Validar:        sinDependiente(schema.ValidarCategoria),
		ValidarEdicion: schema.ValidarCategoria,
		CampoFiltro:    func(c model.Categoria) string { return c.Nombre },
	}, cfg.PageSize)

	categoriaProductoCtrl := controller.Nuevo(controller.Descriptor[model.Categoria]{
		Nombre:         "categoria-producto",
		Cliente:        categoriasProducto,
		Validar:        sinDependiente(schema.ValidarCategoria),
		ValidarEdicion: schema.ValidarCategoria,
		CampoFiltro:    func(c model.Categoria) string { return c.Nombre },
	}, cfg.PageSize)

	insumoCtrl := controller.Nuevo(controller.Descriptor[model.Insumo]{
		Nombre:         "insumo",
		Cliente:        insumos,
		Validar:        validarInsumo(limitesInsumo),
		ValidarEdicion: schema.ValidarInsumoEdicion,
		CampoFiltro:    func(i model.Insumo) string { return i.Nombre },
	}, cfg.PageSize)

	productoCtrl := controller.Nuevo(controller.Descriptor[model.Producto]{
		Nombre:         "producto",
		Cliente:        productos,
		Validar:        validarProducto(limitesProducto),
		ValidarEdicion: schema.ValidarProductoEdicion,
		CampoFiltro:    func(p model.Producto) string { return p.Nombre },
	}, cfg.PageSize)

	limiteInsumoCtrl := controller.NuevoLimites("limite-insumo", limitesInsumo,
		func(l *model.LimiteInsumo, e schema.LimitesEditados) {
			l.LimiteStockout = e.LimiteStockout
			l.LimiteSobreabastecimiento = e.LimiteSobreabastecimiento
		},
		func(l model.LimiteInsumo) int64 { return l.ID })

	limiteProductoCtrl := controller.NuevoLimites("limite-producto", limitesProducto,
		func(l *model.LimiteProducto, e schema.LimitesEditados) {
			l.LimiteStockout = e.LimiteStockout
			l.LimiteSobreabastecimiento = e.LimiteSobreabastecimiento
		},
		func(l model.LimiteProducto) int64 { return l.ID })

	// Worker dispatcher — report downloads run async through Redis
	dispatcher := worker.NewDispatcher(rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	almacenesH := handler.NuevaEntidad(almacenCtrl)
	proveedoresH := handler.NuevaEntidad(proveedorCtrl)
	insumosH := handler.NuevaEntidad(insumoCtrl)
	productosH := handler.NuevaEntidad(productoCtrl)
	categoriasInsumoH := handler.NuevaEntidad(categoriaInsumoCtrl)
	categoriasProductoH := handler.NuevaEntidad(categoriaProductoCtrl)
	limitesInsumoH := handler.NuevosLimites(limiteInsumoCtrl)
	limitesProductoH := handler.NuevosLimites(limiteProductoCtrl)
	dashboardH := handler.NuevoDashboard(movimientos, cfg.ReportStoragePath)
	alarmasH := handler.NuevasAlarmas(alarmasInsumo, alarmasProducto)
	reportesH := handler.NuevosReportes(dispatcher, cfg.ReportStoragePath)
	healthH := handler.NuevoHealth(rdb, map[string]func() string{
		"insumos":   func() string { return breakerInsumos.Estado().String() },
		"productos": func() string { return breakerProductos.Estado().String() },
		"core":      func() string { return breakerCore.Estado().String() },
	})

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", healthH.Check)

	v1 := r.Group("/v1")
	{
		entidad(v1.Group("/almacenes"), almacenesH)
		entidad(v1.Group("/proveedores"), proveedoresH)
		entidad(v1.Group("/insumos"), insumosH)
		entidad(v1.Group("/productos"), productosH)
		entidad(v1.Group("/categorias-insumo"), categoriasInsumoH)
		entidad(v1.Group("/categorias-producto"), categoriasProductoH)

		v1.GET("/insumos/:id/limite", limitesInsumoH.Obtener)
		v1.PUT("/insumos/:id/limite", limitesInsumoH.Actualizar)
		v1.GET("/productos/:id/limite", limitesProductoH.Obtener)
		v1.PUT("/productos/:id/limite", limitesProductoH.Actualizar)

		v1.GET("/dashboard", dashboardH.Resumen)
		v1.GET("/dashboard/pdf", dashboardH.PDF)

		v1.POST("/reportes/:tipo", reportesH.Solicitar)
		v1.GET("/reportes/:tipo", reportesH.Descargar)

		v1.GET("/alarmas", alarmasH.Listar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// entidad registers the shared CRUD-list surface of one entity. Resources
// whose backend lacks an operation answer 405 through the client.
func entidad[T any](g *gin.RouterGroup, h *handler.EntidadHandler[T]) {
	g.GET("", h.Listar)
	g.POST("", h.Crear)
	g.PUT("/:id", h.Actualizar)
	g.DELETE("/:id", h.Eliminar)
}

// sinDependiente adapts a plain validator into a Descriptor.Validar for
// entities without a stock limit.
func sinDependiente[T any](fn func(map[string]interface{}) (*T, schema.FieldErrors)) func(map[string]interface{}) (*T, controller.PasoDependiente[T], schema.FieldErrors) {
	return func(input map[string]interface{}) (*T, controller.PasoDependiente[T], schema.FieldErrors) {
		rec, errs := fn(input)
		return rec, nil, errs
	}
}
