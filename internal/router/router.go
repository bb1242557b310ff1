package router

import (
	"time"

	"github.com/milagrosarganin/x3-padel-center-website/internal/config"
	"github.com/milagrosarganin/x3-padel-center-website/internal/handler"
	"github.com/milagrosarganin/x3-padel-center-website/internal/middleware"
	"github.com/milagrosarganin/x3-padel-center-website/internal/repository"
	"github.com/milagrosarganin/x3-padel-center-website/internal/service"
	"github.com/milagrosarganin/x3-padel-center-website/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	arqueoRepo := repository.NewArqueoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, rdb)
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoStockRepo)
	arqueoSvc := service.NewArqueoService(arqueoRepo, dispatcher)
	ventaSvc := service.NewVentaService(ventaRepo, inventarioSvc, arqueoRepo, productoRepo, mesaRepo)
	gastoSvc := service.NewGastoService(gastoRepo, arqueoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	mesaSvc := service.NewMesaService(mesaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductoHandler(productoSvc, inventarioSvc)
	ventasH := handler.NewVentaHandler(ventaSvc)
	gastosH := handler.NewGastoHandler(gastoSvc)
	arqueoH := handler.NewArqueoHandler(arqueoSvc)
	proveedoresH := handler.NewProveedorHandler(proveedorSvc)
	mesasH := handler.NewMesaHandler(mesaSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/precio/:id", consultaH.GetPrecio)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		// Ventas — cualquier rol autenticado registra; anular requiere supervision
		v1.POST("/ventas", middleware.RequireRole("cajero", "supervisor", "administrador"), ventasH.Registrar)
		v1.GET("/ventas", middleware.RequireRole("cajero", "supervisor", "administrador"), ventasH.Listar)
		v1.POST("/ventas/:id/anular", middleware.RequireRole("supervisor", "administrador"), ventasH.Anular)

		// Gastos
		v1.POST("/gastos", middleware.RequireRole("cajero", "supervisor", "administrador"), gastosH.Registrar)
		v1.GET("/gastos", middleware.RequireRole("cajero", "supervisor", "administrador"), gastosH.Listar)

		// Arqueo de caja
		arqueo := v1.Group("/arqueo")
		{
			arqueo.POST("/abrir", middleware.RequireRole("cajero", "supervisor", "administrador"), arqueoH.Abrir)
			arqueo.POST("/cerrar", middleware.RequireRole("cajero", "supervisor", "administrador"), arqueoH.Cerrar)
			arqueo.GET("/activo", middleware.RequireRole("cajero", "supervisor", "administrador"), arqueoH.Activo)
			arqueo.GET("/historial", middleware.RequireRole("supervisor", "administrador"), arqueoH.Historial)
		}

		// Productos — lectura para todos, escritura solo administrador
		v1.GET("/productos", middleware.RequireRole("cajero", "supervisor", "administrador"), productosH.Listar)
		v1.GET("/productos/alertas", middleware.RequireRole("cajero", "supervisor", "administrador"), productosH.Alertas)
		v1.GET("/productos/:id", middleware.RequireRole("cajero", "supervisor", "administrador"), productosH.Obtener)
		v1.GET("/productos/:id/movimientos", middleware.RequireRole("supervisor", "administrador"), productosH.Movimientos)
		v1.POST("/productos/:id/stock", middleware.RequireRole("supervisor", "administrador"), productosH.AjustarStock)
		prods := v1.Group("/productos", middleware.RequireRole("administrador"))
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.POST("/:id/reactivar", productosH.Reactivar)
		}

		// Mesas del gastro — las abre y cierra cualquier caja
		mesas := v1.Group("/mesas", middleware.RequireRole("cajero", "supervisor", "administrador"))
		{
			mesas.POST("", mesasH.Crear)
			mesas.GET("", mesasH.Listar)
			mesas.PUT("/:id", mesasH.Actualizar)
			mesas.DELETE("/:id", mesasH.Eliminar)
		}

		// Proveedores — administrador
		prov := v1.Group("/proveedores", middleware.RequireRole("administrador"))
		{
			prov.POST("", proveedoresH.Crear)
			prov.GET("", proveedoresH.Listar)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)
		}

		// Usuarios — administrador
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
			usuarios.POST("/:id/reactivar", authH.ReactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
