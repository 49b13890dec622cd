package fx

import (
	"context"
	"errors"
	"net"
	"net/http"

	"Cofrinho/config"
	"Cofrinho/internal/logger"
	"Cofrinho/internal/metrics"
	"Cofrinho/internal/middleware"
	"Cofrinho/internal/routes"

	docs "Cofrinho/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
		newHTTPServer,
	),
	fx.Invoke(
		setupRoutes,
		startServer,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	return router
}

func newHTTPServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func setupRoutes(
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	rateLimiter *middleware.RateLimiter,
	m *metrics.Metrics,
) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.Metrics.Enabled {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser(rateLimiter))
	handler.RegisterGoalRoutes(private)
}

func startServer(lc fx.Lifecycle, cfg *config.Config, srv *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			logger.Info().
				Str("address", srv.Addr).
				Str("environment", cfg.App.Environment).
				Msg("Servidor iniciando")

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
