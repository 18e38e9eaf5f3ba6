package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/escola-api/api/swagger"
	"github.com/noah-isme/escola-api/internal/middleware"
	"github.com/noah-isme/escola-api/internal/service"
	"github.com/noah-isme/escola-api/pkg/config"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
	"github.com/noah-isme/escola-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/escola-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/escola-api/pkg/middleware/requestid"
	"github.com/noah-isme/escola-api/pkg/response"
)

// Handlers groups the endpoint handlers mounted by NewRouter. Roster may be
// nil when exports are disabled.
type Handlers struct {
	Classes  *ClassHandler
	Teachers *TeacherHandler
	Students *StudentHandler
	Roster   *RosterHandler
	Health   *HealthHandler
}

// NewRouter builds the gin engine with middleware, the API route table under
// cfg.APIPrefix, operational endpoints and the optional static console.
func NewRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	// Search terms may carry an escaped "/" (%2F); route on the raw path and
	// unescape parameters afterwards.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metrics, "/health", "/ready", "/metrics"))
	}

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", h.Health.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	turmas := api.Group("/turmas")
	turmas.GET("", h.Classes.List)
	turmas.GET("/:id", h.Classes.Get)
	turmas.POST("", h.Classes.Create)
	turmas.PUT("/:id", h.Classes.Update)
	turmas.DELETE("/:id", h.Classes.Delete)
	if cfg.Exports.Enabled && h.Roster != nil {
		turmas.GET("/:id/alunos/export", h.Roster.Export)
	}

	professores := api.Group("/professores")
	professores.GET("", h.Teachers.List)
	professores.GET("/buscar/:termo", h.Teachers.Search)
	professores.GET("/:id", h.Teachers.Get)
	professores.POST("", h.Teachers.Create)
	professores.PUT("/:id", h.Teachers.Update)
	professores.DELETE("/:id", h.Teachers.Delete)

	alunos := api.Group("/alunos")
	alunos.GET("", h.Students.List)
	alunos.GET("/turma/:turmaId", h.Students.ListByClass)
	alunos.GET("/buscar/:termo", h.Students.Search)
	alunos.GET("/:id", h.Students.Get)
	alunos.POST("", h.Students.Create)
	alunos.PUT("/:id", h.Students.Update)
	alunos.DELETE("/:id", h.Students.Delete)

	r.NoRoute(noRoute(cfg, logr))
	return r
}

// noRoute answers unknown API paths with the JSON error contract and, when a
// static console directory is configured, serves its files for everything else.
func noRoute(cfg *config.Config, logr *zap.Logger) gin.HandlerFunc {
	var files http.Handler
	if dir := cfg.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			files = http.FileServer(http.Dir(dir))
		} else {
			logr.Warn("static console directory unavailable", zap.String("dir", dir))
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isAPI := cfg.APIPrefix != "" && (path == cfg.APIPrefix || strings.HasPrefix(path, cfg.APIPrefix+"/"))
		if files != nil && !isAPI && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "rota não encontrada"))
	}
}
