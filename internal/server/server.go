package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/book-manager/internal/config"
	"github.com/snnyvrz/book-manager/internal/db"
	"github.com/snnyvrz/book-manager/internal/docs"
	"github.com/snnyvrz/book-manager/internal/handler"
	"github.com/snnyvrz/book-manager/internal/middleware"
	"github.com/snnyvrz/book-manager/internal/repository"
	"github.com/snnyvrz/book-manager/internal/service"
	"github.com/snnyvrz/book-manager/internal/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const APIBasePath = "/api/v1"

type Server struct {
	Config *config.Config
	Logger *zerolog.Logger
	DB     *gorm.DB

	httpServer *http.Server
}

func New(cfg *config.Config, log *zerolog.Logger, database *gorm.DB, version string) *Server {
	s := &Server{
		Config: cfg,
		Logger: log,
		DB:     database,
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.router(time.Now(), version),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) router(startTime time.Time, version string) *gin.Engine {
	gin.SetMode(s.Config.GinMode)

	e := gin.New()
	e.Use(
		middleware.RequestID(),
		middleware.RequestLogger(*s.Logger),
		middleware.Recovery(),
	)

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, validation.NewErrorResponse(http.StatusNotFound,
			"no route for "+c.Request.Method+" "+c.Request.URL.Path,
		))
	})

	healthHandler := handler.NewHealthHandler(s.DB, startTime, version)
	healthHandler.RegisterRoutes(e)

	api := e.Group(APIBasePath)
	{
		bookService := service.NewBookService(repository.NewGormBookRepository(s.DB))
		bookHandler := handler.NewBookHandler(bookService)
		bookHandler.RegisterRoutes(api)
	}

	docs.SwaggerInfo.BasePath = APIBasePath
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.Logger.Info().
		Str("addr", s.httpServer.Addr).
		Str("gin_mode", s.Config.GinMode).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := db.Close(s.DB); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
