package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/setforge/setforge/internal/set"
)

// Server is the suggestion backend: a small HTTP surface over a Source.
type Server struct {
	echo   *echo.Echo
	source Source
	logger *log.Logger
}

func NewServer(source Source, logger *log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		source: source,
		logger: logger,
	}
	e.Use(s.requestLogger)
	e.POST("/api/build-set", s.handleBuildSet)
	return s
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Info("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
		)
		return err
	}
}

func (s *Server) handleBuildSet(c echo.Context) error {
	var req struct {
		Prompt string `json:"prompt"`
	}
	// A missing or malformed body is treated the same as an empty prompt.
	_ = c.Bind(&req)

	prompt := set.Normalize(req.Prompt)
	if prompt == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "A prompt describing the set is required.",
		})
	}

	items, err := s.source.Items(c.Request().Context(), prompt)
	if err != nil {
		s.logger.Error("failed to generate set items", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Handler exposes the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(port int) error {
	return s.echo.Start(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
