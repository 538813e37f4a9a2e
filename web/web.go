// Package web exposes the user tools as a JSON HTTP API.
package web

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/uservault/uservault/users"
)

type Server struct {
	e    *echo.Echo
	addr string
}

func New(svc *users.Service, addr string, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Logger.SetOutput(os.Stderr)

	h := &handlers{
		svc:    svc,
		logger: logger,
	}

	e.GET("/health", h.health)

	api := e.Group("/api/v1")
	api.POST("/users", h.createUser)
	api.GET("/users", h.listUsers)
	api.GET("/users/:id", h.readUser)
	api.PATCH("/users/:id", h.updateUser)
	api.DELETE("/users/:id", h.deleteUser)

	return &Server{
		e:    e,
		addr: addr,
	}
}

func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		_ = s.e.Shutdown(context.Background())
	}()

	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
