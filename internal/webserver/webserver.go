// Package webserver wires the echo instance: middleware, request
// validation, metrics, and the storefront API routes.
package webserver

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tindahanph/bottleshop/config"
	"github.com/tindahanph/bottleshop/internal/shopapi"
	"github.com/tindahanph/bottleshop/internal/store"
)

type WebServer struct {
	appConfig *config.AppConfig
	root      *echo.Echo
}

func NewWebServer(appConfig *config.AppConfig, st store.Store) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &payloadValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddleware("bottleshop"))
	e.Use(requestLogger())

	e.GET("/metrics", echoprometheus.NewHandler())

	shopapi.Register(e, st)

	return &WebServer{appConfig: appConfig, root: e}
}

// Echo exposes the underlying instance for tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.appConfig.Web.Host, s.appConfig.Web.Port)
	zap.L().Info("starting web server", zap.String("listen", addr))
	return s.root.Start(addr)
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			zap.L().Info("http request", fields...)
			return nil
		},
	})
}
