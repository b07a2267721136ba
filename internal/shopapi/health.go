package shopapi

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) health(c echo.Context) error {
	return ok(c, map[string]string{"status": "ok"})
}
