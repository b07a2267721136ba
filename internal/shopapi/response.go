package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tindahanph/bottleshop/internal/store"
)

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	body := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	if detail != nil {
		body["detail"] = detail
	}
	return c.JSON(status, body)
}

// storeFail maps a facade error onto the API taxonomy: the not-found
// sentinel becomes 404 with only the entity kind, anything else is an
// infrastructure failure surfaced as 500.
func storeFail(c echo.Context, err error, entity string) error {
	if store.IsNotFound(err) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", entity+" not found", nil)
	}
	zap.L().Error("storage failure", zap.String("entity", entity), zap.Error(err))
	return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "storage operation failed", err.Error())
}
