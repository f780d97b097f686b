// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// shopperID extracts the authenticated shopper's ID set by the auth
// middleware.
func shopperID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("shopperID").(uuid.UUID)

	return id, ok
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
