package http

import (
	"net/http"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service. The service
// trusts them as-is; authenticating the caller is the gateway's job.
const (
	HeaderCourierID     = "X-Courier-ID"
	HeaderDistributorID = "X-Distributor-ID"
	HeaderAPIKey        = "X-API-Key"
)

const (
	contextKeyCourierID     = "courierID"
	contextKeyDistributorID = "distributorID"
)

// CourierIdentity requires a valid X-Courier-ID header and stores the
// parsed ID in the request context for handlers to pick up.
func CourierIdentity() echo.MiddlewareFunc {
	return requireIdentity(HeaderCourierID, contextKeyCourierID)
}

// DistributorIdentity requires a valid X-Distributor-ID header.
func DistributorIdentity() echo.MiddlewareFunc {
	return requireIdentity(HeaderDistributorID, contextKeyDistributorID)
}

func requireIdentity(header, contextKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := ctx.Request().Header.Get(header)
			if raw == "" {
				return writeError(ctx, http.StatusUnauthorized, header+" header is required")
			}
			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return writeError(ctx, http.StatusUnauthorized, header+" header is not a valid UUID")
			}
			ctx.Set(contextKey, id)
			return next(ctx)
		}
	}
}

// APIKey guards service-to-service endpoints with a shared secret.
func APIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Request().Header.Get(HeaderAPIKey) != key {
				return writeError(ctx, http.StatusUnauthorized, "invalid API key")
			}
			return next(ctx)
		}
	}
}

func courierIDFromContext(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(contextKeyCourierID).(kernel.UUID)
	return id
}

func distributorIDFromContext(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(contextKeyDistributorID).(kernel.UUID)
	return id
}
