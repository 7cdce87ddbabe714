package rest

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Gthulhu/kanagawa/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/rs/xid"
)

// domainQueryParam narrows a domain listing to one policy directory.
const domainQueryParam = "domain"

// RequestLogger puts a request-scoped logger into the request context. Every entry carries the
// request id and matched route, plus the scaling domain when the query targets one.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			reqID := req.Header.Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = xid.New().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, reqID)

			fields := logger.Logger(req.Context()).With().
				Str("req_id", reqID).
				Str("method", req.Method).
				Str("route", c.Path())
			if id := c.QueryParam(domainQueryParam); id != "" {
				fields = fields.Str("domain", id)
			}
			log := fields.Logger()
			c.SetRequest(req.WithContext(log.WithContext(req.Context())))

			start := time.Now()
			defer func() {
				if p := recover(); p != nil {
					log.Error().Interface("panic", p).Msgf("recovered from panic: %s", debug.Stack())
					err = echo.NewHTTPError(http.StatusInternalServerError)
				}
				status := c.Response().Status
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
				event := log.Debug()
				switch {
				case status >= http.StatusInternalServerError:
					event = log.Error()
				case status >= http.StatusBadRequest:
					event = log.Warn()
				}
				event.Int("status_code", status).
					Int64("cost_msec", time.Since(start).Milliseconds()).
					Msg("request completed")
			}()
			return next(c)
		}
	}
}
