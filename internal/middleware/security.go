package middleware

import (
	"github.com/labstack/echo/v4"
)

// securityHeaders are set on every response. The API only serves JSON, so the
// content security policy forbids everything.
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
}

// noStoreHeaders keep transaction data out of shared caches
var noStoreHeaders = [][2]string{
	{"Cache-Control", "no-store, no-cache, must-revalidate, private"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// SecurityHeaders adds security headers to responses. Paths in cacheable,
// such as /metrics, skip the no-store headers.
func SecurityHeaders(cacheable ...string) echo.MiddlewareFunc {
	skipNoStore := make(map[string]bool, len(cacheable))
	for _, p := range cacheable {
		skipNoStore[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}

			if !skipNoStore[c.Request().URL.Path] {
				for _, kv := range noStoreHeaders {
					h.Set(kv[0], kv[1])
				}
			}

			return next(c)
		}
	}
}
