package server

import (
	"net/http"
	"strconv"
	"strings"
)

// SecurityConfig controls the headers and CORS policy applied by
// SecurityMiddleware, and the upper bound on the n argument accepted by
// arithmetic endpoints that take a bit-length or digit-count hint.
type SecurityConfig struct {
	// EnableCORS turns on Access-Control-* response headers.
	EnableCORS bool
	// AllowedOrigins is the set of origins CORS requests are accepted from.
	// A single "*" entry allows any origin.
	AllowedOrigins []string
	// AllowedMethods is advertised in Access-Control-Allow-Methods.
	AllowedMethods []string
	// MaxNValue bounds any request-supplied magnitude hint to guard against
	// requests engineered to allocate unreasonable amounts of memory.
	MaxNValue uint64
}

// DefaultSecurityConfig returns the security policy applied when a host
// process doesn't override it.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxNValue:      1_000_000_000,
	}
}

func allowedOrigin(config SecurityConfig, origin string) (string, bool) {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*", true
		}
		if allowed == origin && origin != "" {
			return origin, true
		}
	}
	return "", false
}

// SecurityMiddleware sets standard security headers on every response, and
// CORS headers (including preflight OPTIONS handling) when enabled.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := allowedOrigin(config, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", strconv.Itoa(86400))
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}
