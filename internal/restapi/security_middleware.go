package restapi

import (
	"net/http"
)

// securityHeaders adds essential security headers to all HTTP responses
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking attacks
		w.Header().Set("X-Frame-Options", "DENY")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Restrictive CSP; this API only serves JSON
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none';")

		// The reference table is public data; allow cross-origin reads
		if r.Header.Get("Origin") != "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		}

		next.ServeHTTP(w, r)
	})
}
