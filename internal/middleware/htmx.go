package middleware

import (
	"net/http"
)

// HTMX flags requests issued by the htmx client, e.g. the listing filter
// input and version-panel toggles, so handlers can serve fragments instead
// of full pages and errors can come back as JSON.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		ctx := WithHTMX(r.Context(), is)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
