package middleware

import (
	"crypto/subtle"
	"net/http"

	"clinical-platform/internal/service"
	"clinical-platform/pkg/response"
)

// InternalKeyMiddleware gates service-to-service endpoints behind the
// shared machine credential. It is entirely independent of the token
// system: a valid user token never satisfies this gate and vice versa.
type InternalKeyMiddleware struct {
	serviceKey string
}

func NewInternalKeyMiddleware(serviceKey string) *InternalKeyMiddleware {
	return &InternalKeyMiddleware{serviceKey: serviceKey}
}

func (m *InternalKeyMiddleware) Verify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(service.InternalKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.serviceKey)) != 1 {
			response.Forbidden(w, "Internal access not authorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
