package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/config"
)

// corsPolicy is CORSConfig parsed once at startup.
type corsPolicy struct {
	anyOrigin   bool
	origins     []string
	methods     string
	headers     string
	expose      string
	credentials bool
	maxAge      string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		methods:     joinList(cfg.AllowedMethods),
		headers:     joinList(cfg.AllowedHeaders),
		expose:      joinList(cfg.ExposedHeaders),
		credentials: cfg.AllowCredentials,
		maxAge:      strconv.Itoa(cfg.MaxAge),
	}
	for _, o := range splitList(cfg.AllowedOrigins) {
		if o == "*" {
			p.anyOrigin = true
			continue
		}
		p.origins = append(p.origins, o)
	}
	return p
}

func (p corsPolicy) allows(origin string) bool {
	return origin != "" && (p.anyOrigin || slices.Contains(p.origins, origin))
}

// CORS answers preflight requests with 204 and decorates every other
// response for allowed origins. The origin is echoed back rather than "*",
// so credentials work with a wildcard list. Headers in ExposedHeaders
// (X-Request-Id, X-Blocks-Failed) become readable by browser scripts.
func CORS(cfg config.CORSConfig) Middleware {
	p := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := p.allows(origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if p.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", p.methods)
				h.Set("Access-Control-Allow-Headers", p.headers)
				h.Set("Access-Control-Max-Age", p.maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed && p.expose != "" {
				h.Set("Access-Control-Expose-Headers", p.expose)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinList(s string) string {
	return strings.Join(splitList(s), ", ")
}
