package api

import (
	"net"
	"net/http"

	"github.com/matchboardapp/matchboard-server/internal/http/response"
)

// limitMutations throttles write traffic per client address. Reads are
// never limited; the board is a single snapshot and list reads are
// cheap.
func (s *Server) limitMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
			if !s.limiter.Allow(clientKey(r)) {
				s.logger.Warn("mutation rate limit exceeded", "remote", r.RemoteAddr, "path", r.URL.Path)
				response.TooManyRequests(w, "Too many requests, slow down", s.logger)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey extracts the client address without the ephemeral port, so
// one browser doesn't get a fresh bucket per connection.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
