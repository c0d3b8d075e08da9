package middlewares

import (
	"net/http"
	"strings"
	"time"

	Config "rwa-adapter/config"
	"rwa-adapter/utility/logger"
)

// Middleware ... Middleware struct
type Middleware struct {
	config Config.Data
	next   http.HandlerFunc
}

// NewMiddleware ... Creates a middleware instance
func NewMiddleware(config Config.Data, handler http.HandlerFunc) *Middleware {
	return &Middleware{config, handler}
}

// Build ... Build middleware functions
func (m *Middleware) Build() http.HandlerFunc {
	return m.next
}

// LogAPIRequests ... Logs every incoming request
func (m *Middleware) LogAPIRequests() *Middleware {
	nextHandler := func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		logger.Info("Incoming request from : %s with IP : %s to : %s", requestReader.UserAgent(), getIPAddress(requestReader), requestReader.URL.Path)
		m.next.ServeHTTP(responseWriter, requestReader)
	}
	return &Middleware{m.config, nextHandler}
}

// Timeout ... Bounds request handling to the given duration
func (m *Middleware) Timeout(duration time.Duration) *Middleware {
	handler := http.TimeoutHandler(m.next, duration, "request timed out")
	nextHandler := func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		handler.ServeHTTP(responseWriter, requestReader)
	}
	return &Middleware{m.config, nextHandler}
}

func getIPAddress(requestReader *http.Request) string {
	if forwarded := requestReader.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.Split(forwarded, ",")[0]
	}
	return requestReader.RemoteAddr
}
