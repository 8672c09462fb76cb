package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/metrics"
)

// RequestLogger registra cada requisição e alimenta as métricas HTTP
func RequestLogger(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(status), elapsed)

		l := logger.FromContext(c.Request.Context())
		ev := l.Info()
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		}
		ev = ev.Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("ip", c.ClientIP())

		// identidade colocada por SessionAuth, quando a rota é protegida
		if userID := c.GetInt64(ContextUserID); userID > 0 {
			ev = ev.Int64("user_id", userID).Str("role", c.GetString(ContextUserRole))
		}
		if shopID := c.GetInt64(ContextBarbershopID); shopID > 0 {
			ev = ev.Int64("barbearia_id", shopID)
		}
		ev.Msg("http request")
	}
}
