package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/konselor/internal/api/response"
	"github.com/yoockh/konselor/internal/ratelimit"
	"github.com/yoockh/konselor/internal/utils"
)

// RateLimit guards the upstream-facing endpoint per client IP. If the
// limiter itself fails the request is let through.
func RateLimit(l ratelimit.Limiter, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", res.ResetAt.UTC().Format(time.RFC3339))

		if !res.Allowed {
			response.Abort(c, utils.E(utils.CodeRateLimited, "RateLimit", utils.MsgRateLimited, nil))
			return
		}
		c.Next()
	}
}
