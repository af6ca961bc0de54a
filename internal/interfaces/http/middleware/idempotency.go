package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/erp/installment/internal/domain/shared"
	"github.com/erp/installment/internal/infrastructure/logger"
	"github.com/erp/installment/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HeaderIdempotencyKey is the optional request header naming a command attempt
const HeaderIdempotencyKey = "Idempotency-Key"

// MaxIdempotencyKeyLength bounds the header value
const MaxIdempotencyKeyLength = 128

// Idempotency rejects a command whose Idempotency-Key was already accepted
// for the same method and path. Keys of requests that end in an error
// response are released so the client may retry with the same key.
// Requests without the header pass through.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if key == "" {
			c.Next()
			return
		}

		requestID := logger.GinRequestID(c)
		if len(key) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeValidation, "Idempotency-Key is too long", requestID))
			return
		}

		scoped := c.Request.Method + " " + c.Request.URL.Path + " " + key
		ctx := c.Request.Context()
		fresh, err := store.MarkProcessed(ctx, scoped, ttl)
		if err != nil {
			log.Error("Idempotency store unavailable",
				zap.String("request_id", requestID),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeInternal, "Idempotency check failed", requestID))
			return
		}
		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest, "A request with this Idempotency-Key was already accepted", requestID))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(context.WithoutCancel(ctx), scoped); err != nil {
				log.Warn("Failed to release idempotency key",
					zap.String("request_id", requestID),
					zap.Error(err))
			}
		}
	}
}
