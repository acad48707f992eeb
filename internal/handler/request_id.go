package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID リクエストIDを受け渡すヘッダー
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID は受信したX-Request-IDを引き継ぎ、無ければUUIDを発行するミドルウェア
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom はコンテキストに設定されたリクエストIDを返す
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
