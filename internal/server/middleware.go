package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ipHasher hashes client addresses with a per-process salt so request logs
// never hold a raw IP.
type ipHasher struct {
	salt string
}

func newIPHasher() (*ipHasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &ipHasher{salt: hex.EncodeToString(b)}, nil
}

// Hash is consistent for an address within one process.
func (h *ipHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs page requests. Asset paths are skipped and a DNT header
// drops the client hash.
func requestLogger(logger *slog.Logger, hasher *ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/wasm/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if c.GetHeader("DNT") != "1" {
			attrs = append(attrs, "client", hasher.Hash(c.ClientIP()))
		}
		logger.Info("request", attrs...)
	}
}
