package rpcserver

import (
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

type brotliWriter struct {
	gin.ResponseWriter
	writer *brotli.Writer
}

func (w *brotliWriter) Write(data []byte) (int, error) {
	return w.writer.Write(data)
}

func (w *brotliWriter) WriteString(s string) (int, error) {
	return w.writer.Write([]byte(s))
}

func (w *brotliWriter) WriteHeader(code int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

// CompressionMiddleware brotli encodes responses for clients that accept it.
// Swagger assets are served as is.
func CompressionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "br") ||
			strings.Contains(c.Request.URL.Path, "/swagger/") {
			c.Next()
			return
		}

		bw := brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression)
		c.Header(CONTENT_ENCODING, "br")
		c.Writer.Header().Add(VARY, "Accept-Encoding")
		c.Writer = &brotliWriter{ResponseWriter: c.Writer, writer: bw}
		defer func() {
			if err := bw.Close(); err != nil {
				c.Error(err)
			}
		}()
		c.Next()
	}
}
