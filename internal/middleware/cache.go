package middleware

import (
    "bytes"
    "crypto/sha1"
    "encoding/binary"
    "encoding/json"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/githubrishi321/Blog-Application/internal/config"
)

// captureWriter captures the response body and status while forwarding both
// to the client, so a successful render can be stored in Redis afterwards.
type captureWriter struct {
    http.ResponseWriter
    status   int
    buf      bytes.Buffer
    overflow bool
    limit    int
}

func (cw *captureWriter) WriteHeader(code int) {
    cw.status = code
    cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
    if !cw.overflow {
        if cw.buf.Len()+len(b) > cw.limit {
            cw.overflow = true // too large to cache; stop buffering
        } else {
            cw.buf.Write(b)
        }
    }
    return cw.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the concrete request path and
// the raw query string.  The matched route template must not be used here:
// it would collapse every /blog/:id page into a single entry.
func cacheKey(prefix string, c echo.Context) string {
    u := c.Request().URL
    sum := sha1.Sum([]byte(u.Path + "?" + u.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
    hdrJSON, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    out := make([]byte, 8+len(hdrJSON)+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
    copy(out[8:], hdrJSON)
    copy(out[8+len(hdrJSON):], body)
    return out, nil
}

func decodePayload(raw []byte) (int, http.Header, []byte, error) {
    if len(raw) < 8 {
        return 0, nil, nil, fmt.Errorf("cache payload too short")
    }
    status := int(binary.BigEndian.Uint32(raw[0:4]))
    hdrLen := int(binary.BigEndian.Uint32(raw[4:8]))
    if 8+hdrLen > len(raw) {
        return 0, nil, nil, fmt.Errorf("corrupt cache payload")
    }
    var header http.Header
    if err := json.Unmarshal(raw[8:8+hdrLen], &header); err != nil {
        return 0, nil, nil, err
    }
    return status, header, raw[8+hdrLen:], nil
}

// PageCache returns a middleware that caches successful GET responses for
// anonymous requests in Redis.  Requests with an attached identity bypass
// the cache entirely: rendered pages include the signed-in user's name, and
// personalized markup must never be served to anyone else.  A nil client or
// a disabled config turns the middleware into a pass-through.
func PageCache(client *redis.Client, cfg config.CacheConfig) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if client == nil || !cfg.Enabled || c.Request().Method != http.MethodGet || CurrentUser(c) != nil {
                return next(c)
            }

            key := cacheKey(cfg.Prefix, c)
            ctx := c.Request().Context()

            if raw, err := client.Get(ctx, key).Bytes(); err == nil {
                if status, header, body, derr := decodePayload(raw); derr == nil {
                    h := c.Response().Header()
                    for k, vals := range header {
                        for _, v := range vals {
                            h.Add(k, v)
                        }
                    }
                    h.Set("X-Cache", "HIT")
                    return c.Blob(status, header.Get(echo.HeaderContentType), body)
                }
                // Corrupt entry: drop it and fall through to the handler.
                _ = client.Del(ctx, key).Err()
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = cw

            if err := next(c); err != nil {
                return err
            }

            // Cache only successful, reasonably sized pages.
            if cw.status == http.StatusOK && !cw.overflow {
                if raw, err := encodePayload(cw.status, c.Response().Header().Clone(), cw.buf.Bytes()); err == nil {
                    _ = client.Set(ctx, key, raw, cfg.TTL).Err()
                }
            }
            return nil
        }
    }
}
