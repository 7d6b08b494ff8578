package http

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jhoicas/Restaurante-api/pkg/logger"
	"github.com/jhoicas/Restaurante-api/pkg/metrics"
)

const (
	// HeaderRequestID cabecera con el id de correlación de la petición.
	HeaderRequestID = "X-Request-ID"
	localRequestID  = "request_id"
)

// RequestLogger asigna un X-Request-ID (o respeta el recibido), deja en el contexto de la
// petición un logger con ese id y registra método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(localRequestID, rid)
		c.Set(HeaderRequestID, rid)
		reqLog := log.ForRequest(rid)
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		finish(c, c.Next())

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("route", c.Route().Path).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

// Metrics registra conteo y duración por método, ruta y status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		finish(c, c.Next())
		metrics.ObserveHTTPRequest(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
			time.Since(start),
		)
		return nil
	}
}

// Timeout pone un deadline al contexto de la petición; los repositorios lo reciben vía c.UserContext().
func Timeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RateLimiter limita peticiones por IP con un token bucket por cliente.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter perMinute peticiones por minuto con ráfaga burst por IP.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		idleTTL: 10 * time.Minute,
		now:     time.Now,
		clients: make(map[string]*client),
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.idleTTL {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > rl.idleTTL {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Handler middleware que responde 429 cuando la IP agotó su cupo.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.allow(c.IP()) {
			metrics.ObserveRateLimited(c.Route().Path)
			c.Set(fiber.HeaderRetryAfter, "60")
			return newAPIError(fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "demasiadas peticiones, intente más tarde")
		}
		return c.Next()
	}
}
