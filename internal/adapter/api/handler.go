package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"swot-core/internal/domain/entity"
	"swot-core/internal/usecase"
)

type InsightHandler struct {
	gateway *usecase.Gateway
}

func NewInsightHandler(gw *usecase.Gateway) *InsightHandler {
	return &InsightHandler{gateway: gw}
}

func (h *InsightHandler) HandleGenerate(c *fiber.Ctx) error {
	var req entity.GenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	start := time.Now()
	result, err := h.gateway.Execute(c.Context(), req, clientIP(c))
	if err != nil {
		// The delivery layer maps domain errors onto HTTP status codes
		var rl *entity.RateLimitError
		switch {
		case errors.As(err, &rl):
			generateRequestsTotal.WithLabelValues("rate_limited").Inc()
			c.Set("X-RateLimit-Reset", strconv.FormatInt(rl.ResetAt.UnixMilli(), 10))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Rate limit exceeded. Try again later."})
		case errors.Is(err, entity.ErrMissingFields):
			generateRequestsTotal.WithLabelValues("invalid").Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": entity.ErrMissingFields.Error()})
		default:
			generateRequestsTotal.WithLabelValues("error").Inc()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrProviderFailure.Error()})
		}
	}

	generateRequestsTotal.WithLabelValues("ok").Inc()
	generateDuration.Observe(time.Since(start).Seconds())

	return c.Status(fiber.StatusOK).JSON(result)
}

// clientIP resolves the identifier used for rate limiting. Clients behind
// no forwarding header all share the "unknown" bucket.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}
