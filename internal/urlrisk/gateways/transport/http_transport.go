package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/gateways/report"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

// Routes served by HTTPTransport.
const (
	RouteHealth   = "/healthz"
	RouteEvaluate = "/v1/evaluate"
)

// evaluateRequest is the POST body of RouteEvaluate.
type evaluateRequest struct {
	URL string `json:"url"`
}

// errorResponse is returned for every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

// HTTPTransport serves the evaluation API with fiber.
type HTTPTransport struct {
	addr   string
	logger log.Logger

	mu       sync.RWMutex
	app      *fiber.App
	listener net.Listener
	running  bool
	done     chan struct{}
}

// NewHTTPTransport creates an HTTP transport bound to addr on Start.
func NewHTTPTransport(addr string, logger log.Logger) *HTTPTransport {
	return &HTTPTransport{addr: addr, logger: logger}
}

// NewApp builds the fiber application without binding a socket.
func NewApp(eval evaluator.URLEvaluator, logger log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "urlrisk",
		// Results can outlive the request in the verdict cache.
		Immutable: true,
	})
	h := &handlers{eval: eval, logger: logger}
	app.Get(RouteHealth, h.health)
	app.Get(RouteEvaluate, h.evaluateQuery)
	app.Post(RouteEvaluate, h.evaluateBody)
	return app
}

// Start binds the listener and serves in the background.
func (t *HTTPTransport) Start(ctx context.Context, eval evaluator.URLEvaluator) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("HTTP transport already running")
	}

	ln, err := net.Listen("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to bind HTTP listener on %s: %w", t.addr, err)
	}

	t.app = NewApp(eval, t.logger)
	t.listener = ln
	t.running = true
	t.done = make(chan struct{})

	t.logger.Info(map[string]any{
		"transport": "http",
		"address":   ln.Addr().String(),
	}, "HTTP transport started")

	go t.serve(t.app, ln)
	go func(done <-chan struct{}) {
		select {
		case <-ctx.Done():
			t.logger.Debug(nil, "HTTP transport stopping due to context cancellation")
			if err := t.Stop(); err != nil {
				t.logger.Warn(map[string]any{"error": err.Error()}, "Error stopping HTTP transport")
			}
		case <-done:
		}
	}(t.done)

	return nil
}

func (t *HTTPTransport) serve(app *fiber.App, ln net.Listener) {
	if err := app.Listener(ln); err != nil {
		t.mu.RLock()
		running := t.running
		t.mu.RUnlock()
		if running {
			t.logger.Error(map[string]any{"error": err.Error()}, "HTTP listener failed")
		}
	}
}

// Stop shuts the server down, waiting for in-flight requests.
func (t *HTTPTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}
	t.running = false
	close(t.done)

	err := t.app.Shutdown()
	if err != nil {
		t.logger.Warn(map[string]any{"error": err.Error()}, "Error shutting down HTTP server")
	}

	t.logger.Info(map[string]any{
		"transport": "http",
		"address":   t.listener.Addr().String(),
	}, "HTTP transport stopped")
	return err
}

// Address returns the bound address while running, otherwise the
// configured one.
func (t *HTTPTransport) Address() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.running && t.listener != nil {
		return t.listener.Addr().String()
	}
	return t.addr
}

type handlers struct {
	eval   evaluator.URLEvaluator
	logger log.Logger
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handlers) evaluateQuery(c *fiber.Ctx) error {
	return h.respond(c, c.Query("url"))
}

func (h *handlers) evaluateBody(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "request body must be JSON with a \"url\" field"})
	}
	return h.respond(c, req.URL)
}

func (h *handlers) respond(c *fiber.Ctx, raw string) error {
	result, err := h.eval.Evaluate(raw)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Error: err.Error()})
	case err != nil:
		h.logger.Error(map[string]any{"error": err.Error(), "client": c.IP()}, "Failed to evaluate URL")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "evaluation failed"})
	}
	return c.JSON(report.NewJSONReport(result))
}

var _ ServerTransport = (*HTTPTransport)(nil)
