// Package server exposes the workout summaries over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/sicko7947/fittracker"
	"github.com/sicko7947/fittracker/builder"
	"github.com/sicko7947/fittracker/engine"
)

const serviceName = "fittracker"

// Server is a stateless HTTP front for the engine
type Server struct {
	app    *fiber.App
	single *engine.Engine
	batch  *engine.Engine
	logger zerolog.Logger
}

// BatchRequest is the body of a batch summary request
type BatchRequest struct {
	Packages []fittracker.Package `json:"packages"`
}

// TagInfo describes one supported workout tag
type TagInfo struct {
	Tag    string          `json:"tag"`
	Kind   fittracker.Kind `json:"kind"`
	Fields []string        `json:"fields"`
}

// New creates a server. Batch requests always continue past rejected
// packages so one bad entry does not hide the others.
func New(config fittracker.ProcessConfig, logger zerolog.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName: serviceName,
		}),
		single: engine.NewEngine(
			engine.WithLogger(logger),
			engine.WithConfig(config),
		),
		batch: engine.NewEngine(
			engine.WithLogger(logger),
			engine.WithConfig(config),
			engine.WithProcessOptions(fittracker.WithContinueOnError(true)),
		),
		logger: logger,
	}

	s.registerRoutes()
	return s
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves HTTP on addr until Shutdown is called
func (s *Server) Listen(addr string) error {
	s.logger.Info().Str("address", addr).Msg("Starting HTTP server")
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting up to timeout for in-flight requests
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := s.app.Group("/api/v1")
	v1.Get("/tags", s.handleListTags)

	v1.Post("/summaries", s.handleSummarize)
	v1.Post("/summaries/batch", s.handleBatch)
}

// handleListTags lists the workout tags and their positional fields
func (s *Server) handleListTags(c fiber.Ctx) error {
	tags := builder.Tags()
	out := make([]TagInfo, 0, len(tags))
	for _, tag := range tags {
		kind, _ := builder.KindOf(tag)
		out = append(out, TagInfo{Tag: tag, Kind: kind, Fields: builder.Fields(tag)})
	}
	return c.JSON(fiber.Map{"tags": out})
}

// handleSummarize computes the summary of a single package
func (s *Server) handleSummarize(c fiber.Ctx) error {
	var pkg fittracker.Package
	if err := c.Bind().JSON(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := s.single.Summarize(pkg)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fittracker.ToTrackerError(err),
		})
	}

	return c.JSON(result)
}

// handleBatch runs a list of packages through the engine
func (s *Server) handleBatch(c fiber.Ctx) error {
	var req BatchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	report, err := s.batch.Run(c.Context(), req.Packages)
	if err != nil {
		s.logger.Error().Err(err).Msg("Batch run failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  fittracker.ToTrackerError(err),
			"report": report,
		})
	}

	return c.JSON(report)
}
