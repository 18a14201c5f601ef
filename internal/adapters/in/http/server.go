// Package http exposes the admin and user surfaces over HTTP: order listings
// and aggregates, administrative status changes, and voice session control.
package http

import (
	"context"
	"errors"
	"net/http"

	"rentalvoice/internal/adapters/in/voice"
	"rentalvoice/internal/core/application/usecases/commands"
	"rentalvoice/internal/core/application/usecases/queries"
	"rentalvoice/internal/core/domain/model/session"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SessionController is the voice session surface the server drives.
type SessionController interface {
	Start(ctx context.Context) error
	End()
	State() session.State
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	listOrdersHandler    queries.ListOrdersQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler

	// Voice session control
	sessions SessionController
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	sessions SessionController,
) *Server {
	return &Server{
		changeOrderStatusHandler: changeOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
		sessions:                 sessions,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/session/start", s.StartSession)
	api.POST("/session/stop", s.StopSession)
	api.GET("/session", s.GetSession)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetOrders handles GET /api/v1/orders - retrieves orders, newest first,
// optionally filtered by the status query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status filter: " + err.Error(),
		})
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderStats handles GET /api/v1/orders/stats - aggregate per-status counts.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute order stats",
		})
	}

	return ctx.JSON(http.StatusOK, stats)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - sets the status
// of an existing order. Unknown order identifiers are accepted and ignored.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var body changeStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(ctx.Param("id"), body.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change order status",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

type sessionResponse struct {
	State string `json:"state"`
}

// StartSession handles POST /api/v1/session/start - requests a voice session.
// A concurrent active session yields 409; an agent-side failure yields 502
// with the failure message as the user-visible notice.
func (s *Server) StartSession(ctx echo.Context) error {
	if err := s.sessions.Start(ctx.Request().Context()); err != nil {
		if errors.Is(err, voice.ErrSessionActive) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "A voice session is already active",
			})
		}
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Voice agent connection failed: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, sessionResponse{State: s.sessions.State().String()})
}

// StopSession handles POST /api/v1/session/stop - ends the voice session.
// Stopping with no live session is a no-op.
func (s *Server) StopSession(ctx echo.Context) error {
	s.sessions.End()
	return ctx.JSON(http.StatusOK, sessionResponse{State: s.sessions.State().String()})
}

// GetSession handles GET /api/v1/session - reports the session state.
func (s *Server) GetSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, sessionResponse{State: s.sessions.State().String()})
}
