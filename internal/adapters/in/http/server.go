package http

import (
	"context"
	"log/slog"
	"net/http"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/generated/servers"
	"courierhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CommandHandler[C any] interface {
		Handle(ctx context.Context, cmd C) error
	}

	CommandResultHandler[C, R any] interface {
		Handle(ctx context.Context, cmd C) (R, error)
	}

	QueryHandler[Q, R any] interface {
		Handle(ctx context.Context, query Q) (R, error)
	}

	PresenceTracker interface {
		Connect(ctx context.Context, userID kernel.UUID, sessionID string) ([]kernel.UUID, error)
		Disconnect(ctx context.Context, userID kernel.UUID) error
		DisconnectSession(ctx context.Context, sessionID string) error
		SessionOwner(ctx context.Context, sessionID string) (kernel.UUID, bool, error)
		Online(ctx context.Context) ([]kernel.UUID, error)
	}
)

// Handlers lists the use cases behind the API.
type Handlers struct {
	AssignCourier          CommandResultHandler[commands.AssignCourierCommand, kernel.UUID]
	AcceptOrder            CommandHandler[commands.AcceptOrderCommand]
	RejectOrder            CommandHandler[commands.RejectOrderCommand]
	CancelOrder            CommandHandler[commands.CancelOrderCommand]
	UpdateDeliveryStatus   CommandHandler[commands.UpdateDeliveryStatusCommand]
	RateDelivery           CommandHandler[commands.RateDeliveryCommand]
	UpdateDeliveryLocation CommandHandler[commands.UpdateDeliveryLocationCommand]
	DeleteDelivery         CommandHandler[commands.DeleteDeliveryCommand]
	RegisterCourier        CommandResultHandler[commands.RegisterCourierCommand, kernel.UUID]
	UpdateCourierLocation  CommandResultHandler[commands.UpdateCourierLocationCommand, commands.UpdateCourierLocationResult]

	GetLatestCourierLocation  QueryHandler[queries.GetLatestCourierLocationQuery, queries.CourierLocationResponse]
	GetActiveCourierLocations QueryHandler[queries.GetActiveCourierLocationsQuery, []queries.ActiveCourierLocationResponse]
	GetCourierDeliveries      QueryHandler[queries.GetCourierDeliveriesQuery, []queries.CourierDeliveryResponse]
	GetDelivery               QueryHandler[queries.GetDeliveryQuery, queries.DeliveryResponse]
	GetOptimizedRoute         QueryHandler[queries.GetOptimizedRouteQuery, queries.GetOptimizedRouteQueryResponse]
	GetCourierStats           QueryHandler[queries.GetCourierStatsQuery, services.CourierStats]
}

// Server implements servers.ServerInterface on top of the command and query
// handlers. It resolves the actor, builds the command or query, and maps the
// result or error to the wire types.
type Server struct {
	handlers Handlers
	presence PresenceTracker
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, presence PresenceTracker, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		presence: presence,
		logger:   logger.With("component", "http_server"),
	}
}

// AssignCourier handles POST /api/v1/orders/{orderId}/assignment.
func (s *Server) AssignCourier(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = requireRole(actor, "order", orderID.String(), user.Admin, user.RestaurantOwner); err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.AssignCourierJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(uuidOf(orderID), uuidOf(body.CourierId))
	if err != nil {
		return s.writeError(ctx, err)
	}

	deliveryID, err := s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{DeliveryId: deliveryID.Bytes()})
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(uuidOf(orderID), actor.ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(uuidOf(orderID), actor.ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(uuidOf(orderID), actor.ID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/{deliveryId}/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, deliveryID servers.DeliveryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.UpdateDeliveryStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(uuidOf(deliveryID), actor.ID, body.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RateDelivery handles POST /api/v1/deliveries/{deliveryId}/rating.
func (s *Server) RateDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.RateDeliveryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateDeliveryCommand(uuidOf(deliveryID), actor.ID, body.Rating)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.RateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryLocation handles PUT /api/v1/deliveries/{deliveryId}/location.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context, deliveryID servers.DeliveryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.UpdateDeliveryLocationJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(
		uuidOf(deliveryID), actor.ID, body.Latitude, body.Longitude, deref(body.Address))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateDeliveryLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/{deliveryId}. Admins only.
func (s *Server) DeleteDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = requireRole(actor, "delivery", deliveryID.String(), user.Admin); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(uuidOf(deliveryID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.DeleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RegisterCourier handles POST /api/v1/couriers. Admins only.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.RegisterCourierJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = requireRole(actor, "courier", body.CourierId.String(), user.Admin); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterCourierCommand(uuidOf(body.CourierId))
	if err != nil {
		return s.writeError(ctx, err)
	}

	deliveryID, err := s.handlers.RegisterCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{DeliveryId: deliveryID.Bytes()})
}

// UpdateMyLocation handles PUT /api/v1/couriers/me/location. Records that
// could not be updated are listed in the response; the others stay updated.
func (s *Server) UpdateMyLocation(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.UpdateMyLocationJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(actor.ID, body.Latitude, body.Longitude, deref(body.Address))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.UpdateCourierLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if partial := result.Err(); partial != nil {
		s.logger.WarnContext(ctx.Request().Context(), "location update partially failed",
			"courier_id", actor.ID.String(),
			"error", partial,
		)
	}

	return ctx.JSON(http.StatusOK, toLocationUpdateResult(result))
}

// GetMyRoute handles GET /api/v1/couriers/me/route.
func (s *Server) GetMyRoute(ctx echo.Context, params servers.GetMyRouteParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	start, err := startFrom(params)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOptimizedRouteQuery(actor.ID, start)
	if err != nil {
		return s.writeError(ctx, err)
	}

	route, err := s.handlers.GetOptimizedRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOptimizedRoute(route))
}

// GetCourierLocation handles GET /api/v1/couriers/{courierId}/location.
func (s *Server) GetCourierLocation(ctx echo.Context, courierID servers.CourierId) error {
	query, err := queries.NewGetLatestCourierLocationQuery(uuidOf(courierID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	location, err := s.handlers.GetLatestCourierLocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierLocation(location))
}

// GetActiveCourierLocations handles GET /api/v1/couriers/locations.
func (s *Server) GetActiveCourierLocations(ctx echo.Context) error {
	locations, err := s.handlers.GetActiveCourierLocations.Handle(
		ctx.Request().Context(), queries.NewGetActiveCourierLocationsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.ActiveCourierLocation, len(locations))
	for i, l := range locations {
		response[i] = toActiveCourierLocation(l)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCourierDeliveries handles GET /api/v1/couriers/{courierId}/deliveries.
func (s *Server) GetCourierDeliveries(
	ctx echo.Context,
	courierID servers.CourierId,
	params servers.GetCourierDeliveriesParams,
) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = requireSelfOrAdmin(actor, "courier deliveries", uuidOf(courierID)); err != nil {
		return s.writeError(ctx, err)
	}

	status := ""
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewGetCourierDeliveriesQuery(uuidOf(courierID), status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	deliveries, err := s.handlers.GetCourierDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.CourierDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = toCourierDelivery(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}. The record is
// loaded first because visibility depends on its courier and client.
func (s *Server) GetDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(uuidOf(deliveryID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	d, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if !d.IsVisibleTo(actor.ID) && !actor.Is(user.Admin) {
		return s.writeError(ctx, errs.NewForbiddenError(actor.ID.String(), "delivery", d.ID.String()))
	}

	return ctx.JSON(http.StatusOK, toDelivery(d))
}

// GetCourierStats handles GET /api/v1/couriers/{courierId}/stats.
func (s *Server) GetCourierStats(ctx echo.Context, courierID servers.CourierId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = requireSelfOrAdmin(actor, "courier stats", uuidOf(courierID)); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetCourierStatsQuery(uuidOf(courierID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	stats, err := s.handlers.GetCourierStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CourierStats{
		Completed: stats.Completed,
		Pending:   stats.Pending,
		Collected: stats.Collected,
		Earnings:  stats.Earnings,
	})
}

// Connect handles POST /api/v1/presence.
func (s *Server) Connect(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.ConnectJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	online, err := s.presence.Connect(ctx.Request().Context(), actor.ID, body.SessionId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOnlineUsers(online))
}

// Disconnect handles DELETE /api/v1/presence.
func (s *Server) Disconnect(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.presence.Disconnect(ctx.Request().Context(), actor.ID); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DisconnectSession handles DELETE /api/v1/presence/sessions/{sessionId}.
// Only the session's owner or an admin may end it; an unknown session is a
// no-op.
func (s *Server) DisconnectSession(ctx echo.Context, sessionID string) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	owner, found, err := s.presence.SessionOwner(ctx.Request().Context(), sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if !found {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err = requireSelfOrAdmin(actor, "presence session", owner); err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.presence.DisconnectSession(ctx.Request().Context(), sessionID); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOnlineUsers handles GET /api/v1/presence.
func (s *Server) GetOnlineUsers(ctx echo.Context) error {
	online, err := s.presence.Online(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOnlineUsers(online))
}
