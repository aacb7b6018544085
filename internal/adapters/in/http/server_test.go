package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "courierhub/internal/adapters/in/http"
	"courierhub/internal/adapters/out/logging"
	"courierhub/internal/adapters/out/presence"
	tracking "courierhub/internal/core/application/presence"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/generated/servers"
	"courierhub/internal/pkg/errs"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type commandMock[C any] struct {
	mock.Mock
}

func (m *commandMock[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type resultMock[C, R any] struct {
	mock.Mock
}

func (m *resultMock[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(R), args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite

	assign          *resultMock[commands.AssignCourierCommand, kernel.UUID]
	accept          *commandMock[commands.AcceptOrderCommand]
	reject          *commandMock[commands.RejectOrderCommand]
	cancel          *commandMock[commands.CancelOrderCommand]
	updateStatus    *commandMock[commands.UpdateDeliveryStatusCommand]
	rate            *commandMock[commands.RateDeliveryCommand]
	updateLocation  *commandMock[commands.UpdateDeliveryLocationCommand]
	deleteDelivery  *commandMock[commands.DeleteDeliveryCommand]
	register        *resultMock[commands.RegisterCourierCommand, kernel.UUID]
	courierLocation *resultMock[commands.UpdateCourierLocationCommand, commands.UpdateCourierLocationResult]
	latest          *resultMock[queries.GetLatestCourierLocationQuery, queries.CourierLocationResponse]
	active          *resultMock[queries.GetActiveCourierLocationsQuery, []queries.ActiveCourierLocationResponse]
	deliveries      *resultMock[queries.GetCourierDeliveriesQuery, []queries.CourierDeliveryResponse]
	getDelivery     *resultMock[queries.GetDeliveryQuery, queries.DeliveryResponse]
	route           *resultMock[queries.GetOptimizedRouteQuery, queries.GetOptimizedRouteQueryResponse]
	stats           *resultMock[queries.GetCourierStatsQuery, services.CourierStats]

	echo *echo.Echo
}

func (s *ServerTestSuite) SetupTest() {
	s.assign = new(resultMock[commands.AssignCourierCommand, kernel.UUID])
	s.accept = new(commandMock[commands.AcceptOrderCommand])
	s.reject = new(commandMock[commands.RejectOrderCommand])
	s.cancel = new(commandMock[commands.CancelOrderCommand])
	s.updateStatus = new(commandMock[commands.UpdateDeliveryStatusCommand])
	s.rate = new(commandMock[commands.RateDeliveryCommand])
	s.updateLocation = new(commandMock[commands.UpdateDeliveryLocationCommand])
	s.deleteDelivery = new(commandMock[commands.DeleteDeliveryCommand])
	s.register = new(resultMock[commands.RegisterCourierCommand, kernel.UUID])
	s.courierLocation = new(resultMock[commands.UpdateCourierLocationCommand, commands.UpdateCourierLocationResult])
	s.latest = new(resultMock[queries.GetLatestCourierLocationQuery, queries.CourierLocationResponse])
	s.active = new(resultMock[queries.GetActiveCourierLocationsQuery, []queries.ActiveCourierLocationResponse])
	s.deliveries = new(resultMock[queries.GetCourierDeliveriesQuery, []queries.CourierDeliveryResponse])
	s.getDelivery = new(resultMock[queries.GetDeliveryQuery, queries.DeliveryResponse])
	s.route = new(resultMock[queries.GetOptimizedRouteQuery, queries.GetOptimizedRouteQueryResponse])
	s.stats = new(resultMock[queries.GetCourierStatsQuery, services.CourierStats])

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := tracking.NewTracker(presence.NewMemoryStore(), logging.NewPresenceBroadcaster(logger), logger)

	server := httpadapter.NewServer(httpadapter.Handlers{
		AssignCourier:             s.assign,
		AcceptOrder:               s.accept,
		RejectOrder:               s.reject,
		CancelOrder:               s.cancel,
		UpdateDeliveryStatus:      s.updateStatus,
		RateDelivery:              s.rate,
		UpdateDeliveryLocation:    s.updateLocation,
		DeleteDelivery:            s.deleteDelivery,
		RegisterCourier:           s.register,
		UpdateCourierLocation:     s.courierLocation,
		GetLatestCourierLocation:  s.latest,
		GetActiveCourierLocations: s.active,
		GetCourierDeliveries:      s.deliveries,
		GetDelivery:               s.getDelivery,
		GetOptimizedRoute:         s.route,
		GetCourierStats:           s.stats,
	}, tracker, logger)

	e, err := httpadapter.NewRouter(server, testSecret, logger)
	s.Require().NoError(err)
	s.echo = e
}

func (s *ServerTestSuite) token(id kernel.UUID, role string) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return signed
}

func (s *ServerTestSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ServerTestSuite) TestHealthIsPublic() {
	rec := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestSwaggerDocument() {
	rec := s.do(http.MethodGet, "/swagger/doc.json", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Courier Hub")
	s.Contains(rec.Body.String(), "/api/v1/couriers/me/route")
}

func (s *ServerTestSuite) TestMissingToken() {
	rec := s.do(http.MethodGet, "/api/v1/couriers/locations", "", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.active.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestTokenSignedWithAnotherSecret() {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": kernel.NewUUID().String(), "role": "admin"})
	signed, err := tok.SignedString([]byte("other"))
	s.Require().NoError(err)

	rec := s.do(http.MethodGet, "/api/v1/couriers/locations", signed, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestAssignCourier() {
	admin := kernel.NewUUID()
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	s.assign.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignCourierCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.CourierID().IsEqual(courierID)
	})).Return(deliveryID, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/assignment",
		s.token(admin, "admin"), `{"courierId":"`+courierID.String()+`"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var body servers.DeliveryCreated
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(deliveryID.String(), body.DeliveryId.String())
	s.assign.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestAssignCourier_CourierMayNotAssign() {
	courier := kernel.NewUUID()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/assignment",
		s.token(courier, "livreur"), `{"courierId":"`+courier.String()+`"}`)

	s.Equal(http.StatusForbidden, rec.Code)
	s.assign.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestAssignCourier_Conflict() {
	orderID := kernel.NewUUID()
	s.assign.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, errs.NewConflictError("active delivery for order", orderID.String())).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/assignment",
		s.token(kernel.NewUUID(), "restaurant"), `{"courierId":"`+kernel.NewUUID().String()+`"}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(http.StatusConflict, s.decodeError(rec).Code)
}

func (s *ServerTestSuite) TestAcceptOrder_UsesActorAsCourier() {
	courier := kernel.NewUUID()
	orderID := kernel.NewUUID()
	s.accept.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AcceptOrderCommand) bool {
		return cmd.CourierID().IsEqual(courier) && cmd.OrderID().IsEqual(orderID)
	})).Return(nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/accept", s.token(courier, "livreur"), "")

	s.Equal(http.StatusNoContent, rec.Code)
	s.accept.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestRejectOrder_Forbidden() {
	courier := kernel.NewUUID()
	s.reject.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewForbiddenError(courier.String(), "order", "o-1")).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/reject", s.token(courier, "livreur"), "")

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerTestSuite) TestInvalidPathParameter() {
	rec := s.do(http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", s.token(kernel.NewUUID(), "client"), "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.cancel.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestUpdateDeliveryStatus_UnknownStatus() {
	rec := s.do(http.MethodPatch, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/status",
		s.token(kernel.NewUUID(), "livreur"), `{"status":"flying"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.updateStatus.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestRateDelivery_OutOfRange() {
	rec := s.do(http.MethodPost, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/rating",
		s.token(kernel.NewUUID(), "client"), `{"rating":6}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.rate.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestDeleteDelivery_AdminOnly() {
	deliveryID := kernel.NewUUID()
	s.deleteDelivery.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("delivery", deliveryID.String())).Once()

	forbidden := s.do(http.MethodDelete, "/api/v1/deliveries/"+deliveryID.String(), s.token(kernel.NewUUID(), "livreur"), "")
	notFound := s.do(http.MethodDelete, "/api/v1/deliveries/"+deliveryID.String(), s.token(kernel.NewUUID(), "admin"), "")

	s.Equal(http.StatusForbidden, forbidden.Code)
	s.Equal(http.StatusNotFound, notFound.Code)
	s.deleteDelivery.AssertNumberOfCalls(s.T(), "Handle", 1)
}

func (s *ServerTestSuite) TestInternalErrorsAreNotLeaked() {
	s.latest.On("Handle", mock.Anything, mock.Anything).
		Return(queries.CourierLocationResponse{}, errors.New("pq: connection refused")).Once()

	rec := s.do(http.MethodGet, "/api/v1/couriers/"+kernel.NewUUID().String()+"/location", s.token(kernel.NewUUID(), "admin"), "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Internal server error", s.decodeError(rec).Message)
}

func (s *ServerTestSuite) TestGetCourierLocation() {
	courier := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	location, err := kernel.NewCoordinates(36.8, 10.18)
	s.Require().NoError(err)
	s.latest.On("Handle", mock.Anything, mock.Anything).Return(queries.CourierLocationResponse{
		CourierID:  courier,
		DeliveryID: deliveryID,
		Location:   location,
		Address:    "Lac 2",
		UpdatedAt:  at,
	}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/couriers/"+courier.String()+"/location", s.token(kernel.NewUUID(), "client"), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body servers.CourierLocation
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(deliveryID.String(), body.DeliveryId.String())
	s.InDelta(36.8, body.Location.Latitude, 1e-9)
	s.Equal("Lac 2", body.Address)
	s.True(at.Equal(body.UpdatedAt))
}

func (s *ServerTestSuite) TestUpdateMyLocation_ReportsFailures() {
	courier := kernel.NewUUID()
	s.courierLocation.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateCourierLocationCommand) bool {
		return cmd.CourierID().IsEqual(courier) && cmd.Address() == "Lac 2"
	})).Return(commands.UpdateCourierLocationResult{
		Updated: 1,
		Errors:  []string{"Delivery abc: connection reset"},
	}, nil).Once()

	rec := s.do(http.MethodPut, "/api/v1/couriers/me/location", s.token(courier, "livreur"),
		`{"latitude":36.8,"longitude":10.18,"address":"Lac 2"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	var body servers.LocationUpdateResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(1, body.Updated)
	s.Equal([]string{"Delivery abc: connection reset"}, body.Errors)
	s.Nil(body.PlaceholderId)
}

func (s *ServerTestSuite) TestUpdateMyLocation_InvalidCoordinates() {
	rec := s.do(http.MethodPut, "/api/v1/couriers/me/location", s.token(kernel.NewUUID(), "livreur"),
		`{"latitude":91,"longitude":10.18}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.courierLocation.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestGetMyRoute() {
	courier := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	start, err := kernel.NewCoordinates(36.80, 10.18)
	s.Require().NoError(err)
	customer, err := kernel.NewCoordinates(36.85, 10.20)
	s.Require().NoError(err)

	s.route.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOptimizedRouteQuery) bool {
		return q.CourierID().IsEqual(courier) && q.Start() != nil && q.Start().IsEqual(start)
	})).Return(queries.GetOptimizedRouteQueryResponse{
		Route: services.OptimizedRoute{
			Points: []services.RoutePoint{
				{ID: services.StartPointID, Coordinates: start, Type: services.PointCurrentLocation, Name: services.StartPointName},
				{ID: "customer_1", Coordinates: customer, Type: services.PointCustomer, Name: "Amira", DeliveryID: &deliveryID},
			},
			Metrics: kernel.CalculateRouteMetrics([]kernel.Coordinates{start, customer}),
		},
		Message: "Optimized route with 2 stops",
	}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/couriers/me/route?startLatitude=36.80&startLongitude=10.18",
		s.token(courier, "livreur"), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body servers.OptimizedRoute
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Points, 2)
	s.Equal(servers.CurrentLocation, body.Points[0].Type)
	s.Nil(body.Points[0].DeliveryId)
	s.Equal(servers.Customer, body.Points[1].Type)
	s.Require().NotNil(body.Points[1].DeliveryId)
	s.Equal(deliveryID.String(), body.Points[1].DeliveryId.String())
	s.InDelta(5.8, body.TotalDistanceKm, 1e-9)
	s.Equal("14 min", body.EstimatedTime)
	s.Equal("Optimized route with 2 stops", body.Message)
}

func (s *ServerTestSuite) TestGetMyRoute_HalfAStartPoint() {
	rec := s.do(http.MethodGet, "/api/v1/couriers/me/route?startLatitude=36.80", s.token(kernel.NewUUID(), "livreur"), "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.route.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestGetMyRoute_NothingToDeliver() {
	s.route.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOptimizedRouteQueryResponse{}, services.ErrNoActiveDeliveries).Once()

	rec := s.do(http.MethodGet, "/api/v1/couriers/me/route", s.token(kernel.NewUUID(), "livreur"), "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestGetCourierDeliveries_StatusFilter() {
	courier := kernel.NewUUID()
	s.deliveries.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCourierDeliveriesQuery) bool {
		return q.Status() != nil && *q.Status() == delivery.Delivered
	})).Return([]queries.CourierDeliveryResponse{{
		ID:             kernel.NewUUID(),
		Status:         delivery.Delivered,
		RestaurantName: "Chez Ali",
	}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/couriers/"+courier.String()+"/deliveries?status=delivered", s.token(courier, "livreur"), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body []servers.CourierDelivery
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body, 1)
	s.Equal("delivered", body[0].Status)
	s.Nil(body[0].OrderId)
}

func (s *ServerTestSuite) deliveryFor(courier, client kernel.UUID) queries.DeliveryResponse {
	deliveryID := kernel.NewUUID()
	location, err := kernel.NewCoordinates(36.83, 10.21)
	s.Require().NoError(err)
	return queries.DeliveryResponse{
		ID:              deliveryID,
		CourierID:       courier,
		ClientID:        &client,
		Status:          delivery.PickedUp,
		RestaurantName:  "Chez Ali",
		DeliveryAddress: "12 Rue de Rome",
		DeliveryFee:     3.5,
		CurrentLocation: &queries.CourierLocationResponse{
			CourierID:  courier,
			DeliveryID: deliveryID,
			Location:   location,
			Address:    "Centre Ville",
			UpdatedAt:  time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC),
		},
	}
}

func (s *ServerTestSuite) TestGetDelivery_VisibleToCourierClientAndAdmin() {
	courier, client := kernel.NewUUID(), kernel.NewUUID()
	d := s.deliveryFor(courier, client)
	s.getDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDeliveryQuery) bool {
		return q.DeliveryID().IsEqual(d.ID)
	})).Return(d, nil).Times(3)

	for _, tok := range []string{
		s.token(courier, "livreur"),
		s.token(client, "client"),
		s.token(kernel.NewUUID(), "admin"),
	} {
		rec := s.do(http.MethodGet, "/api/v1/deliveries/"+d.ID.String(), tok, "")

		s.Require().Equal(http.StatusOK, rec.Code)
		var body servers.Delivery
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(d.ID.String(), body.Id.String())
		s.Equal(courier.String(), body.CourierId.String())
		s.Equal("picked_up", body.Status)
		s.Equal("12 Rue de Rome", body.DeliveryAddress)
		s.Require().NotNil(body.CurrentLocation)
		s.InDelta(36.83, body.CurrentLocation.Location.Latitude, 1e-9)
		s.Equal("Centre Ville", body.CurrentLocation.Address)
	}
	s.getDelivery.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestGetDelivery_OtherUser() {
	d := s.deliveryFor(kernel.NewUUID(), kernel.NewUUID())
	s.getDelivery.On("Handle", mock.Anything, mock.Anything).Return(d, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/deliveries/"+d.ID.String(), s.token(kernel.NewUUID(), "livreur"), "")

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerTestSuite) TestGetDelivery_NotFound() {
	id := kernel.NewUUID()
	s.getDelivery.On("Handle", mock.Anything, mock.Anything).
		Return(queries.DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", id.String())).Once()

	rec := s.do(http.MethodGet, "/api/v1/deliveries/"+id.String(), s.token(kernel.NewUUID(), "admin"), "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestGetCourierStats_OtherCourier() {
	rec := s.do(http.MethodGet, "/api/v1/couriers/"+kernel.NewUUID().String()+"/stats", s.token(kernel.NewUUID(), "livreur"), "")

	s.Equal(http.StatusForbidden, rec.Code)
	s.stats.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestGetCourierStats_Admin() {
	s.stats.On("Handle", mock.Anything, mock.Anything).
		Return(services.CourierStats{Completed: 2, Pending: 1, Collected: 40, Earnings: 7}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/couriers/"+kernel.NewUUID().String()+"/stats", s.token(kernel.NewUUID(), "admin"), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body servers.CourierStats
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(servers.CourierStats{Completed: 2, Pending: 1, Collected: 40, Earnings: 7}, body)
}

func (s *ServerTestSuite) TestPresenceLifecycle() {
	courier := kernel.NewUUID()
	client := kernel.NewUUID()

	rec := s.do(http.MethodPost, "/api/v1/presence", s.token(courier, "livreur"), `{"sessionId":"s-1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, "/api/v1/presence", s.token(client, "client"), `{"sessionId":"s-2"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var online servers.OnlineUsers
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &online))
	s.Len(online.Users, 2)

	rec = s.do(http.MethodDelete, "/api/v1/presence", s.token(courier, "livreur"), "")
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, "/api/v1/presence/sessions/s-2", s.token(courier, "livreur"), "")
	s.Equal(http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodDelete, "/api/v1/presence/sessions/s-2", s.token(client, "client"), "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/presence", s.token(courier, "livreur"), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &online))
	s.Empty(online.Users)
}

func (s *ServerTestSuite) TestDisconnectSession_AdminAndUnknown() {
	client := kernel.NewUUID()
	admin := kernel.NewUUID()

	rec := s.do(http.MethodPost, "/api/v1/presence", s.token(client, "client"), `{"sessionId":"s-9"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/presence/sessions/s-9", s.token(admin, "admin"), "")
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodDelete, "/api/v1/presence/sessions/missing", s.token(client, "client"), "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/presence", s.token(admin, "admin"), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var online servers.OnlineUsers
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &online))
	s.Empty(online.Users)
}

func (s *ServerTestSuite) TestPresence_EmptySession() {
	rec := s.do(http.MethodPost, "/api/v1/presence", s.token(kernel.NewUUID(), "client"), `{"sessionId":""}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestParseToken(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": id.String(), "role": "LIVREUR"})
		signed, err := tok.SignedString([]byte(testSecret))
		require.NoError(t, err)

		actor, err := httpadapter.ParseToken(signed, testSecret)

		require.NoError(t, err)
		assert.Equal(t, id, actor.ID)
		assert.Equal(t, "livreur", actor.Role.String())
	})

	t.Run("unknown role", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": id.String(), "role": "pilot"})
		signed, err := tok.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = httpadapter.ParseToken(signed, testSecret)

		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  id.String(),
			"role": "admin",
			"exp":  time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := tok.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = httpadapter.ParseToken(signed, testSecret)

		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := httpadapter.ParseToken("x.y.z", "")

		require.Error(t, err)
	})
}
