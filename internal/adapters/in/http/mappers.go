package http

import (
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/generated/servers"
	"courierhub/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// uuidOf converts a bound parameter. The nil UUID becomes the zero
// kernel.UUID, which every command and query constructor rejects.
func uuidOf(id openapi_types.UUID) kernel.UUID {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return parsed
}

func optionalUUIDOf(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// startFrom requires both coordinates or neither.
func startFrom(params servers.GetMyRouteParams) (*kernel.Coordinates, error) {
	if params.StartLatitude == nil && params.StartLongitude == nil {
		return nil, nil
	}
	if params.StartLatitude == nil {
		return nil, errs.NewValueIsRequiredError("startLatitude")
	}
	if params.StartLongitude == nil {
		return nil, errs.NewValueIsRequiredError("startLongitude")
	}

	start, err := kernel.NewCoordinates(*params.StartLatitude, *params.StartLongitude)
	if err != nil {
		return nil, err
	}
	return &start, nil
}

func toCoordinates(c kernel.Coordinates) servers.Coordinates {
	return servers.Coordinates{Latitude: c.Latitude(), Longitude: c.Longitude()}
}

func toLocationUpdateResult(r commands.UpdateCourierLocationResult) servers.LocationUpdateResult {
	failures := r.Errors
	if failures == nil {
		failures = []string{}
	}
	return servers.LocationUpdateResult{
		Updated:       r.Updated,
		Errors:        failures,
		PlaceholderId: optionalUUIDOf(r.PlaceholderID),
	}
}

func toCourierLocation(l queries.CourierLocationResponse) servers.CourierLocation {
	return servers.CourierLocation{
		CourierId:  l.CourierID.Bytes(),
		DeliveryId: l.DeliveryID.Bytes(),
		Location:   toCoordinates(l.Location),
		Address:    l.Address,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toActiveCourierLocation(l queries.ActiveCourierLocationResponse) servers.ActiveCourierLocation {
	return servers.ActiveCourierLocation{
		CourierId:   l.CourierID.Bytes(),
		CourierName: l.CourierName,
		DeliveryId:  l.DeliveryID.Bytes(),
		Location:    toCoordinates(l.Location),
		Address:     l.Address,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toDelivery(d queries.DeliveryResponse) servers.Delivery {
	response := servers.Delivery{
		Id:                d.ID.Bytes(),
		OrderId:           optionalUUIDOf(d.OrderID),
		CourierId:         d.CourierID.Bytes(),
		ClientId:          optionalUUIDOf(d.ClientID),
		Status:            d.Status.String(),
		RestaurantName:    d.RestaurantName,
		RestaurantAddress: d.RestaurantAddress,
		DeliveryAddress:   d.DeliveryAddress,
		DeliveryFee:       d.DeliveryFee,
		Rating:            d.Rating,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		DeliveredAt:       d.DeliveredAt,
	}
	if l := d.CurrentLocation; l != nil {
		response.CurrentLocation = &servers.TrackedLocation{
			Location:  toCoordinates(l.Location),
			Address:   l.Address,
			UpdatedAt: l.UpdatedAt,
		}
	}
	return response
}

func toCourierDelivery(d queries.CourierDeliveryResponse) servers.CourierDelivery {
	return servers.CourierDelivery{
		Id:              d.ID.Bytes(),
		OrderId:         optionalUUIDOf(d.OrderID),
		Status:          d.Status.String(),
		RestaurantName:  d.RestaurantName,
		DeliveryAddress: d.DeliveryAddress,
		OrderTotal:      d.OrderTotal,
		DeliveryFee:     d.DeliveryFee,
		Rating:          d.Rating,
		CreatedAt:       d.CreatedAt,
		DeliveredAt:     d.DeliveredAt,
	}
}

func toOptimizedRoute(r queries.GetOptimizedRouteQueryResponse) servers.OptimizedRoute {
	points := make([]servers.RoutePoint, len(r.Route.Points))
	for i, p := range r.Route.Points {
		points[i] = servers.RoutePoint{
			Id:         p.ID,
			Type:       servers.RoutePointType(p.Type),
			Name:       p.Name,
			Address:    p.Address,
			Location:   toCoordinates(p.Coordinates),
			DeliveryId: optionalUUIDOf(p.DeliveryID),
			OrderId:    optionalUUIDOf(p.OrderID),
		}
	}

	return servers.OptimizedRoute{
		Points:               points,
		TotalDistanceKm:      r.Route.Metrics.TotalDistanceKm,
		EstimatedTimeMinutes: r.Route.Metrics.EstimatedTimeMinutes,
		EstimatedTime:        r.Route.Metrics.EstimatedTimeText,
		Message:              r.Message,
	}
}

func toOnlineUsers(ids []kernel.UUID) servers.OnlineUsers {
	users := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		users[i] = id.Bytes()
	}
	return servers.OnlineUsers{Users: users}
}
