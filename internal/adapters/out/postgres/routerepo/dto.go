// Package routerepo provides data transfer objects and mapping functions for
// route persistence. A route row exclusively owns its stop rows.
package routerepo

import (
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID     int64     `gorm:"index"`
	WarehouseID  int64
	DeliveryDate time.Time `gorm:"index"`
	Status       int       `gorm:"index"`
	Active       bool
	Stops        []StopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for routes.
func (RouteDTO) TableName() string {
	return "routes"
}

// StopDTO represents the database structure for persisting stop entities.
// Links to the owning route via foreign key and optionally references the
// fulfillment requests served at the stop.
type StopDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID           uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID        int64     `gorm:"index"`
	StopOrder         int
	CustomerID        *int64
	RestockRequestID  *uuid.UUID `gorm:"type:uuid"`
	FollowupRequestID *uuid.UUID `gorm:"type:uuid"`
	Address           string     `gorm:"type:varchar(512)"`
	GeoLat            *float64
	GeoLong           *float64
	Status            int
	OtpCode           *string `gorm:"type:varchar(6)"`
	CompletedAt       *time.Time
	Active            bool
}

// TableName specifies the database table name for route stops.
func (StopDTO) TableName() string {
	return "route_stops"
}

// uuidRefColumn flattens an optional UUID reference into its column form.
func uuidRefColumn(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// uuidRefFromColumn restores an optional UUID reference from its column form.
func uuidRefFromColumn(column *uuid.UUID) (*kernel.UUID, error) {
	if column == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*column)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts a route aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	routeID := aggregate.ID().Bytes()
	stops := make([]StopDTO, 0, len(aggregate.Stops()))
	for _, stop := range aggregate.Stops() {
		stops = append(stops, stopFromDomain(routeID, stop))
	}

	return RouteDTO{
		ID:           routeID,
		DriverID:     int64(aggregate.DriverID()),
		WarehouseID:  int64(aggregate.WarehouseID()),
		DeliveryDate: aggregate.DeliveryDate(),
		Status:       int(aggregate.Status()),
		Active:       aggregate.IsActive(),
		Stops:        stops,
	}
}

// stopFromDomain converts a stop entity to its database representation.
func stopFromDomain(routeID uuid.UUID, stop *route.Stop) StopDTO {
	var customerID *int64
	if id := stop.CustomerID(); id != nil {
		raw := int64(*id)
		customerID = &raw
	}

	var geoLat, geoLong *float64
	if geo := stop.Geo(); geo != nil {
		lat, long := geo.Lat, geo.Long
		geoLat, geoLong = &lat, &long
	}

	var otpCode *string
	if otp := stop.DeliveryOTP(); otp != nil {
		code := otp.String()
		otpCode = &code
	}

	return StopDTO{
		ID:                stop.ID().Bytes(),
		RouteID:           routeID,
		LocationID:        int64(stop.LocationID()),
		StopOrder:         stop.StopOrder(),
		CustomerID:        customerID,
		RestockRequestID:  uuidRefColumn(stop.RestockRequestID()),
		FollowupRequestID: uuidRefColumn(stop.FollowupRequestID()),
		Address:           stop.Address(),
		GeoLat:            geoLat,
		GeoLong:           geoLong,
		Status:            int(stop.Status()),
		OtpCode:           otpCode,
		CompletedAt:       stop.CompletedAt(),
		Active:            stop.IsActive(),
	}
}

// toDomain converts a database DTO to a route aggregate using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, stopDto := range dto.Stops {
		stop, stopErr := stopToDomain(stopDto)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(
		id,
		kernel.UserID(dto.DriverID),
		kernel.WarehouseID(dto.WarehouseID),
		dto.DeliveryDate,
		route.Status(dto.Status),
		stops,
		dto.Active,
	)
}

// stopToDomain converts a stop DTO to its domain entity using RestoreStop.
func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.CustomerID
	if dto.CustomerID != nil {
		raw := kernel.CustomerID(*dto.CustomerID)
		customerID = &raw
	}

	restockRequestID, err := uuidRefFromColumn(dto.RestockRequestID)
	if err != nil {
		return nil, err
	}

	followupRequestID, err := uuidRefFromColumn(dto.FollowupRequestID)
	if err != nil {
		return nil, err
	}

	var geo *route.GeoPoint
	if dto.GeoLat != nil && dto.GeoLong != nil {
		geo = &route.GeoPoint{Lat: *dto.GeoLat, Long: *dto.GeoLong}
	}

	var deliveryOTP *route.DeliveryOTP
	if dto.OtpCode != nil {
		otp, otpErr := route.OTPFromString(*dto.OtpCode)
		if otpErr != nil {
			return nil, otpErr
		}
		deliveryOTP = &otp
	}

	return route.RestoreStop(
		id,
		kernel.LocationID(dto.LocationID),
		dto.StopOrder,
		customerID,
		restockRequestID,
		followupRequestID,
		dto.Address,
		geo,
		route.StopStatus(dto.Status),
		deliveryOTP,
		dto.CompletedAt,
		dto.Active,
	)
}
