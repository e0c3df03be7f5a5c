package http

import (
	"fmt"
	"strings"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/model/route"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the JSON payload returned on any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductLineBody is one product line of an inbound request.
type ProductLineBody struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// AdjustStockBody requests a manual correction of one stock line.
type AdjustStockBody struct {
	Stage     string `json:"stage"`
	EntityID  int64  `json:"entityId"`
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Delta     int    `json:"delta"`
	ActorID   int64  `json:"actorId"`
}

// StockLine is one stock line of a stock read.
type StockLine struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UnlistedLine is one uncatalogued line of a location stock read.
type UnlistedLine struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

// LocationStockResponse is the full inventory held at one location.
type LocationStockResponse struct {
	Lines    []StockLine    `json:"lines"`
	Unlisted []UnlistedLine `json:"unlisted"`
}

// RecordUsageBody reports consumption of delivered stock at a location.
type RecordUsageBody struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
	ActorID   int64  `json:"actorId"`
}

// RecordUnlistedBody reports uncatalogued stock found at a location.
type RecordUnlistedBody struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
	ActorID  int64  `json:"actorId"`
}

// LoadVanBody requests loading a van from warehouse stock.
type LoadVanBody struct {
	VanID                 int64               `json:"vanId"`
	WarehouseID           int64               `json:"warehouseId"`
	DestinationLocationID *int64              `json:"destinationLocationId,omitempty"`
	DriverName            string              `json:"driverName,omitempty"`
	DeliveryDate          *openapi_types.Date `json:"deliveryDate,omitempty"`
	Lines                 []ProductLineBody   `json:"lines"`
	ActorID               int64               `json:"actorId"`
}

// DeliverTransferBody unloads a loaded transfer at a location.
type DeliverTransferBody struct {
	LocationID int64 `json:"locationId"`
	ActorID    int64 `json:"actorId"`
}

// CreateRestockRequestBody files a customer restock request.
type CreateRestockRequestBody struct {
	CustomerID  int64              `json:"customerId"`
	LocationID  int64              `json:"locationId"`
	RequestDate openapi_types.Date `json:"requestDate"`
	Lines       []ProductLineBody  `json:"lines"`
}

// CreateFollowupRequestBody files a customer followup visit request.
type CreateFollowupRequestBody struct {
	CustomerID  int64              `json:"customerId"`
	LocationID  int64              `json:"locationId"`
	RequestDate openapi_types.Date `json:"requestDate"`
}

// GeoPointBody is a stop coordinate pair.
type GeoPointBody struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// StopBody is one stop of a route being created.
type StopBody struct {
	LocationID        int64         `json:"locationId"`
	StopOrder         int           `json:"stopOrder"`
	CustomerID        *int64        `json:"customerId,omitempty"`
	RestockRequestID  *string       `json:"restockRequestId,omitempty"`
	FollowupRequestID *string       `json:"followupRequestId,omitempty"`
	Address           string        `json:"address"`
	Geo               *GeoPointBody `json:"geo,omitempty"`
}

// CreateRouteBody arranges a new delivery route.
type CreateRouteBody struct {
	DriverID     int64              `json:"driverId"`
	WarehouseID  int64              `json:"warehouseId"`
	DeliveryDate openapi_types.Date `json:"deliveryDate"`
	Stops        []StopBody         `json:"stops"`
}

// AttachRequestBody links a fulfillment request to a stop. Exactly one of
// the two references must be set.
type AttachRequestBody struct {
	StopID            string  `json:"stopId"`
	RestockRequestID  *string `json:"restockRequestId,omitempty"`
	FollowupRequestID *string `json:"followupRequestId,omitempty"`
}

// ReorderStopsBody assigns new visiting positions to a route's stops.
type ReorderStopsBody struct {
	NewOrder map[string]int `json:"newOrder"`
}

// OptimizeRouteBody submits a route for optimization and scheduling.
type OptimizeRouteBody struct {
	Vehicle string `json:"vehicle,omitempty"`
}

// AdvanceStopBody moves a stop to its next status. Delivery requires the
// OTP issued on arrival.
type AdvanceStopBody struct {
	Target  string `json:"target"`
	OtpCode string `json:"otpCode,omitempty"`
	ActorID int64  `json:"actorId"`
}

// RouteStopResponse is one stop of a route read.
type RouteStopResponse struct {
	ID                string  `json:"id"`
	LocationID        int64   `json:"locationId"`
	StopOrder         int     `json:"stopOrder"`
	CustomerID        *int64  `json:"customerId,omitempty"`
	RestockRequestID  *string `json:"restockRequestId,omitempty"`
	FollowupRequestID *string `json:"followupRequestId,omitempty"`
	Address           string  `json:"address"`
	Status            string  `json:"status"`
	CompletedAt       *string `json:"completedAt,omitempty"`
}

// RouteResponse is the route header with its ordered stops.
type RouteResponse struct {
	ID           string              `json:"id"`
	DriverID     int64               `json:"driverId"`
	WarehouseID  int64               `json:"warehouseId"`
	DeliveryDate openapi_types.Date  `json:"deliveryDate"`
	Status       string              `json:"status"`
	Stops        []RouteStopResponse `json:"stops"`
}

// CreatedResponse returns the id of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// DirectoryLocationResponse is the master data snapshot of a customer site.
type DirectoryLocationResponse struct {
	ID         int64    `json:"id"`
	CustomerID int64    `json:"customerId"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat,omitempty"`
	Long       *float64 `json:"long,omitempty"`
}

// DirectoryProductResponse is the master data snapshot of a catalog line.
type DirectoryProductResponse struct {
	ProductID int64  `json:"productId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Name      string `json:"name"`
	Barcode   string `json:"barcode"`
}

func parseStage(raw string) (ledger.Stage, error) {
	switch strings.ToLower(raw) {
	case "warehouse":
		return ledger.StageWarehouse, nil
	case "van":
		return ledger.StageVan, nil
	case "location":
		return ledger.StageLocation, nil
	default:
		return ledger.StageUnknown, fmt.Errorf("unknown stage %q", raw)
	}
}

func parseStopTarget(raw string) (route.StopStatus, error) {
	switch strings.ToLower(raw) {
	case "enroute":
		return route.StopEnRoute, nil
	case "arrived":
		return route.StopArrived, nil
	case "delivered":
		return route.StopDelivered, nil
	case "failed":
		return route.StopFailed, nil
	default:
		return route.StopDraft, fmt.Errorf("unknown stop target %q", raw)
	}
}

func variantFromBody(raw *int64) *kernel.VariantID {
	if raw == nil {
		return nil
	}
	variant := kernel.VariantID(*raw)
	return &variant
}

func uuidFromBody(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
