// Package http exposes the delivery core over a JSON API.
package http

import (
	"errors"
	"net/http"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/model/request"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/core/ports"
	"supplyline/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	AdjustStock           commands.AdjustStockCommandHandler
	RecordOutwardUsage    commands.RecordOutwardUsageCommandHandler
	RecordUnlisted        commands.RecordUnlistedInventoryCommandHandler
	TransferToVan         commands.TransferWarehouseToVanCommandHandler
	TransferToLocation    commands.TransferVanToLocationCommandHandler
	CreateRestockRequest  commands.CreateRestockRequestCommandHandler
	CreateFollowupRequest commands.CreateFollowupRequestCommandHandler
	CreateRoute           commands.CreateRouteCommandHandler
	AttachRequest         commands.AttachRequestCommandHandler
	ReorderStops          commands.ReorderStopsCommandHandler
	OptimizeRoute         commands.OptimizeRouteCommandHandler
	AdvanceStop           commands.AdvanceStopCommandHandler
	CompleteRoute         commands.CompleteRouteCommandHandler
	CancelRoute           commands.CancelRouteCommandHandler

	GetStock         queries.GetStockQueryHandler
	GetLocationStock queries.GetLocationStockQueryHandler
	GetRoute         queries.GetRouteQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers  Handlers
	directory ports.ReferenceDirectory
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, directory ports.ReferenceDirectory) *Server {
	return &Server{handlers: handlers, directory: directory}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/stock/adjustments", s.AdjustStock)
	api.GET("/stock/:stage/:entityId", s.GetStock)

	api.GET("/locations/:locationId/stock", s.GetLocationStock)
	api.POST("/locations/:locationId/usage", s.RecordUsage)
	api.POST("/locations/:locationId/unlisted", s.RecordUnlisted)

	api.POST("/transfers", s.LoadVan)
	api.POST("/transfers/:transferId/deliver", s.DeliverTransfer)

	api.POST("/requests/restock", s.CreateRestockRequest)
	api.POST("/requests/followup", s.CreateFollowupRequest)

	api.POST("/routes", s.CreateRoute)
	api.GET("/routes/:routeId", s.GetRoute)
	api.POST("/routes/:routeId/requests", s.AttachRequest)
	api.POST("/routes/:routeId/reorder", s.ReorderStops)
	api.POST("/routes/:routeId/optimize", s.OptimizeRoute)
	api.POST("/routes/:routeId/stops/:stopId/advance", s.AdvanceStop)
	api.POST("/routes/:routeId/complete", s.CompleteRoute)
	api.POST("/routes/:routeId/cancel", s.CancelRoute)

	api.GET("/directory/locations/:locationId", s.GetDirectoryLocation)
	api.GET("/directory/products/:productId", s.GetDirectoryProduct)
}

// GetDirectoryLocation handles GET /api/v1/directory/locations/:locationId.
func (s *Server) GetDirectoryLocation(ctx echo.Context) error {
	locationID, err := int64Param(ctx, "locationId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	location, err := s.directory.ResolveLocation(ctx.Request().Context(), kernel.LocationID(locationID))
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DirectoryLocationResponse{
		ID:         int64(location.ID),
		CustomerID: int64(location.CustomerID),
		Name:       location.Name,
		Address:    location.Address,
		Lat:        location.Latitude,
		Long:       location.Longitude,
	})
}

// GetDirectoryProduct handles GET /api/v1/directory/products/:productId.
// An optional variantId query parameter selects the variant line.
func (s *Server) GetDirectoryProduct(ctx echo.Context) error {
	var productID int64
	var variantID *int64
	err := echo.PathParamsBinder(ctx).Int64("productId", &productID).BindError()
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if raw := ctx.QueryParam("variantId"); raw != "" {
		var value int64
		if bindErr := echo.QueryParamsBinder(ctx).Int64("variantId", &value).BindError(); bindErr != nil {
			return badRequest(ctx, bindErr.Error())
		}
		variantID = &value
	}

	key, err := kernel.NewProductKey(kernel.ProductID(productID), variantFromBody(variantID))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	product, err := s.directory.ResolveProduct(ctx.Request().Context(), key)
	if err != nil {
		return commandError(ctx, err)
	}

	response := DirectoryProductResponse{
		ProductID: int64(product.Key.ProductID()),
		Name:      product.Name,
		Barcode:   product.Barcode,
	}
	if variant := product.Key.VariantID(); variant != nil {
		value := int64(*variant)
		response.VariantID = &value
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdjustStock handles POST /api/v1/stock/adjustments.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var body AdjustStockBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stage, err := parseStage(body.Stage)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdjustStockCommand(
		stage, body.EntityID, kernel.ProductID(body.ProductID),
		variantFromBody(body.VariantID), body.Delta, kernel.UserID(body.ActorID),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStock handles GET /api/v1/stock/:stage/:entityId.
func (s *Server) GetStock(ctx echo.Context) error {
	stage, err := parseStage(ctx.Param("stage"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entityID, err := int64Param(ctx, "entityId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetStockQuery(stage, entityID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	lines, err := s.handlers.GetStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockLinesResponse(lines))
}

// GetLocationStock handles GET /api/v1/locations/:locationId/stock.
func (s *Server) GetLocationStock(ctx echo.Context) error {
	locationID, err := int64Param(ctx, "locationId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetLocationStockQuery(kernel.LocationID(locationID))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stock, err := s.handlers.GetLocationStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := LocationStockResponse{
		Lines:    stockLinesResponse(stock.Lines),
		Unlisted: make([]UnlistedLine, 0, len(stock.Unlisted)),
	}
	for _, unlisted := range stock.Unlisted {
		response.Unlisted = append(response.Unlisted, UnlistedLine{
			Barcode:  unlisted.Barcode,
			Quantity: unlisted.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordUsage handles POST /api/v1/locations/:locationId/usage.
func (s *Server) RecordUsage(ctx echo.Context) error {
	locationID, err := int64Param(ctx, "locationId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body RecordUsageBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recordID := kernel.NewUUID()
	cmd, err := commands.NewRecordOutwardUsageCommand(
		recordID, kernel.LocationID(locationID), kernel.ProductID(body.ProductID),
		variantFromBody(body.VariantID), body.Quantity, kernel.UserID(body.ActorID),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.RecordOutwardUsage.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: recordID.String()})
}

// RecordUnlisted handles POST /api/v1/locations/:locationId/unlisted.
func (s *Server) RecordUnlisted(ctx echo.Context) error {
	locationID, err := int64Param(ctx, "locationId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body RecordUnlistedBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordUnlistedInventoryCommand(
		body.Barcode, kernel.LocationID(locationID), body.Quantity, kernel.UserID(body.ActorID),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.RecordUnlisted.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// LoadVan handles POST /api/v1/transfers.
func (s *Server) LoadVan(ctx echo.Context) error {
	var body LoadVanBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var destination *kernel.LocationID
	if body.DestinationLocationID != nil {
		locationID := kernel.LocationID(*body.DestinationLocationID)
		destination = &locationID
	}

	var deliveryDate *time.Time
	if body.DeliveryDate != nil {
		deliveryDate = &body.DeliveryDate.Time
	}

	transferID := kernel.NewUUID()
	cmd, err := commands.NewTransferWarehouseToVanCommand(
		transferID, kernel.VanID(body.VanID), kernel.WarehouseID(body.WarehouseID),
		destination, body.DriverName, deliveryDate,
		productLines(body.Lines), kernel.UserID(body.ActorID),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.TransferToVan.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: transferID.String()})
}

// DeliverTransfer handles POST /api/v1/transfers/:transferId/deliver.
func (s *Server) DeliverTransfer(ctx echo.Context) error {
	transferID, err := kernel.UUIDFromString(ctx.Param("transferId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body DeliverTransferBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransferVanToLocationCommand(
		transferID, kernel.LocationID(body.LocationID), kernel.UserID(body.ActorID),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.TransferToLocation.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRestockRequest handles POST /api/v1/requests/restock.
func (s *Server) CreateRestockRequest(ctx echo.Context) error {
	var body CreateRestockRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestockRequestCommand(
		requestID, kernel.CustomerID(body.CustomerID), kernel.LocationID(body.LocationID),
		body.RequestDate.Time, productLines(body.Lines),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CreateRestockRequest.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// CreateFollowupRequest handles POST /api/v1/requests/followup.
func (s *Server) CreateFollowupRequest(ctx echo.Context) error {
	var body CreateFollowupRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateFollowupRequestCommand(
		requestID, kernel.CustomerID(body.CustomerID), kernel.LocationID(body.LocationID),
		body.RequestDate.Time,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CreateFollowupRequest.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body CreateRouteBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stops := make([]commands.StopInput, 0, len(body.Stops))
	for _, stop := range body.Stops {
		restockRef, err := uuidFromBody(stop.RestockRequestID)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		followupRef, err := uuidFromBody(stop.FollowupRequestID)
		if err != nil {
			return badRequest(ctx, err.Error())
		}

		var customerID *kernel.CustomerID
		if stop.CustomerID != nil {
			customer := kernel.CustomerID(*stop.CustomerID)
			customerID = &customer
		}

		var geo *route.GeoPoint
		if stop.Geo != nil {
			geo = &route.GeoPoint{Lat: stop.Geo.Lat, Long: stop.Geo.Long}
		}

		stops = append(stops, commands.StopInput{
			StopID:            kernel.NewUUID(),
			LocationID:        kernel.LocationID(stop.LocationID),
			StopOrder:         stop.StopOrder,
			CustomerID:        customerID,
			RestockRequestID:  restockRef,
			FollowupRequestID: followupRef,
			Address:           stop.Address,
			Geo:               geo,
		})
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(
		routeID, kernel.UserID(body.DriverID), kernel.WarehouseID(body.WarehouseID),
		body.DeliveryDate.Time, stops,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CreateRoute.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: routeID.String()})
}

// GetRoute handles GET /api/v1/routes/:routeId.
func (s *Server) GetRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetRouteQuery(routeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	routeView, err := s.handlers.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := RouteResponse{
		ID:           routeView.ID.String(),
		DriverID:     int64(routeView.DriverID),
		WarehouseID:  int64(routeView.WarehouseID),
		DeliveryDate: openapi_types.Date{Time: routeView.DeliveryDate},
		Status:       routeView.Status.String(),
		Stops:        make([]RouteStopResponse, 0, len(routeView.Stops)),
	}
	for _, stop := range routeView.Stops {
		stopResp := RouteStopResponse{
			ID:         stop.ID.String(),
			LocationID: int64(stop.LocationID),
			StopOrder:  stop.StopOrder,
			Address:    stop.Address,
			Status:     stop.Status.String(),
		}
		if stop.CustomerID != nil {
			customer := int64(*stop.CustomerID)
			stopResp.CustomerID = &customer
		}
		if stop.RestockRequestID != nil {
			ref := stop.RestockRequestID.String()
			stopResp.RestockRequestID = &ref
		}
		if stop.FollowupRequestID != nil {
			ref := stop.FollowupRequestID.String()
			stopResp.FollowupRequestID = &ref
		}
		if stop.CompletedAt != nil {
			completed := stop.CompletedAt.Format(time.RFC3339)
			stopResp.CompletedAt = &completed
		}
		response.Stops = append(response.Stops, stopResp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AttachRequest handles POST /api/v1/routes/:routeId/requests.
func (s *Server) AttachRequest(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body AttachRequestBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stopID, err := kernel.UUIDFromString(body.StopID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	restockRef, err := uuidFromBody(body.RestockRequestID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	followupRef, err := uuidFromBody(body.FollowupRequestID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAttachRequestCommand(routeID, stopID, restockRef, followupRef)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.AttachRequest.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReorderStops handles POST /api/v1/routes/:routeId/reorder.
func (s *Server) ReorderStops(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body ReorderStopsBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newOrder := make(map[kernel.UUID]int, len(body.NewOrder))
	for rawStopID, position := range body.NewOrder {
		stopID, idErr := kernel.UUIDFromString(rawStopID)
		if idErr != nil {
			return badRequest(ctx, idErr.Error())
		}
		newOrder[stopID] = position
	}

	cmd, err := commands.NewReorderStopsCommand(routeID, newOrder)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.ReorderStops.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OptimizeRoute handles POST /api/v1/routes/:routeId/optimize.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body OptimizeRouteBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOptimizeRouteCommand(routeID, body.Vehicle)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.OptimizeRoute.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStop handles POST /api/v1/routes/:routeId/stops/:stopId/advance.
func (s *Server) AdvanceStop(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stopID, err := kernel.UUIDFromString(ctx.Param("stopId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body AdvanceStopBody
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := parseStopTarget(body.Target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceStopCommand(
		routeID, stopID, target, body.OtpCode, kernel.UserID(body.ActorID),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.AdvanceStop.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteRoute handles POST /api/v1/routes/:routeId/complete.
func (s *Server) CompleteRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteRouteCommand(routeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CompleteRoute.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelRoute handles POST /api/v1/routes/:routeId/cancel.
func (s *Server) CancelRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("routeId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelRouteCommand(routeID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.handlers.CancelRoute.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func int64Param(ctx echo.Context, name string) (int64, error) {
	var value int64
	err := echo.PathParamsBinder(ctx).Int64(name, &value).BindError()
	if err != nil {
		return 0, err
	}
	return value, nil
}

func productLines(body []ProductLineBody) []commands.ProductLine {
	lines := make([]commands.ProductLine, 0, len(body))
	for _, line := range body {
		lines = append(lines, commands.ProductLine{
			ProductID: kernel.ProductID(line.ProductID),
			VariantID: variantFromBody(line.VariantID),
			Quantity:  line.Quantity,
		})
	}
	return lines
}

func stockLinesResponse(lines []queries.GetStockQueryResponse) []StockLine {
	response := make([]StockLine, 0, len(lines))
	for _, line := range lines {
		stockLine := StockLine{
			ProductID: int64(line.ProductID),
			Quantity:  line.Quantity,
		}
		if line.VariantID != nil {
			variant := int64(*line.VariantID)
			stockLine.VariantID = &variant
		}
		response = append(response, stockLine)
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps use case failures onto HTTP statuses. Domain conflicts
// come back as 409 so callers can distinguish them from malformed input.
func commandError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientStock),
		errors.Is(err, route.ErrOrderingConflict),
		errors.Is(err, route.ErrInvalidTransition),
		errors.Is(err, route.ErrStopAlreadyLinked),
		errors.Is(err, request.ErrDuplicateAttachment):
		status = http.StatusConflict
	case errors.Is(err, route.ErrOtpMismatch):
		status = http.StatusForbidden
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
