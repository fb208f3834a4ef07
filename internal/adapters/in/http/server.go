package http

import (
	"log/slog"
	"net/http"
	"time"

	"kurye/internal/core/application/usecases/commands"
	"kurye/internal/core/application/usecases/queries"
	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server exposes the platform over HTTP. It binds requests into
// commands and queries, hands them to the application layer and
// translates the outcome into status codes.
type Server struct {
	createOrder    commands.CreateOrderCommandHandler
	calculateOrder commands.CalculateOrderCommandHandler
	cancelOrder    commands.CancelOrderCommandHandler
	advancePrep    commands.AdvanceOrderPrepCommandHandler

	createCourier  commands.CreateCourierCommandHandler
	changeShift    commands.ChangeCourierShiftCommandHandler
	updateLocation commands.UpdateCourierLocationCommandHandler

	acceptOrder   commands.AcceptOrderCommandHandler
	rejectOrder   commands.RejectOrderCommandHandler
	pickUpOrder   commands.PickUpOrderCommandHandler
	startDelivery commands.StartDeliveryCommandHandler
	deliverOrder  commands.DeliverOrderCommandHandler

	setVendorBusy commands.SetVendorBusyCommandHandler

	courierActiveOrders queries.GetCourierActiveOrdersQueryHandler
	orderCourierHistory queries.GetOrderCourierHistoryQueryHandler

	localization ports.LocalizationService
	logger       *slog.Logger
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	CalculateOrder commands.CalculateOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	AdvancePrep    commands.AdvanceOrderPrepCommandHandler

	CreateCourier  commands.CreateCourierCommandHandler
	ChangeShift    commands.ChangeCourierShiftCommandHandler
	UpdateLocation commands.UpdateCourierLocationCommandHandler

	AcceptOrder   commands.AcceptOrderCommandHandler
	RejectOrder   commands.RejectOrderCommandHandler
	PickUpOrder   commands.PickUpOrderCommandHandler
	StartDelivery commands.StartDeliveryCommandHandler
	DeliverOrder  commands.DeliverOrderCommandHandler

	SetVendorBusy commands.SetVendorBusyCommandHandler

	CourierActiveOrders queries.GetCourierActiveOrdersQueryHandler
	OrderCourierHistory queries.GetOrderCourierHistoryQueryHandler
}

// NewServer creates the HTTP server from the wired use case handlers.
func NewServer(handlers Handlers, localization ports.LocalizationService, logger *slog.Logger) *Server {
	return &Server{
		createOrder:         handlers.CreateOrder,
		calculateOrder:      handlers.CalculateOrder,
		cancelOrder:         handlers.CancelOrder,
		advancePrep:         handlers.AdvancePrep,
		createCourier:       handlers.CreateCourier,
		changeShift:         handlers.ChangeShift,
		updateLocation:      handlers.UpdateLocation,
		acceptOrder:         handlers.AcceptOrder,
		rejectOrder:         handlers.RejectOrder,
		pickUpOrder:         handlers.PickUpOrder,
		startDelivery:       handlers.StartDelivery,
		deliverOrder:        handlers.DeliverOrder,
		setVendorBusy:       handlers.SetVendorBusy,
		courierActiveOrders: handlers.CourierActiveOrders,
		orderCourierHistory: handlers.OrderCourierHistory,
		localization:        localization,
		logger:              logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/quote", s.CalculateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/prep", s.AdvanceOrderPrep)
	api.GET("/orders/:id/couriers", s.GetOrderCourierHistory)

	api.POST("/couriers", s.CreateCourier)
	api.POST("/couriers/:id/shift", s.ChangeCourierShift)
	api.POST("/couriers/:id/location", s.UpdateCourierLocation)
	api.GET("/couriers/:id/orders", s.GetCourierActiveOrders)

	api.POST("/assignments/:id/accept", s.AcceptOrder)
	api.POST("/assignments/:id/reject", s.RejectOrder)
	api.POST("/assignments/:id/pickup", s.PickUpOrder)
	api.POST("/assignments/:id/start-delivery", s.StartDelivery)
	api.POST("/assignments/:id/deliver", s.DeliverOrder)

	api.POST("/vendors/:id/busy", s.SetVendorBusy)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	address, err := req.DeliveryAddress.toGeoPoint()
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	items, err := req.items()
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	campaignID, err := req.campaignID()
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, vendorID,
		address, req.City, req.District,
		items, campaignID, req.CouponCode,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.createOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// CalculateOrder handles POST /api/v1/orders/quote - prices a cart
// without placing an order.
func (s *Server) CalculateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	address, err := req.DeliveryAddress.toGeoPoint()
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	items, err := req.items()
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	campaignID, err := req.campaignID()
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCalculateOrderCommand(
		customerID, vendorID,
		address, req.City, req.District,
		items, campaignID, req.CouponCode,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	result, err := s.calculateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteResponseFromResult(result))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req cancelRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.cancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceOrderPrep handles POST /api/v1/orders/:id/prep - the vendor
// reports preparation progress.
func (s *Server) AdvanceOrderPrep(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req prepRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	action, err := parsePrepAction(req.Action)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderPrepCommand(orderID, action)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.advancePrep.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateCourier handles POST /api/v1/couriers - registers a courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req createCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	vehicle, err := parseVehicleType(req.Vehicle)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	location, err := req.Location.toGeoPoint()
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	workingHours, err := req.workingHours()
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, vehicle, location, workingHours, req.MaxActiveOrders)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.createCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeCourierShift handles POST /api/v1/couriers/:id/shift.
func (s *Server) ChangeCourierShift(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req shiftRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	action, err := parseShiftAction(req.Action)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewChangeCourierShiftCommand(courierID, action)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.changeShift.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateCourierLocation handles POST /api/v1/couriers/:id/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req locationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	location, err := req.toGeoPoint()
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, location)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.updateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCourierActiveOrders handles GET /api/v1/couriers/:id/orders - the
// courier's open assignments.
func (s *Server) GetCourierActiveOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetCourierActiveOrdersQuery(courierID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	tasks, err := s.courierActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]activeOrderResponse, len(tasks))
	for i, task := range tasks {
		response[i] = activeOrderResponse{
			AssignmentID: task.AssignmentID.String(),
			OrderID:      task.OrderID.String(),
			Status:       assignment.Status(task.AssignmentStatus).String(),
			AssignedAt:   task.AssignedAt,
			DeliveryAddress: locationRequest{
				Latitude:  task.DeliveryAddress.Latitude(),
				Longitude: task.DeliveryAddress.Longitude(),
			},
			OrderTotal: task.OrderTotal,
			FeeTotal:   task.FeeTotal,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderCourierHistory handles GET /api/v1/orders/:id/couriers - the
// full assignment trail of an order.
func (s *Server) GetOrderCourierHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderCourierHistoryQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	trail, err := s.orderCourierHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]courierHistoryResponse, len(trail))
	for i, attempt := range trail {
		response[i] = courierHistoryResponse{
			AssignmentID: attempt.AssignmentID.String(),
			CourierID:    attempt.CourierID.String(),
			CourierName:  attempt.CourierName,
			Status:       assignment.Status(attempt.Status).String(),
			RejectReason: attempt.RejectReason,
			AssignedAt:   attempt.AssignedAt,
			RespondedAt:  attempt.RespondedAt,
			FeeTotal:     attempt.FeeTotal,
			Tip:          attempt.Tip,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/assignments/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(assignmentID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.acceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectOrder handles POST /api/v1/assignments/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req rejectRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(assignmentID, req.Reason)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.rejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PickUpOrder handles POST /api/v1/assignments/:id/pickup.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewPickUpOrderCommand(assignmentID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.pickUpOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartDelivery handles POST /api/v1/assignments/:id/start-delivery.
func (s *Server) StartDelivery(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewStartDeliveryCommand(assignmentID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.startDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeliverOrder handles POST /api/v1/assignments/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req deliverRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(assignmentID, req.Tip)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SetVendorBusy handles POST /api/v1/vendors/:id/busy - back office
// adjusts a vendor's load level.
func (s *Server) SetVendorBusy(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req busyRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	busyStatus, err := parseBusyStatus(req.Status)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewSetVendorBusyCommand(vendorID, busyStatus)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.setVendorBusy.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// quoteResponse is the priced breakdown returned for a dry-run quote.
type quoteResponse struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	DeliveryFee    float64 `json:"delivery_fee"`
	Total          float64 `json:"total"`

	AppliedCampaignID string `json:"applied_campaign_id,omitempty"`
	AppliedCouponID   string `json:"applied_coupon_id,omitempty"`

	DistanceKm        float64 `json:"distance_km"`
	DistanceEstimated bool    `json:"distance_estimated"`
	PromisedMinutes   int     `json:"promised_minutes"`
}

func quoteResponseFromResult(result commands.CalculateOrderResult) quoteResponse {
	response := quoteResponse{
		Subtotal:          result.Subtotal,
		DiscountAmount:    result.DiscountAmount,
		DeliveryFee:       result.DeliveryFee,
		Total:             result.Total,
		DistanceKm:        result.DistanceKm,
		DistanceEstimated: result.DistanceEstimated,
		PromisedMinutes:   result.PromisedMinutes,
	}
	if result.AppliedCampaignID != nil {
		response.AppliedCampaignID = result.AppliedCampaignID.String()
	}
	if result.AppliedCouponID != nil {
		response.AppliedCouponID = result.AppliedCouponID.String()
	}
	return response
}

type activeOrderResponse struct {
	AssignmentID    string          `json:"assignment_id"`
	OrderID         string          `json:"order_id"`
	Status          string          `json:"status"`
	AssignedAt      time.Time       `json:"assigned_at"`
	DeliveryAddress locationRequest `json:"delivery_address"`
	OrderTotal      float64         `json:"order_total"`
	FeeTotal        float64         `json:"fee_total"`
}

type courierHistoryResponse struct {
	AssignmentID string     `json:"assignment_id"`
	CourierID    string     `json:"courier_id"`
	CourierName  string     `json:"courier_name"`
	Status       string     `json:"status"`
	RejectReason string     `json:"reject_reason,omitempty"`
	AssignedAt   time.Time  `json:"assigned_at"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	FeeTotal     float64    `json:"fee_total"`
	Tip          float64    `json:"tip"`
}
