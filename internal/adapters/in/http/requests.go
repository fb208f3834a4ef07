package http

import (
	"errors"
	"fmt"
	"strings"

	"kurye/internal/core/application/usecases/commands"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"
)

var (
	errUnknownVehicle     = errors.New("vehicle must be one of: bicycle, motorcycle, car")
	errUnknownShiftAction = errors.New("action must be one of: online, offline, break")
	errUnknownPrepAction  = errors.New("action must be one of: start, ready")
	errUnknownBusyStatus  = errors.New("status must be one of: normal, busy, overloaded")
	errMalformedShiftTime = errors.New("shift times must use the HH:MM format")
)

// locationRequest is a geographic coordinate as sent by clients.
type locationRequest struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func (r locationRequest) toGeoPoint() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(r.Latitude, r.Longitude)
}

// orderItemRequest is one cart line. Prices are never accepted from the
// client; they are resolved from the vendor catalog.
type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// createOrderRequest is the payload for placing a new order. CampaignID
// and CouponCode are mutually exclusive discount sources.
type createOrderRequest struct {
	CustomerID      string             `json:"customer_id"`
	VendorID        string             `json:"vendor_id"`
	DeliveryAddress locationRequest    `json:"delivery_address"`
	City            string             `json:"city"`
	District        string             `json:"district"`
	Items           []orderItemRequest `json:"items"`
	CampaignID      string             `json:"campaign_id,omitempty"`
	CouponCode      string             `json:"coupon_code,omitempty"`
}

func (r createOrderRequest) items() ([]commands.OrderItemSpec, error) {
	specs := make([]commands.OrderItemSpec, 0, len(r.Items))
	for _, item := range r.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product_id %q: %w", item.ProductID, err)
		}
		specs = append(specs, commands.OrderItemSpec{ProductID: productID, Quantity: item.Quantity})
	}
	return specs, nil
}

func (r createOrderRequest) campaignID() (*kernel.UUID, error) {
	if r.CampaignID == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(r.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign_id: %w", err)
	}
	return &id, nil
}

// createCourierRequest is the payload for registering a courier.
// ShiftStart and ShiftEnd use the HH:MM format; an overnight shift has
// ShiftEnd earlier than ShiftStart.
type createCourierRequest struct {
	Name            string          `json:"name"`
	Vehicle         string          `json:"vehicle"`
	Location        locationRequest `json:"location"`
	ShiftStart      string          `json:"shift_start"`
	ShiftEnd        string          `json:"shift_end"`
	MaxActiveOrders int             `json:"max_active_orders"`
}

func (r createCourierRequest) workingHours() (courier.WorkingHours, error) {
	startHour, startMinute, err := parseClockTime(r.ShiftStart)
	if err != nil {
		return courier.WorkingHours{}, fmt.Errorf("shift_start: %w", err)
	}
	endHour, endMinute, err := parseClockTime(r.ShiftEnd)
	if err != nil {
		return courier.WorkingHours{}, fmt.Errorf("shift_end: %w", err)
	}
	return courier.NewWorkingHours(startHour, startMinute, endHour, endMinute)
}

type shiftRequest struct {
	Action string `json:"action"`
}

type prepRequest struct {
	Action string `json:"action"`
}

type busyRequest struct {
	Status string `json:"status"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type deliverRequest struct {
	Tip float64 `json:"tip"`
}

func parseVehicleType(raw string) (courier.VehicleType, error) {
	switch strings.ToLower(raw) {
	case "bicycle":
		return courier.VehicleBicycle, nil
	case "motorcycle":
		return courier.VehicleMotorcycle, nil
	case "car":
		return courier.VehicleCar, nil
	default:
		return courier.VehicleUnknown, errUnknownVehicle
	}
}

func parseShiftAction(raw string) (commands.ShiftAction, error) {
	switch strings.ToLower(raw) {
	case "online":
		return commands.ShiftGoOnline, nil
	case "offline":
		return commands.ShiftGoOffline, nil
	case "break":
		return commands.ShiftTakeBreak, nil
	default:
		return commands.ShiftActionUnknown, errUnknownShiftAction
	}
}

func parsePrepAction(raw string) (commands.PrepAction, error) {
	switch strings.ToLower(raw) {
	case "start":
		return commands.PrepStart, nil
	case "ready":
		return commands.PrepReady, nil
	default:
		return commands.PrepActionUnknown, errUnknownPrepAction
	}
}

func parseBusyStatus(raw string) (vendor.BusyStatus, error) {
	switch strings.ToLower(raw) {
	case "normal":
		return vendor.BusyStatusNormal, nil
	case "busy":
		return vendor.BusyStatusBusy, nil
	case "overloaded":
		return vendor.BusyStatusOverloaded, nil
	default:
		return vendor.BusyStatusUnknown, errUnknownBusyStatus
	}
}

// parseClockTime parses an HH:MM wall-clock string.
func parseClockTime(raw string) (hour, minute int, err error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, errMalformedShiftTime
	}
	if _, scanErr := fmt.Sscanf(raw, "%d:%d", &hour, &minute); scanErr != nil {
		return 0, 0, errMalformedShiftTime
	}
	return hour, minute, nil
}
