package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired  = errors.New("at least one order item is required")
	ErrQuantityIsInvalid      = errors.New("quantity must be greater than 0")
	ErrCityIsRequired         = errors.New("city is required")
	ErrDiscountSourceConflict = errors.New("campaign and coupon cannot be combined")
)

// OrderItemSpec is one requested cart line: a product reference and a
// quantity. Prices are resolved from the vendor catalog, never taken
// from the request.
type OrderItemSpec struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order with a
// vendor: the cart, the drop-off point, and at most one discount source
// (a campaign or a coupon code).
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	vendorID        kernel.UUID
	deliveryAddress kernel.GeoPoint
	city            string
	district        string
	items           []OrderItemSpec
	campaignID      *kernel.UUID
	couponCode      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the delivery address, and that every item has
// a positive quantity.
func NewCreateOrderCommand(
	orderID, customerID, vendorID kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	city, district string,
	items []OrderItemSpec,
	campaignID *kernel.UUID,
	couponCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		district:   district,
		campaignID: campaignID,
		couponCode: couponCode,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID, vendorID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setCity(city),
		cmd.setItems(items),
		cmd.validateDiscountSource(campaignID, couponCode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the vendor the order is placed with.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// DeliveryAddress returns the drop-off coordinate.
func (c CreateOrderCommand) DeliveryAddress() kernel.GeoPoint {
	return c.deliveryAddress
}

// City returns the drop-off city for campaign scoping.
func (c CreateOrderCommand) City() string {
	return c.city
}

// District returns the drop-off district for campaign scoping.
func (c CreateOrderCommand) District() string {
	return c.district
}

// Items returns the requested cart lines.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

// CampaignID returns the campaign to apply, nil when none.
func (c CreateOrderCommand) CampaignID() *kernel.UUID {
	return c.campaignID
}

// CouponCode returns the coupon code to redeem, empty when none.
func (c CreateOrderCommand) CouponCode() string {
	return c.couponCode
}

func (c *CreateOrderCommand) setIDs(orderID, customerID, vendorID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), vendorID.Validate()); err != nil {
		return err
	}
	c.orderID = orderID
	c.customerID = customerID
	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.GeoPoint) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	c.city = city
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) validateDiscountSource(campaignID *kernel.UUID, couponCode string) error {
	if campaignID != nil && couponCode != "" {
		return ErrDiscountSourceConflict
	}
	if campaignID != nil {
		return campaignID.Validate()
	}
	return nil
}
