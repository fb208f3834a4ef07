package order

import (
	"errors"
	"fmt"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"
)

// Item is a priced order line. The unit price is the price the vendor's
// catalog carried at ordering time, never a client-supplied value.
//
// Item is a value object: immutable after construction.
type Item struct {
	productID  kernel.UUID
	categoryID kernel.UUID
	unitPrice  float64
	quantity   int
}

// NewItem creates an order line for quantity units of a product.
func NewItem(productID, categoryID kernel.UUID, unitPrice float64, quantity int) (Item, error) {
	if err := errors.Join(productID.Validate(), categoryID.Validate()); err != nil {
		return Item{}, err
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%v is negative", unitPrice),
		)
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		productID:  productID,
		categoryID: categoryID,
		unitPrice:  unitPrice,
		quantity:   quantity,
	}, nil
}

// ProductID returns the product the line refers to.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// CategoryID returns the catalog category of the product.
func (i Item) CategoryID() kernel.UUID {
	return i.categoryID
}

// UnitPrice returns the catalog price of one unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unitPrice * quantity rounded to cents.
func (i Item) LineTotal() float64 {
	return kernel.RoundMoney(i.unitPrice * float64(i.quantity))
}
