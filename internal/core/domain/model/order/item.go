package order

import (
	"errors"
	"strings"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxProductNameLength bounds the product name of a line item.
const MaxProductNameLength = 200

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a line item owned by an Order. Its subtotal is a cached value,
// always equal to unitPrice multiplied by quantity using exact decimal
// arithmetic, and is recomputed whenever the item is constructed.
type Item struct {
	id          int64
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	subtotal    decimal.Decimal

	isConstructed bool
}

// NewItem creates a new, not-yet-persisted line item with a computed subtotal.
func NewItem(productName string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.calculateSubtotal()
	return item, nil
}

// RestoreItem reconstructs a line item from persistence. The subtotal is
// recomputed rather than trusted, keeping the derived value consistent.
func RestoreItem(id int64, productName string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item, err := NewItem(productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	item.id = id

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier, 0 when not yet persisted.
func (i *Item) ID() int64 {
	return i.id
}

// ProductName returns the product name.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns unitPrice multiplied by quantity, computed exactly.
func (i *Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *Item) calculateSubtotal() {
	i.subtotal = i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	if len(productName) > MaxProductNameLength {
		return errs.NewValueIsOutOfRangeError("productName length", len(productName), 1, MaxProductNameLength)
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}
