package order

import (
	"errors"
	"time"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for an order and its line items.
//
// Invariants:
//   - the owning customer is set at creation and never changes
//   - totalAmount always equals the exact sum of item subtotals; every
//     structural mutation of the item list recomputes it
//   - status transitions follow the Status state machine
//
// Items are owned exclusively: removing one from the aggregate removes it
// from persistence, and no item exists outside its order.
type Order struct {
	id          int64
	customerID  int64
	items       []*Item
	totalAmount decimal.Decimal
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a new, not-yet-persisted order for the given customer in
// Created status with an empty item list and a zero total. Items are appended
// with AddItem; callers decide whether an empty order may be persisted.
func NewOrder(customerID int64) (*Order, error) {
	if customerID <= 0 {
		return nil, errs.NewValueIsRequiredError("customerId")
	}

	now := time.Now().UTC()
	return &Order{
		customerID:    customerID,
		items:         make([]*Item, 0),
		totalAmount:   decimal.Zero,
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The total is recomputed
// from the restored items rather than trusted.
func RestoreOrder(
	id, customerID int64, items []*Item, status Status, createdAt, updatedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if customerID <= 0 {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	order := &Order{
		id:            id,
		customerID:    customerID,
		items:         items,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	order.calculateTotalAmount()

	return order, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier, 0 when not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Items returns the order's line items. The returned slice is a copy; the
// aggregate remains the only writer of the underlying list.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the cached order total, equal to the exact sum of the
// item subtotals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem appends a line item to the order and recomputes the total.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.calculateTotalAmount()
	o.touch()
	return nil
}

// RemoveItem deletes the line item with the given id from the order and
// recomputes the total. Returns a not-found error if no such item exists.
func (o *Order) RemoveItem(itemID int64) error {
	for i, item := range o.items {
		if item.ID() == itemID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.calculateTotalAmount()
			o.touch()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemId", itemID)
}

// ChangeStatus moves the order to the requested status, enforcing the
// transition rules of the Status state machine.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) calculateTotalAmount() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
