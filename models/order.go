package models

import "time"

// Order is a purchase record owned by a user.
//
// UserID references a row in the users table. The reference is not enforced
// at creation time: an order may be accepted for a user id that does not
// exist yet. Products holds the full product records associated with the
// order through the order_products join table.
type Order struct {
	// ID is the unique order identifier.
	ID int64 `json:"id"`

	// OrderDate is the timestamp the order was placed.
	OrderDate time.Time `json:"orderDate"`

	// UserID identifies the user that owns the order.
	UserID int64 `json:"userId"`

	// Products are the items associated with the order.
	// Serialized as an empty list rather than null when no items are linked;
	// read paths guarantee a non-nil slice.
	Products []Product `json:"products"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
