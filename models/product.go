package models

// Product is a sellable inventory item.
//
// The identifier is caller-supplied: clients may POST a product with a
// concrete ID and the store enforces uniqueness natively. Products take part
// in a many-to-many relationship with orders via the order_products join
// table; the relationship is navigated from the Order side only.
type Product struct {
	// ID is the unique product identifier.
	ID int64 `json:"id"`

	// Name is the human-readable product name.
	Name string `json:"name"`

	// Price is the unit price in the store currency.
	Price float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
