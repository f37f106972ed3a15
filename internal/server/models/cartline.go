package models

// CartLine is one row in the cart table. Product name and price are
// denormalized copies taken when the line is added; the price is a
// point-in-time snapshot and is never synced with the products table.
// Adding the same product twice creates two lines.
type CartLine struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"productname"`
	Price       float64 `json:"price"`
}
