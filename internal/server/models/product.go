package models

// Product is a farmer's listing. Wire field names follow the listing
// form: priceperkg_l and amountkg_l are price per kg (or litre) and
// available amount in kg (or litres).
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ProductName string  `json:"productname"`
	PricePerKg  float64 `json:"priceperkg_l"`
	AmountKg    float64 `json:"amountkg_l"`
	Description string  `json:"description"`
}
