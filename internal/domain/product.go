package domain

import "encoding/json"

// Product represents one sellable item in the catalog.
// The json tags correspond to the fields of the backing products file.
// A Product decoded from JSON keeps its source record and encodes back to it unchanged,
// including fields the struct does not model.
type Product struct {
	ID             string            `json:"id" validate:"required"`
	Title          string            `json:"title"`
	Price          Price             `json:"price"`
	Seller         Seller            `json:"seller"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications,omitempty"` // ram, storage, screen, camera, battery, processor, os
	Highlights     []string          `json:"highlights"`
	Promotions     []string          `json:"promotions"`
	PaymentMethods *PaymentMethods   `json:"paymentMethods,omitempty"` // Pointer: not every product offers financing
	Colors         []Color           `json:"colors,omitempty"`
	Stock          int               `json:"stock"`
	Warranty       string            `json:"warranty,omitempty"`
	Brand          string            `json:"brand,omitempty"`

	raw json.RawMessage
}

// productFields has Product's fields without its JSON methods.
type productFields Product

// UnmarshalJSON decodes the typed fields and retains a copy of data.
func (p *Product) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var f productFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Product(f)
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the source record when there is one.
func (p Product) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(productFields(p))
}

// Price holds current and list price. Discount is a percentage.
type Price struct {
	Current  float64 `json:"current"`
	Original float64 `json:"original"`
	Currency string  `json:"currency"`
	Discount float64 `json:"discount"`
}

// Seller describes the store offering the product.
type Seller struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Reviews  int     `json:"reviews"`
	Official bool    `json:"official"`
	Logo     string  `json:"logo,omitempty"`
}

type PaymentMethods struct {
	CreditCard *CreditCard `json:"creditCard,omitempty"`
}

// CreditCard is the installment plan shown next to the price.
type CreditCard struct {
	Installments   int     `json:"installments"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

type Color struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
