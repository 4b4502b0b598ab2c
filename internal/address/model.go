package address

// Address is a saved shipping destination in the account address book.
type Address struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`

	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	IsDefault bool `json:"isDefault"`
}

type Input struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`

	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	SetAsDefault bool `json:"setAsDefault,omitempty"`
}

// Line renders the address as a single shipping line for order creation.
func (a *Address) Line() string {
	line := a.AddressLine1
	if a.AddressLine2 != "" {
		line += ", " + a.AddressLine2
	}
	line += ", " + a.City
	if a.Province != "" {
		line += ", " + a.Province
	}
	return line + " " + a.PostalCode + ", " + a.Country
}
