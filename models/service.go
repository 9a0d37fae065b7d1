package models

// ServiceItem is one bookable service from the catalog, with its add-ons.
type ServiceItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice int     `json:"basePrice"`
	AddOns    []AddOn `json:"addOns"`
}

// AddOn is an optional extra scoped to exactly one owning service.
// Add-on ids are globally unique across the catalog.
type AddOn struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}
