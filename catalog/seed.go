package catalog

import "salesbot/models"

// Default returns the catalog seeded with the demo car-care services.
func Default() *Catalog {
	return New([]models.ServiceItem{
		{
			ID: "CAR-WASH", Name: "Car Wash", BasePrice: 1500,
			AddOns: []models.AddOn{
				{ID: "AO-SNOW", Name: "Snow Foam Pre-wash", Price: 400},
				{ID: "AO-WAX", Name: "Wax & Shine", Price: 700},
				{ID: "AO-RIM", Name: "Rim & Tire Shine", Price: 350},
				{ID: "AO-INT", Name: "Interior Vacuum", Price: 600},
			},
		},
		{
			ID: "OIL-CHG", Name: "Oil Change", BasePrice: 3200,
			AddOns: []models.AddOn{
				{ID: "AO-SYN", Name: "Synthetic Oil Upgrade", Price: 1200},
				{ID: "AO-FLTR", Name: "Premium Filter", Price: 800},
			},
		},
		{
			ID: "DETAIL", Name: "Full Detailing", BasePrice: 8500,
			AddOns: []models.AddOn{
				{ID: "AO-CLAY", Name: "Clay Bar Treatment", Price: 1500},
				{ID: "AO-CER", Name: "Ceramic Sealant", Price: 3000},
			},
		},
	})
}
