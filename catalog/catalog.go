package catalog

import (
	"strings"

	"salesbot/models"
)

// Catalog is the read-only service index. It is built once at startup and
// shared by reference across the pricing engine, intent classifier and turn
// resolver; nothing mutates it at runtime, so concurrent reads need no locking.
type Catalog struct {
	services []models.ServiceItem
	byID     map[string]*models.ServiceItem
	addOns   map[string]*models.AddOn
}

// New builds a catalog index over the given services. Service ids are matched
// case-insensitively; add-on ids are indexed flat since they are globally
// unique across the catalog.
func New(services []models.ServiceItem) *Catalog {
	c := &Catalog{
		services: services,
		byID:     make(map[string]*models.ServiceItem, len(services)),
		addOns:   make(map[string]*models.AddOn),
	}
	for i := range c.services {
		svc := &c.services[i]
		c.byID[strings.ToLower(svc.ID)] = svc
		for j := range svc.AddOns {
			c.addOns[strings.ToLower(svc.AddOns[j].ID)] = &svc.AddOns[j]
		}
	}
	return c
}

// Services returns all services in seed order.
func (c *Catalog) Services() []models.ServiceItem {
	return c.services
}

// ServiceByID looks up a service by id, case-insensitively.
func (c *Catalog) ServiceByID(id string) (*models.ServiceItem, bool) {
	svc, ok := c.byID[strings.ToLower(id)]
	return svc, ok
}

// AddOnByID looks up an add-on across all services by its globally unique id.
func (c *Catalog) AddOnByID(id string) (*models.AddOn, bool) {
	a, ok := c.addOns[strings.ToLower(id)]
	return a, ok
}

// HasService reports whether the id refers to a catalog service.
func (c *Catalog) HasService(id string) bool {
	_, ok := c.ServiceByID(id)
	return ok
}

// AddOnOptions returns the priced add-on list for a service, for askAddOns
// prompts. Always regenerated from the catalog, never taken from a model.
func (c *Catalog) AddOnOptions(serviceID string) []models.AddOnOption {
	svc, ok := c.ServiceByID(serviceID)
	if !ok {
		return nil
	}
	options := make([]models.AddOnOption, 0, len(svc.AddOns))
	for _, a := range svc.AddOns {
		options = append(options, models.AddOnOption{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return options
}
