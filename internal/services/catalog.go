package services

import "github.com/gosimple/slug"

// Service is an entry of the shop's fixed price list. The catalog is not
// persisted; it is compiled in, same for both storage backends.
type Service struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Price float64 `json:"price"`
}

var catalog = func() []Service {
	list := []Service{
		{ID: 1, Name: "Engine repair", Price: 150000},
		{ID: 2, Name: "Transmission repair", Price: 80000},
		{ID: 3, Name: "Oil Change", Price: 60000},
		{ID: 4, Name: "Chain replacement", Price: 40000},
		{ID: 5, Name: "Disc replacement", Price: 400000},
		{ID: 6, Name: "Wheel alignment", Price: 5000},
	}
	for i := range list {
		list[i].Slug = slug.Make(list[i].Name)
	}
	return list
}()

// Catalog returns a copy of the price list.
func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}
