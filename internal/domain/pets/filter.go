package pets

import "sort"

// Order indica cómo debe ordenar el repositorio un listado.
type Order int

const (
	OrderCreatedAsc Order = iota
	OrderUpdatedDesc
)

// Filter combina predicados independientes. Un campo nil no filtra.
type Filter struct {
	OrganizationID *string
	Published      *bool
	Adopted        *bool
	Order          Order
}

// Matches aplica los predicados del filtro sobre una mascota.
func (f Filter) Matches(p Pet) bool {
	if f.OrganizationID != nil && p.OrganizationID != *f.OrganizationID {
		return false
	}
	if f.Published != nil && p.IsPublished != *f.Published {
		return false
	}
	if f.Adopted != nil && p.IsAdopted != *f.Adopted {
		return false
	}
	return true
}

// Sort ordena in-place según f.Order. El id desempata para que el orden sea estable.
func (f Filter) Sort(items []Pet) {
	switch f.Order {
	case OrderUpdatedDesc:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].LastUpdateTime.Equal(items[j].LastUpdateTime) {
				return items[i].ID < items[j].ID
			}
			return items[i].LastUpdateTime.After(items[j].LastUpdateTime)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].CreatedAt.Equal(items[j].CreatedAt) {
				return items[i].ID < items[j].ID
			}
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	}
}
