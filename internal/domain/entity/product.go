package entity

import "github.com/shopspring/decimal"

// Product es un producto del catálogo Billennium. De cara al cliente es de
// solo lectura: la fuente de verdad vive en el backend.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Plans       []Plan   `json:"plans"`
}

// Plan es un plan comercial anidado en Product. Los precios llegan en USD;
// PriceBefore es el precio tachado de la promoción.
type Plan struct {
	Name        string          `json:"name"`
	PriceBefore decimal.Decimal `json:"price_before"`
	PriceNow    decimal.Decimal `json:"price_now"`
	Billing     string          `json:"billing"` // cadencia, ej. "mensual"
	Features    []string        `json:"features"`
	Popular     bool            `json:"popular,omitempty"`
}

// FindPlan busca un plan por nombre dentro del producto.
func (p *Product) FindPlan(name string) (*Plan, bool) {
	for i := range p.Plans {
		if p.Plans[i].Name == name {
			return &p.Plans[i], true
		}
	}
	return nil, false
}
