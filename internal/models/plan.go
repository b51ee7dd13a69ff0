package models

import (
	"time"
)

// Plan types, ordered by tier.
const (
	PlanFree         = "FREE"
	PlanBasic        = "BASIC"
	PlanProfessional = "PROFESSIONAL"
	PlanPremium      = "PREMIUM"
)

// UnlimitedQuota is the sentinel for plans without a product or
// highlight ceiling.
const UnlimitedQuota = -1

type Plan struct {
	ID            uint   `gorm:"primarykey"`
	Type          string `gorm:"uniqueIndex;not null"`
	Price         float64
	Features      JSON `gorm:"type:jsonb"`
	MaxProducts   int
	MaxHighlights int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Unlimited reports whether the plan has no product ceiling.
func (p *Plan) Unlimited() bool {
	return p.MaxProducts == UnlimitedQuota
}

// DefaultPlans returns the catalog seeded when the plans table is empty.
// Prices are in kwanzas per month.
func DefaultPlans() []Plan {
	return []Plan{
		{
			Type:          PlanFree,
			Price:         0,
			Features:      JSON{"items": []string{"2 Publicações", "0 Destaques", "Suporte Básico"}},
			MaxProducts:   2,
			MaxHighlights: 0,
		},
		{
			Type:          PlanBasic,
			Price:         2000,
			Features:      JSON{"items": []string{"30 Publicações", "10 Destaques", "Suporte Básico"}},
			MaxProducts:   30,
			MaxHighlights: 10,
		},
		{
			Type:          PlanProfessional,
			Price:         10000,
			Features:      JSON{"items": []string{"100 Publicações", "50 Destaques", "Estatísticas Básicas"}},
			MaxProducts:   100,
			MaxHighlights: 50,
		},
		{
			Type:          PlanPremium,
			Price:         25000,
			Features:      JSON{"items": []string{"Publicações Ilimitadas", "Destaques Ilimitados", "Suporte VIP", "Gestor de Conta"}},
			MaxProducts:   UnlimitedQuota,
			MaxHighlights: UnlimitedQuota,
		},
	}
}
