package dto

import (
	"strings"

	m "kshetraku_backend/internals/features/bookings/ritual_pricing/model"
)

/* =========================================================
   RITUAL CRUD
   ========================================================= */

type UpsertRitualRequest struct {
	Name                   string `json:"ritual_name" validate:"required,min=1,max=120"`
	Slug                   string `json:"ritual_slug" validate:"required,min=1,max=120"`
	UnitPrice              int64  `json:"ritual_unit_price" validate:"required,min=1"`
	IsNaalPriced           bool   `json:"ritual_is_naal_priced"`
	SubscriptionMultiplier int    `json:"ritual_subscription_multiplier" validate:"min=0"`
	IsActive               *bool  `json:"ritual_is_active"`
}

func (r *UpsertRitualRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
}

func (r UpsertRitualRequest) ToModel() m.RitualModel {
	multiplier := r.SubscriptionMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return m.RitualModel{
		RitualName:                   r.Name,
		RitualSlug:                   r.Slug,
		RitualUnitPrice:              r.UnitPrice,
		RitualIsNaalPriced:           r.IsNaalPriced,
		RitualSubscriptionMultiplier: multiplier,
		RitualIsActive:               active,
	}
}

/* =========================================================
   QUOTE
   ========================================================= */

type QuoteRequest struct {
	RitualSlug string `json:"ritual_slug" validate:"required"`

	// naal-priced rituals
	Naal      string `json:"naal"`
	RangeMode string `json:"range_mode"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// standard rituals
	Quantity int `json:"quantity" validate:"min=0"`
}

func (r *QuoteRequest) Normalize() {
	r.RitualSlug = strings.ToLower(strings.TrimSpace(r.RitualSlug))
	r.Naal = strings.TrimSpace(r.Naal)
	r.RangeMode = strings.TrimSpace(r.RangeMode)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

type QuoteResponse struct {
	RitualSlug string `json:"ritual_slug"`
	RitualName string `json:"ritual_name"`
	Formula    string `json:"formula"` // "naal_occurrence" | "standard"
	UnitPrice  int64  `json:"unit_price"`
	Total      int64  `json:"total"`

	// naal_occurrence details
	Naal            string   `json:"naal,omitempty"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	OccurrenceCount *int     `json:"occurrence_count,omitempty"`
	OccurrenceDates []string `json:"occurrence_dates,omitempty"`

	// standard details
	Quantity   *int `json:"quantity,omitempty"`
	Multiplier *int `json:"multiplier,omitempty"`
}
