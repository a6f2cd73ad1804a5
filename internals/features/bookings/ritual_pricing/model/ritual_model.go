package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RitualModel is the bookable ritual catalogue. Two pricing formulas exist:
// standard rituals charge quantity × multiplier × unit price, while
// naal-priced rituals (nakshatrapooja) charge unit price × the number of
// times the devotee's naal occurs in the chosen period.
type RitualModel struct {
	RitualID   uuid.UUID `json:"ritual_id" gorm:"column:ritual_id;type:uuid;primaryKey"`
	RitualName string    `json:"ritual_name" gorm:"column:ritual_name;not null"`
	RitualSlug string    `json:"ritual_slug" gorm:"column:ritual_slug;not null;uniqueIndex:uq_rituals_slug"`

	// price in rupees per unit / per occurrence
	RitualUnitPrice int64 `json:"ritual_unit_price" gorm:"column:ritual_unit_price;not null"`

	RitualIsNaalPriced           bool `json:"ritual_is_naal_priced" gorm:"column:ritual_is_naal_priced;not null"`
	RitualSubscriptionMultiplier int  `json:"ritual_subscription_multiplier" gorm:"column:ritual_subscription_multiplier;not null"`
	RitualIsActive               bool `json:"ritual_is_active" gorm:"column:ritual_is_active;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (RitualModel) TableName() string {
	return "rituals"
}

func (m *RitualModel) BeforeCreate(tx *gorm.DB) error {
	if m.RitualID == uuid.Nil {
		m.RitualID = uuid.New()
	}
	return nil
}
