package models

import "time"

// UserCard is a card owned by a user, created from a catalog template.
type UserCard struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"-"`
	CardTemplateID uint      `gorm:"not null;index" json:"card_template_id"`
	LastFourDigits *string   `json:"last_four_digits"`
	Color          string    `gorm:"not null" json:"color"`
	Nickname       *string   `json:"nickname"`
	CreatedAt      time.Time `json:"created_at"`

	Template *CardTemplate `gorm:"foreignKey:CardTemplateID" json:"template,omitempty"`

	// The store-level cascade backs up the explicit two-step delete.
	Benefits []UserBenefit `gorm:"foreignKey:UserCardID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserCardView is a card joined with its template's display fields.
// Projection only; never persisted.
type UserCardView struct {
	ID             uint      `json:"id"`
	CardTemplateID uint      `json:"card_template_id"`
	LastFourDigits *string   `json:"last_four_digits"`
	Color          string    `json:"color"`
	Nickname       *string   `json:"nickname"`
	CreatedAt      time.Time `json:"created_at"`
	TemplateName   string    `json:"template_name"`
	Issuer         string    `json:"issuer"`
	AnnualFee      float64   `json:"annual_fee"`
	Network        *string   `json:"network"`
	Country        string    `json:"country"`
}
