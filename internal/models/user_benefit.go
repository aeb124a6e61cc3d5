package models

import "time"

// UserBenefit is a benefit owned by a user through one of their cards.
// Template-derived benefits are clones of a CardTemplateBenefit made at
// card-add time; custom benefits have no originating template benefit.
type UserBenefit struct {
	ID                    uint       `gorm:"primarykey" json:"id"`
	UserCardID            uint       `gorm:"not null;index" json:"user_card_id"`
	CardTemplateBenefitID *uint      `json:"card_template_benefit_id"`
	Title                 string     `gorm:"not null" json:"title"`
	Description           *string    `json:"description"`
	Category              string     `gorm:"not null;default:'other'" json:"category"`
	BenefitType           string     `gorm:"not null;default:'ongoing'" json:"benefit_type"`
	Value                 *string    `json:"value"`
	Terms                 *string    `json:"terms"`
	ResetPeriod           *string    `json:"reset_period"`
	IsCustom              bool       `gorm:"not null;default:false" json:"is_custom"`
	Used                  bool       `gorm:"not null;default:false" json:"used"`
	UsedAt                *time.Time `json:"used_at"`
	ExpiresAt             *time.Time `json:"expires_at"`
	CreatedAt             time.Time  `json:"created_at"`
}

// UserBenefitView decorates a benefit with its owning card's display
// fields for presentation. Computed at read time; never persisted.
type UserBenefitView struct {
	UserBenefit
	CardName  string `json:"card_name"`
	CardColor string `json:"card_color"`
}
