package models

// CardTemplate is a catalog entry describing a credit card product.
// Templates are seeded and never mutated through the API.
type CardTemplate struct {
	ID        uint                  `gorm:"primarykey" json:"id"`
	CardKey   string                `gorm:"uniqueIndex;not null" json:"card_key"`
	Name      string                `gorm:"not null" json:"name"`
	Issuer    string                `gorm:"not null" json:"issuer"`
	AnnualFee float64               `gorm:"not null;default:0" json:"annual_fee"`
	Network   *string               `json:"network"`
	Country   string                `gorm:"not null;default:'US'" json:"country"`
	Benefits  []CardTemplateBenefit `gorm:"foreignKey:CardTemplateID" json:"benefits"`
}

// CardTemplateBenefit is a benefit definition belonging to one template.
type CardTemplateBenefit struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	CardTemplateID uint    `gorm:"not null;index" json:"card_template_id"`
	Title          string  `gorm:"not null" json:"title"`
	Description    *string `json:"description"`
	Category       string  `gorm:"not null;default:'other'" json:"category"`
	BenefitType    string  `gorm:"not null;default:'ongoing'" json:"benefit_type"`
	Value          *string `json:"value"`
	Terms          *string `json:"terms"`
	ResetPeriod    *string `json:"reset_period"`
}
