package card

// AddCardInput is the request to add a card from the catalog. Either
// the template's numeric id or its catalog key identifies the
// template; the key wins when both are set.
type AddCardInput struct {
	CardTemplateID uint    `json:"card_template_id"`
	TemplateKey    string  `json:"template_key"`
	LastFourDigits string  `json:"last_four_digits"`
	Color          string  `json:"color"`
	Nickname       *string `json:"nickname"`
}
