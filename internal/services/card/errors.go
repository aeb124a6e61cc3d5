package card

import "errors"

// Service errors
var (
	// ErrPartialImport means the card row was created but cloning the
	// template benefits failed. Callers should offer "retry import",
	// not "add the card again".
	ErrPartialImport = errors.New("card created but benefit import failed")

	ErrCardNotFound     = errors.New("card not found")
	ErrTemplateNotFound = errors.New("card template not found")
)
