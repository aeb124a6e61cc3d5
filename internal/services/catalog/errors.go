package catalog

import "errors"

// Service errors
var (
	ErrCatalogUnavailable = errors.New("card catalog unavailable")
)
