package tui

import "errors"

// ErrMissingGuideService is returned when the guide service is not provided.
var ErrMissingGuideService = errors.New("tui: guide service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")
