package tui

import "errors"

// ErrMissingTermService is returned when the term service is not provided.
var ErrMissingTermService = errors.New("tui: term service is required")

// ErrMissingMatchService is returned when the match service is not provided.
var ErrMissingMatchService = errors.New("tui: match service is required")

// ErrMissingReplaceService is returned when the replace service is not provided.
var ErrMissingReplaceService = errors.New("tui: replace service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
