package domain

import "errors"

// Domain-specific errors for client-side validation and API mapping.
var (
	// Agent errors
	ErrAgentNotFound  = errors.New("agent not found")
	ErrAgentIDInvalid = errors.New("agent id must be a valid UUID")
	ErrNameRequired   = errors.New("name is required")
	ErrBoardRequired  = errors.New("a board must be selected")

	// Board errors
	ErrBoardNotFound = errors.New("board not found")

	// Session errors
	ErrTokenRequired = errors.New("token is required")
	ErrUnauthorized  = errors.New("not authorized")
)
