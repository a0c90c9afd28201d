package constants

const (
	// Context keys set by the auth middleware.
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"

	// Password policy for registration.
	MinPasswordLength = 8

	// Pagination bounds for list endpoints.
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Minimum confirmed participants for a tournament to start.
	MinConfirmedToStart = 2
)
