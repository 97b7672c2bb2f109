package application

import "errors"

// Request-scoped error taxonomy. Handlers translate these into user-facing
// responses: validation, conflict and authentication failures re-render the
// form with a message, not-found becomes 404 and forbidden becomes 403.
var (
	// Validation: bad user input.
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrTitleRequired    = errors.New("title is required")

	// Conflict: uniqueness violation on registration.
	ErrUsernameTaken = errors.New("username is already registered")

	// Authentication: bad credentials. The username/password distinction is
	// inherited behavior from the original application.
	ErrIncorrectUsername = errors.New("incorrect username")
	ErrIncorrectPassword = errors.New("incorrect password")

	// NotFound: missing entity.
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")

	// Forbidden: ownership violation.
	ErrForbidden = errors.New("forbidden")
)
