package users

import "strings"

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return InvalidInput("Name must be a non-empty string")
	}

	return nil
}

func ValidateEmail(email string) error {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return InvalidInput("Email must be a valid email address")
	}

	return nil
}

func ValidateID(id int64) error {
	if id <= 0 {
		return InvalidInput("User ID must be a positive integer")
	}

	return nil
}

// ClampLimit rejects non-positive limits and silently caps oversized ones
// at MaxLimit.
func ClampLimit(limit int) (int, error) {
	if limit <= 0 {
		return 0, InvalidInput("Limit must be a positive integer")
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return limit, nil
}

func ValidateOffset(offset int) error {
	if offset < 0 {
		return InvalidInput("Offset must not be negative")
	}

	return nil
}
