package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidServiceClass   = errors.New("invalid service class")
	ErrInvalidBalance        = errors.New("invalid balance")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("driver already exists")

	// ErrDriverNotApproved - аккаунт еще в pending, онлайн/оффлайн недоступны.
	ErrDriverNotApproved = errors.New("driver is not approved")
	// ErrInsufficientBalance - баланс кошелька ниже порога выхода в онлайн.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)
