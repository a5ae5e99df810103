package economy

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserNotFound      = errors.New("user not found")
	ErrPetNotFound       = errors.New("pet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutOfStock        = errors.New("out of stock")
	ErrAlreadyAdopted    = errors.New("already adopted")
	ErrNotOwner          = errors.New("not owner")
	ErrUnknownAction     = errors.New("unknown action")
)
