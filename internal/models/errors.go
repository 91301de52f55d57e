package models

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyCart    = errors.New("cart is empty")
)
