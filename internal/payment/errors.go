package payment

import "errors"

var (
	// ErrUnsupportedCurrency возвращается, когда для валюты нет процессора
	ErrUnsupportedCurrency = errors.New("payment: unsupported currency")
)
