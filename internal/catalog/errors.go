package catalog

import "errors"

var (
	// ErrUnknownCategory возвращается для категории номера вне закрытого списка
	ErrUnknownCategory = errors.New("catalog: unknown room category")

	// ErrUnknownTier возвращается для типа отеля вне закрытого списка
	ErrUnknownTier = errors.New("catalog: unknown hotel tier")
)
