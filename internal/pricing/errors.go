package pricing

import "errors"

var (
	// ErrUnknownTariff возвращается для тарифа вне закрытого списка
	ErrUnknownTariff = errors.New("pricing: unknown tariff")

	// ErrInvalidDateRange возвращается, когда число ночей отрицательное
	// (дата выезда раньше даты заезда)
	ErrInvalidDateRange = errors.New("pricing: invalid date range")
)
