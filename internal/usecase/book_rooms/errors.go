package book_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_rooms: invalid input data")

	// ErrUnknownRoomType возвращается для категории номера вне закрытого списка
	ErrUnknownRoomType = errors.New("book_rooms: unknown room type")

	// ErrUnknownHotelType возвращается для типа отеля вне закрытого списка
	ErrUnknownHotelType = errors.New("book_rooms: unknown hotel type")

	// ErrUnknownTariff возвращается для тарифа вне закрытого списка
	ErrUnknownTariff = errors.New("book_rooms: unknown tariff")

	// ErrInvalidDateRange возвращается, когда дата выезда раньше даты заезда
	ErrInvalidDateRange = errors.New("book_rooms: invalid date range")

	// ErrInvalidGroupSize возвращается при размере группы меньше 1
	ErrInvalidGroupSize = errors.New("book_rooms: invalid group size")

	// ErrInventoryExhausted возвращается, когда номеров недостаточно
	// (как по предварительной проверке, так и при проигранной гонке за резерв)
	ErrInventoryExhausted = errors.New("book_rooms: not enough rooms available")

	// ErrUnsupportedCurrency возвращается, когда шлюз не поддерживает валюту
	ErrUnsupportedCurrency = errors.New("book_rooms: unsupported currency")

	// ErrPaymentDeclined возвращается при отказе в платеже за группу
	ErrPaymentDeclined = errors.New("book_rooms: payment declined")

	// ErrStoreWriteFailed возвращается, когда деньги списаны, но записи
	// бронирований не удалось сохранить после повторных попыток
	ErrStoreWriteFailed = errors.New("book_rooms: failed to persist bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_rooms: internal error")
)
