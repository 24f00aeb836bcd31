package domain

// RoomCategory категория номера (закрытый список)
type RoomCategory string

const (
	RoomStandard  RoomCategory = "Standard"
	RoomLuxury    RoomCategory = "Luxury"
	RoomApartment RoomCategory = "Apartment"
)

// HotelKind тип гостиничного комплекса (закрытый список)
type HotelKind string

const (
	HotelCity   HotelKind = "City"
	HotelResort HotelKind = "Resort"
)

// Tariff тарифный план бронирования
type Tariff string

const (
	TariffFlexible      Tariff = "Flexible"
	TariffNonRefundable Tariff = "NonRefundable"
)

// Currency валюта платежа
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// AddOn дополнительная услуга в составе пакета бронирования
type AddOn string

const (
	AddOnBreakfast    AddOn = "Breakfast"
	AddOnTransfer     AddOn = "Transfer"
	AddOnMiniBar      AddOn = "MiniBar"
	AddOnLateCheckout AddOn = "LateCheckout"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Tariffs список поддерживаемых тарифов
// Используется для валидации запроса до резервирования номеров
var Tariffs = []Tariff{
	TariffFlexible,
	TariffNonRefundable,
}

// IsKnownTariff возвращает true, если тариф входит в закрытый список
func IsKnownTariff(t Tariff) bool {
	for _, known := range Tariffs {
		if t == known {
			return true
		}
	}
	return false
}
