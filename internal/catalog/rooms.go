package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// rooms статический справочник номеров: категория -> описание и базовая цена за ночь
var rooms = map[domain.RoomCategory]domain.RoomDescriptor{
	domain.RoomStandard: {
		Category:    domain.RoomStandard,
		BasePrice:   decimal.NewFromInt(100),
		Description: "Standard room: cozy single room with basic amenities",
	},
	domain.RoomLuxury: {
		Category:    domain.RoomLuxury,
		BasePrice:   decimal.NewFromInt(250),
		Description: "Luxury room: spacious room with premium amenities",
	},
	domain.RoomApartment: {
		Category:    domain.RoomApartment,
		BasePrice:   decimal.NewFromInt(400),
		Description: "Apartment: full-size unit with kitchen and living room",
	},
}

// Room возвращает дескриптор номера по категории
func Room(category domain.RoomCategory) (domain.RoomDescriptor, error) {
	room, ok := rooms[category]
	if !ok {
		return domain.RoomDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return room, nil
}
