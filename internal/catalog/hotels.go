package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// tiers статический справочник услуг по типу гостиничного комплекса
var tiers = map[domain.HotelKind][]string{
	domain.HotelCity:   {"Wi-Fi", "Gym"},
	domain.HotelResort: {"Wi-Fi", "Pool", "Spa"},
}

// Tier возвращает набор услуг для типа отеля
// Возвращаемый срез копируется, справочник остаётся неизменяемым
func Tier(kind domain.HotelKind) (domain.HotelTier, error) {
	services, ok := tiers[kind]
	if !ok {
		return domain.HotelTier{}, fmt.Errorf("%w: %q", ErrUnknownTier, kind)
	}
	return domain.HotelTier{
		Kind:     kind,
		Services: append([]string(nil), services...),
	}, nil
}
