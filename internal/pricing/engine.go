package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// tariffMultipliers множители тарифных планов
// Flexible: +20% за гибкость, NonRefundable: -10% за невозвратность
var tariffMultipliers = map[domain.Tariff]decimal.Decimal{
	domain.TariffFlexible:      decimal.RequireFromString("1.20"),
	domain.TariffNonRefundable: decimal.RequireFromString("0.90"),
}

// addOnSurcharges плоские надбавки за дополнительные услуги.
// Надбавка применяется после тарифного множителя, ровно один раз на
// бронирование, порядок услуг не влияет на сумму. Услуги без надбавки
// (завтрак, трансфер) входят в пакет бесплатно.
var addOnSurcharges = map[domain.AddOn]decimal.Decimal{
	domain.AddOnMiniBar:      decimal.NewFromInt(50),
	domain.AddOnLateCheckout: decimal.NewFromInt(30),
}

// Engine считает цену одного бронирования из базовой цены за ночь,
// числа ночей, тарифа и набора дополнительных услуг.
// Все денежные значения считаются в decimal и округляются до двух знаков.
type Engine struct{}

// NewEngine создает новый экземпляр движка ценообразования
func NewEngine() *Engine {
	return &Engine{}
}

// Price возвращает цену бронирования: basePrice * nights * tariff + надбавки
func (e *Engine) Price(
	basePrice decimal.Decimal,
	nights int,
	tariff domain.Tariff,
	addOns []domain.AddOn,
) (decimal.Decimal, error) {
	if nights < 0 {
		return decimal.Zero, fmt.Errorf("%w: %d nights", ErrInvalidDateRange, nights)
	}

	multiplier, ok := tariffMultipliers[tariff]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownTariff, tariff)
	}

	price := basePrice.Mul(decimal.NewFromInt(int64(nights))).Mul(multiplier)

	for _, addOn := range addOns {
		if surcharge, ok := addOnSurcharges[addOn]; ok {
			price = price.Add(surcharge)
		}
	}

	return price.Round(2), nil
}

// Surcharge возвращает плоскую надбавку за услугу (ноль, если её нет)
func Surcharge(addOn domain.AddOn) decimal.Decimal {
	return addOnSurcharges[addOn]
}
