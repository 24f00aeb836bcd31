package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoomDescriptor describes a room category: base nightly price and a
// human-readable description. Immutable, shared read-only between bookings.
type RoomDescriptor struct {
	Category    RoomCategory
	BasePrice   decimal.Decimal
	Description string
}

// HotelTier describes a hotel kind and the ordered set of services it offers.
type HotelTier struct {
	Kind     HotelKind
	Services []string
}

// BookingPackage is the immutable description of what was booked: room,
// hotel services and add-ons. It carries no price and no identity, so one
// package value is safely shared by every booking of a group.
type BookingPackage struct {
	Room     RoomDescriptor
	Services []string
	AddOns   []AddOn
}

// HasAddOn returns true if the add-on is part of the package
func (p BookingPackage) HasAddOn(a AddOn) bool {
	for _, existing := range p.AddOns {
		if existing == a {
			return true
		}
	}
	return false
}

// Describe возвращает плоское текстовое описание пакета
// Используется как services_description при сохранении бронирования
func (p BookingPackage) Describe() string {
	extras := "None"
	if len(p.AddOns) > 0 {
		parts := make([]string, 0, len(p.AddOns))
		for _, a := range p.AddOns {
			parts = append(parts, string(a))
		}
		extras = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("Room: %s; Services: %s; Extras: %s",
		p.Room.Description, strings.Join(p.Services, ", "), extras)
}

// PackageBuilder накапливает состав пакета бронирования
// Методы возвращают обновлённую копию, поэтому промежуточные значения
// билдера можно переиспользовать без сюрпризов
type PackageBuilder struct {
	pkg BookingPackage
}

// NewPackageBuilder создает пустой билдер пакета
func NewPackageBuilder() PackageBuilder {
	return PackageBuilder{}
}

// WithRoom задаёт номер
func (b PackageBuilder) WithRoom(room RoomDescriptor) PackageBuilder {
	b.pkg.Room = room
	return b
}

// WithServices задаёт услуги гостиничного комплекса
func (b PackageBuilder) WithServices(services []string) PackageBuilder {
	b.pkg.Services = append([]string(nil), services...)
	return b
}

// WithBreakfast добавляет завтрак
func (b PackageBuilder) WithBreakfast() PackageBuilder {
	return b.withAddOn(AddOnBreakfast)
}

// WithTransfer добавляет трансфер
func (b PackageBuilder) WithTransfer() PackageBuilder {
	return b.withAddOn(AddOnTransfer)
}

// WithMiniBar добавляет мини-бар
func (b PackageBuilder) WithMiniBar() PackageBuilder {
	return b.withAddOn(AddOnMiniBar)
}

// WithLateCheckout добавляет поздний выезд
func (b PackageBuilder) WithLateCheckout() PackageBuilder {
	return b.withAddOn(AddOnLateCheckout)
}

func (b PackageBuilder) withAddOn(a AddOn) PackageBuilder {
	if b.pkg.HasAddOn(a) {
		return b
	}
	addOns := make([]AddOn, 0, len(b.pkg.AddOns)+1)
	addOns = append(addOns, b.pkg.AddOns...)
	b.pkg.AddOns = append(addOns, a)
	return b
}

// Build возвращает собранный пакет
// Билдер не проверяет сочетаемость полей: корректность комбинации
// целиком на вызывающей стороне
func (b PackageBuilder) Build() BookingPackage {
	return b.pkg
}
