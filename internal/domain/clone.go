package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidGroupSize возвращается при попытке создать группу из нуля бронирований
	ErrInvalidGroupSize = errors.New("domain: group size must be at least 1")
)

// CloneGroup производит count независимых бронирований из одного шаблона.
// Пакет разделяется всеми бронированиями как неизменяемое значение,
// идентификатор генерируется заново для каждого экземпляра, поэтому
// изменение статуса одного бронирования не затрагивает остальные.
func CloneGroup(
	template BookingPackage,
	hotelName string,
	checkIn, checkOut time.Time,
	price decimal.Decimal,
	count int,
) ([]*Booking, error) {
	if count < 1 {
		return nil, ErrInvalidGroupSize
	}

	bookings := make([]*Booking, 0, count)
	for i := 0; i < count; i++ {
		bookings = append(bookings, &Booking{
			ID:        uuid.New().String(),
			HotelName: hotelName,
			Package:   template,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Price:     price,
			Status:    StatusPending,
		})
	}

	return bookings, nil
}
