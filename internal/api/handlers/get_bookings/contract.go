package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context, status *string) ([]*domain.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
