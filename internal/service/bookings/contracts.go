package bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория сохранённых бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingRecord, error)
	ListByStatus(ctx context.Context, status *domain.BookingStatus) ([]*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
