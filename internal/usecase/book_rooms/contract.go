package book_rooms

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// InventoryLedger интерфейс леджера доступности номеров
type InventoryLedger interface {
	CheckAvailability(category domain.RoomCategory, quantity int) bool
	Reserve(category domain.RoomCategory, quantity int) bool
	Release(category domain.RoomCategory, quantity int)
}

// PricingEngine интерфейс движка ценообразования
type PricingEngine interface {
	Price(basePrice decimal.Decimal, nights int, tariff domain.Tariff, addOns []domain.AddOn) (decimal.Decimal, error)
}

// PaymentGateway интерфейс платёжного шлюза
// false без ошибки означает отказ в платеже (восстановимое состояние)
type PaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, currency domain.Currency) (bool, error)
}

// NotificationBus интерфейс шины уведомлений о жизненном цикле бронирований
type NotificationBus interface {
	Publish(bookingID string, status domain.BookingStatus, message string)
}

// BookingStore интерфейс долговременного хранилища бронирований
type BookingStore interface {
	Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
