package notification

import (
	"sync"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Event событие жизненного цикла бронирования
type Event struct {
	BookingID string
	Status    domain.BookingStatus
	Message   string
}

// Observer подписчик на события бронирований
type Observer interface {
	Notify(event Event) error
}

// Bus синхронно рассылает события всем подписчикам в порядке подписки.
// Ошибка или паника подписчика логируется и не прерывает ни рассылку,
// ни рабочий процесс бронирования.
type Bus struct {
	mu        sync.RWMutex
	observers []Observer
	logger    Logger
}

// NewBus создает шину уведомлений
func NewBus(logger Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe добавляет подписчика в конец списка рассылки
func (b *Bus) Subscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, observer)
}

// Publish рассылает событие каждому подписчику
func (b *Bus) Publish(bookingID string, status domain.BookingStatus, message string) {
	b.mu.RLock()
	observers := make([]Observer, len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()

	event := Event{BookingID: bookingID, Status: status, Message: message}
	for _, observer := range observers {
		b.deliver(observer, event)
	}
}

func (b *Bus) deliver(observer Observer, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Publish: observer panicked for booking id=%s: %v", event.BookingID, r)
		}
	}()

	if err := observer.Notify(event); err != nil {
		b.logger.Warn("Publish: observer failed for booking id=%s: %v", event.BookingID, err)
	}
}
