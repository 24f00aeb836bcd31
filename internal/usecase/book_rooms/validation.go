package book_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// validateRequest валидирует запрос до любых изменений состояния.
// Все ошибки отсюда не требуют компенсации: резервирование ещё не выполнялось.
func validateRequest(req *Request) error {
	if req.HotelName == "" {
		return fmt.Errorf("%w: hotelName is required", ErrInvalidInput)
	}

	if req.GroupSize < 1 {
		return fmt.Errorf("%w: groupSize must be at least 1, got %d", ErrInvalidGroupSize, req.GroupSize)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Выезд раньше заезда даёт отрицательное число ночей
	if domain.Nights(req.CheckIn, req.CheckOut) < 0 {
		return fmt.Errorf("%w: checkOut %s is before checkIn %s", ErrInvalidDateRange,
			req.CheckOut.Format(domain.DateFormat), req.CheckIn.Format(domain.DateFormat))
	}

	if !domain.IsKnownTariff(req.Tariff) {
		return fmt.Errorf("%w: %q", ErrUnknownTariff, req.Tariff)
	}

	return nil
}
