package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
)

// validStatuses статусы, допустимые в фильтре списка
var validStatuses = map[domain.BookingStatus]struct{}{
	domain.StatusPending:   {},
	domain.StatusReserved:  {},
	domain.StatusPriced:    {},
	domain.StatusPaid:      {},
	domain.StatusConfirmed: {},
	domain.StatusFailed:    {},
	domain.StatusReleased:  {},
}

// Service читающая сторона: доступ к сохранённым бронированиям
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID получает сохранённое бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.BookingRecord, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return record, nil
}

// List получает сохранённые бронирования, опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, status *string) ([]*domain.BookingRecord, error) {
	var domainStatus *domain.BookingStatus
	if status != nil {
		candidate := domain.BookingStatus(*status)
		if _, ok := validStatuses[candidate]; !ok {
			s.logger.Warn("List: invalid status filter %q", *status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
		}
		domainStatus = &candidate
	}

	records, err := s.repo.ListByStatus(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(records))
	return records, nil
}
