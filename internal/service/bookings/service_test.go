package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	records      map[string]*domain.BookingRecord
	err          error
	listedStatus *domain.BookingStatus
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.BookingRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	record, ok := r.records[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return record, nil
}

func (r *fakeRepo) ListByStatus(_ context.Context, status *domain.BookingStatus) ([]*domain.BookingRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.listedStatus = status
	result := make([]*domain.BookingRecord, 0, len(r.records))
	for _, record := range r.records {
		if status == nil || record.Status == *status {
			result = append(result, record)
		}
	}
	return result, nil
}

func TestService_GetByID(t *testing.T) {
	record := &domain.BookingRecord{ID: "b1", HotelName: "Grand Plaza", Status: domain.StatusConfirmed}
	svc := NewService(&fakeRepo{records: map[string]*domain.BookingRecord{"b1": record}}, nopLogger{})

	got, err := svc.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{records: map[string]*domain.BookingRecord{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection reset")}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "b1")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List_FilterPassedToRepository(t *testing.T) {
	repo := &fakeRepo{records: map[string]*domain.BookingRecord{
		"b1": {ID: "b1", Status: domain.StatusConfirmed},
		"b2": {ID: "b2", Status: domain.StatusReleased},
	}}
	svc := NewService(repo, nopLogger{})

	status := string(domain.StatusConfirmed)
	records, err := svc.List(context.Background(), &status)

	require.NoError(t, err)
	require.NotNil(t, repo.listedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.listedStatus)
	require.Len(t, records, 1)
	assert.Equal(t, "b1", records[0].ID)
}

func TestService_List_NoFilter(t *testing.T) {
	repo := &fakeRepo{records: map[string]*domain.BookingRecord{
		"b1": {ID: "b1", Status: domain.StatusConfirmed},
		"b2": {ID: "b2", Status: domain.StatusReleased},
	}}
	svc := NewService(repo, nopLogger{})

	records, err := svc.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, repo.listedStatus)
	assert.Len(t, records, 2)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	status := "archived"
	_, err := svc.List(context.Background(), &status)

	assert.ErrorIs(t, err, ErrInvalidStatus)
}
