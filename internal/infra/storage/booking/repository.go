package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"hotel_name",
	"room_type",
	"check_in",
	"check_out",
	"services_description",
	"total_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сохранёнными бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Если в контексте передана активная транзакция (через txmanager), использует её:
// все бронирования одной группы пишутся в одной транзакции.
func (r *Repository) Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"hotel_name",
			"room_type",
			"check_in",
			"check_out",
			"services_description",
			"total_price",
			"status",
		).
		Values(
			record.ID,
			record.HotelName,
			record.RoomType,
			record.CheckIn,
			record.CheckOut,
			record.ServicesDescription,
			record.TotalPrice,
			record.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	record, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return record, nil
}

// ListByStatus получает бронирования, опционально фильтруя по статусу
func (r *Repository) ListByStatus(ctx context.Context, status *domain.BookingStatus) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var records []*domain.BookingRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStatus - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - iterate rows: %v", ErrExecQuery, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.BookingRecord, error) {
	var record domain.BookingRecord
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.HotelName,
		&record.RoomType,
		&record.CheckIn,
		&record.CheckOut,
		&record.ServicesDescription,
		&record.TotalPrice,
		&record.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time
	return &record, nil
}
