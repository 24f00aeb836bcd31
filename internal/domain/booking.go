package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusReserved  BookingStatus = "reserved"
	StatusPriced    BookingStatus = "priced"
	StatusPaid      BookingStatus = "paid"
	StatusConfirmed BookingStatus = "confirmed"
	StatusFailed    BookingStatus = "failed"
	StatusReleased  BookingStatus = "released"
)

// Booking represents a single room booking within a group reservation
type Booking struct {
	ID        string
	HotelName string
	Package   BookingPackage
	CheckIn   time.Time
	CheckOut  time.Time
	Price     decimal.Decimal
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSettled returns true if the booking reached a terminal state
func (b *Booking) IsSettled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusReleased
}

// IsConfirmed returns true if the booking was paid and persisted
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Nights возвращает число ночей между заездом и выездом
// Отрицательное значение означает некорректный диапазон дат
func (b *Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// Nights считает число ночей между двумя датами (только даты, без времени)
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

// Record возвращает плоскую форму бронирования для долговременного хранения
func (b *Booking) Record() *BookingRecord {
	return &BookingRecord{
		ID:                  b.ID,
		HotelName:           b.HotelName,
		RoomType:            string(b.Package.Room.Category),
		CheckIn:             b.CheckIn,
		CheckOut:            b.CheckOut,
		ServicesDescription: b.Package.Describe(),
		TotalPrice:          b.Price,
		Status:              b.Status,
	}
}

// BookingRecord is the flattened, persisted form of a booking.
// It mirrors the bookings table one to one.
type BookingRecord struct {
	ID                  string
	HotelName           string
	RoomType            string
	CheckIn             time.Time
	CheckOut            time.Time
	ServicesDescription string
	TotalPrice          decimal.Decimal
	Status              BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
