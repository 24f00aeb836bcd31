package book_rooms

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Request модель группового запроса на бронирование
type Request struct {
	HotelType domain.HotelKind    // Тип гостиничного комплекса (City/Resort)
	HotelName string              // Название отеля
	RoomType  domain.RoomCategory // Категория номера
	CheckIn   time.Time           // Дата заезда
	CheckOut  time.Time           // Дата выезда
	Tariff    domain.Tariff       // Тарифный план
	Currency  domain.Currency     // Валюта платежа
	GroupSize int                 // Число номеров в группе
	AddOns    []domain.AddOn      // Дополнительные услуги
}

// Response модель ответа с подтверждёнными бронированиями группы
type Response struct {
	Bookings   []BookingResult // Бронирования группы
	TotalPrice decimal.Decimal // Итоговая сумма одного платежа за группу
	Currency   domain.Currency // Валюта платежа
}

// BookingResult подтверждённое бронирование в составе группы
type BookingResult struct {
	ID                  string
	HotelName           string
	RoomType            string
	CheckIn             time.Time
	CheckOut            time.Time
	ServicesDescription string
	Price               decimal.Decimal
	Status              string
}

func newBookingResult(b *domain.Booking) BookingResult {
	return BookingResult{
		ID:                  b.ID,
		HotelName:           b.HotelName,
		RoomType:            string(b.Package.Room.Category),
		CheckIn:             b.CheckIn,
		CheckOut:            b.CheckOut,
		ServicesDescription: b.Package.Describe(),
		Price:               b.Price,
		Status:              string(b.Status),
	}
}
