package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/book_rooms"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HotelType string   `json:"hotelType"` // "City" | "Resort"
	HotelName string   `json:"hotelName"`
	RoomType  string   `json:"roomType"` // "Standard" | "Luxury" | "Apartment"
	CheckIn   string   `json:"checkIn"`  // "2025-10-15"
	CheckOut  string   `json:"checkOut"` // "2025-10-17"
	Tariff    string   `json:"tariff"`   // "Flexible" | "NonRefundable"
	Currency  string   `json:"currency"` // "USD" | "EUR"
	GroupSize int      `json:"groupSize"`
	AddOns    []string `json:"addOns,omitempty"`
}

// BookingResponse HTTP response model для одного бронирования группы
type BookingResponse struct {
	ID                  string `json:"id"`
	HotelName           string `json:"hotelName"`
	RoomType            string `json:"roomType"`
	CheckIn             string `json:"checkIn"`
	CheckOut            string `json:"checkOut"`
	ServicesDescription string `json:"servicesDescription"`
	Price               string `json:"price"`
	Status              string `json:"status"`
}

// CreateBookingResponse HTTP response model группы
type CreateBookingResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalPrice string            `json:"totalPrice"`
	Currency   string            `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*bookRooms.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	addOns := make([]domain.AddOn, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, domain.AddOn(a))
	}

	return &bookRooms.Request{
		HotelType: domain.HotelKind(r.HotelType),
		HotelName: r.HotelName,
		RoomType:  domain.RoomCategory(r.RoomType),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Tariff:    domain.Tariff(r.Tariff),
		Currency:  domain.Currency(r.Currency),
		GroupSize: r.GroupSize,
		AddOns:    addOns,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *bookRooms.Response) *CreateBookingResponse {
	bookings := make([]BookingResponse, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		bookings = append(bookings, BookingResponse{
			ID:                  b.ID,
			HotelName:           b.HotelName,
			RoomType:            b.RoomType,
			CheckIn:             b.CheckIn.Format(domain.DateFormat),
			CheckOut:            b.CheckOut.Format(domain.DateFormat),
			ServicesDescription: b.ServicesDescription,
			Price:               b.Price.StringFixed(2),
			Status:              b.Status,
		})
	}

	return &CreateBookingResponse{
		Bookings:   bookings,
		TotalPrice: result.TotalPrice.StringFixed(2),
		Currency:   string(result.Currency),
	}
}
