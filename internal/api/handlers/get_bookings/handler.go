package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
)

// BookingItem HTTP response model одного бронирования в списке
type BookingItem struct {
	ID         string `json:"id"`
	HotelName  string `json:"hotelName"`
	RoomType   string `json:"roomType"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	TotalPrice string `json:"totalPrice"`
	Status     string `json:"status"`
}

// BookingListResponse HTTP response model списка
type BookingListResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	records, err := h.service.List(r.Context(), status)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]BookingItem, 0, len(records))
	for _, record := range records {
		items = append(items, BookingItem{
			ID:         record.ID,
			HotelName:  record.HotelName,
			RoomType:   record.RoomType,
			CheckIn:    record.CheckIn.Format(domain.DateFormat),
			CheckOut:   record.CheckOut.Format(domain.DateFormat),
			TotalPrice: record.TotalPrice.StringFixed(2),
			Status:     string(record.Status),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, BookingListResponse{Bookings: items, Total: len(items)})
}
