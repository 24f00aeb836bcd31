package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgMissingID       = "не указан идентификатор бронирования"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  string `json:"id"`
	HotelName           string `json:"hotelName"`
	RoomType            string `json:"roomType"`
	CheckIn             string `json:"checkIn"`
	CheckOut            string `json:"checkOut"`
	ServicesDescription string `json:"servicesDescription"`
	TotalPrice          string `json:"totalPrice"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["bookingId"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	record, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to fetch booking id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingResponse{
		ID:                  record.ID,
		HotelName:           record.HotelName,
		RoomType:            record.RoomType,
		CheckIn:             record.CheckIn.Format(domain.DateFormat),
		CheckOut:            record.CheckOut.Format(domain.DateFormat),
		ServicesDescription: record.ServicesDescription,
		TotalPrice:          record.TotalPrice.StringFixed(2),
		Status:              string(record.Status),
		CreatedAt:           record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
