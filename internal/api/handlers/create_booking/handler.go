package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	bookRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/book_rooms"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные входные данные"
	msgUnknownRoomType     = "неизвестная категория номера"
	msgUnknownHotelType    = "неизвестный тип отеля"
	msgUnknownTariff       = "неизвестный тариф"
	msgInvalidDateRange    = "дата выезда раньше даты заезда"
	msgInvalidGroupSize    = "размер группы должен быть не меньше 1"
	msgInventoryExhausted  = "выбранные номера недоступны"
	msgUnsupportedCurrency = "валюта не поддерживается"
	msgPaymentDeclined     = "оплата не прошла"
	msgStoreWriteFailed    = "платёж принят, но бронирования не сохранены; обратитесь в поддержку"
)

type Handler struct {
	useCase BookRoomsUseCase
	logger  Logger
}

func NewHandler(useCase BookRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookRooms.ErrInventoryExhausted):
			h.logger.Warn("POST /bookings - Inventory exhausted: room=%s group=%d", req.RoomType, req.GroupSize)
			handlers.RespondConflict(w, msgInventoryExhausted)

		case errors.Is(err, bookRooms.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings - Payment declined: room=%s group=%d", req.RoomType, req.GroupSize)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, bookRooms.ErrUnsupportedCurrency):
			h.logger.Warn("POST /bookings - Unsupported currency: %s", req.Currency)
			handlers.RespondBadRequest(w, msgUnsupportedCurrency)

		case errors.Is(err, bookRooms.ErrUnknownRoomType):
			h.logger.Warn("POST /bookings - Unknown room type: %s", req.RoomType)
			handlers.RespondBadRequest(w, msgUnknownRoomType)

		case errors.Is(err, bookRooms.ErrUnknownHotelType):
			h.logger.Warn("POST /bookings - Unknown hotel type: %s", req.HotelType)
			handlers.RespondBadRequest(w, msgUnknownHotelType)

		case errors.Is(err, bookRooms.ErrUnknownTariff):
			h.logger.Warn("POST /bookings - Unknown tariff: %s", req.Tariff)
			handlers.RespondBadRequest(w, msgUnknownTariff)

		case errors.Is(err, bookRooms.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: %s..%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookRooms.ErrInvalidGroupSize):
			h.logger.Warn("POST /bookings - Invalid group size: %d", req.GroupSize)
			handlers.RespondBadRequest(w, msgInvalidGroupSize)

		case errors.Is(err, bookRooms.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookRooms.ErrStoreWriteFailed):
			h.logger.Error("POST /bookings - Store write failed after charge: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgStoreWriteFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Group booked successfully: bookings=%d, total=%s %s",
		len(result.Bookings), result.TotalPrice.StringFixed(2), result.Currency)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
