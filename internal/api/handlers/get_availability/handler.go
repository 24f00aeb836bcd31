package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
)

// AvailabilityResponse HTTP response model: категория -> доступные номера
type AvailabilityResponse struct {
	Available map[string]int `json:"available"`
}

type Handler struct {
	ledger InventoryLedger
	logger Logger
}

func NewHandler(ledger InventoryLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/availability
// Снимок остатков к моменту ответа; к моменту бронирования может устареть
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.ledger.Snapshot()

	available := make(map[string]int, len(snapshot))
	for category, count := range snapshot {
		available[string(category)] = count
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}
