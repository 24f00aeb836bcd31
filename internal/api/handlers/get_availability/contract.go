package get_availability

import (
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

type InventoryLedger interface {
	Snapshot() map[domain.RoomCategory]int
}

type Logger interface {
	Info(format string, v ...interface{})
}
