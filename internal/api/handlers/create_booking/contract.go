package create_booking

import (
	"context"

	bookRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/book_rooms"
)

type BookRoomsUseCase interface {
	Execute(ctx context.Context, req *bookRooms.Request) (*bookRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
