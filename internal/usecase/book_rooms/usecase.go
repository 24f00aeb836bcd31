package book_rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/catalog"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/payment"
)

const (
	storeWriteAttempts = 3
	storeWriteBackoff  = 200 * time.Millisecond
)

// UseCase оркестратор группового бронирования.
// Владеет машиной состояний: pending -> reserved -> priced -> paid -> confirmed,
// с компенсирующим освобождением номеров на любом сбое после резервирования.
type UseCase struct {
	ledger    InventoryLedger
	pricing   PricingEngine
	gateway   PaymentGateway
	bus       NotificationBus
	store     BookingStore
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger InventoryLedger,
	pricing PricingEngine,
	gateway PaymentGateway,
	bus NotificationBus,
	store BookingStore,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:    ledger,
		pricing:   pricing,
		gateway:   gateway,
		bus:       bus,
		store:     store,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет групповое бронирование как одну транзакцию:
// группа резервируется и оплачивается целиком, частичного успеха нет.
//
// До попытки платежа запрос можно отменить через контекст. После попытки
// платежа процесс всегда доводится до конца (confirmed либо released),
// чтобы зарезервированные номера не остались подвешенными.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRooms: hotel=%q type=%s room=%s group=%d tariff=%s currency=%s",
		req.HotelName, req.HotelType, req.RoomType, req.GroupSize, req.Tariff, req.Currency)

	// 1. Валидация и справочники, до любых изменений состояния
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRooms: validation failed: %v", err)
		return nil, err
	}

	room, err := catalog.Room(req.RoomType)
	if err != nil {
		uc.logger.Warn("BookRooms: unknown room type %q", req.RoomType)
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoomType, req.RoomType)
	}

	tier, err := catalog.Tier(req.HotelType)
	if err != nil {
		uc.logger.Warn("BookRooms: unknown hotel type %q", req.HotelType)
		return nil, fmt.Errorf("%w: %q", ErrUnknownHotelType, req.HotelType)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Предварительная проверка доступности
	if !uc.ledger.CheckAvailability(req.RoomType, req.GroupSize) {
		uc.logger.Warn("BookRooms: not enough %s rooms for group of %d", req.RoomType, req.GroupSize)
		return nil, ErrInventoryExhausted
	}

	// 3. Атомарное резервирование; false означает проигранную гонку
	if !uc.ledger.Reserve(req.RoomType, req.GroupSize) {
		uc.logger.Warn("BookRooms: lost reservation race for %d %s rooms", req.GroupSize, req.RoomType)
		return nil, ErrInventoryExhausted
	}

	// Номера зарезервированы: любой сбой дальше обязан их вернуть

	// 4. Сборка пакета бронирования
	pkg := uc.buildPackage(room, tier, req.AddOns)

	// 5. Цена за один номер, одинаковая для всех бронирований группы
	nights := domain.Nights(req.CheckIn, req.CheckOut)
	price, err := uc.pricing.Price(room.BasePrice, nights, req.Tariff, pkg.AddOns)
	if err != nil {
		uc.ledger.Release(req.RoomType, req.GroupSize)
		uc.logger.Error("BookRooms: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}

	// 6. Клонирование бронирований группы из общего шаблона
	bookings, err := domain.CloneGroup(pkg, req.HotelName, req.CheckIn, req.CheckOut, price, req.GroupSize)
	if err != nil {
		uc.ledger.Release(req.RoomType, req.GroupSize)
		uc.logger.Error("BookRooms: cloning failed: %v", err)
		return nil, fmt.Errorf("%w: cloning failed: %v", ErrInternal, err)
	}
	for _, b := range bookings {
		b.Status = domain.StatusPriced
	}

	// Последняя точка отмены: после неё платёж будет выполнен
	if err := ctx.Err(); err != nil {
		uc.compensate(req, bookings, "booking cancelled before payment")
		return nil, err
	}

	// 7. Один платёж за всю группу
	total := price.Mul(decimal.NewFromInt(int64(req.GroupSize)))
	uc.logger.Info("BookRooms: charging %s %s for group of %d (unit price %s)",
		total.StringFixed(2), req.Currency, req.GroupSize, price.StringFixed(2))

	charged, err := uc.gateway.Charge(ctx, total, req.Currency)
	if err != nil {
		uc.compensate(req, bookings, "payment failed")
		if errors.Is(err, payment.ErrUnsupportedCurrency) {
			uc.logger.Warn("BookRooms: unsupported currency %q", req.Currency)
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, req.Currency)
		}
		uc.logger.Error("BookRooms: charge failed: %v", err)
		return nil, fmt.Errorf("%w: charge failed: %v", ErrInternal, err)
	}
	if !charged {
		uc.logger.Warn("BookRooms: payment declined for %s %s", total.StringFixed(2), req.Currency)
		uc.compensate(req, bookings, "payment declined")
		return nil, ErrPaymentDeclined
	}

	for _, b := range bookings {
		b.Status = domain.StatusPaid
	}

	// 8. Платёж прошёл: доводим до конца независимо от отмены вызывающей стороны
	detachedCtx := context.WithoutCancel(ctx)

	if err := uc.persistGroup(detachedCtx, bookings); err != nil {
		// Деньги списаны, записи не сохранены. Платёж не повторяется,
		// номера остаются за группой. Состояние требует вмешательства оператора.
		uc.logger.Error("BookRooms: MONEY CAPTURED BUT BOOKINGS NOT PERSISTED: total=%s %s bookings=%d: %v",
			total.StringFixed(2), req.Currency, len(bookings), err)
		return nil, fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	results := make([]BookingResult, 0, len(bookings))
	for _, b := range bookings {
		b.Status = domain.StatusConfirmed
		uc.bus.Publish(b.ID, b.Status, "booking confirmed")
		results = append(results, newBookingResult(b))
	}

	uc.logger.Info("BookRooms: confirmed %d bookings, total=%s %s", len(results), total.StringFixed(2), req.Currency)

	return &Response{
		Bookings:   results,
		TotalPrice: total,
		Currency:   req.Currency,
	}, nil
}

func (uc *UseCase) buildPackage(room domain.RoomDescriptor, tier domain.HotelTier, addOns []domain.AddOn) domain.BookingPackage {
	builder := domain.NewPackageBuilder().
		WithRoom(room).
		WithServices(tier.Services)

	for _, addOn := range addOns {
		switch addOn {
		case domain.AddOnBreakfast:
			builder = builder.WithBreakfast()
		case domain.AddOnTransfer:
			builder = builder.WithTransfer()
		case domain.AddOnMiniBar:
			builder = builder.WithMiniBar()
		case domain.AddOnLateCheckout:
			builder = builder.WithLateCheckout()
		}
	}

	return builder.Build()
}

// compensate возвращает зарезервированные номера и переводит все бронирования
// группы в failed, затем released, публикуя уведомление о сбое по каждому
func (uc *UseCase) compensate(req *Request, bookings []*domain.Booking, reason string) {
	uc.ledger.Release(req.RoomType, req.GroupSize)
	uc.logger.Info("BookRooms: released %d %s rooms (%s)", req.GroupSize, req.RoomType, reason)

	for _, b := range bookings {
		b.Status = domain.StatusFailed
		uc.bus.Publish(b.ID, b.Status, reason)
		b.Status = domain.StatusReleased
	}
}

// persistGroup сохраняет все бронирования группы в одной транзакции.
// Запись повторяется с паузой; сам платёж не повторяется никогда.
func (uc *UseCase) persistGroup(ctx context.Context, bookings []*domain.Booking) error {
	writeOnce := func() error {
		return uc.txManager.Do(ctx, func(txCtx context.Context) error {
			for _, b := range bookings {
				if _, err := uc.store.Create(txCtx, b.Record()); err != nil {
					return err
				}
			}
			return nil
		})
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(storeWriteBackoff), storeWriteAttempts-1)
	if err := backoff.Retry(writeOnce, backoff.WithContext(policy, ctx)); err != nil {
		return err
	}
	return nil
}
