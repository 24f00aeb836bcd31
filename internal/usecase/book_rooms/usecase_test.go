package book_rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/inventory"
	"github.com/m04kA/SMC-HotelBooking/internal/payment"
	"github.com/m04kA/SMC-HotelBooking/internal/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type chargeCall struct {
	amount   decimal.Decimal
	currency domain.Currency
}

type fakeGateway struct {
	calls  []chargeCall
	result bool
	err    error
}

func (g *fakeGateway) Charge(_ context.Context, amount decimal.Decimal, currency domain.Currency) (bool, error) {
	g.calls = append(g.calls, chargeCall{amount: amount, currency: currency})
	if g.err != nil {
		return false, g.err
	}
	return g.result, nil
}

type fakeStore struct {
	saved       []*domain.BookingRecord
	failAlways  bool
	createCalls int
}

func (s *fakeStore) Create(_ context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	s.createCalls++
	if s.failAlways {
		return nil, errors.New("store unavailable")
	}
	s.saved = append(s.saved, record)
	return record, nil
}

type busEvent struct {
	bookingID string
	status    domain.BookingStatus
	message   string
}

type fakeBus struct {
	events []busEvent
}

func (b *fakeBus) Publish(bookingID string, status domain.BookingStatus, message string) {
	b.events = append(b.events, busEvent{bookingID: bookingID, status: status, message: message})
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	ledger  *inventory.Ledger
	gateway *fakeGateway
	store   *fakeStore
	bus     *fakeBus
	uc      *UseCase
}

func newFixture(standardCapacity int) *fixture {
	ledger := inventory.NewLedger(map[domain.RoomCategory]int{
		domain.RoomStandard:  standardCapacity,
		domain.RoomLuxury:    5,
		domain.RoomApartment: 3,
	})
	gateway := &fakeGateway{result: true}
	store := &fakeStore{}
	bus := &fakeBus{}

	uc := NewUseCase(ledger, pricing.NewEngine(), gateway, bus, store, passthroughTxManager{}, nopLogger{})

	return &fixture{ledger: ledger, gateway: gateway, store: store, bus: bus, uc: uc}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return d
}

func standardRequest(t *testing.T) *Request {
	return &Request{
		HotelType: domain.HotelCity,
		HotelName: "Grand Plaza",
		RoomType:  domain.RoomStandard,
		CheckIn:   date(t, "2025-10-15"),
		CheckOut:  date(t, "2025-10-17"),
		Tariff:    domain.TariffFlexible,
		Currency:  domain.CurrencyUSD,
		GroupSize: 2,
		AddOns:    []domain.AddOn{domain.AddOnMiniBar},
	}
}

func TestExecute_HappyPath(t *testing.T) {
	f := newFixture(10)

	result, err := f.uc.Execute(context.Background(), standardRequest(t))
	require.NoError(t, err)

	// Цена за номер: 100 * 2 * 1.2 + 50 = 290.00, платёж один на группу: 580.00
	require.Len(t, result.Bookings, 2)
	for _, b := range result.Bookings {
		assert.Equal(t, "290.00", b.Price.StringFixed(2))
		assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	}
	assert.Equal(t, "580.00", result.TotalPrice.StringFixed(2))

	require.Len(t, f.gateway.calls, 1)
	assert.Equal(t, "580.00", f.gateway.calls[0].amount.StringFixed(2))
	assert.Equal(t, domain.CurrencyUSD, f.gateway.calls[0].currency)

	// Остаток уменьшился ровно на размер группы
	assert.Equal(t, 8, f.ledger.Snapshot()[domain.RoomStandard])

	// Каждое бронирование сохранено и подтверждено уведомлением
	require.Len(t, f.store.saved, 2)
	require.Len(t, f.bus.events, 2)
	for _, e := range f.bus.events {
		assert.Equal(t, domain.StatusConfirmed, e.status)
	}

	// Идентификаторы клонов различны
	assert.NotEqual(t, result.Bookings[0].ID, result.Bookings[1].ID)
}

func TestExecute_InventoryExhausted(t *testing.T) {
	f := newFixture(1)

	_, err := f.uc.Execute(context.Background(), standardRequest(t))

	assert.ErrorIs(t, err, ErrInventoryExhausted)
	assert.Equal(t, 1, f.ledger.Snapshot()[domain.RoomStandard])
	assert.Empty(t, f.gateway.calls)
	assert.Empty(t, f.store.saved)
	assert.Empty(t, f.bus.events)
}

func TestExecute_PaymentDeclinedReleasesInventory(t *testing.T) {
	f := newFixture(10)
	f.gateway.result = false

	_, err := f.uc.Execute(context.Background(), standardRequest(t))

	assert.ErrorIs(t, err, ErrPaymentDeclined)

	// Компенсация вернула остаток ровно к исходному значению
	assert.Equal(t, 10, f.ledger.Snapshot()[domain.RoomStandard])

	// Платёж был ровно один, повторных списаний нет
	assert.Len(t, f.gateway.calls, 1)

	// Ничего не сохранено, по каждому бронированию ушло уведомление о сбое
	assert.Empty(t, f.store.saved)
	require.Len(t, f.bus.events, 2)
	for _, e := range f.bus.events {
		assert.Equal(t, domain.StatusFailed, e.status)
		assert.Equal(t, "payment declined", e.message)
	}
}

func TestExecute_UnsupportedCurrency(t *testing.T) {
	f := newFixture(10)
	f.gateway.err = payment.ErrUnsupportedCurrency

	req := standardRequest(t)
	req.Currency = domain.Currency("GBP")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
	// Сбой на шаге платежа компенсируется так же, как отказ
	assert.Equal(t, 10, f.ledger.Snapshot()[domain.RoomStandard])
	assert.Len(t, f.bus.events, 2)
}

func TestExecute_ValidationBeforeAnyMutation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "invalid group size",
			mutate:  func(req *Request) { req.GroupSize = 0 },
			wantErr: ErrInvalidGroupSize,
		},
		{
			name:    "checkout before checkin",
			mutate:  func(req *Request) { req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn },
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "unknown tariff",
			mutate:  func(req *Request) { req.Tariff = domain.Tariff("Weekend") },
			wantErr: ErrUnknownTariff,
		},
		{
			name:    "unknown room type",
			mutate:  func(req *Request) { req.RoomType = domain.RoomCategory("Penthouse") },
			wantErr: ErrUnknownRoomType,
		},
		{
			name:    "unknown hotel type",
			mutate:  func(req *Request) { req.HotelType = domain.HotelKind("Boutique") },
			wantErr: ErrUnknownHotelType,
		},
		{
			name:    "empty hotel name",
			mutate:  func(req *Request) { req.HotelName = "" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(10)
			req := standardRequest(t)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			// До резервирования дело не дошло: ни компенсаций, ни платежей
			assert.Equal(t, 10, f.ledger.Snapshot()[domain.RoomStandard])
			assert.Empty(t, f.gateway.calls)
			assert.Empty(t, f.bus.events)
		})
	}
}

func TestExecute_CancelledBeforeReserve(t *testing.T) {
	f := newFixture(10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.Execute(ctx, standardRequest(t))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, f.ledger.Snapshot()[domain.RoomStandard])
	assert.Empty(t, f.gateway.calls)
}

func TestExecute_StoreWriteFailedAfterCharge(t *testing.T) {
	f := newFixture(10)
	f.store.failAlways = true

	req := standardRequest(t)
	req.GroupSize = 1

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStoreWriteFailed)

	// Деньги списаны ровно один раз: платёж не повторяется
	assert.Len(t, f.gateway.calls, 1)

	// Запись повторялась, но безуспешно
	assert.Equal(t, storeWriteAttempts, f.store.createCalls)

	// Номера остаются за оплаченной группой: компенсация не выполняется
	assert.Equal(t, 9, f.ledger.Snapshot()[domain.RoomStandard])
	assert.Empty(t, f.bus.events)
}

func TestExecute_NonRefundableTariffPricing(t *testing.T) {
	f := newFixture(10)

	req := standardRequest(t)
	req.Tariff = domain.TariffNonRefundable
	req.AddOns = nil
	req.GroupSize = 1

	result, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 100 * 2 * 0.9 = 180.00
	assert.Equal(t, "180.00", result.TotalPrice.StringFixed(2))
}

func TestExecute_PackageCarriesServicesAndAddOns(t *testing.T) {
	f := newFixture(10)

	req := standardRequest(t)
	req.HotelType = domain.HotelResort
	req.AddOns = []domain.AddOn{domain.AddOnBreakfast, domain.AddOnMiniBar}
	req.GroupSize = 1

	result, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.store.saved, 1)
	description := f.store.saved[0].ServicesDescription
	assert.Contains(t, description, "Wi-Fi, Pool, Spa")
	assert.Contains(t, description, "Breakfast, MiniBar")
	assert.Equal(t, result.Bookings[0].ServicesDescription, description)
}
