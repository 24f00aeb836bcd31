package inventory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

func newTestLedger(standard int) *Ledger {
	return NewLedger(map[domain.RoomCategory]int{
		domain.RoomStandard: standard,
		domain.RoomLuxury:   5,
	})
}

func TestLedger_CheckAvailability(t *testing.T) {
	ledger := newTestLedger(10)

	assert.True(t, ledger.CheckAvailability(domain.RoomStandard, 10))
	assert.False(t, ledger.CheckAvailability(domain.RoomStandard, 11))
	assert.True(t, ledger.CheckAvailability(domain.RoomLuxury, 5))
	assert.False(t, ledger.CheckAvailability(domain.RoomApartment, 1))
}

func TestLedger_Reserve(t *testing.T) {
	ledger := newTestLedger(10)

	require.True(t, ledger.Reserve(domain.RoomStandard, 4))
	assert.Equal(t, 6, ledger.Snapshot()[domain.RoomStandard])

	// Недостаточно номеров: состояние не меняется
	require.False(t, ledger.Reserve(domain.RoomStandard, 7))
	assert.Equal(t, 6, ledger.Snapshot()[domain.RoomStandard])

	require.True(t, ledger.Reserve(domain.RoomStandard, 6))
	assert.Equal(t, 0, ledger.Snapshot()[domain.RoomStandard])
	assert.False(t, ledger.Reserve(domain.RoomStandard, 1))
}

func TestLedger_ReserveUnknownCategory(t *testing.T) {
	ledger := newTestLedger(10)

	assert.False(t, ledger.Reserve(domain.RoomApartment, 1))
	assert.Equal(t, 0, ledger.Snapshot()[domain.RoomApartment])
}

func TestLedger_ReleaseRestoresCount(t *testing.T) {
	ledger := newTestLedger(10)

	require.True(t, ledger.Reserve(domain.RoomStandard, 3))
	ledger.Release(domain.RoomStandard, 3)

	assert.Equal(t, 10, ledger.Snapshot()[domain.RoomStandard])
}

// При N конкурентных Reserve, в сумме превышающих остаток, успешных
// списаний должно быть ровно на величину остатка, без перераспределения
// сверх ёмкости ни при каком чередовании.
func TestLedger_ConcurrentReserveNeverOverallocates(t *testing.T) {
	const (
		capacity   = 25
		goroutines = 100
		quantity   = 1
	)

	ledger := NewLedger(map[domain.RoomCategory]int{domain.RoomStandard: capacity})

	var wg sync.WaitGroup
	results := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- ledger.Reserve(domain.RoomStandard, quantity)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, 0, ledger.Snapshot()[domain.RoomStandard])
}

func TestLedger_ConcurrentReserveRelease(t *testing.T) {
	const capacity = 10

	ledger := NewLedger(map[domain.RoomCategory]int{domain.RoomStandard: capacity})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ledger.Reserve(domain.RoomStandard, 2) {
				ledger.Release(domain.RoomStandard, 2)
			}
		}()
	}
	wg.Wait()

	// Каждый успешный резерв скомпенсирован: остаток вернулся к исходному
	assert.Equal(t, capacity, ledger.Snapshot()[domain.RoomStandard])
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	ledger := newTestLedger(10)

	snapshot := ledger.Snapshot()
	snapshot[domain.RoomStandard] = 0

	assert.Equal(t, 10, ledger.Snapshot()[domain.RoomStandard])
}
