package inventory

import (
	"sync"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Ledger единый источник истины о доступности номеров по категориям.
// Один экземпляр на процесс, разделяется всеми конкурентными запросами
// на бронирование. Это единственное место в системе, где требуется
// взаимное исключение: Reserve атомарно перепроверяет и списывает остаток.
//
// Release безусловно увеличивает остаток и используется как компенсация
// при сбое на любом шаге после резервирования. Возврат большего числа
// номеров, чем было зарезервировано, считается ошибкой вызывающей
// стороны; леджер это не детектирует.
type Ledger struct {
	mu        sync.Mutex
	available map[domain.RoomCategory]int
}

// NewLedger создает леджер с начальными остатками по категориям
func NewLedger(capacities map[domain.RoomCategory]int) *Ledger {
	available := make(map[domain.RoomCategory]int, len(capacities))
	for category, count := range capacities {
		available[category] = count
	}
	return &Ledger{available: available}
}

// CheckAvailability возвращает true, если доступно не меньше quantity номеров.
// Чистое чтение без побочных эффектов: к моменту Reserve ответ может устареть.
func (l *Ledger) CheckAvailability(category domain.RoomCategory, quantity int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.available[category] >= quantity
}

// Reserve атомарно перепроверяет остаток и списывает quantity номеров.
// Возвращает false без изменения состояния, если номеров недостаточно.
// Два конкурентных Reserve, в сумме превышающих остаток, не могут
// завершиться успешно оба.
func (l *Ledger) Reserve(category domain.RoomCategory, quantity int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.available[category] < quantity {
		return false
	}
	l.available[category] -= quantity
	return true
}

// Release возвращает quantity номеров в остаток
func (l *Ledger) Release(category domain.RoomCategory, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.available[category] += quantity
}

// Snapshot возвращает копию текущих остатков по всем категориям
func (l *Ledger) Snapshot() map[domain.RoomCategory]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make(map[domain.RoomCategory]int, len(l.available))
	for category, count := range l.available {
		snapshot[category] = count
	}
	return snapshot
}
