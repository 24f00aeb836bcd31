package metrics

import "time"

// LedgerSnapshotter отдаёт текущие остатки номеров по категориям
type LedgerSnapshotter interface {
	Snapshot() map[string]int
}

// CollectLedger периодически снимает остатки леджера в gauge rooms_available.
// Останавливается закрытием stopCh.
func (m *Metrics) CollectLedger(ledger LedgerSnapshotter, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.collectLedgerOnce(ledger)
		for {
			select {
			case <-ticker.C:
				m.collectLedgerOnce(ledger)
			case <-stopCh:
				return
			}
		}
	}()
}

func (m *Metrics) collectLedgerOnce(ledger LedgerSnapshotter) {
	for category, available := range ledger.Snapshot() {
		m.SetRoomsAvailable(category, available)
	}
}
