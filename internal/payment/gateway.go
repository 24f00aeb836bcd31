package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Gateway единообразный вход для платежей: нормализует сумму и валюту
// под родной вызов конкретного процессора. USD уходит как есть,
// EUR конвертируется по фиксированному опубликованному курсу.
type Gateway struct {
	processors map[domain.Currency]Processor
	eurRate    decimal.Decimal
	logger     Logger
}

// NewGateway создает шлюз с процессорами USD и EUR
func NewGateway(eurRate decimal.Decimal, logger Logger) *Gateway {
	return &Gateway{
		processors: map[domain.Currency]Processor{
			domain.CurrencyUSD: &USDProcessor{},
			domain.CurrencyEUR: &EURProcessor{},
		},
		eurRate: eurRate,
		logger:  logger,
	}
}

// Register заменяет процессор для валюты (используется в тестах и при
// подключении других заглушек)
func (g *Gateway) Register(currency domain.Currency, processor Processor) {
	g.processors[currency] = processor
}

// Charge списывает amount в указанной валюте.
// Возвращает false при отказе процессора: вызывающая сторона обязана
// трактовать это как восстановимое состояние и запустить компенсацию.
func (g *Gateway) Charge(ctx context.Context, amount decimal.Decimal, currency domain.Currency) (bool, error) {
	processor, ok := g.processors[currency]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}

	native := amount
	if currency != domain.CurrencyUSD {
		native = amount.Mul(g.eurRate).Round(2)
	}

	g.logger.Info("Charge: amount=%s currency=%s native=%s", amount.StringFixed(2), currency, native.StringFixed(2))

	charged := processor.Charge(ctx, native)
	if !charged {
		g.logger.Warn("Charge: declined, amount=%s currency=%s", amount.StringFixed(2), currency)
	}
	return charged, nil
}
