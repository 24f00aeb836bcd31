package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Processor единый интерфейс валютного процессора: списать сумму в его
// родной валюте. Отказ в платеже возвращается как false, а не как ошибка.
type Processor interface {
	Charge(ctx context.Context, amount decimal.Decimal) bool
}

// USDProcessor имитация процессора платежей в долларах
type USDProcessor struct{}

// Charge списывает сумму в USD
func (p *USDProcessor) Charge(_ context.Context, _ decimal.Decimal) bool {
	return true
}

// EURProcessor имитация процессора платежей в евро
type EURProcessor struct{}

// Charge списывает сумму в EUR
func (p *EURProcessor) Charge(_ context.Context, _ decimal.Decimal) bool {
	return true
}
