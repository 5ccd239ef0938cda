package service

import (
	"github.com/samber/lo"

	"dealdesk/internal/domain/entity"
)

// Правило строго убывающего аукциона: каждое новое предложение должно быть
// дешевле текущего минимума минимум на undercutStep. Это отсекает "шумовые"
// перебивки на копейку.
const (
	undercutStep = 2.50
	// Допуск на плавающую точку на границе: 97.50 против пола 100.00 проходит.
	priceEpsilon = 0.005
)

// Arbitration — вердикт по встречному предложению. Floor и MaxAllowed
// заполняются и при отказе, чтобы пользователю можно было показать,
// сколько максимум он может предложить.
type Arbitration struct {
	Accepted   bool
	Floor      float64 // текущий минимум по заказу, 0 если предложений нет
	MaxAllowed float64 // Floor - undercutStep
}

// EvaluateOffer решает судьбу предложения против уже принятых по тому же
// заказу. Без конкурентов принимается любая положительная сумма.
func EvaluateOffer(candidate float64, existing []entity.Offer) Arbitration {
	if candidate <= 0 {
		return Arbitration{}
	}

	if len(existing) == 0 {
		return Arbitration{Accepted: true}
	}

	floor := lo.MinBy(existing, func(a, b entity.Offer) bool {
		return a.Amount < b.Amount
	}).Amount

	maxAllowed := floor - undercutStep

	return Arbitration{
		Accepted:   candidate <= maxAllowed+priceEpsilon,
		Floor:      floor,
		MaxAllowed: maxAllowed,
	}
}
