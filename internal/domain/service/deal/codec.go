package service

import (
	"fmt"
	"strconv"
	"strings"

	"dealdesk/internal/domain/entity"
)

// Подписи строк карточки. Это wire-формат: Render и Parse работают от одной
// таблицы, менять подписи — значит ломать уже опубликованные карточки.
const (
	labelProductName = "Product Name:"
	labelSKU         = "SKU:"
	labelSize        = "Size:"
	labelBrand       = "Brand:"
	labelPayout      = "Payout:"
	labelDealID      = "Deal ID:"
	labelImage       = "Image:"
)

const currencySymbol = "€"

type cardField struct {
	label    string
	optional bool
	render   func(entity.Deal) string
	assign   func(*entity.Deal, string)
}

//nolint:gochecknoglobals
var cardFields = []cardField{
	{
		label:  labelProductName,
		render: func(d entity.Deal) string { return d.ProductName },
		assign: func(d *entity.Deal, v string) { d.ProductName = v },
	},
	{
		label:  labelSKU,
		render: func(d entity.Deal) string { return d.SKU },
		assign: func(d *entity.Deal, v string) { d.SKU = v },
	},
	{
		label:  labelSize,
		render: func(d entity.Deal) string { return d.Size },
		assign: func(d *entity.Deal, v string) { d.Size = v },
	},
	{
		label:  labelBrand,
		render: func(d entity.Deal) string { return d.Brand },
		assign: func(d *entity.Deal, v string) { d.Brand = v },
	},
	{
		label:  labelPayout,
		render: func(d entity.Deal) string { return FormatAmount(d.StartPayout) },
		assign: func(d *entity.Deal, v string) { d.StartPayout = parseAmountValue(v) },
	},
	{
		label:    labelDealID,
		optional: true,
		render:   func(d entity.Deal) string { return d.DealID },
		assign:   func(d *entity.Deal, v string) { d.DealID = v },
	},
	{
		label:    labelImage,
		optional: true,
		render:   func(d entity.Deal) string { return d.ImageURL },
		assign:   func(d *entity.Deal, v string) { d.ImageURL = v },
	},
}

// FormatAmount — денежный формат карточки: символ валюты и ровно два знака.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%s%.2f", currencySymbol, amount)
}

// RenderCard собирает текст карточки: по строке на каждое заполненное поле.
// Отсутствующие опциональные поля не дают строк вообще, пустых плейсхолдеров нет.
func RenderCard(deal entity.Deal) string {
	lines := make([]string, 0, len(cardFields))

	for _, f := range cardFields {
		value := f.render(deal)
		if f.optional && value == "" {
			continue
		}

		lines = append(lines, f.label+" "+value)
	}

	return strings.Join(lines, "\n")
}

// ParseCard восстанавливает поля сделки из текста карточки. Для каждой подписи
// берётся первая строка с таким префиксом; отсутствие подписи — это не ошибка,
// поле просто остаётся пустым.
func ParseCard(text string) entity.Deal {
	lines := strings.Split(text, "\n")

	var deal entity.Deal

	for _, f := range cardFields {
		f.assign(&deal, firstLineValue(lines, f.label))
	}

	return deal
}

func firstLineValue(lines []string, label string) string {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, label) {
			return strings.TrimSpace(strings.TrimPrefix(line, label))
		}
	}

	return ""
}

func parseAmountValue(v string) float64 {
	v = strings.TrimSpace(strings.TrimPrefix(v, currencySymbol))

	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}

	return amount
}
