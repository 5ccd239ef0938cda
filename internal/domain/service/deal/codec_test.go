package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dealdesk/internal/domain/entity"
)

func TestRenderCardFull(t *testing.T) {
	rq := require.New(t)

	deal := entity.Deal{
		ProductName: "Shoe A",
		SKU:         "SKU1",
		Size:        "42",
		Brand:       "B",
		StartPayout: 100.00,
		DealID:      "D-100",
		ImageURL:    "https://img.example/a.png",
	}

	text := RenderCard(deal)

	rq.Equal(strings.Join([]string{
		"Product Name: Shoe A",
		"SKU: SKU1",
		"Size: 42",
		"Brand: B",
		"Payout: €100.00",
		"Deal ID: D-100",
		"Image: https://img.example/a.png",
	}, "\n"), text)
}

func TestRenderCardOmitsAbsentOptionalFields(t *testing.T) {
	rq := require.New(t)

	text := RenderCard(entity.Deal{
		ProductName: "Shoe A",
		SKU:         "SKU1",
		Size:        "42",
		Brand:       "B",
		StartPayout: 59.99,
	})

	rq.NotContains(text, "Deal ID:")
	rq.NotContains(text, "Image:")
	rq.Contains(text, "Payout: €59.99")
	rq.Len(strings.Split(text, "\n"), 5)
}

func TestCardRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		deal entity.Deal
	}{
		{
			name: "all fields",
			deal: entity.Deal{
				ProductName: "Jordan 1 Retro High",
				SKU:         "555088-711",
				Size:        "10.5",
				Brand:       "Nike",
				StartPayout: 240.50,
				DealID:      "D-42",
				ImageURL:    "https://img.example/j1.png",
			},
		},
		{
			name: "only deal id",
			deal: entity.Deal{
				ProductName: "Yeezy 350",
				SKU:         "GW1234",
				Size:        "9",
				Brand:       "Adidas",
				StartPayout: 180.00,
				DealID:      "D-43",
			},
		},
		{
			name: "only image",
			deal: entity.Deal{
				ProductName: "Dunk Low",
				SKU:         "DD1391",
				Size:        "8",
				Brand:       "Nike",
				StartPayout: 95.25,
				ImageURL:    "https://img.example/dunk.png",
			},
		},
		{
			name: "no optional fields",
			deal: entity.Deal{
				ProductName: "Shoe A",
				SKU:         "SKU1",
				Size:        "42",
				Brand:       "B",
				StartPayout: 100.00,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			parsed := ParseCard(RenderCard(tc.deal))

			rq.Equal(tc.deal.ProductName, parsed.ProductName)
			rq.Equal(tc.deal.SKU, parsed.SKU)
			rq.Equal(tc.deal.Size, parsed.Size)
			rq.Equal(tc.deal.Brand, parsed.Brand)
			rq.Equal(tc.deal.DealID, parsed.DealID)
			rq.Equal(tc.deal.ImageURL, parsed.ImageURL)
			rq.InDelta(tc.deal.StartPayout, parsed.StartPayout, 0.005)
		})
	}
}

func TestParseCardMissingLabelsYieldAbsence(t *testing.T) {
	rq := require.New(t)

	deal := ParseCard("Product Name: Shoe A\nsome unrelated line")

	rq.Equal("Shoe A", deal.ProductName)
	rq.Empty(deal.SKU)
	rq.Empty(deal.DealID)
	rq.Zero(deal.StartPayout)
}

func TestParseCardFirstMatchingLineWins(t *testing.T) {
	rq := require.New(t)

	deal := ParseCard("SKU: FIRST\nSKU: SECOND")

	rq.Equal("FIRST", deal.SKU)
}

func TestParseCardGarbage(t *testing.T) {
	rq := require.New(t)

	deal := ParseCard("")
	rq.Equal(entity.Deal{}, deal)

	deal = ParseCard("Payout: not-a-number")
	rq.Zero(deal.StartPayout)
}
