package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	metricCardsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dealdesk",
		Name:      "cards_published_total",
		Help:      "Number of deal cards posted to broadcast chats.",
	})

	metricClaims = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealdesk",
		Name:      "claims_total",
		Help:      "Claim requests by result.",
	}, []string{"result"})

	metricOffers = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealdesk",
		Name:      "offers_total",
		Help:      "Offer requests by result.",
	}, []string{"result"})

	metricFanOutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dealdesk",
		Name:      "card_disable_failures_total",
		Help:      "Card copies that could not be disabled during fan-out.",
	})
)
