// Package metrics defines all custom Prometheus metrics for the recipe
// roulette API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipes"

// SelectionsTotal counts successful recipe selections.
// Labels:
//   - cuisine: the cuisine filter in effect ("All" when unfiltered)
//   - diet: the diet filter in effect ("All" when unfiltered)
var SelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selections_total",
		Help:      "Total number of recipe selections served, by active filters.",
	},
	[]string{"cuisine", "diet"},
)

// SelectionNoMatchTotal counts requests whose filters matched no recipe.
var SelectionNoMatchTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selection_no_match_total",
		Help:      "Total number of selection requests that matched no recipe.",
	},
)

// RegistrationsTotal counts registration outcomes.
// Label:
//   - result: "created" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"result"},
)

// LoginFailuresTotal counts refused logins.
// Label:
//   - reason: "invalid_credentials" or "throttled"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of refused login attempts, by reason.",
	},
	[]string{"reason"},
)
