package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Hook chain metrics
var (
	HookFirings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHookFirings,
			Help:      HelpTextHookFirings,
		},
		[]string{LabelEvent},
	)

	AugmentationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAugmentationFailures,
			Help:      HelpTextAugmentationFailures,
		},
		[]string{LabelEvent, LabelOwner},
	)
)

// Status effect metrics
var (
	DotTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDotTicks,
			Help:      HelpTextDotTicks,
		},
		[]string{LabelKind},
	)

	DotSkippedTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDotSkippedTicks,
			Help:      HelpTextDotSkippedTicks,
		},
		[]string{LabelKind},
	)

	DotDamage = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDotDamage,
			Help:      HelpTextDotDamage,
		},
		[]string{LabelKind},
	)

	DotApplications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDotApplications,
			Help:      HelpTextDotApplications,
		},
		[]string{LabelKind, LabelOutcome},
	)
)

// Registration and diagnostics metrics
var (
	Diagnostics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDiagnostics,
			Help:      HelpTextDiagnostics,
		},
		[]string{LabelCode},
	)

	RegisteredContent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameRegisteredContent,
			Help:      HelpTextRegisteredContent,
		},
	)
)
