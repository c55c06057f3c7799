package metrics

// Metric names
const (
	MetricNameHookFirings          = "hook_firings_total"
	MetricNameAugmentationFailures = "hook_augmentation_failures_total"
	MetricNameDotTicks             = "dot_ticks_total"
	MetricNameDotSkippedTicks      = "dot_skipped_ticks_total"
	MetricNameDotDamage            = "dot_damage_total"
	MetricNameDotApplications      = "dot_applications_total"
	MetricNameDiagnostics          = "diagnostics_reported_total"
	MetricNameRegisteredContent    = "registered_content"
)

// Metric help text
const (
	HelpTextHookFirings          = "Number of host events fired through the hook chain"
	HelpTextAugmentationFailures = "Number of augmentations that failed and were skipped"
	HelpTextDotTicks             = "Number of damage-over-time ticks that dealt damage"
	HelpTextDotSkippedTicks      = "Number of damage-over-time ticks skipped for a non-positive interval"
	HelpTextDotDamage            = "Total damage dealt by damage-over-time ticks"
	HelpTextDotApplications      = "Number of damage-over-time applications by outcome"
	HelpTextDiagnostics          = "Number of diagnostics reported by error code"
	HelpTextRegisteredContent    = "Number of content objects currently registered"
)

// Labels
const (
	LabelEvent   = "event"
	LabelOwner   = "owner"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
	LabelCode    = "code"
)

// Application outcomes
const (
	OutcomeCreated = "created"
	OutcomeStacked = "stacked"
)

// Namespace prefixes every metric
const Namespace = "thalassophobia"
