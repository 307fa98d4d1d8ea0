package featureflag

type Flag string

const (
	// FlagDisableMetrics stops a tree from reporting Prometheus metrics.
	FlagDisableMetrics Flag = "DISABLE_METRICS"

	// FlagDisableGenerationLogs stops a tree from logging a summary after
	// each generation.
	FlagDisableGenerationLogs Flag = "DISABLE_GENERATION_LOGS"
)
