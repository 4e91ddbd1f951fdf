package monitoring

import (
	"errors"

	"github.com/davidvella/taskq/metrics"
	"github.com/davidvella/taskq/priority"
)

const (
	MetricInserts    = "queue_inserts_total"
	MetricExtracts   = "queue_extracts_total"
	MetricKeyChanges = "queue_key_changes_total"
	MetricRejections = "queue_rejections_total"
	MetricDepth      = "queue_depth"
)

var _ priority.Observer = (*QueueStats)(nil)

// QueueStats records queue events into a metrics registry and logs key
// changes and rejected operations.
type QueueStats struct {
	registry *metrics.Registry
	logger   Logger
}

// NewQueueStats registers the queue metrics. logger may be nil.
func NewQueueStats(registry *metrics.Registry, logger Logger) *QueueStats {
	registry.Register(metrics.Metric{
		Name:        MetricInserts,
		Type:        metrics.Counter,
		Description: "Total number of entries inserted",
	})

	registry.Register(metrics.Metric{
		Name:        MetricExtracts,
		Type:        metrics.Counter,
		Description: "Total number of entries extracted",
	})

	registry.Register(metrics.Metric{
		Name:        MetricKeyChanges,
		Type:        metrics.Counter,
		Description: "Total number of priority changes by operation",
	})

	registry.Register(metrics.Metric{
		Name:        MetricRejections,
		Type:        metrics.Counter,
		Description: "Total number of rejected operations by operation and reason",
	})

	registry.Register(metrics.Metric{
		Name:        MetricDepth,
		Type:        metrics.Gauge,
		Description: "Number of queued entries",
	})

	return &QueueStats{
		registry: registry,
		logger:   logger,
	}
}

func (s *QueueStats) Inserted(id string, depth int) {
	s.registry.RecordCounter(MetricInserts, 1, nil)
	s.registry.RecordGauge(MetricDepth, float64(depth), nil)
}

func (s *QueueStats) Extracted(id string, depth int) {
	s.registry.RecordCounter(MetricExtracts, 1, nil)
	s.registry.RecordGauge(MetricDepth, float64(depth), nil)
}

func (s *QueueStats) KeyChanged(op priority.Op, id string, from, to int64, depth int) {
	s.registry.RecordCounter(MetricKeyChanges, 1, map[string]string{
		"operation": string(op),
	})
	s.registry.RecordGauge(MetricDepth, float64(depth), nil)
	s.log(DEBUG, "key_changed", "priority changed", map[string]interface{}{
		"operation": string(op),
		"id":        id,
		"from":      from,
		"to":        to,
	})
}

func (s *QueueStats) Rejected(op priority.Op, id string, err error) {
	reason := Reason(err)
	s.registry.RecordCounter(MetricRejections, 1, map[string]string{
		"operation": string(op),
		"reason":    reason,
	})

	details := map[string]interface{}{
		"operation": string(op),
		"reason":    reason,
	}
	if id != "" {
		details["id"] = id
	}
	s.log(WARN, "rejected", err.Error(), details)
}

func (s *QueueStats) log(level LogLevel, eventType, message string, details map[string]interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Log(level, eventType, message, details)
}

// Reason maps a queue error to a short label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, priority.ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, priority.ErrEmpty):
		return "empty"
	case errors.Is(err, priority.ErrUnknownID):
		return "unknown_id"
	case errors.Is(err, priority.ErrInvalidDirection):
		return "invalid_direction"
	default:
		return "other"
	}
}
