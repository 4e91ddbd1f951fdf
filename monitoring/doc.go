// Package monitoring provides structured JSON logging and a priority.Observer
// that records queue activity into a metrics.Registry.
//
//	registry := metrics.NewRegistry()
//	stats := monitoring.NewQueueStats(registry, monitoring.NewLogger("scheduler", os.Stderr))
//	pq := priority.NewSync[int](priority.WithObserver(stats))
package monitoring
