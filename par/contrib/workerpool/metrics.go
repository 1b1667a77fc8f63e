// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Pool reports to. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	JobsSubmitted prometheus.Counter
	JobsCompleted prometheus.Counter
	JobsFailed    prometheus.Counter
	JobsDropped   prometheus.Counter

	Workers     prometheus.Gauge
	ActiveJobs  prometheus.Gauge
	QueueLength prometheus.Gauge
}

// NewMetrics creates the pool collectors under namespace and registers them
// with reg. Pools that should not share counters need distinct registries or
// namespaces.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		JobsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "jobs_submitted_total",
			Help:      "Total number of jobs admitted to the queue",
		}),
		JobsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "jobs_completed_total",
			Help:      "Total number of jobs that returned normally",
		}),
		JobsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "jobs_failed_total",
			Help:      "Total number of jobs that panicked",
		}),
		JobsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "jobs_dropped_total",
			Help:      "Total number of queued jobs discarded after their group aborted",
		}),
		Workers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "workers",
			Help:      "Number of worker goroutines",
		}),
		ActiveJobs: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "active_jobs",
			Help:      "Number of jobs currently executing",
		}),
		QueueLength: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "workerpool",
			Name:      "queue_length",
			Help:      "Number of jobs waiting for a worker",
		}),
	}
}

func (m *Metrics) setWorkers(n int) {
	if m == nil {
		return
	}
	m.Workers.Set(float64(n))
}

func (m *Metrics) submitted(queued int) {
	if m == nil {
		return
	}
	m.JobsSubmitted.Inc()
	m.QueueLength.Set(float64(queued))
}

func (m *Metrics) dequeued(queued int) {
	if m == nil {
		return
	}
	m.QueueLength.Set(float64(queued))
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.ActiveJobs.Inc()
}

func (m *Metrics) finished() {
	if m == nil {
		return
	}
	m.ActiveJobs.Dec()
}

func (m *Metrics) completed() {
	if m == nil {
		return
	}
	m.JobsCompleted.Inc()
}

func (m *Metrics) failed() {
	if m == nil {
		return
	}
	m.JobsFailed.Inc()
}

func (m *Metrics) dropped() {
	if m == nil {
		return
	}
	m.JobsDropped.Inc()
}
