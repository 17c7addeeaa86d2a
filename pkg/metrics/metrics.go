// Package metrics exports assistant telemetry to Prometheus.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "calendar_assistant"

// Observer captures telemetry for the conversation dispatcher and the calendar boundary.
type Observer interface {
	RecordIntent(intent string)
	RecordAction(action string)
	RecordCalendarCall(op string, duration time.Duration, err error)
}

// PrometheusObserver exports dispatcher metrics to Prometheus.
type PrometheusObserver struct {
	intents      *prometheus.CounterVec
	actions      *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	callErrors   *prometheus.CounterVec
}

// NewPrometheusObserver registers intent, action and calendar call metrics on reg.
// Registering twice on the same registry reuses the existing collectors.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	intents, err := registerCounterVec(reg, prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intents_total",
		Help:      "Classified chat messages by intent.",
	}, "intent")
	if err != nil {
		return nil, err
	}
	actions, err := registerCounterVec(reg, prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Chat and booking replies by action.",
	}, "action")
	if err != nil {
		return nil, err
	}
	callErrors, err := registerCounterVec(reg, prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calendar_errors_total",
		Help:      "Failed calendar API calls by operation.",
	}, "operation")
	if err != nil {
		return nil, err
	}

	callDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "calendar_call_duration_seconds",
		Help:      "Latency of calendar API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
	if err := reg.Register(callDuration); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register calendar_call_duration_seconds: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("register calendar_call_duration_seconds: %w", err)
		}
		callDuration = existing
	}

	return &PrometheusObserver{
		intents:      intents,
		actions:      actions,
		callDuration: callDuration,
		callErrors:   callErrors,
	}, nil
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, label string) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(opts, []string{label})
	if err := reg.Register(vec); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register %s: %w", opts.Name, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register %s: %w", opts.Name, err)
		}
		return existing, nil
	}
	return vec, nil
}

func (o *PrometheusObserver) RecordIntent(intent string) {
	if o == nil {
		return
	}
	o.intents.WithLabelValues(intent).Inc()
}

func (o *PrometheusObserver) RecordAction(action string) {
	if o == nil {
		return
	}
	o.actions.WithLabelValues(action).Inc()
}

// RecordCalendarCall tracks calendar latency and failures.
func (o *PrometheusObserver) RecordCalendarCall(op string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.callDuration.WithLabelValues(op).Observe(duration.Seconds())
	if err != nil {
		o.callErrors.WithLabelValues(op).Inc()
	}
}

type nopObserver struct{}

// NewNop returns an Observer that records nothing.
func NewNop() Observer { return nopObserver{} }

func (nopObserver) RecordIntent(string) {}

func (nopObserver) RecordAction(string) {}

func (nopObserver) RecordCalendarCall(string, time.Duration, error) {}
