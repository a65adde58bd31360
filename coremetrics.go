package pairup

import (
	"time"

	"go.opentelemetry.io/otel/api/key"
	"go.opentelemetry.io/otel/api/metric"
)

// instrumenter holds data for core instrumentation
type instrumenter struct {
	appName     string
	coreMetrics coreMetrics
	meter       metric.Meter
}

// coreMetrics holds core pairup metrics
type coreMetrics struct {
	eventsSeen              metric.BoundInt64Counter
	teamsInstalled          metric.BoundInt64Counter
	teamsUninstalled        metric.BoundInt64Counter
	optIns                  metric.BoundInt64Counter
	optOuts                 metric.BoundInt64Counter
	pairupsMade             metric.BoundInt64Counter
	matchRoundLatencyMillis metric.BoundInt64Measure
	slackLatencyMillis      metric.BoundInt64Gauge
}

// newInstrumenter creates a new core instrumenter
func newInstrumenter(appName string, meter metric.Meter) (ins *instrumenter) {
	ins = new(instrumenter)

	defaultLabels := meter.Labels(key.New("name").String(appName))

	eventsSeen := meter.NewInt64Counter("eventSeen", metric.WithKeys(key.New("name")))
	teamsInstalled := meter.NewInt64Counter("teamInstalled", metric.WithKeys(key.New("name")))
	teamsUninstalled := meter.NewInt64Counter("teamUninstalled", metric.WithKeys(key.New("name")))
	optIns := meter.NewInt64Counter("optIn", metric.WithKeys(key.New("name")))
	optOuts := meter.NewInt64Counter("optOut", metric.WithKeys(key.New("name")))
	pairupsMade := meter.NewInt64Counter("pairupMade", metric.WithKeys(key.New("name")))
	matchRoundLatency := meter.NewInt64Measure("matchRoundLatencyMillis", metric.WithKeys(key.New("name")))
	slackLatency := meter.NewInt64Gauge("slackLatencyMillis", metric.WithKeys(key.New("name")))

	ins.coreMetrics = coreMetrics{
		eventsSeen:              eventsSeen.Bind(defaultLabels),
		teamsInstalled:          teamsInstalled.Bind(defaultLabels),
		teamsUninstalled:        teamsUninstalled.Bind(defaultLabels),
		optIns:                  optIns.Bind(defaultLabels),
		optOuts:                 optOuts.Bind(defaultLabels),
		pairupsMade:             pairupsMade.Bind(defaultLabels),
		matchRoundLatencyMillis: matchRoundLatency.Bind(defaultLabels),
		slackLatencyMillis:      slackLatency.Bind(defaultLabels)}

	ins.appName = appName
	ins.meter = meter
	return ins
}

type timed func()

// measure returns the execution duration of a timed function
func measure(operation timed) (d time.Duration) {
	before := time.Now()

	operation()

	return time.Now().Sub(before)
}
