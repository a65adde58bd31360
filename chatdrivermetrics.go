package pairup

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using opentelemetry.template template

//go:generate gowrap gen -p github.com/pairupbot/pairup -i chatDriver -t opentelemetry.template -o chatdrivermetrics.go

import (
	"context"
	"time"
	"unicode"

	"github.com/nlopes/slack"
	"go.opentelemetry.io/otel/api/key"
	"go.opentelemetry.io/otel/api/metric"
)

// chatDriverWithTelemetry implements chatDriver interface with all methods wrapped
// with open telemetry metrics
type chatDriverWithTelemetry struct {
	base               chatDriver
	methodCounters     map[string]metric.BoundInt64Counter
	errCounters        map[string]metric.BoundInt64Counter
	methodTimeMeasures map[string]metric.BoundInt64Measure
}

// NewchatDriverWithTelemetry returns an instance of the chatDriver decorated with open telemetry timing and count metrics
func NewchatDriverWithTelemetry(base chatDriver, name string, meter metric.Meter) chatDriverWithTelemetry {
	return chatDriverWithTelemetry{
		base:               base,
		methodCounters:     newchatDriverMethodCounters("Calls", name, meter),
		errCounters:        newchatDriverMethodCounters("Errors", name, meter),
		methodTimeMeasures: newchatDriverMethodTimeMeasures(name, meter),
	}
}

func newchatDriverMethodTimeMeasures(appName string, meter metric.Meter) (boundTimeMeasures map[string]metric.BoundInt64Measure) {
	boundTimeMeasures = make(map[string]metric.BoundInt64Measure)

	nOpenIMChannelMeasure := []rune("chatDriver_OpenIMChannel_ProcessingTimeMillis")
	nOpenIMChannelMeasure[0] = unicode.ToLower(nOpenIMChannelMeasure[0])
	mOpenIMChannel := meter.NewInt64Measure(string(nOpenIMChannelMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["OpenIMChannel"] = mOpenIMChannel.Bind(meter.Labels(key.New("name").String(appName)))

	nPostMessageMeasure := []rune("chatDriver_PostMessage_ProcessingTimeMillis")
	nPostMessageMeasure[0] = unicode.ToLower(nPostMessageMeasure[0])
	mPostMessage := meter.NewInt64Measure(string(nPostMessageMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["PostMessage"] = mPostMessage.Bind(meter.Labels(key.New("name").String(appName)))

	return boundTimeMeasures
}

func newchatDriverMethodCounters(suffix string, appName string, meter metric.Meter) (boundCounters map[string]metric.BoundInt64Counter) {
	boundCounters = make(map[string]metric.BoundInt64Counter)

	nOpenIMChannelCounter := []rune("chatDriver_OpenIMChannel_" + suffix)
	nOpenIMChannelCounter[0] = unicode.ToLower(nOpenIMChannelCounter[0])
	cOpenIMChannel := meter.NewInt64Counter(string(nOpenIMChannelCounter), metric.WithKeys(key.New("name")))
	boundCounters["OpenIMChannel"] = cOpenIMChannel.Bind(meter.Labels(key.New("name").String(appName)))

	nPostMessageCounter := []rune("chatDriver_PostMessage_" + suffix)
	nPostMessageCounter[0] = unicode.ToLower(nPostMessageCounter[0])
	cPostMessage := meter.NewInt64Counter(string(nPostMessageCounter), metric.WithKeys(key.New("name")))
	boundCounters["PostMessage"] = cPostMessage.Bind(meter.Labels(key.New("name").String(appName)))

	return boundCounters
}

// OpenIMChannel implements chatDriver
func (_d chatDriverWithTelemetry) OpenIMChannel(user string) (noOp bool, alreadyOpen bool, channelID string, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["OpenIMChannel"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["OpenIMChannel"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["OpenIMChannel"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.OpenIMChannel(user)
}

// PostMessage implements chatDriver
func (_d chatDriverWithTelemetry) PostMessage(channelID string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["PostMessage"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["PostMessage"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["PostMessage"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.PostMessage(channelID, options...)
}
