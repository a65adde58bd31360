package pairup

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using opentelemetry.template template

//go:generate gowrap gen -p github.com/pairupbot/pairup -i MemberInfoFinder -t opentelemetry.template -o memberinfofindermetrics.go

import (
	"context"
	"time"
	"unicode"

	"github.com/nlopes/slack"
	"go.opentelemetry.io/otel/api/key"
	"go.opentelemetry.io/otel/api/metric"
)

// MemberInfoFinderWithTelemetry implements MemberInfoFinder interface with all methods wrapped
// with open telemetry metrics
type MemberInfoFinderWithTelemetry struct {
	base               MemberInfoFinder
	methodCounters     map[string]metric.BoundInt64Counter
	errCounters        map[string]metric.BoundInt64Counter
	methodTimeMeasures map[string]metric.BoundInt64Measure
}

// NewMemberInfoFinderWithTelemetry returns an instance of the MemberInfoFinder decorated with open telemetry timing and count metrics
func NewMemberInfoFinderWithTelemetry(base MemberInfoFinder, name string, meter metric.Meter) MemberInfoFinderWithTelemetry {
	return MemberInfoFinderWithTelemetry{
		base:               base,
		methodCounters:     newMemberInfoFinderMethodCounters("Calls", name, meter),
		errCounters:        newMemberInfoFinderMethodCounters("Errors", name, meter),
		methodTimeMeasures: newMemberInfoFinderMethodTimeMeasures(name, meter),
	}
}

func newMemberInfoFinderMethodTimeMeasures(appName string, meter metric.Meter) (boundTimeMeasures map[string]metric.BoundInt64Measure) {
	boundTimeMeasures = make(map[string]metric.BoundInt64Measure)

	nGetUserInfoMeasure := []rune("MemberInfoFinder_GetUserInfo_ProcessingTimeMillis")
	nGetUserInfoMeasure[0] = unicode.ToLower(nGetUserInfoMeasure[0])
	mGetUserInfo := meter.NewInt64Measure(string(nGetUserInfoMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["GetUserInfo"] = mGetUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	return boundTimeMeasures
}

func newMemberInfoFinderMethodCounters(suffix string, appName string, meter metric.Meter) (boundCounters map[string]metric.BoundInt64Counter) {
	boundCounters = make(map[string]metric.BoundInt64Counter)

	nGetUserInfoCounter := []rune("MemberInfoFinder_GetUserInfo_" + suffix)
	nGetUserInfoCounter[0] = unicode.ToLower(nGetUserInfoCounter[0])
	cGetUserInfo := meter.NewInt64Counter(string(nGetUserInfoCounter), metric.WithKeys(key.New("name")))
	boundCounters["GetUserInfo"] = cGetUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	return boundCounters
}

// GetUserInfo implements MemberInfoFinder
func (_d MemberInfoFinderWithTelemetry) GetUserInfo(userID string) (user *slack.User, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["GetUserInfo"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["GetUserInfo"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["GetUserInfo"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.GetUserInfo(userID)
}
