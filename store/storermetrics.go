package store

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using ../opentelemetry.template template

//go:generate gowrap gen -p github.com/pairupbot/pairup/store -i Storer -t ../opentelemetry.template -o storermetrics.go

import (
	"context"
	"time"
	"unicode"

	"go.opentelemetry.io/otel/api/key"
	"go.opentelemetry.io/otel/api/metric"
)

// StorerWithTelemetry implements Storer interface with all methods wrapped
// with open telemetry metrics
type StorerWithTelemetry struct {
	base               Storer
	methodCounters     map[string]metric.BoundInt64Counter
	errCounters        map[string]metric.BoundInt64Counter
	methodTimeMeasures map[string]metric.BoundInt64Measure
}

// NewStorerWithTelemetry returns an instance of the Storer decorated with open telemetry timing and count metrics
func NewStorerWithTelemetry(base Storer, name string, meter metric.Meter) StorerWithTelemetry {
	return StorerWithTelemetry{
		base:               base,
		methodCounters:     newStorerMethodCounters("Calls", name, meter),
		errCounters:        newStorerMethodCounters("Errors", name, meter),
		methodTimeMeasures: newStorerMethodTimeMeasures(name, meter),
	}
}

func newStorerMethodTimeMeasures(appName string, meter metric.Meter) (boundTimeMeasures map[string]metric.BoundInt64Measure) {
	boundTimeMeasures = make(map[string]metric.BoundInt64Measure)

	nCloseMeasure := []rune("Storer_Close_ProcessingTimeMillis")
	nCloseMeasure[0] = unicode.ToLower(nCloseMeasure[0])
	mClose := meter.NewInt64Measure(string(nCloseMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["Close"] = mClose.Bind(meter.Labels(key.New("name").String(appName)))

	nGetAllUsersOptInStatusMeasure := []rune("Storer_GetAllUsersOptInStatus_ProcessingTimeMillis")
	nGetAllUsersOptInStatusMeasure[0] = unicode.ToLower(nGetAllUsersOptInStatusMeasure[0])
	mGetAllUsersOptInStatus := meter.NewInt64Measure(string(nGetAllUsersOptInStatusMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["GetAllUsersOptInStatus"] = mGetAllUsersOptInStatus.Bind(meter.Labels(key.New("name").String(appName)))

	nGetInstalledTeamMeasure := []rune("Storer_GetInstalledTeam_ProcessingTimeMillis")
	nGetInstalledTeamMeasure[0] = unicode.ToLower(nGetInstalledTeamMeasure[0])
	mGetInstalledTeam := meter.NewInt64Measure(string(nGetInstalledTeamMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["GetInstalledTeam"] = mGetInstalledTeam.Bind(meter.Labels(key.New("name").String(appName)))

	nGetUserInfoMeasure := []rune("Storer_GetUserInfo_ProcessingTimeMillis")
	nGetUserInfoMeasure[0] = unicode.ToLower(nGetUserInfoMeasure[0])
	mGetUserInfo := meter.NewInt64Measure(string(nGetUserInfoMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["GetUserInfo"] = mGetUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	nListInstalledTeamsMeasure := []rune("Storer_ListInstalledTeams_ProcessingTimeMillis")
	nListInstalledTeamsMeasure[0] = unicode.ToLower(nListInstalledTeamsMeasure[0])
	mListInstalledTeams := meter.NewInt64Measure(string(nListInstalledTeamsMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["ListInstalledTeams"] = mListInstalledTeams.Bind(meter.Labels(key.New("name").String(appName)))

	nSetInstallStatusMeasure := []rune("Storer_SetInstallStatus_ProcessingTimeMillis")
	nSetInstallStatusMeasure[0] = unicode.ToLower(nSetInstallStatusMeasure[0])
	mSetInstallStatus := meter.NewInt64Measure(string(nSetInstallStatusMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["SetInstallStatus"] = mSetInstallStatus.Bind(meter.Labels(key.New("name").String(appName)))

	nSetUserInfoMeasure := []rune("Storer_SetUserInfo_ProcessingTimeMillis")
	nSetUserInfoMeasure[0] = unicode.ToLower(nSetUserInfoMeasure[0])
	mSetUserInfo := meter.NewInt64Measure(string(nSetUserInfoMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["SetUserInfo"] = mSetUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	nUpdateUserInfoMeasure := []rune("Storer_UpdateUserInfo_ProcessingTimeMillis")
	nUpdateUserInfoMeasure[0] = unicode.ToLower(nUpdateUserInfoMeasure[0])
	mUpdateUserInfo := meter.NewInt64Measure(string(nUpdateUserInfoMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["UpdateUserInfo"] = mUpdateUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	return boundTimeMeasures
}

func newStorerMethodCounters(suffix string, appName string, meter metric.Meter) (boundCounters map[string]metric.BoundInt64Counter) {
	boundCounters = make(map[string]metric.BoundInt64Counter)

	nCloseCounter := []rune("Storer_Close_" + suffix)
	nCloseCounter[0] = unicode.ToLower(nCloseCounter[0])
	cClose := meter.NewInt64Counter(string(nCloseCounter), metric.WithKeys(key.New("name")))
	boundCounters["Close"] = cClose.Bind(meter.Labels(key.New("name").String(appName)))

	nGetAllUsersOptInStatusCounter := []rune("Storer_GetAllUsersOptInStatus_" + suffix)
	nGetAllUsersOptInStatusCounter[0] = unicode.ToLower(nGetAllUsersOptInStatusCounter[0])
	cGetAllUsersOptInStatus := meter.NewInt64Counter(string(nGetAllUsersOptInStatusCounter), metric.WithKeys(key.New("name")))
	boundCounters["GetAllUsersOptInStatus"] = cGetAllUsersOptInStatus.Bind(meter.Labels(key.New("name").String(appName)))

	nGetInstalledTeamCounter := []rune("Storer_GetInstalledTeam_" + suffix)
	nGetInstalledTeamCounter[0] = unicode.ToLower(nGetInstalledTeamCounter[0])
	cGetInstalledTeam := meter.NewInt64Counter(string(nGetInstalledTeamCounter), metric.WithKeys(key.New("name")))
	boundCounters["GetInstalledTeam"] = cGetInstalledTeam.Bind(meter.Labels(key.New("name").String(appName)))

	nGetUserInfoCounter := []rune("Storer_GetUserInfo_" + suffix)
	nGetUserInfoCounter[0] = unicode.ToLower(nGetUserInfoCounter[0])
	cGetUserInfo := meter.NewInt64Counter(string(nGetUserInfoCounter), metric.WithKeys(key.New("name")))
	boundCounters["GetUserInfo"] = cGetUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	nListInstalledTeamsCounter := []rune("Storer_ListInstalledTeams_" + suffix)
	nListInstalledTeamsCounter[0] = unicode.ToLower(nListInstalledTeamsCounter[0])
	cListInstalledTeams := meter.NewInt64Counter(string(nListInstalledTeamsCounter), metric.WithKeys(key.New("name")))
	boundCounters["ListInstalledTeams"] = cListInstalledTeams.Bind(meter.Labels(key.New("name").String(appName)))

	nSetInstallStatusCounter := []rune("Storer_SetInstallStatus_" + suffix)
	nSetInstallStatusCounter[0] = unicode.ToLower(nSetInstallStatusCounter[0])
	cSetInstallStatus := meter.NewInt64Counter(string(nSetInstallStatusCounter), metric.WithKeys(key.New("name")))
	boundCounters["SetInstallStatus"] = cSetInstallStatus.Bind(meter.Labels(key.New("name").String(appName)))

	nSetUserInfoCounter := []rune("Storer_SetUserInfo_" + suffix)
	nSetUserInfoCounter[0] = unicode.ToLower(nSetUserInfoCounter[0])
	cSetUserInfo := meter.NewInt64Counter(string(nSetUserInfoCounter), metric.WithKeys(key.New("name")))
	boundCounters["SetUserInfo"] = cSetUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	nUpdateUserInfoCounter := []rune("Storer_UpdateUserInfo_" + suffix)
	nUpdateUserInfoCounter[0] = unicode.ToLower(nUpdateUserInfoCounter[0])
	cUpdateUserInfo := meter.NewInt64Counter(string(nUpdateUserInfoCounter), metric.WithKeys(key.New("name")))
	boundCounters["UpdateUserInfo"] = cUpdateUserInfo.Bind(meter.Labels(key.New("name").String(appName)))

	return boundCounters
}

// Close implements Storer
func (_d StorerWithTelemetry) Close() (err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["Close"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["Close"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["Close"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.Close()
}

// GetAllUsersOptInStatus implements Storer
func (_d StorerWithTelemetry) GetAllUsersOptInStatus() (optInStatuses map[string]bool, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["GetAllUsersOptInStatus"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["GetAllUsersOptInStatus"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["GetAllUsersOptInStatus"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.GetAllUsersOptInStatus()
}

// GetInstalledTeam implements Storer
func (_d StorerWithTelemetry) GetInstalledTeam(teamID string) (team *TeamInstallInfo, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["GetInstalledTeam"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["GetInstalledTeam"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["GetInstalledTeam"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.GetInstalledTeam(teamID)
}

// GetUserInfo implements Storer
func (_d StorerWithTelemetry) GetUserInfo(userID string) (user *UserInfo, err error) {
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

// ListInstalledTeams implements Storer
func (_d StorerWithTelemetry) ListInstalledTeams() (teams []TeamInstallInfo, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["ListInstalledTeams"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["ListInstalledTeams"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["ListInstalledTeams"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.ListInstalledTeams()
}

// SetInstallStatus implements Storer
func (_d StorerWithTelemetry) SetInstallStatus(team TeamInstallInfo, installed bool) (err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["SetInstallStatus"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["SetInstallStatus"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["SetInstallStatus"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.SetInstallStatus(team, installed)
}

// SetUserInfo implements Storer
func (_d StorerWithTelemetry) SetUserInfo(tenantID string, userID string, optedIn bool, serviceURL string) (err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["SetUserInfo"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["SetUserInfo"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["SetUserInfo"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.SetUserInfo(tenantID, userID, optedIn, serviceURL)
}

// UpdateUserInfo implements Storer
func (_d StorerWithTelemetry) UpdateUserInfo(user UserInfo) (err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["UpdateUserInfo"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["UpdateUserInfo"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["UpdateUserInfo"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.UpdateUserInfo(user)
}
