// Package mocks contains a mock of the store package interfaces
package mocks

import (
	"github.com/pairupbot/pairup/store"
	"github.com/stretchr/testify/mock"
)

// Storer holds a mock implementing store.Storer
type Storer struct {
	mock.Mock
}

// SetInstallStatus mocks an implementation of SetInstallStatus
func (ms *Storer) SetInstallStatus(team store.TeamInstallInfo, installed bool) (err error) {
	args := ms.Called(team, installed)

	return args.Error(0)
}

// ListInstalledTeams mocks an implementation of ListInstalledTeams
func (ms *Storer) ListInstalledTeams() (teams []store.TeamInstallInfo, err error) {
	args := ms.Called()

	return args.Get(0).([]store.TeamInstallInfo), args.Error(1)
}

// GetInstalledTeam mocks an implementation of GetInstalledTeam
func (ms *Storer) GetInstalledTeam(teamID string) (team *store.TeamInstallInfo, err error) {
	args := ms.Called(teamID)

	if t := args.Get(0); t != nil {
		team = t.(*store.TeamInstallInfo)
	}

	return team, args.Error(1)
}

// GetUserInfo mocks an implementation of GetUserInfo
func (ms *Storer) GetUserInfo(userID string) (user *store.UserInfo, err error) {
	args := ms.Called(userID)

	if u := args.Get(0); u != nil {
		user = u.(*store.UserInfo)
	}

	return user, args.Error(1)
}

// GetAllUsersOptInStatus mocks an implementation of GetAllUsersOptInStatus
func (ms *Storer) GetAllUsersOptInStatus() (optInStatuses map[string]bool, err error) {
	args := ms.Called()

	if s := args.Get(0); s != nil {
		optInStatuses = s.(map[string]bool)
	}

	return optInStatuses, args.Error(1)
}

// SetUserInfo mocks an implementation of SetUserInfo
func (ms *Storer) SetUserInfo(tenantID string, userID string, optedIn bool, serviceURL string) (err error) {
	args := ms.Called(tenantID, userID, optedIn, serviceURL)

	return args.Error(0)
}

// UpdateUserInfo mocks an implementation of UpdateUserInfo
func (ms *Storer) UpdateUserInfo(user store.UserInfo) (err error) {
	args := ms.Called(user)

	return args.Error(0)
}

// Close mocks an implementation of Close
func (ms *Storer) Close() (err error) {
	args := ms.Called()

	return args.Error(0)
}
