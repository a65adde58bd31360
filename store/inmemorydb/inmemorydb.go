package inmemorydb

import (
	"sync"

	"github.com/pairupbot/pairup/store"
)

// InMemoryDB implements the pairup store.Storer interface with plain
// in-memory maps. When wrapping a persistent Storer, writes go through to it
// and user reads fall back to it on a cache miss
type InMemoryDB struct {
	mu               sync.RWMutex
	persistentStorer store.Storer
	teams            map[string]store.TeamInstallInfo
	users            map[string]store.UserInfo
}

// New returns a new standalone InMemoryDB holding everything in memory only
func New() (imdb *InMemoryDB) {
	imdb = new(InMemoryDB)
	imdb.teams = make(map[string]store.TeamInstallInfo)
	imdb.users = make(map[string]store.UserInfo)

	return imdb
}

// NewWithWriteThrough returns a new InMemoryDB wrapping the persistent
// Storer. The installed teams are loaded upfront so instantiation might have
// some latency induced by the initial listing; user records are loaded
// lazily on first read
func NewWithWriteThrough(storer store.Storer) (imdb *InMemoryDB, err error) {
	imdb = New()
	imdb.persistentStorer = storer

	teams, err := storer.ListInstalledTeams()
	if err != nil {
		return nil, err
	}

	for _, t := range teams {
		imdb.teams[t.ID] = t
	}

	return imdb, nil
}

// SetInstallStatus upserts or deletes the team record in memory, writing
// through to the persistent storer first when one is wrapped
func (imdb *InMemoryDB) SetInstallStatus(team store.TeamInstallInfo, installed bool) (err error) {
	if imdb.persistentStorer != nil {
		if err = imdb.persistentStorer.SetInstallStatus(team, installed); err != nil {
			return err
		}
	}

	imdb.mu.Lock()
	defer imdb.mu.Unlock()

	if installed {
		imdb.teams[team.ID] = team
	} else {
		delete(imdb.teams, team.ID)
	}

	return nil
}

// ListInstalledTeams returns a copy of the in-memory team records
func (imdb *InMemoryDB) ListInstalledTeams() (teams []store.TeamInstallInfo, err error) {
	imdb.mu.RLock()
	defer imdb.mu.RUnlock()

	teams = make([]store.TeamInstallInfo, 0, len(imdb.teams))
	for _, t := range imdb.teams {
		teams = append(teams, t)
	}

	return teams, nil
}

// GetInstalledTeam returns the team record for the given id or nil if absent
func (imdb *InMemoryDB) GetInstalledTeam(teamID string) (team *store.TeamInstallInfo, err error) {
	imdb.mu.RLock()
	defer imdb.mu.RUnlock()

	if t, ok := imdb.teams[teamID]; ok {
		return &t, nil
	}

	return nil, nil
}

// GetUserInfo returns the user record for the given id or nil if absent. On
// a miss with a wrapped persistent storer, the record is loaded from it and
// cached
func (imdb *InMemoryDB) GetUserInfo(userID string) (user *store.UserInfo, err error) {
	imdb.mu.RLock()
	u, ok := imdb.users[userID]
	imdb.mu.RUnlock()

	if ok {
		return &u, nil
	}

	if imdb.persistentStorer == nil {
		return nil, nil
	}

	user, err = imdb.persistentStorer.GetUserInfo(userID)
	if err != nil || user == nil {
		return nil, err
	}

	imdb.mu.Lock()
	imdb.users[user.ID] = *user
	imdb.mu.Unlock()

	return user, nil
}

// GetAllUsersOptInStatus returns the opt-in flag of every known user keyed
// by user id. With a wrapped persistent storer the projection comes from it
// since memory might only hold a subset of the users
func (imdb *InMemoryDB) GetAllUsersOptInStatus() (optInStatuses map[string]bool, err error) {
	if imdb.persistentStorer != nil {
		return imdb.persistentStorer.GetAllUsersOptInStatus()
	}

	imdb.mu.RLock()
	defer imdb.mu.RUnlock()

	optInStatuses = make(map[string]bool)
	for id, u := range imdb.users {
		optInStatuses[id] = u.OptedIn
	}

	return optInStatuses, nil
}

// SetUserInfo builds a full user record from the given values and upserts it
func (imdb *InMemoryDB) SetUserInfo(tenantID string, userID string, optedIn bool, serviceURL string) (err error) {
	return imdb.UpdateUserInfo(store.UserInfo{ID: userID, TenantID: tenantID, ServiceURL: serviceURL, OptedIn: optedIn})
}

// UpdateUserInfo upserts the given user record as-is, writing through to the
// persistent storer first when one is wrapped
func (imdb *InMemoryDB) UpdateUserInfo(user store.UserInfo) (err error) {
	if imdb.persistentStorer != nil {
		if err = imdb.persistentStorer.UpdateUserInfo(user); err != nil {
			return err
		}
	}

	imdb.mu.Lock()
	defer imdb.mu.Unlock()

	imdb.users[user.ID] = user
	return nil
}

// Close closes the underlying storer if one is wrapped
func (imdb *InMemoryDB) Close() (err error) {
	if imdb.persistentStorer != nil {
		return imdb.persistentStorer.Close()
	}

	return nil
}
