package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	leveldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Key prefixes for the two logical collections held in a single leveldb
const (
	teamsPrefix = "teams/"
	usersPrefix = "users/"
)

// LevelDB is a local Storer backed by a leveldb database. Records are kept
// as JSON values under the teams/ and users/ key prefixes. It is meant for
// development and small self-hosted deployments; managed deployments use
// store/dynamodb instead
type LevelDB struct {
	Name     string
	database *leveldb.DB
}

// NewLevelDB instantiates and opens a new LevelDB instance. If the
// leveldb database doesn't exist, one is created
func NewLevelDB(name string, storagePath string) (ldb *LevelDB, err error) {
	// Expand '~' as the full home directory path if appropriate
	path, err := homedir.Expand(storagePath)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(path, name)
	db, err := leveldb.OpenFile(fullPath, nil)

	if _, ok := err.(*leveldberrors.ErrCorrupted); ok {
		return nil, errors.Wrap(err, fmt.Sprintf("leveldb corrupted. Consider deleting [%s] and restarting if you don't mind losing data", fullPath))
	} else if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to open file with path [%s]", fullPath))
	}

	return &LevelDB{name, db}, nil
}

// Close closes the LevelDB
func (ldb *LevelDB) Close() (err error) {
	return ldb.database.Close()
}

// SetInstallStatus upserts the team record when installed is true and
// deletes it otherwise
func (ldb *LevelDB) SetInstallStatus(team TeamInstallInfo, installed bool) (err error) {
	k := []byte(teamsPrefix + team.ID)

	if !installed {
		return ldb.database.Delete(k, nil)
	}

	v, err := json.Marshal(team)
	if err != nil {
		return errors.Wrapf(err, "failed to encode team [%s]", team.ID)
	}

	return ldb.database.Put(k, v, nil)
}

// ListInstalledTeams returns every stored team record
func (ldb *LevelDB) ListInstalledTeams() (teams []TeamInstallInfo, err error) {
	teams = make([]TeamInstallInfo, 0)

	iter := ldb.database.NewIterator(util.BytesPrefix([]byte(teamsPrefix)), nil)
	for iter.Next() {
		var t TeamInstallInfo
		if err = json.Unmarshal(iter.Value(), &t); err != nil {
			iter.Release()
			return nil, errors.Wrapf(err, "failed to decode team record [%s]", string(iter.Key()))
		}

		teams = append(teams, t)
	}

	iter.Release()
	return teams, iter.Error()
}

// GetInstalledTeam returns the team record for the given id or nil if absent
func (ldb *LevelDB) GetInstalledTeam(teamID string) (team *TeamInstallInfo, err error) {
	v, err := ldb.database.Get([]byte(teamsPrefix+teamID), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	t := new(TeamInstallInfo)
	if err = json.Unmarshal(v, t); err != nil {
		return nil, errors.Wrapf(err, "failed to decode team record [%s]", teamID)
	}

	return t, nil
}

// GetUserInfo returns the user record for the given id or nil if absent
func (ldb *LevelDB) GetUserInfo(userID string) (user *UserInfo, err error) {
	v, err := ldb.database.Get([]byte(usersPrefix+userID), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	u := new(UserInfo)
	if err = json.Unmarshal(v, u); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user record [%s]", userID)
	}

	return u, nil
}

// GetAllUsersOptInStatus returns the opt-in flag of every known user keyed
// by user id
func (ldb *LevelDB) GetAllUsersOptInStatus() (optInStatuses map[string]bool, err error) {
	optInStatuses = make(map[string]bool)

	iter := ldb.database.NewIterator(util.BytesPrefix([]byte(usersPrefix)), nil)
	for iter.Next() {
		var u UserInfo
		if err = json.Unmarshal(iter.Value(), &u); err != nil {
			iter.Release()
			return nil, errors.Wrapf(err, "failed to decode user record [%s]", strings.TrimPrefix(string(iter.Key()), usersPrefix))
		}

		optInStatuses[u.ID] = u.OptedIn
	}

	iter.Release()
	return optInStatuses, iter.Error()
}

// SetUserInfo builds a full user record from the given values and upserts it
func (ldb *LevelDB) SetUserInfo(tenantID string, userID string, optedIn bool, serviceURL string) (err error) {
	return ldb.UpdateUserInfo(UserInfo{ID: userID, TenantID: tenantID, ServiceURL: serviceURL, OptedIn: optedIn})
}

// UpdateUserInfo upserts the given user record as-is
func (ldb *LevelDB) UpdateUserInfo(user UserInfo) (err error) {
	v, err := json.Marshal(user)
	if err != nil {
		return errors.Wrapf(err, "failed to encode user [%s]", user.ID)
	}

	return ldb.database.Put([]byte(usersPrefix+user.ID), v, nil)
}
