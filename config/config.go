// Package config supports the configuration of a pairup instance
package config

import (
	"time"

	"github.com/pairupbot/pairup/schedule"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	TokenKey             = "token"             // Slack bot token
	DebugKey             = "debug"             // Debug mode
	TimeLocationKey      = "timeLocation"      // Time Location as understood by time.LoadLocation
	UserInfoCacheSizeKey = "userInfoCacheSize" // Number of entries in the user info cache, int value. Defaults to no caching (0 value)
	MaxRecentPairupsKey  = "maxRecentPairups"  // Number of past pairups kept on each user record, int value

	// Storage keys
	StorageBackendKey         = "storage.backend"         // One of "dynamodb" or "leveldb"
	StoragePathKey            = "storage.path"            // Directory of the leveldb database files
	StorageEndpointKey        = "storage.endpoint"        // Optional dynamodb endpoint override (i.e. a local emulator)
	StorageRegionKey          = "storage.region"          // AWS region of the dynamodb tables
	StorageDatabaseKey        = "storage.database"        // Logical database name, prefixed to table names
	StorageTeamsTableKey      = "storage.teamsTable"      // Name of the teams table
	StorageUsersTableKey      = "storage.usersTable"      // Name of the users table
	StorageAccessKeyIDKey     = "storage.accessKeyId"     // AWS access key id
	StorageSecretAccessKeyKey = "storage.secretAccessKey" // AWS secret access key
	StorageWriteCacheKey      = "storage.writeCache"      // Keep a write-through in-memory copy of the records, bool value

	// Pairing round schedule keys
	PairingIntervalKey = "pairing.interval" // Interval of the pairing schedule, uint64 value
	PairingWeekdayKey  = "pairing.weekday"  // Day of the week pairing rounds run on (i.e. "Monday")
	PairingAtTimeKey   = "pairing.atTime"   // Time of day pairing rounds run at (i.e. "10:00")
)

// Default values
const (
	debugDefault             = false
	timeLocationDefault      = "Local"
	userInfoCacheSizeDefault = 0
	maxRecentPairupsDefault  = 5
	storageBackendDefault    = "leveldb"
	storageRegionDefault     = "us-east-1"
	storageDatabaseDefault   = "pairup"
	teamsTableDefault        = "teams"
	usersTableDefault        = "users"
	storageWriteCacheDefault = false
	pairingIntervalDefault   = 1
	pairingWeekdayDefault    = "Monday"
	pairingAtTimeDefault     = "10:00"
)

// NewViperWithDefaults creates a new viper instance with defaults set on it
func NewViperWithDefaults() (v *viper.Viper) {
	v = viper.New()
	v.SetDefault(DebugKey, debugDefault)
	v.SetDefault(TimeLocationKey, timeLocationDefault)
	v.SetDefault(UserInfoCacheSizeKey, userInfoCacheSizeDefault)
	v.SetDefault(MaxRecentPairupsKey, maxRecentPairupsDefault)
	v.SetDefault(StorageBackendKey, storageBackendDefault)
	v.SetDefault(StorageRegionKey, storageRegionDefault)
	v.SetDefault(StorageDatabaseKey, storageDatabaseDefault)
	v.SetDefault(StorageTeamsTableKey, teamsTableDefault)
	v.SetDefault(StorageUsersTableKey, usersTableDefault)
	v.SetDefault(StorageWriteCacheKey, storageWriteCacheDefault)
	v.SetDefault(PairingIntervalKey, pairingIntervalDefault)
	v.SetDefault(PairingWeekdayKey, pairingWeekdayDefault)
	v.SetDefault(PairingAtTimeKey, pairingAtTimeDefault)

	return v
}

// GetTimeLocation reads the TimeLocationKey and parses it into a time.Location
func GetTimeLocation(v *viper.Viper) (timeLoc *time.Location, err error) {
	timeLocationValue := v.GetString(TimeLocationKey)

	timeLoc, err = time.LoadLocation(timeLocationValue)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing time location [%s]", timeLocationValue)
	}

	return timeLoc, nil
}

// GetPairingSchedule assembles the schedule of pairing rounds from the
// pairing configuration keys
func GetPairingSchedule(v *viper.Viper) (sd schedule.Definition) {
	return schedule.Definition{
		Interval: cast.ToUint64(v.Get(PairingIntervalKey)),
		Unit:     schedule.Weeks,
		Weekday:  v.GetString(PairingWeekdayKey),
		AtTime:   v.GetString(PairingAtTimeKey),
	}
}
