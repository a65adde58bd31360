package config_test

import (
	"testing"
	"time"

	"github.com/pairupbot/pairup/config"
	"github.com/pairupbot/pairup/schedule"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewWithDefault(t *testing.T) {
	v := config.NewViperWithDefaults()

	assert.Equal(t, false, v.GetBool(config.DebugKey), "%s should be %t", config.DebugKey, false)
	assert.Equal(t, "Local", v.GetString(config.TimeLocationKey), "%s should be %s", config.TimeLocationKey, "Local")
	assert.Equal(t, 0, v.GetInt(config.UserInfoCacheSizeKey), "%s should be %d", config.UserInfoCacheSizeKey, 0)
	assert.Equal(t, 5, v.GetInt(config.MaxRecentPairupsKey), "%s should be %d", config.MaxRecentPairupsKey, 5)
	assert.Equal(t, "leveldb", v.GetString(config.StorageBackendKey), "%s should be %s", config.StorageBackendKey, "leveldb")
	assert.Equal(t, "us-east-1", v.GetString(config.StorageRegionKey), "%s should be %s", config.StorageRegionKey, "us-east-1")
	assert.Equal(t, "pairup", v.GetString(config.StorageDatabaseKey), "%s should be %s", config.StorageDatabaseKey, "pairup")
	assert.Equal(t, "teams", v.GetString(config.StorageTeamsTableKey), "%s should be %s", config.StorageTeamsTableKey, "teams")
	assert.Equal(t, "users", v.GetString(config.StorageUsersTableKey), "%s should be %s", config.StorageUsersTableKey, "users")
}

func TestGetTimeLocationWithDefault(t *testing.T) {
	v := viper.New()
	v.Set(config.TimeLocationKey, "Local")

	timeLoc, err := config.GetTimeLocation(v)

	assert.Nil(t, err)
	if assert.NotNil(t, timeLoc) {
		assert.Conditionf(t, func() bool { return timeLoc.String() == "Local" || timeLoc.String() == "UTC" }, "timeLoc should be either Local or UTC but was %s", timeLoc.String())
	}
}

func TestGetTimeLocationWithTimezoneId(t *testing.T) {
	v := viper.New()
	v.Set(config.TimeLocationKey, "America/Los_Angeles")

	timeLoc, err := config.GetTimeLocation(v)

	assert.Nil(t, err)
	if assert.NotNil(t, timeLoc) {
		assert.Equal(t, "America/Los_Angeles", timeLoc.String())
	}
}

func TestGetTimeLocationWithInvalidValue(t *testing.T) {
	v := viper.New()
	v.Set(config.TimeLocationKey, "invalid")

	_, err := config.GetTimeLocation(v)

	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "invalid")
	}
}

func TestGetPairingScheduleWithDefaults(t *testing.T) {
	v := config.NewViperWithDefaults()

	sd := config.GetPairingSchedule(v)

	assert.Equal(t, schedule.Definition{Interval: 1, Unit: schedule.Weeks, Weekday: time.Monday.String(), AtTime: "10:00"}, sd)
}

func TestGetPairingScheduleWithOverrides(t *testing.T) {
	v := config.NewViperWithDefaults()
	v.Set(config.PairingIntervalKey, 2)
	v.Set(config.PairingWeekdayKey, time.Friday.String())
	v.Set(config.PairingAtTimeKey, "16:00")

	sd := config.GetPairingSchedule(v)

	assert.Equal(t, schedule.Definition{Interval: 2, Unit: schedule.Weeks, Weekday: time.Friday.String(), AtTime: "16:00"}, sd)
}
