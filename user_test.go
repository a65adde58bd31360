package pairup_test

import (
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/nlopes/slack"
	"github.com/pairupbot/pairup"
	"github.com/pairupbot/pairup/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

type memberInfoLoader struct {
	fail      bool
	loadCount int
}

func (m *memberInfoLoader) GetUserInfo(userID string) (user *slack.User, err error) {
	m.loadCount = m.loadCount + 1

	if m.fail {
		return nil, fmt.Errorf("Error loading user [%s]", userID)
	}

	return &slack.User{ID: userID, Name: "Daniel Quinn"}, nil
}

func newTestSLogger() pairup.SLogger {
	var logBuilder strings.Builder
	return pairup.NewSLogger(log.New(&logBuilder, "", 0), false)
}

func TestNewCachingMemberInfoFinderWithInvalidSize(t *testing.T) {
	v := viper.New()
	v.Set(config.UserInfoCacheSizeKey, -1)

	_, err := pairup.NewCachingMemberInfoFinder(v, &memberInfoLoader{}, newTestSLogger())
	assert.NotNil(t, err)
}

func TestGetMemberWithCacheDisabled(t *testing.T) {
	v := viper.New()
	v.Set(config.UserInfoCacheSizeKey, 0)

	loader := memberInfoLoader{}

	mf, err := pairup.NewCachingMemberInfoFinder(v, &loader, newTestSLogger())
	if assert.Nil(t, err) {
		user, err := mf.GetUserInfo("little-blue")
		assert.Nil(t, err)

		if assert.NotNil(t, user) {
			assert.Equal(t, slack.User{ID: "little-blue", Name: "Daniel Quinn"}, *user)
		}

		mf.GetUserInfo("little-blue")
		assert.Equal(t, 2, loader.loadCount)
	}
}

func TestGetMemberServedFromCacheOnSecondLoad(t *testing.T) {
	v := viper.New()
	v.Set(config.UserInfoCacheSizeKey, 10)

	loader := memberInfoLoader{}

	mf, err := pairup.NewCachingMemberInfoFinder(v, &loader, newTestSLogger())
	if assert.Nil(t, err) {
		_, err := mf.GetUserInfo("little-blue")
		assert.Nil(t, err)

		user, err := mf.GetUserInfo("little-blue")
		assert.Nil(t, err)

		if assert.NotNil(t, user) {
			assert.Equal(t, slack.User{ID: "little-blue", Name: "Daniel Quinn"}, *user)
		}

		assert.Equal(t, 1, loader.loadCount)
	}
}

func TestGetMemberFailToLoad(t *testing.T) {
	v := viper.New()
	v.Set(config.UserInfoCacheSizeKey, 1)

	mf, err := pairup.NewCachingMemberInfoFinder(v, &memberInfoLoader{fail: true}, newTestSLogger())
	if assert.Nil(t, err) {
		_, err := mf.GetUserInfo("little-blue")
		assert.NotNil(t, err)
	}
}
