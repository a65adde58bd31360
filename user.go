package pairup

import (
	"fmt"

	"github.com/hashicorp/golang-lru"
	"github.com/nlopes/slack"
	"github.com/pairupbot/pairup/config"
	"github.com/spf13/viper"
)

const (
	memberInfoCacheDisabledValue = 0
)

// MemberInfoFinder defines the interface for finding a slack member's info
type MemberInfoFinder interface {
	GetUserInfo(userID string) (user *slack.User, err error)
}

// selfInfoFinder defines the interface for finding our (the pairup instance) user and team info
type selfInfoFinder interface {
	GetInfo() (info *slack.Info)
}

// cachingMemberInfoFinder holds a cache and a loading MemberInfoFinder to implement the MemberInfoFinder loading entries from cache
type cachingMemberInfoFinder struct {
	loader            MemberInfoFinder
	logger            SLogger
	memberProfileCache *lru.ARCCache
}

// NewCachingMemberInfoFinder creates a new member info service with caching if enabled via config.UserInfoCacheSizeKey. It requires an implementation
// of the interface that will do the actual loading when not in cache
func NewCachingMemberInfoFinder(v *viper.Viper, loader MemberInfoFinder, logger SLogger) (mf MemberInfoFinder, err error) {
	cmf := new(cachingMemberInfoFinder)

	cs := v.GetInt(config.UserInfoCacheSizeKey)

	if cs > memberInfoCacheDisabledValue {
		cmf.memberProfileCache, err = lru.NewARC(cs)
		if err != nil {
			return nil, err
		}
	}

	cmf.loader = loader
	cmf.logger = logger

	return cmf, nil
}

// GetUserInfo gets the member info or returns an error and a nil user if not found or
// an error occurred during retrieval
func (c cachingMemberInfoFinder) GetUserInfo(userID string) (u *slack.User, err error) {
	if c.memberProfileCache == nil {
		c.logger.Debugf("Cache disabled, loading member info for [%s] from slack instead\n", userID)
		u, err := c.loader.GetUserInfo(userID)
		if err != nil {
			return nil, err
		}

		return u, nil
	}

	if memberProfile, exists := c.memberProfileCache.Get(userID); exists {
		c.logger.Debugf("Member info in cache [%s] so using that\n", userID)

		memberProfile, ok := memberProfile.(slack.User)
		if !ok {
			return nil, fmt.Errorf("Error converting cached value for user id [%s]: %v", userID, err)
		}

		return &memberProfile, nil
	}

	c.logger.Debugf("Member info for [%s] not found in cache, retrieving from slack and saving\n", userID)
	u, err = c.loader.GetUserInfo(userID)
	if err != nil {
		return nil, err
	}

	c.memberProfileCache.Add(userID, *u)

	return u, nil
}
