package store_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pairupbot/pairup/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The persisted field names are part of the storage contract so a rename in
// the Go structs must not leak into the serialized form
func TestPersistedTeamFieldNames(t *testing.T) {
	team := store.TeamInstallInfo{ID: "C1", TenantID: "T1", ServiceURL: "https://acme.slack.com", InstallerName: "roger"}

	encoded, err := json.Marshal(team)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &fields))

	assert.Equal(t, map[string]interface{}{
		"id":            "C1",
		"tenantId":      "T1",
		"serviceUrl":    "https://acme.slack.com",
		"installerName": "roger",
	}, fields)
}

func TestPersistedUserFieldNames(t *testing.T) {
	user := store.UserInfo{ID: "U1", TenantID: "T1", ServiceURL: "https://acme.slack.com", OptedIn: true,
		RecentPairups: []store.PairUp{{UserID: "U2", PairedAt: time.Date(2020, time.March, 9, 10, 0, 0, 0, time.UTC)}}}

	encoded, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &fields))

	assert.ElementsMatch(t, []string{"id", "tenantId", "serviceUrl", "optedIn", "recentPairups"}, keysOf(fields))
	assert.Equal(t, true, fields["optedIn"])
}

func keysOf(m map[string]interface{}) (keys []string) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}
