// Package store defines the pairup records and storage interfaces along with
// a local leveldb-backed implementation. Managed document-store backends live
// in subpackages (see store/dynamodb) and an in-memory implementation suited
// for tests and local runs lives in store/inmemorydb.
package store

import (
	"io"
	"time"
)

// TeamInstallInfo holds the installation record for one team (a channel the
// bot has been invited to). The record is written whole on install, replaced
// whole on reinstall and deleted on uninstall. There is no soft-delete and no
// history
type TeamInstallInfo struct {
	// ID is the team identifier and the record's partition key. It is stable
	// for the lifetime of the installation
	ID string `json:"id" dynamodbav:"id"`

	// TenantID identifies the owning organization (the workspace). It is
	// immutable after creation
	TenantID string `json:"tenantId" dynamodbav:"tenantId"`

	// ServiceURL is the callback endpoint for outbound messages to that team.
	// It may be refreshed on reinstall
	ServiceURL string `json:"serviceUrl" dynamodbav:"serviceUrl"`

	// InstallerName is the display name of the installing user. Optional and
	// set at creation only
	InstallerName string `json:"installerName,omitempty" dynamodbav:"installerName,omitempty"`
}

// PairUp is one prior pairing partner entry kept on a UserInfo record
type PairUp struct {
	UserID   string    `json:"userId" dynamodbav:"userId"`
	PairedAt time.Time `json:"pairedAt" dynamodbav:"pairedAt"`
}

// UserInfo holds the record for one user known to the bot. Records are
// created or fully overwritten whenever the user's opt-in status or service
// URL changes and are never deleted
type UserInfo struct {
	// ID is the platform-scoped user identifier and the record's partition key
	ID string `json:"id" dynamodbav:"id"`

	// TenantID identifies the owning organization (the workspace)
	TenantID string `json:"tenantId" dynamodbav:"tenantId"`

	// ServiceURL is the callback endpoint for direct messages to that user
	ServiceURL string `json:"serviceUrl" dynamodbav:"serviceUrl"`

	// OptedIn indicates whether the user currently participates in pairing
	OptedIn bool `json:"optedIn" dynamodbav:"optedIn"`

	// RecentPairups is the ordered list of prior partners, most recent last.
	// It is maintained by the matchmaker but not consulted for match avoidance
	RecentPairups []PairUp `json:"recentPairups,omitempty" dynamodbav:"recentPairups,omitempty"`
}

// InstallationStorer is implemented by storage backends holding the team
// installation records.
//
// Write errors are returned to the caller. Read and query errors on backends
// talking to a remote store are logged and absorbed: GetInstalledTeam returns
// an absent result and ListInstalledTeams returns an empty slice whether the
// team doesn't exist/no team is installed or the underlying query failed.
// Callers must therefore not assume that an empty result means confirmed
// empty
type InstallationStorer interface {
	// SetInstallStatus upserts the team record (full replace) when installed
	// is true and deletes the record with that team's id otherwise. Deleting
	// a record that doesn't exist is not an error
	SetInstallStatus(team TeamInstallInfo, installed bool) (err error)

	// ListInstalledTeams returns every stored team record
	ListInstalledTeams() (teams []TeamInstallInfo, err error)

	// GetInstalledTeam returns the team record for the given id or nil if
	// absent
	GetInstalledTeam(teamID string) (team *TeamInstallInfo, err error)
}

// UserStorer is implemented by storage backends holding the user records.
// The same read/write error contract as InstallationStorer applies
type UserStorer interface {
	// GetUserInfo returns the user record for the given id or nil if absent
	GetUserInfo(userID string) (user *UserInfo, err error)

	// GetAllUsersOptInStatus returns the opt-in flag of every known user
	// keyed by user id. The projection is assembled whole: on a query error,
	// the result is nil rather than partial
	GetAllUsersOptInStatus() (optInStatuses map[string]bool, err error)

	// SetUserInfo builds a full user record from the given values and upserts
	// it keyed by userID. This is a full replace: any previously stored
	// recentPairups are lost unless the caller preserves them via
	// UpdateUserInfo
	SetUserInfo(tenantID string, userID string, optedIn bool, serviceURL string) (err error)

	// UpdateUserInfo upserts the given record as-is (full replace). Callers
	// wanting merge semantics read the record first and write back the merged
	// result
	UpdateUserInfo(user UserInfo) (err error)
}

// Storer is the full pairup storage interface
type Storer interface {
	InstallationStorer
	UserStorer
	io.Closer
}
