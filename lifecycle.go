package pairup

import (
	"context"

	"github.com/nlopes/slack"
	"github.com/pairupbot/pairup/store"
)

// handleMemberJoinedChannel records an installation when the member joining
// a channel is the bot itself. Events about other members are ignored
func (b *Bot) handleMemberJoinedChannel(e *slack.MemberJoinedChannelEvent) {
	if e.User != b.selfID {
		return
	}

	tenantID := e.Team
	if tenantID == "" {
		tenantID = b.tenantID
	}

	team := store.TeamInstallInfo{ID: e.Channel, TenantID: tenantID, ServiceURL: b.serviceURL, InstallerName: b.resolveMemberName(e.Inviter)}

	err := b.storer.SetInstallStatus(team, true)
	if err != nil {
		b.Logger.Printf("Error recording installation on channel [%s]: %v\n", e.Channel, err)
		return
	}

	b.instrumenter.coreMetrics.teamsInstalled.Add(context.Background(), 1)

	_, _, err = b.driver.PostMessage(e.Channel, slack.MsgOptionText(welcomeMessage(b.name), false), slack.MsgOptionAsUser(true))
	if err != nil {
		b.Logger.Printf("Error sending welcome message to channel [%s]: %v\n", e.Channel, err)
	}
}

// handleChannelLeft deletes the installation record of the channel the bot
// just left (or was removed from)
func (b *Bot) handleChannelLeft(e *slack.ChannelLeftEvent) {
	err := b.storer.SetInstallStatus(store.TeamInstallInfo{ID: e.Channel}, false)
	if err != nil {
		b.Logger.Printf("Error deleting installation record of channel [%s]: %v\n", e.Channel, err)
		return
	}

	b.instrumenter.coreMetrics.teamsUninstalled.Add(context.Background(), 1)
}

// resolveMemberName looks up the display name of a member, falling back to an
// empty name when the member can't be resolved
func (b *Bot) resolveMemberName(userID string) (name string) {
	if userID == "" {
		return ""
	}

	u, err := b.memberInfoFinder.GetUserInfo(userID)
	if err != nil {
		b.Debugf("Unable to resolve name of member [%s]: %v\n", userID, err)
		return ""
	}

	if u.RealName != "" {
		return u.RealName
	}

	return u.Name
}
