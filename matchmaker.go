package pairup

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nlopes/slack"
	"github.com/pairupbot/pairup/pairing"
	"github.com/pairupbot/pairup/store"
)

// Matchmaker runs pairing rounds: it matches up the opted-in members in
// random pairs, introduces each pair over direct messages and announces the
// round on the channels where the bot is installed
type Matchmaker struct {
	storer           store.Storer
	driver           chatDriver
	logger           SLogger
	instrumenter     *instrumenter
	maxRecentPairups int
	randSource       *rand.Rand

	// Overridable for testing
	newRoundID func() string
	now        func() time.Time
}

func newMatchmaker(storer store.Storer, driver chatDriver, logger SLogger, ins *instrumenter, maxRecentPairups int, randSource *rand.Rand) (m *Matchmaker) {
	m = new(Matchmaker)
	m.storer = storer
	m.driver = driver
	m.logger = logger
	m.instrumenter = ins
	m.maxRecentPairups = maxRecentPairups
	m.randSource = randSource
	m.newRoundID = func() string { return uuid.New().String() }
	m.now = time.Now

	return m
}

// RunRound executes one full pairing round
func (m *Matchmaker) RunRound() {
	roundID := m.newRoundID()

	d := measure(func() {
		m.runRound(roundID)
	})

	m.instrumenter.coreMetrics.matchRoundLatencyMillis.Record(context.Background(), d.Milliseconds())
}

func (m *Matchmaker) runRound(roundID string) {
	teams, _ := m.storer.ListInstalledTeams()
	if len(teams) == 0 {
		m.logger.Debugf("[%s] Not installed on any channel, skipping pairing round\n", roundID)
		return
	}

	optInStatuses, _ := m.storer.GetAllUsersOptInStatus()
	if optInStatuses == nil {
		m.logger.Printf("[%s] Opt-in statuses unavailable, skipping pairing round\n", roundID)
		return
	}

	participants := make([]store.UserInfo, 0, len(optInStatuses))
	for userID, optedIn := range optInStatuses {
		if !optedIn {
			continue
		}

		user, _ := m.storer.GetUserInfo(userID)
		if user == nil {
			m.logger.Debugf("[%s] Opted-in user [%s] has no user record, skipping\n", roundID, userID)
			continue
		}

		participants = append(participants, *user)
	}

	result := pairing.Match(participants, m.randSource)
	if len(result.Pairs) == 0 {
		m.logger.Printf("[%s] Not enough participants (%d) to form a pair, skipping pairing round\n", roundID, len(participants))
		return
	}

	pairedAt := m.now()
	for _, p := range result.Pairs {
		m.introduce(roundID, p, pairedAt)
	}

	if result.Unmatched != nil {
		m.sendDirectMessage(result.Unmatched.ID, unmatchedMessage())
	}

	for _, team := range teams {
		_, _, err := m.driver.PostMessage(team.ID, slack.MsgOptionText(roundAnnouncement(len(result.Pairs)), false), slack.MsgOptionAsUser(true))
		if err != nil {
			m.logger.Printf("[%s] Error announcing pairing round on channel [%s]: %v\n", roundID, team.ID, err)
		}
	}

	m.instrumenter.coreMetrics.pairupsMade.Add(context.Background(), int64(len(result.Pairs)))
	m.logger.Printf("[%s] Pairing round done with %d pairs formed from %d participants\n", roundID, len(result.Pairs), len(participants))
}

// introduce sends both members of a pair an intro message and records the
// pairup on both user records
func (m *Matchmaker) introduce(roundID string, p pairing.Pair, pairedAt time.Time) {
	m.logger.Debugf("[%s] Introducing [%s] and [%s]\n", roundID, p.First.ID, p.Second.ID)

	m.sendDirectMessage(p.First.ID, introMessage(p.Second.ID))
	m.sendDirectMessage(p.Second.ID, introMessage(p.First.ID))

	m.recordPairup(p.First, p.Second.ID, pairedAt)
	m.recordPairup(p.Second, p.First.ID, pairedAt)
}

// recordPairup appends the new pairup to the user's record, keeping only the
// most recent maxRecentPairups entries
func (m *Matchmaker) recordPairup(user store.UserInfo, partnerID string, pairedAt time.Time) {
	user.RecentPairups = append(user.RecentPairups, store.PairUp{UserID: partnerID, PairedAt: pairedAt})
	if len(user.RecentPairups) > m.maxRecentPairups {
		user.RecentPairups = user.RecentPairups[len(user.RecentPairups)-m.maxRecentPairups:]
	}

	err := m.storer.UpdateUserInfo(user)
	if err != nil {
		m.logger.Printf("Error recording pairup of user [%s] with [%s]: %v\n", user.ID, partnerID, err)
	}
}

func (m *Matchmaker) sendDirectMessage(userID string, text string) {
	_, _, channelID, err := m.driver.OpenIMChannel(userID)
	if err != nil {
		m.logger.Printf("Error opening direct message channel to user [%s]: %v\n", userID, err)
		return
	}

	_, _, err = m.driver.PostMessage(channelID, slack.MsgOptionText(text, false), slack.MsgOptionAsUser(true))
	if err != nil {
		m.logger.Printf("Error sending direct message to user [%s]: %v\n", userID, err)
	}
}
