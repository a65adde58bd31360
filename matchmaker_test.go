package pairup

import (
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/nlopes/slack"
	"github.com/pairupbot/pairup/store"
	"github.com/pairupbot/pairup/store/inmemorydb"
	"github.com/pairupbot/pairup/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/api/metric"
)

type mockChatDriver struct {
	mock.Mock
}

func (m *mockChatDriver) OpenIMChannel(user string) (noOp bool, alreadyOpen bool, channelID string, err error) {
	args := m.Called(user)
	return args.Bool(0), args.Bool(1), args.String(2), args.Error(3)
}

func (m *mockChatDriver) PostMessage(channelID string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, err error) {
	args := m.Called(channelID, options)
	return args.String(0), args.String(1), args.Error(2)
}

func testLogger() SLogger {
	return NewSLogger(log.New(io.Discard, "", 0), false)
}

func newTestMatchmaker(storer store.Storer, driver chatDriver, maxRecentPairups int) (m *Matchmaker) {
	m = newMatchmaker(storer, driver, testLogger(), newInstrumenter("test", metric.NoopMeter{}), maxRecentPairups, rand.New(rand.NewSource(42)))
	m.newRoundID = func() string { return "round-1" }
	m.now = func() time.Time { return time.Date(2020, time.March, 9, 10, 0, 0, 0, time.UTC) }

	return m
}

func TestRunRoundIntroducesBothMembersOfAPair(t *testing.T) {
	imdb := inmemorydb.New()
	require.NoError(t, imdb.SetInstallStatus(store.TeamInstallInfo{ID: "C1", TenantID: "T1"}, true))
	require.NoError(t, imdb.SetUserInfo("T1", "U1", true, "s"))
	require.NoError(t, imdb.SetUserInfo("T1", "U2", true, "s"))

	driver := new(mockChatDriver)
	driver.On("OpenIMChannel", "U1").Return(false, false, "D1", nil)
	driver.On("OpenIMChannel", "U2").Return(false, false, "D2", nil)
	driver.On("PostMessage", mock.Anything, mock.Anything).Return("C", "ts", nil)

	m := newTestMatchmaker(imdb, driver, 5)
	m.RunRound()

	// One direct message per member plus the round announcement on the channel
	driver.AssertCalled(t, "PostMessage", "D1", mock.Anything)
	driver.AssertCalled(t, "PostMessage", "D2", mock.Anything)
	driver.AssertCalled(t, "PostMessage", "C1", mock.Anything)
	driver.AssertNumberOfCalls(t, "PostMessage", 3)

	pairedAt := time.Date(2020, time.March, 9, 10, 0, 0, 0, time.UTC)

	u1, err := imdb.GetUserInfo("U1")
	require.NoError(t, err)
	require.NotNil(t, u1)
	assert.Equal(t, []store.PairUp{{UserID: "U2", PairedAt: pairedAt}}, u1.RecentPairups)

	u2, err := imdb.GetUserInfo("U2")
	require.NoError(t, err)
	require.NotNil(t, u2)
	assert.Equal(t, []store.PairUp{{UserID: "U1", PairedAt: pairedAt}}, u2.RecentPairups)
}

func TestRunRoundWithOddCountStillMessagesEveryone(t *testing.T) {
	imdb := inmemorydb.New()
	require.NoError(t, imdb.SetInstallStatus(store.TeamInstallInfo{ID: "C1", TenantID: "T1"}, true))
	require.NoError(t, imdb.SetUserInfo("T1", "U1", true, "s"))
	require.NoError(t, imdb.SetUserInfo("T1", "U2", true, "s"))
	require.NoError(t, imdb.SetUserInfo("T1", "U3", true, "s"))

	driver := new(mockChatDriver)
	driver.On("OpenIMChannel", mock.Anything).Return(false, false, "D", nil)
	driver.On("PostMessage", mock.Anything, mock.Anything).Return("C", "ts", nil)

	m := newTestMatchmaker(imdb, driver, 5)
	m.RunRound()

	// The unmatched member also hears from us so that's three direct
	// messages plus the announcement
	driver.AssertNumberOfCalls(t, "OpenIMChannel", 3)
	driver.AssertNumberOfCalls(t, "PostMessage", 4)
}

func TestRunRoundSkippedWhenNotInstalledAnywhere(t *testing.T) {
	ms := new(mocks.Storer)
	ms.On("ListInstalledTeams").Return([]store.TeamInstallInfo{}, nil)

	driver := new(mockChatDriver)

	m := newTestMatchmaker(ms, driver, 5)
	m.RunRound()

	ms.AssertNotCalled(t, "GetAllUsersOptInStatus")
	driver.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
}

func TestRunRoundAbortsWhenOptInStatusesUnavailable(t *testing.T) {
	ms := new(mocks.Storer)
	ms.On("ListInstalledTeams").Return([]store.TeamInstallInfo{{ID: "C1"}}, nil)
	ms.On("GetAllUsersOptInStatus").Return(map[string]bool(nil), nil)

	driver := new(mockChatDriver)

	m := newTestMatchmaker(ms, driver, 5)
	m.RunRound()

	ms.AssertNotCalled(t, "GetUserInfo", mock.Anything)
	driver.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
}

func TestRunRoundSkipsOptedOutAndAbsentParticipants(t *testing.T) {
	optedIn := store.UserInfo{ID: "U1", TenantID: "T1", OptedIn: true}

	ms := new(mocks.Storer)
	ms.On("ListInstalledTeams").Return([]store.TeamInstallInfo{{ID: "C1"}}, nil)
	ms.On("GetAllUsersOptInStatus").Return(map[string]bool{"U1": true, "U2": false, "U3": true}, nil)
	ms.On("GetUserInfo", "U1").Return(&optedIn, nil)
	ms.On("GetUserInfo", "U3").Return((*store.UserInfo)(nil), nil)

	driver := new(mockChatDriver)

	m := newTestMatchmaker(ms, driver, 5)
	m.RunRound()

	// A single participant can't form a pair so nothing is sent
	ms.AssertNotCalled(t, "GetUserInfo", "U2")
	driver.AssertNotCalled(t, "OpenIMChannel", mock.Anything)
	driver.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
}

func TestRecordPairupCapsHistoryAtMaxRecentPairups(t *testing.T) {
	var updated store.UserInfo

	ms := new(mocks.Storer)
	ms.On("UpdateUserInfo", mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(0).(store.UserInfo)
	}).Return(nil)

	m := newTestMatchmaker(ms, new(mockChatDriver), 2)

	user := store.UserInfo{ID: "U1", TenantID: "T1", OptedIn: true,
		RecentPairups: []store.PairUp{
			{UserID: "U2", PairedAt: time.Date(2020, time.February, 24, 10, 0, 0, 0, time.UTC)},
			{UserID: "U3", PairedAt: time.Date(2020, time.March, 2, 10, 0, 0, 0, time.UTC)},
		}}

	pairedAt := time.Date(2020, time.March, 9, 10, 0, 0, 0, time.UTC)
	m.recordPairup(user, "U4", pairedAt)

	assert.Equal(t, []store.PairUp{
		{UserID: "U3", PairedAt: time.Date(2020, time.March, 2, 10, 0, 0, 0, time.UTC)},
		{UserID: "U4", PairedAt: pairedAt},
	}, updated.RecentPairups)
}

func TestSendDirectMessageSkipsPostWhenChannelCantBeOpened(t *testing.T) {
	driver := new(mockChatDriver)
	driver.On("OpenIMChannel", "U1").Return(false, false, "", assert.AnError)

	m := newTestMatchmaker(inmemorydb.New(), driver, 5)
	m.sendDirectMessage("U1", "hello")

	driver.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
}
