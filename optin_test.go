package pairup

import (
	"testing"

	"github.com/pairupbot/pairup/store"
	"github.com/pairupbot/pairup/store/inmemorydb"
	"github.com/pairupbot/pairup/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptInRecordsUserAndConfirms(t *testing.T) {
	imdb := inmemorydb.New()
	b := newTestBot(imdb, new(mockChatDriver), new(mockMemberInfoFinder))

	answer := b.answerDirectMessage("opt in", "U1")
	assert.Equal(t, optInConfirmation(), answer)

	user, err := imdb.GetUserInfo("U1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, store.UserInfo{ID: "U1", TenantID: "T1", ServiceURL: "https://acme.slack.com", OptedIn: true}, *user)
}

func TestOptOutAfterOptIn(t *testing.T) {
	imdb := inmemorydb.New()
	b := newTestBot(imdb, new(mockChatDriver), new(mockMemberInfoFinder))

	b.answerDirectMessage("opt in", "U1")
	answer := b.answerDirectMessage("opt out", "U1")
	assert.Equal(t, optOutConfirmation(), answer)

	user, err := imdb.GetUserInfo("U1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.OptedIn)
}

func TestCommandsAreCaseAndPaddingInsensitive(t *testing.T) {
	imdb := inmemorydb.New()
	b := newTestBot(imdb, new(mockChatDriver), new(mockMemberInfoFinder))

	answer := b.answerDirectMessage("  Opt In ", "U1")
	assert.Equal(t, optInConfirmation(), answer)
}

func TestStatusOfUnknownUserIsOptedOut(t *testing.T) {
	b := newTestBot(inmemorydb.New(), new(mockChatDriver), new(mockMemberInfoFinder))

	answer := b.answerDirectMessage("status", "U1")
	assert.Equal(t, statusMessage(false), answer)
}

func TestStatusOfOptedInUser(t *testing.T) {
	imdb := inmemorydb.New()
	b := newTestBot(imdb, new(mockChatDriver), new(mockMemberInfoFinder))

	b.answerDirectMessage("opt in", "U1")
	answer := b.answerDirectMessage("status", "U1")
	assert.Equal(t, statusMessage(true), answer)
}

func TestHelpListsCommands(t *testing.T) {
	b := newTestBot(inmemorydb.New(), new(mockChatDriver), new(mockMemberInfoFinder))

	answer := b.answerDirectMessage("help", "U1")
	assert.Contains(t, answer, optInCommand)
	assert.Contains(t, answer, optOutCommand)
	assert.Contains(t, answer, statusCommand)
}

func TestUnknownMessageGetsDefaultAnswer(t *testing.T) {
	b := newTestBot(inmemorydb.New(), new(mockChatDriver), new(mockMemberInfoFinder))

	answer := b.answerDirectMessage("what do you do?", "U1")
	assert.Equal(t, defaultAnswer(), answer)
}

func TestOptInFailureGetsApologeticAnswer(t *testing.T) {
	ms := new(mocks.Storer)
	ms.On("SetUserInfo", "T1", "U1", true, "https://acme.slack.com").Return(assert.AnError)

	b := newTestBot(ms, new(mockChatDriver), new(mockMemberInfoFinder))

	answer := b.answerDirectMessage("opt in", "U1")
	assert.Contains(t, answer, "Something went wrong")
}
