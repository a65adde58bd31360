package pairup

import (
	"context"
	"strings"

	"github.com/nlopes/slack"
)

// processMessageEvent handles direct messages holding opt-in commands. Channel
// messages and message edits/deletions are of no interest here
func (b *Bot) processMessageEvent(rtm *slack.RTM, e *slack.MessageEvent) {
	// reply_to is a field set to 1 sent by slack when a sent message has been acknowledged and should be considered
	// officially sent to others. Therefore, we ignore all of those since it's mostly for clients/UI to show status
	if e.ReplyTo > 0 || e.Type != "message" || e.SubType != "" {
		return
	}

	if e.User == b.selfID || e.BotID != "" {
		return
	}

	// Direct message channel ids start with a "D"
	if len(e.Channel) == 0 || e.Channel[0] != 'D' {
		return
	}

	answer := b.answerDirectMessage(e.Text, e.User)
	rtm.SendMessage(rtm.NewOutgoingMessage(answer, e.Channel))
}

// answerDirectMessage interprets a direct message as an opt-in command and
// returns the answer to send back
func (b *Bot) answerDirectMessage(text string, userID string) (answer string) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case optInCommand:
		return b.setOptInStatus(userID, true)

	case optOutCommand:
		return b.setOptInStatus(userID, false)

	case statusCommand:
		user, err := b.storer.GetUserInfo(userID)
		if err != nil {
			b.Logger.Printf("Error getting opt-in status of user [%s]: %v\n", userID, err)
		}

		return statusMessage(user != nil && user.OptedIn)

	case helpCommand:
		return helpMessage(b.name)

	default:
		return defaultAnswer()
	}
}

func (b *Bot) setOptInStatus(userID string, optedIn bool) (answer string) {
	err := b.storer.SetUserInfo(b.tenantID, userID, optedIn, b.serviceURL)
	if err != nil {
		b.Logger.Printf("Error saving opt-in status [%t] of user [%s]: %v\n", optedIn, userID, err)
		return "Something went wrong saving that, please try again in a moment."
	}

	if optedIn {
		b.instrumenter.coreMetrics.optIns.Add(context.Background(), 1)
		return optInConfirmation()
	}

	b.instrumenter.coreMetrics.optOuts.Add(context.Background(), 1)
	return optOutConfirmation()
}
