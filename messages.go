package pairup

import (
	"fmt"
	"strings"
)

const (
	optInCommand  = "opt in"
	optOutCommand = "opt out"
	statusCommand = "status"
	helpCommand   = "help"
)

// welcomeMessage greets the channel a pairup instance just joined
func welcomeMessage(botName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi, I'm %s :wave:. Every so often, I pair people up for a chat to get to know each other.\n", botName)
	fmt.Fprintf(&b, "Send me a direct message saying `%s` to participate (and `%s` anytime to stop).", optInCommand, optOutCommand)

	return b.String()
}

// helpMessage lists the commands understood in a direct message
func helpMessage(botName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I'm %s. I introduce people to each other, one pair at a time. Tell me:\n", botName)
	fmt.Fprintf(&b, "• `%s` - to participate in pairup rounds\n", optInCommand)
	fmt.Fprintf(&b, "• `%s` - to stop participating\n", optOutCommand)
	fmt.Fprintf(&b, "• `%s` - to know whether you're currently in or out\n", statusCommand)

	return b.String()
}

func optInConfirmation() string {
	return "You're in :tada:. I'll introduce you to someone on the next round."
}

func optOutConfirmation() string {
	return "You're out. I won't include you in future rounds (say `opt in` to come back anytime)."
}

func statusMessage(optedIn bool) string {
	if optedIn {
		return "You're currently opted in. Say `opt out` to stop participating."
	}

	return "You're currently opted out. Say `opt in` to participate."
}

// introMessage is what each member of a pair receives in a direct message
func introMessage(partnerID string) string {
	return fmt.Sprintf("It's pairup time :coffee:. You've been matched with <@%s>. Say hi and find a time to chat!", partnerID)
}

// unmatchedMessage goes to the odd member out of a round
func unmatchedMessage() string {
	return "Everyone else got matched up in pairs this round so you get a breather. You'll be first in line next time!"
}

// roundAnnouncement summarizes a round on the channels where the bot is installed
func roundAnnouncement(pairCount int) string {
	if pairCount == 1 {
		return "I've just introduced 1 pair of members to each other :tada:. Want in on the next round? Just send me a direct message saying `opt in`."
	}

	return fmt.Sprintf("I've just introduced %d pairs of members to each other :tada:. Want in on the next round? Just send me a direct message saying `opt in`.", pairCount)
}

func defaultAnswer() string {
	return fmt.Sprintf("I don't understand, ask me for `%s` to get a list of things I do", helpCommand)
}
