package pairup

import (
	"github.com/nlopes/slack"
)

// imOpener is implemented by any value that has the OpenIMChannel method.
//
// slack.Client implements this interface
type imOpener interface {
	OpenIMChannel(user string) (noOp bool, alreadyOpen bool, channelID string, err error)
}

// messagePoster is implemented by any value that has the PostMessage method.
//
// slack.Client implements this interface
type messagePoster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, err error)
}

// chatDriver encompasses the imOpener and messagePoster interfaces and is implemented by
// any value that has all methods of those interfaces
type chatDriver interface {
	imOpener
	messagePoster
}
