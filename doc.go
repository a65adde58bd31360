/*
Package pairup provides the building blocks of a slack bot that periodically
introduces members of a workspace to each other, one random pair at a time.

The bot keeps track of the channels it's invited to and of the members who
opted in via a direct message. On a configurable schedule (weekly on Monday
mornings, by default), it matches up the opted-in members in random pairs and
sends each pair an introduction over direct messages.

Records are kept in an implementation of the store.Storer interface. The
store/dynamodb package holds the production implementation backed by AWS
DynamoDB while store.LevelDB offers a local single-file alternative.

Example code:

	package main

	import (
		"log"

		"github.com/pairupbot/pairup"
		"github.com/pairupbot/pairup/config"
		"github.com/pairupbot/pairup/store/dynamodb"
	)

	func main() {
		v := config.NewViperWithDefaults()
		// TODO: layer the instance configuration file on v

		storer := dynamodb.New("", "pairup", "teams", "users", "us-east-1", accessKeyID, secretAccessKey)
		defer storer.Close()

		bot := pairup.New("pairup", v, storer)
		if err := bot.Run(); err != nil {
			log.Fatal(err)
		}
	}
*/
package pairup
