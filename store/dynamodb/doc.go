/*
Package dynamodb provides an implementation of github.com/pairupbot/pairup/store's Storer interface
backed by aws dynamodb.

Requirements for the dynamodb integration:
  - An access key id / secret access key pair allowed to create and use tables
  - A region (and optionally an endpoint override, useful for dynamodb-local)

The store manages two tables (teams and users), both keyed by the record's
own id. Tables are created on first use with default provisioned throughput,
falling back to on-demand billing when the account rejects provisioned mode.

Example code:

	import (
		"github.com/pairupbot/pairup/store/dynamodb"
	)

	func main() {
		storer := dynamodb.New("", "pairup", "teams", "users", "us-east-1", accessKeyID, secretAccessKey)
		defer storer.Close()

		// The first operation triggers the one-time initialization
		teams, err := storer.ListInstalledTeams()

		...
	}
*/
package dynamodb // import "github.com/pairupbot/pairup/store/dynamodb"
