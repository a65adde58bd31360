package dynamodb

import (
	"context"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/pairupbot/pairup/store"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/api/metric"
)

// Default throughput, in capacity units, provisioned on each table when the
// account supports provisioned billing
const defaultThroughput = 5

// idAttribute is the partition key attribute of both tables
const idAttribute = "id"

// DynamoDB implements the pairup store.Storer interface backed by two
// dynamodb tables (teams and users), each partitioned by the record's own id.
//
// Initialization is lazy and happens exactly once per process lifetime: the
// first operation triggers client construction and creation of any missing
// table, concurrent callers wait on that single attempt and every later call
// observes its cached outcome. A failed initialization is permanent until
// the process restarts
type DynamoDB struct {
	client dynamoer

	endpoint        string
	region          string
	accessKeyID     string
	secretAccessKey string
	teamsTable      string
	usersTable      string

	logger *log.Logger
	meter  metric.Meter

	initOnce sync.Once
	initErr  error
}

// Option is a function to apply optional attributes on a DynamoDB instance
type Option func(d *DynamoDB)

// WithLogger replaces the default logger writing to stdout
func WithLogger(logger *log.Logger) Option {
	return func(d *DynamoDB) {
		d.logger = logger
	}
}

// WithTelemetry wraps the dynamodb client with opentelemetry call/error
// counters and processing time measures once connected
func WithTelemetry(meter metric.Meter) Option {
	return func(d *DynamoDB) {
		d.meter = meter
	}
}

// New returns a new DynamoDB store. The database name is used as the prefix
// of both table names (dynamodb has no database container so the prefix is
// what keeps one logical database's tables together). No connection is made
// until the first operation runs.
//
// The endpoint can be left empty to use the standard aws endpoint for the
// region (a non-empty value is mostly useful for dynamodb-local)
func New(endpoint string, database string, teamsTable string, usersTable string, region string, accessKeyID string, secretAccessKey string, opts ...Option) (d *DynamoDB) {
	d = new(DynamoDB)
	d.endpoint = endpoint
	d.region = region
	d.accessKeyID = accessKeyID
	d.secretAccessKey = secretAccessKey
	d.teamsTable = qualifiedTableName(database, teamsTable)
	d.usersTable = qualifiedTableName(database, usersTable)
	d.logger = log.New(os.Stdout, "pairup: ", log.Lshortfile|log.LstdFlags)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// qualifiedTableName joins the database name and table name
func qualifiedTableName(database string, table string) (name string) {
	if database == "" {
		return table
	}

	return database + "." + table
}

// initialize runs the one-time setup sequence on first call and replays its
// cached outcome to concurrent and subsequent callers
func (d *DynamoDB) initialize() (err error) {
	d.initOnce.Do(func() {
		if d.client == nil {
			if d.initErr = d.connect(); d.initErr != nil {
				return
			}
		}

		if d.meter != nil {
			d.client = NewdynamoerWithTelemetry(d.client, "pairup", d.meter)
		}

		d.initErr = d.ensureTables(context.Background())
	})

	return d.initErr
}

// connect builds the dynamodb client from the configured endpoint, region
// and access key pair
func (d *DynamoDB) connect() (err error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(d.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(d.accessKeyID, d.secretAccessKey, "")))
	if err != nil {
		return errors.Wrap(err, "failed to load dynamodb client configuration")
	}

	d.client = awsdynamo.NewFromConfig(cfg, func(o *awsdynamo.Options) {
		if d.endpoint != "" {
			o.BaseEndpoint = aws.String(d.endpoint)
		}
	})

	return nil
}

// ensureTables creates the teams and users tables if absent, both
// partitioned by id
func (d *DynamoDB) ensureTables(ctx context.Context) (err error) {
	for _, t := range []string{d.teamsTable, d.usersTable} {
		_, err = d.client.DescribeTable(ctx, &awsdynamo.DescribeTableInput{TableName: aws.String(t)})
		if err == nil {
			continue
		}

		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return errors.Wrapf(err, "failed to check for table [%s]", t)
		}

		if err = d.createTable(ctx, t); err != nil {
			return err
		}
	}

	return nil
}

// createTable creates a table with default provisioned throughput. When the
// account rejects provisioned billing, the table is created in on-demand
// mode instead. Losing a table-creation race to a concurrent process is not
// an error
func (d *DynamoDB) createTable(ctx context.Context, name string) (err error) {
	in := &awsdynamo.CreateTableInput{
		TableName:             aws.String(name),
		AttributeDefinitions:  []types.AttributeDefinition{{AttributeName: aws.String(idAttribute), AttributeType: types.ScalarAttributeTypeS}},
		KeySchema:             []types.KeySchemaElement{{AttributeName: aws.String(idAttribute), KeyType: types.KeyTypeHash}},
		BillingMode:           types.BillingModeProvisioned,
		ProvisionedThroughput: &types.ProvisionedThroughput{ReadCapacityUnits: aws.Int64(defaultThroughput), WriteCapacityUnits: aws.Int64(defaultThroughput)},
	}

	_, err = d.client.CreateTable(ctx, in)
	if err != nil && provisionedBillingUnsupported(err) {
		d.logger.Printf("Provisioned billing rejected creating table [%s], falling back to on-demand mode: %v\n", name, err)

		in.BillingMode = types.BillingModePayPerRequest
		in.ProvisionedThroughput = nil
		_, err = d.client.CreateTable(ctx, in)
	}

	var inUse *types.ResourceInUseException
	if err != nil && errors.As(err, &inUse) {
		return nil
	}

	return errors.Wrapf(err, "failed to create table [%s]", name)
}

// provisionedBillingUnsupported returns true on the specific validation
// error raised when the account tier doesn't allow provisioned billing
func provisionedBillingUnsupported(err error) (unsupported bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.ErrorCode() == "ValidationException" && strings.Contains(strings.ToLower(apiErr.ErrorMessage()), "billing mode")
}

// recordKey builds the point-operation key for a record id
func recordKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{idAttribute: &types.AttributeValueMemberS{Value: id}}
}

// SetInstallStatus upserts the team record (full replace) when installed is
// true and deletes it otherwise. Write errors are logged and returned
func (d *DynamoDB) SetInstallStatus(team store.TeamInstallInfo, installed bool) (err error) {
	if err = d.initialize(); err != nil {
		return err
	}

	ctx := context.Background()

	if !installed {
		if _, err = d.client.DeleteItem(ctx, &awsdynamo.DeleteItemInput{TableName: aws.String(d.teamsTable), Key: recordKey(team.ID)}); err != nil {
			d.logger.Printf("Error deleting install record for team [%s]: %v\n", team.ID, err)
			return errors.Wrapf(err, "failed to delete install record for team [%s]", team.ID)
		}

		return nil
	}

	item, err := attributevalue.MarshalMap(team)
	if err != nil {
		return errors.Wrapf(err, "failed to encode team [%s]", team.ID)
	}

	if _, err = d.client.PutItem(ctx, &awsdynamo.PutItemInput{TableName: aws.String(d.teamsTable), Item: item}); err != nil {
		d.logger.Printf("Error saving install record for team [%s]: %v\n", team.ID, err)
		return errors.Wrapf(err, "failed to save install record for team [%s]", team.ID)
	}

	return nil
}

// ListInstalledTeams returns every stored team record via an unfiltered
// scan, paginated until exhausted. Query errors are logged and collapsed
// into an empty result (see the store.InstallationStorer contract)
func (d *DynamoDB) ListInstalledTeams() (teams []store.TeamInstallInfo, err error) {
	if err = d.initialize(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	teams = make([]store.TeamInstallInfo, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := d.client.Scan(ctx, &awsdynamo.ScanInput{TableName: aws.String(d.teamsTable), ExclusiveStartKey: startKey})
		if err != nil {
			d.logger.Printf("Error listing installed teams: %v\n", err)
			return make([]store.TeamInstallInfo, 0), nil
		}

		var page []store.TeamInstallInfo
		if err = attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			d.logger.Printf("Error decoding team records: %v\n", err)
			return make([]store.TeamInstallInfo, 0), nil
		}

		teams = append(teams, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}

		startKey = out.LastEvaluatedKey
	}

	return teams, nil
}

// GetInstalledTeam returns the team record via a point read. Errors
// (including not-found) are logged and collapsed into an absent result
func (d *DynamoDB) GetInstalledTeam(teamID string) (team *store.TeamInstallInfo, err error) {
	if err = d.initialize(); err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(context.Background(), &awsdynamo.GetItemInput{TableName: aws.String(d.teamsTable), Key: recordKey(teamID)})
	if err != nil {
		d.logger.Printf("Error getting install record for team [%s]: %v\n", teamID, err)
		return nil, nil
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	team = new(store.TeamInstallInfo)
	if err = attributevalue.UnmarshalMap(out.Item, team); err != nil {
		d.logger.Printf("Error decoding install record for team [%s]: %v\n", teamID, err)
		return nil, nil
	}

	return team, nil
}

// GetUserInfo returns the user record via a point read. Errors (including
// not-found) are logged and collapsed into an absent result
func (d *DynamoDB) GetUserInfo(userID string) (user *store.UserInfo, err error) {
	if err = d.initialize(); err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(context.Background(), &awsdynamo.GetItemInput{TableName: aws.String(d.usersTable), Key: recordKey(userID)})
	if err != nil {
		d.logger.Printf("Error getting user record [%s]: %v\n", userID, err)
		return nil, nil
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	user = new(store.UserInfo)
	if err = attributevalue.UnmarshalMap(out.Item, user); err != nil {
		d.logger.Printf("Error decoding user record [%s]: %v\n", userID, err)
		return nil, nil
	}

	return user, nil
}

// userOptInProjection is the lightweight projection fetched by
// GetAllUsersOptInStatus
type userOptInProjection struct {
	ID      string `dynamodbav:"id"`
	OptedIn bool   `dynamodbav:"optedIn"`
}

// GetAllUsersOptInStatus returns the opt-in flag of every known user keyed
// by user id, via a projection scan paginated until exhausted. On any query
// error the whole batch fails together: the result is nil, never partial
func (d *DynamoDB) GetAllUsersOptInStatus() (optInStatuses map[string]bool, err error) {
	if err = d.initialize(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	optInStatuses = make(map[string]bool)

	var startKey map[string]types.AttributeValue
	for {
		out, err := d.client.Scan(ctx, &awsdynamo.ScanInput{
			TableName:                aws.String(d.usersTable),
			ProjectionExpression:     aws.String("#id, #optedIn"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#optedIn": "optedIn"},
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			d.logger.Printf("Error listing user opt-in statuses: %v\n", err)
			return nil, nil
		}

		var page []userOptInProjection
		if err = attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			d.logger.Printf("Error decoding user opt-in statuses: %v\n", err)
			return nil, nil
		}

		for _, u := range page {
			optInStatuses[u.ID] = u.OptedIn
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}

		startKey = out.LastEvaluatedKey
	}

	return optInStatuses, nil
}

// SetUserInfo builds a full user record from the given values and upserts it
// keyed by userID. Any previously stored recentPairups are lost: this is a
// full replace, not a merge
func (d *DynamoDB) SetUserInfo(tenantID string, userID string, optedIn bool, serviceURL string) (err error) {
	return d.UpdateUserInfo(store.UserInfo{ID: userID, TenantID: tenantID, ServiceURL: serviceURL, OptedIn: optedIn})
}

// UpdateUserInfo upserts the given user record as-is (full replace). Write
// errors are logged and returned
func (d *DynamoDB) UpdateUserInfo(user store.UserInfo) (err error) {
	if err = d.initialize(); err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return errors.Wrapf(err, "failed to encode user [%s]", user.ID)
	}

	if _, err = d.client.PutItem(context.Background(), &awsdynamo.PutItemInput{TableName: aws.String(d.usersTable), Item: item}); err != nil {
		d.logger.Printf("Error saving user record [%s]: %v\n", user.ID, err)
		return errors.Wrapf(err, "failed to save user record [%s]", user.ID)
	}

	return nil
}

// Close releases the store. The dynamodb client holds no connection state
// of its own so this only drops the handle
func (d *DynamoDB) Close() (err error) {
	d.client = nil
	return nil
}
