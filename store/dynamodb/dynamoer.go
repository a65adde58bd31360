package dynamodb

import (
	"context"

	awsdynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// dynamoer is implemented by any value that implements the subset of the
// dynamodb client methods this package uses. It is meant to allow easier
// testing decoupled from an actual dynamodb instance to interact with.
// *awsdynamo.Client implements it directly
type dynamoer interface {
	CreateTable(ctx context.Context, params *awsdynamo.CreateTableInput, optFns ...func(*awsdynamo.Options)) (*awsdynamo.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *awsdynamo.DescribeTableInput, optFns ...func(*awsdynamo.Options)) (*awsdynamo.DescribeTableOutput, error)
	GetItem(ctx context.Context, params *awsdynamo.GetItemInput, optFns ...func(*awsdynamo.Options)) (*awsdynamo.GetItemOutput, error)
	PutItem(ctx context.Context, params *awsdynamo.PutItemInput, optFns ...func(*awsdynamo.Options)) (*awsdynamo.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *awsdynamo.DeleteItemInput, optFns ...func(*awsdynamo.Options)) (*awsdynamo.DeleteItemOutput, error)
	Scan(ctx context.Context, params *awsdynamo.ScanInput, optFns ...func(*awsdynamo.Options)) (*awsdynamo.ScanOutput, error)
}
