package dynamodb

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using ../../opentelemetry.template template

//go:generate gowrap gen -p github.com/pairupbot/pairup/store/dynamodb -i dynamoer -t ../../opentelemetry.template -o dynamoermetrics.go

import (
	"context"
	"time"
	"unicode"

	awsdynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/otel/api/key"
	"go.opentelemetry.io/otel/api/metric"
)

// dynamoerWithTelemetry implements dynamoer interface with all methods wrapped
// with open telemetry metrics
type dynamoerWithTelemetry struct {
	base               dynamoer
	methodCounters     map[string]metric.BoundInt64Counter
	errCounters        map[string]metric.BoundInt64Counter
	methodTimeMeasures map[string]metric.BoundInt64Measure
}

// NewdynamoerWithTelemetry returns an instance of the dynamoer decorated with open telemetry timing and count metrics
func NewdynamoerWithTelemetry(base dynamoer, name string, meter metric.Meter) dynamoerWithTelemetry {
	return dynamoerWithTelemetry{
		base:               base,
		methodCounters:     newdynamoerMethodCounters("Calls", name, meter),
		errCounters:        newdynamoerMethodCounters("Errors", name, meter),
		methodTimeMeasures: newdynamoerMethodTimeMeasures(name, meter),
	}
}

func newdynamoerMethodTimeMeasures(appName string, meter metric.Meter) (boundTimeMeasures map[string]metric.BoundInt64Measure) {
	boundTimeMeasures = make(map[string]metric.BoundInt64Measure)

	nCreateTableMeasure := []rune("dynamoer_CreateTable_ProcessingTimeMillis")
	nCreateTableMeasure[0] = unicode.ToLower(nCreateTableMeasure[0])
	mCreateTable := meter.NewInt64Measure(string(nCreateTableMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["CreateTable"] = mCreateTable.Bind(meter.Labels(key.New("name").String(appName)))

	nDescribeTableMeasure := []rune("dynamoer_DescribeTable_ProcessingTimeMillis")
	nDescribeTableMeasure[0] = unicode.ToLower(nDescribeTableMeasure[0])
	mDescribeTable := meter.NewInt64Measure(string(nDescribeTableMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["DescribeTable"] = mDescribeTable.Bind(meter.Labels(key.New("name").String(appName)))

	nGetItemMeasure := []rune("dynamoer_GetItem_ProcessingTimeMillis")
	nGetItemMeasure[0] = unicode.ToLower(nGetItemMeasure[0])
	mGetItem := meter.NewInt64Measure(string(nGetItemMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["GetItem"] = mGetItem.Bind(meter.Labels(key.New("name").String(appName)))

	nPutItemMeasure := []rune("dynamoer_PutItem_ProcessingTimeMillis")
	nPutItemMeasure[0] = unicode.ToLower(nPutItemMeasure[0])
	mPutItem := meter.NewInt64Measure(string(nPutItemMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["PutItem"] = mPutItem.Bind(meter.Labels(key.New("name").String(appName)))

	nDeleteItemMeasure := []rune("dynamoer_DeleteItem_ProcessingTimeMillis")
	nDeleteItemMeasure[0] = unicode.ToLower(nDeleteItemMeasure[0])
	mDeleteItem := meter.NewInt64Measure(string(nDeleteItemMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["DeleteItem"] = mDeleteItem.Bind(meter.Labels(key.New("name").String(appName)))

	nScanMeasure := []rune("dynamoer_Scan_ProcessingTimeMillis")
	nScanMeasure[0] = unicode.ToLower(nScanMeasure[0])
	mScan := meter.NewInt64Measure(string(nScanMeasure), metric.WithKeys(key.New("name")))
	boundTimeMeasures["Scan"] = mScan.Bind(meter.Labels(key.New("name").String(appName)))

	return boundTimeMeasures
}

func newdynamoerMethodCounters(suffix string, appName string, meter metric.Meter) (boundCounters map[string]metric.BoundInt64Counter) {
	boundCounters = make(map[string]metric.BoundInt64Counter)

	nCreateTableCounter := []rune("dynamoer_CreateTable_" + suffix)
	nCreateTableCounter[0] = unicode.ToLower(nCreateTableCounter[0])
	cCreateTable := meter.NewInt64Counter(string(nCreateTableCounter), metric.WithKeys(key.New("name")))
	boundCounters["CreateTable"] = cCreateTable.Bind(meter.Labels(key.New("name").String(appName)))

	nDescribeTableCounter := []rune("dynamoer_DescribeTable_" + suffix)
	nDescribeTableCounter[0] = unicode.ToLower(nDescribeTableCounter[0])
	cDescribeTable := meter.NewInt64Counter(string(nDescribeTableCounter), metric.WithKeys(key.New("name")))
	boundCounters["DescribeTable"] = cDescribeTable.Bind(meter.Labels(key.New("name").String(appName)))

	nGetItemCounter := []rune("dynamoer_GetItem_" + suffix)
	nGetItemCounter[0] = unicode.ToLower(nGetItemCounter[0])
	cGetItem := meter.NewInt64Counter(string(nGetItemCounter), metric.WithKeys(key.New("name")))
	boundCounters["GetItem"] = cGetItem.Bind(meter.Labels(key.New("name").String(appName)))

	nPutItemCounter := []rune("dynamoer_PutItem_" + suffix)
	nPutItemCounter[0] = unicode.ToLower(nPutItemCounter[0])
	cPutItem := meter.NewInt64Counter(string(nPutItemCounter), metric.WithKeys(key.New("name")))
	boundCounters["PutItem"] = cPutItem.Bind(meter.Labels(key.New("name").String(appName)))

	nDeleteItemCounter := []rune("dynamoer_DeleteItem_" + suffix)
	nDeleteItemCounter[0] = unicode.ToLower(nDeleteItemCounter[0])
	cDeleteItem := meter.NewInt64Counter(string(nDeleteItemCounter), metric.WithKeys(key.New("name")))
	boundCounters["DeleteItem"] = cDeleteItem.Bind(meter.Labels(key.New("name").String(appName)))

	nScanCounter := []rune("dynamoer_Scan_" + suffix)
	nScanCounter[0] = unicode.ToLower(nScanCounter[0])
	cScan := meter.NewInt64Counter(string(nScanCounter), metric.WithKeys(key.New("name")))
	boundCounters["Scan"] = cScan.Bind(meter.Labels(key.New("name").String(appName)))

	return boundCounters
}

// CreateTable implements dynamoer
func (_d dynamoerWithTelemetry) CreateTable(ctx context.Context, params *awsdynamo.CreateTableInput, optFns ...func(*awsdynamo.Options)) (cp1 *awsdynamo.CreateTableOutput, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["CreateTable"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["CreateTable"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["CreateTable"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.CreateTable(ctx, params, optFns...)
}

// DescribeTable implements dynamoer
func (_d dynamoerWithTelemetry) DescribeTable(ctx context.Context, params *awsdynamo.DescribeTableInput, optFns ...func(*awsdynamo.Options)) (dp1 *awsdynamo.DescribeTableOutput, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["DescribeTable"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["DescribeTable"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["DescribeTable"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.DescribeTable(ctx, params, optFns...)
}

// GetItem implements dynamoer
func (_d dynamoerWithTelemetry) GetItem(ctx context.Context, params *awsdynamo.GetItemInput, optFns ...func(*awsdynamo.Options)) (gp1 *awsdynamo.GetItemOutput, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["GetItem"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["GetItem"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["GetItem"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.GetItem(ctx, params, optFns...)
}

// PutItem implements dynamoer
func (_d dynamoerWithTelemetry) PutItem(ctx context.Context, params *awsdynamo.PutItemInput, optFns ...func(*awsdynamo.Options)) (pp1 *awsdynamo.PutItemOutput, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["PutItem"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["PutItem"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["PutItem"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.PutItem(ctx, params, optFns...)
}

// DeleteItem implements dynamoer
func (_d dynamoerWithTelemetry) DeleteItem(ctx context.Context, params *awsdynamo.DeleteItemInput, optFns ...func(*awsdynamo.Options)) (dp1 *awsdynamo.DeleteItemOutput, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["DeleteItem"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["DeleteItem"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["DeleteItem"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.DeleteItem(ctx, params, optFns...)
}

// Scan implements dynamoer
func (_d dynamoerWithTelemetry) Scan(ctx context.Context, params *awsdynamo.ScanInput, optFns ...func(*awsdynamo.Options)) (sp1 *awsdynamo.ScanOutput, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["Scan"]
			errCounter.Add(context.Background(), 1)
		}

		methodCounter := _d.methodCounters["Scan"]
		methodCounter.Add(context.Background(), 1)

		methodTimeMeasure := _d.methodTimeMeasures["Scan"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds())
	}()
	return _d.base.Scan(ctx, params, optFns...)
}
