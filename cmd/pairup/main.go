package main

import (
	"log"
	"os"
	"strings"

	"github.com/pairupbot/pairup"
	"github.com/pairupbot/pairup/config"
	"github.com/pairupbot/pairup/store"
	"github.com/pairupbot/pairup/store/dynamodb"
	"github.com/pairupbot/pairup/store/inmemorydb"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/api/global"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	name = "pairup"

	dynamodbBackend = "dynamodb"
	leveldbBackend  = "leveldb"
)

var (
	configurationPath = kingpin.Flag("configuration", "The path to the configuration file.").Short('c').Required().String()
	logfile           = kingpin.Flag("log", "The path to the log file.").Short('l').OpenFile(os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
)

var version = "dev"

func main() {
	kingpin.Version(version)
	kingpin.Parse()

	v := config.NewViperWithDefaults()
	v.SetConfigFile(*configurationPath)
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Error loading configuration file [%s]: %v", *configurationPath, err)
	}

	v.SetEnvPrefix(strings.ToUpper(name))
	v.AutomaticEnv()

	options := make([]pairup.Option, 0)
	if *logfile != nil {
		options = append(options, pairup.OptionLog(log.New(*logfile, name+": ", log.Lshortfile|log.LstdFlags)))
	}
	options = append(options, pairup.OptionWithTelemetry(global.MeterProvider().Meter(name)))

	storer, err := newStorer(v)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}
	defer storer.Close()

	bot := pairup.New(name, v, storer, options...)

	err = bot.Run()
	if err != nil {
		log.Fatal(err)
	}
}

// newStorer assembles the Storer implementation named by the storage
// configuration, optionally layering the in-memory write-through cache on top
func newStorer(v *viper.Viper) (storer store.Storer, err error) {
	switch backend := v.GetString(config.StorageBackendKey); backend {
	case dynamodbBackend:
		storer = dynamodb.New(
			v.GetString(config.StorageEndpointKey),
			v.GetString(config.StorageDatabaseKey),
			v.GetString(config.StorageTeamsTableKey),
			v.GetString(config.StorageUsersTableKey),
			v.GetString(config.StorageRegionKey),
			v.GetString(config.StorageAccessKeyIDKey),
			v.GetString(config.StorageSecretAccessKeyKey),
			dynamodb.WithTelemetry(global.MeterProvider().Meter(name)))

	case leveldbBackend:
		storer, err = store.NewLevelDB(name, v.GetString(config.StoragePathKey))
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("Unsupported storage backend [%s]", backend)
	}

	if v.GetBool(config.StorageWriteCacheKey) {
		return inmemorydb.NewWithWriteThrough(storer)
	}

	return storer, nil
}
