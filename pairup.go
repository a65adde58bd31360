package pairup

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcsantiago/gocron"
	"github.com/nlopes/slack"
	"github.com/pairupbot/pairup/config"
	"github.com/pairupbot/pairup/schedule"
	"github.com/pairupbot/pairup/store"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/api/metric"
)

// Bot represents a pairup instance (its name, configuration and the services
// it relies on)
type Bot struct {
	name             string
	config           *viper.Viper
	storer           store.Storer
	driver           chatDriver
	memberInfoFinder MemberInfoFinder
	matchmaker       *Matchmaker
	instrumenter     *instrumenter
	meter            metric.Meter

	selfID     string
	selfName   string
	tenantID   string
	serviceURL string

	*log.Logger
}

// Option defines an option for a Bot
type Option func(*Bot)

// OptionLog sets a custom logger on the Bot
func OptionLog(logger *log.Logger) Option {
	return func(b *Bot) {
		b.Logger = logger
	}
}

// OptionWithTelemetry instruments the Bot and its storer with open telemetry
// metrics reported to the given meter
func OptionWithTelemetry(meter metric.Meter) Option {
	return func(b *Bot) {
		b.meter = meter
		b.instrumenter = newInstrumenter(b.name, meter)
		b.storer = store.NewStorerWithTelemetry(b.storer, b.name, meter)
	}
}

// New creates a new Bot with the given name, configuration and backing storer
func New(name string, v *viper.Viper, storer store.Storer, options ...Option) (bot *Bot) {
	bot = new(Bot)
	bot.name = name
	bot.config = v
	bot.storer = storer
	bot.Logger = log.New(os.Stdout, name+": ", log.Lshortfile|log.LstdFlags)
	bot.meter = metric.NoopMeter{}
	bot.instrumenter = newInstrumenter(name, metric.NoopMeter{})

	for _, option := range options {
		option(bot)
	}

	return bot
}

// Run starts the Bot and loops until the process is interrupted
func (b *Bot) Run() (err error) {
	// Push the Debug configuration to the global viper instance so it's available to slog too
	viper.Set(config.DebugKey, b.config.GetBool(config.DebugKey))

	api := slack.New(
		b.config.GetString(config.TokenKey),
		slack.OptionDebug(b.config.GetBool(config.DebugKey)),
		slack.OptionLog(log.New(os.Stdout, "slack: ", log.Lshortfile|log.LstdFlags)),
	)

	rtm := api.NewRTM()

	go rtm.ManageConnection()

	b.driver = NewchatDriverWithTelemetry(api, b.name, b.meter)

	sl := NewSLogger(b.Logger, b.config.GetBool(config.DebugKey))

	mf, err := NewCachingMemberInfoFinder(b.config, api, sl)
	if err != nil {
		return err
	}
	b.memberInfoFinder = NewMemberInfoFinderWithTelemetry(mf, b.name, b.meter)

	b.matchmaker = newMatchmaker(b.storer, b.driver, sl, b.instrumenter, b.config.GetInt(config.MaxRecentPairupsKey), rand.New(rand.NewSource(time.Now().UnixNano())))

	// Load time zone location for the scheduler
	timeLoc, err := config.GetTimeLocation(b.config)
	if err != nil {
		return err
	}

	go b.startPairingScheduler(timeLoc)
	go b.watchForTerminationSignalToAbort(rtm)

	return b.runEventLoop(rtm)
}

// runEventLoop processes incoming slack events until the incoming events
// channel is closed
func (b *Bot) runEventLoop(rtm *slack.RTM) (err error) {
	for msg := range rtm.IncomingEvents {
		b.instrumenter.coreMetrics.eventsSeen.Add(context.Background(), 1)

		switch e := msg.Data.(type) {
		case *slack.HelloEvent:
			// Ignore hello

		case *slack.ConnectedEvent:
			b.Logger.Println("Infos:", e.Info)
			b.Logger.Println("Connection counter:", e.ConnectionCount)
			b.cacheSelfIdentity(rtm)

		case *slack.MemberJoinedChannelEvent:
			b.handleMemberJoinedChannel(e)

		case *slack.ChannelLeftEvent:
			b.handleChannelLeft(e)

		case *slack.MessageEvent:
			b.processMessageEvent(rtm, e)

		case *slack.LatencyReport:
			b.instrumenter.coreMetrics.slackLatencyMillis.Set(context.Background(), e.Value.Milliseconds())
			b.Debugf("Current latency: %v\n", e.Value)

		case *slack.RTMError:
			b.Logger.Printf("Error: %s\n", e.Error())

		case *slack.InvalidAuthEvent:
			b.Logger.Printf("Invalid credentials")
			return nil

		default:
			// Ignoring other messages
		}
	}

	return nil
}

// watchForTerminationSignalToAbort waits for a SIGTERM or SIGINT and closes the rtm's IncomingEvents channel to finish
// the main Run() loop and terminate cleanly. Note that this is meant to run in a go routine given that this is blocking
func (b *Bot) watchForTerminationSignalToAbort(rtm *slack.RTM) {
	tSignals := make(chan os.Signal, 1)
	// Register to be notified of termination signals so we can abort
	signal.Notify(tSignals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-tSignals

	b.Debugf("Received termination signal [%s], closing RTM's incoming events channel to terminate processing\n", sig)
	close(rtm.IncomingEvents)
}

// cacheSelfIdentity gets "our" identity and keeps the user and team details to avoid having to look them up every time
func (b *Bot) cacheSelfIdentity(rtm *slack.RTM) {
	info := rtm.GetInfo()

	b.selfID = info.User.ID
	b.selfName = info.User.Name
	b.tenantID = info.Team.ID
	b.serviceURL = "https://" + info.Team.Domain + ".slack.com"

	b.Debugf("Caching self id [%s], self name [%s] and tenant id [%s]\n", b.selfID, b.selfName, b.tenantID)
}

// startPairingScheduler registers the pairing round job with the scheduler
// and starts it
func (b *Bot) startPairingScheduler(timeLoc *time.Location) {
	gocron.ChangeLoc(timeLoc)
	sc := gocron.NewScheduler()

	sd := config.GetPairingSchedule(b.config)

	j, err := schedule.NewJob(sc, sd)
	if err != nil {
		b.Logger.Printf("Invalid pairing schedule [%s]: %v\n", sd, err)
		return
	}

	b.Debugf("Scheduling pairing rounds [%s]\n", sd)
	j.Do(b.matchmaker.RunRound)

	_, t := sc.NextRun()
	b.Debugf("Starting scheduler with first pairing round scheduled at [%s]\n", t)

	<-sc.Start()
}

// Debugf logs a debug line after checking if the configuration is in debug mode
func (b *Bot) Debugf(format string, v ...interface{}) {
	if b.config.GetBool(config.DebugKey) {
		b.Logger.Printf(format, v...)
	}
}
