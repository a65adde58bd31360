package slog

import (
	"log"
	"strings"
	"testing"

	"github.com/pairupbot/pairup/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLogWhenDebugEnabled(t *testing.T) {
	viper.Set(config.DebugKey, true)

	var b strings.Builder
	l := log.New(&b, "", 0)
	Debugf(l, "Writing a log statement for my little %s\n", "red bird")

	o := b.String()

	assert.Equal(t, "Writing a log statement for my little red bird\n", o)
}

func TestLogWhenDebugDisabled(t *testing.T) {
	viper.Set(config.DebugKey, false)

	var b strings.Builder
	l := log.New(&b, "", 0)
	Debugf(l, "Writing a log statement for my little %s\n", "red bird")

	o := b.String()

	// Nothing should have been logged
	assert.Equal(t, "", o)
}
