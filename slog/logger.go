package slog

import (
	"fmt"
	"log"

	"github.com/pairupbot/pairup/config"
	"github.com/spf13/viper"
)

// Debugf logs a debug line after checking if the configuration is in debug mode
func Debugf(l *log.Logger, format string, v ...interface{}) {
	if viper.GetBool(config.DebugKey) {
		l.Output(3, fmt.Sprintf(format, v...))
	}
}
