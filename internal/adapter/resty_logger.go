package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-relay/internal/logger"
)

// restyLogger routes resty's internal messages to zerolog with the bot
// token masked, since resty prints full request URLs on failure.
type restyLogger struct {
	logger *logger.Logger
	secret string
}

func (l restyLogger) mask(format string, v ...any) string {
	msg := fmt.Sprintf(format, v...)
	if l.secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, l.secret, redactedToken)
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Str("component", "resty").Msg(l.mask(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Str("component", "resty").Msg(l.mask(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Str("component", "resty").Msg(l.mask(format, v...))
}
