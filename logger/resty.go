package logger

import (
	"fmt"
	"strings"
)

// Resty adapts a *Logger to the resty.Logger interface so that transport
// debug output (enabled by verbose mode) lands in the structured log.
type Resty struct {
	l *Logger
}

// NewResty wraps l for use with resty.Client.SetLogger.
func NewResty(l *Logger) *Resty {
	return &Resty{l: l}
}

func (r *Resty) Errorf(format string, v ...any) {
	r.l.Error().Str("source", "resty").Msg(trim(format, v...))
}

func (r *Resty) Warnf(format string, v ...any) {
	r.l.Warn().Str("source", "resty").Msg(trim(format, v...))
}

func (r *Resty) Debugf(format string, v ...any) {
	r.l.Debug().Str("source", "resty").Msg(trim(format, v...))
}

func trim(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
