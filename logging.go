package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is a leveled wrapper around a go-kit logger.
type Logger struct {
	log.Logger
}

// NewLogger writes logfmt, or json when format is "json", to w and drops
// records below lvl.
func NewLogger(w io.Writer, format, lvl string) Logger {
	var l log.Logger
	if strings.EqualFold(format, "json") {
		l = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		l = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	l = level.NewFilter(l, levelOption(lvl))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return Logger{l}
}

func NopLogger() Logger {
	return Logger{log.NewNopLogger()}
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	default:
		return level.AllowInfo()
	}
}

func (l Logger) With(keyvals ...interface{}) Logger {
	return Logger{log.With(l.Logger, keyvals...)}
}

func (l Logger) Debug(msg string, keyvals ...interface{}) {
	_ = level.Debug(l.Logger).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l Logger) Info(msg string, keyvals ...interface{}) {
	_ = level.Info(l.Logger).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l Logger) Warn(msg string, keyvals ...interface{}) {
	_ = level.Warn(l.Logger).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

func (l Logger) Error(msg string, keyvals ...interface{}) {
	_ = level.Error(l.Logger).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}
