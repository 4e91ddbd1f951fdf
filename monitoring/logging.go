package monitoring

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) toLogrus() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]interface{})
}

// JSONLogger writes one JSON object per line, tagged with a component name.
type JSONLogger struct {
	entry *logrus.Entry
}

func NewLogger(component string, out io.Writer) *JSONLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})

	return &JSONLogger{
		entry: l.WithField("component", component),
	}
}

func (l *JSONLogger) Log(level LogLevel, eventType string, message string, details map[string]interface{}) {
	fields := logrus.Fields{"event_type": eventType}
	if len(details) > 0 {
		fields["details"] = details
	}
	l.entry.WithFields(fields).Log(level.toLogrus(), message)
}
