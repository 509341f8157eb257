package cli

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yetorm/virtprops/logger"
	"github.com/yetorm/virtprops/utils"
)

// Drivers supported values of log.driver
var Drivers = []string{"default", "zap", "logrus", "zerolog", "slog"}

// NewLogger builds the logger selected by settings, writing to w. Structured drivers
// tag every record with the running command.
func NewLogger(settings LogSettings, colorful bool, w io.Writer, command string) (logger.Interface, error) {
	driver := settings.Driver
	if driver == "" {
		driver = "default"
	}

	if !utils.Contains(Drivers, driver) {
		return nil, fmt.Errorf("unknown log driver %q, expected one of %v", driver, Drivers)
	}

	level, err := logger.ParseLevel(settings.Level)
	if err != nil {
		return nil, err
	}
	config := logger.Config{LogLevel: level, Colorful: colorful}

	switch driver {
	case "zap":
		encoder := zap.NewDevelopmentEncoderConfig()
		if colorful {
			encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.AddSync(w), logger.ZapLevel(level))
		return logger.NewZapLogger(zap.New(core), config).(*logger.ZapLogger).WithField("command", command), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.TextFormatter{DisableColors: !colorful})
		return logger.NewLogrusLogger(l, config).(*logger.LogrusLogger).WithField("command", command), nil
	case "zerolog":
		output := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !colorful}).
			Level(logger.ZerologLevel(level)).
			With().
			Timestamp().
			Str("command", command)
		return logger.NewZerologLoggerWithConfig(config, output), nil
	case "slog":
		return logger.NewSlogLogger(slog.New(slog.NewTextHandler(w, nil)).With("command", command), config), nil
	default:
		return logger.New(log.New(w, "\r\n", log.LstdFlags), config), nil
	}
}
