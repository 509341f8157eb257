package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yetorm/virtprops/logger"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings(newViper(), pflag.NewFlagSet("test", pflag.ContinueOnError), "")
	require.NoError(t, err)

	assert.Equal(t, "catalog.yaml", settings.Catalog)
	assert.Equal(t, `YetORM\Entity`, settings.BaseEntity)
	assert.False(t, settings.StrictUnions)
	assert.True(t, settings.Color)
	assert.Equal(t, "warn", settings.Log.Level)
	assert.Equal(t, "default", settings.Log.Driver)
}

func TestLoadSettingsPrecedence(t *testing.T) {
	t.Setenv("VIRTPROPS_TABLE_PREFIX", "env_")
	t.Setenv("VIRTPROPS_LOG_DRIVER", "logrus")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-driver", "default", "")
	require.NoError(t, flags.Parse([]string{"--log-driver", "zap"}))

	settings, err := LoadSettings(newViper(), flags, "testdata/virtprops.yaml")
	require.NoError(t, err)

	assert.Equal(t, "testdata/catalog.yaml", settings.Catalog, "config file")
	assert.True(t, settings.SingularTable, "config file")
	assert.Equal(t, "env_", settings.TablePrefix, "env overrides config file")
	assert.Equal(t, "zap", settings.Log.Driver, "flag overrides env")
	assert.Equal(t, "info", settings.Log.Level)
}

func TestLoadSettingsMissingConfigFile(t *testing.T) {
	_, err := LoadSettings(newViper(), pflag.NewFlagSet("test", pflag.ContinueOnError), "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, driver := range Drivers {
		t.Run(driver, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := NewLogger(LogSettings{Level: "info", Driver: driver}, false, &buf, "describe")
			require.NoError(t, err)

			log.Info(context.Background(), "resolved %d properties of %s", 4, "Book")
			assert.Contains(t, buf.String(), "resolved")
			if driver != "default" {
				assert.Contains(t, buf.String(), "describe", "structured drivers tag the command")
			}

			buf.Reset()
			log.LogMode(logger.Silent).Error(context.Background(), "failed")
			assert.Empty(t, buf.String())
		})
	}

	_, err := NewLogger(LogSettings{Level: "loud", Driver: "zap"}, false, &bytes.Buffer{}, "check")
	assert.Error(t, err)

	_, err = NewLogger(LogSettings{Level: "info", Driver: "syslog"}, false, &bytes.Buffer{}, "check")
	assert.Error(t, err)
}
