package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings command line configuration, read from flags, VIRTPROPS_* env vars and virtprops.yaml
type Settings struct {
	Catalog       string      `mapstructure:"catalog"`
	BaseEntity    string      `mapstructure:"base_entity"`
	StrictUnions  bool        `mapstructure:"strict_unions"`
	SingularTable bool        `mapstructure:"singular_table"`
	TablePrefix   string      `mapstructure:"table_prefix"`
	Color         bool        `mapstructure:"color"`
	Log           LogSettings `mapstructure:"log"`
}

// LogSettings logger configuration
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Driver string `mapstructure:"driver"`
}

var flagKeys = map[string]string{
	"catalog":        "catalog",
	"base-entity":    "base_entity",
	"strict-unions":  "strict_unions",
	"singular-table": "singular_table",
	"table-prefix":   "table_prefix",
	"color":          "color",
	"log-level":      "log.level",
	"log-driver":     "log.driver",
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("catalog", "catalog.yaml")
	v.SetDefault("base_entity", `YetORM\Entity`)
	v.SetDefault("strict_unions", false)
	v.SetDefault("singular_table", false)
	v.SetDefault("table_prefix", "")
	v.SetDefault("color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.driver", "default")

	v.SetEnvPrefix("VIRTPROPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads settings, flags override env vars which override the config file
func LoadSettings(v *viper.Viper, flags *pflag.FlagSet, configFile string) (*Settings, error) {
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("virtprops")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &settings, nil
}
