package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yetorm/virtprops"
	"github.com/yetorm/virtprops/reflection"
	"github.com/yetorm/virtprops/schema"
)

type app struct {
	viper      *viper.Viper
	configFile string
	settings   *Settings
	catalog    *reflection.Catalog
	db         *virtprops.DB
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	a := &app{viper: newViper()}

	rootCmd := &cobra.Command{
		Use:   "virtprops",
		Short: "Inspect virtual properties of entity classes",
		Long: `virtprops resolves the virtual properties of entity classes described by a
YAML class catalog: get<Name> accessors and @property / @property-read annotations,
merged across the class hierarchy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./virtprops.yaml)")
	flags.String("catalog", "catalog.yaml", "YAML class catalog")
	flags.String("base-entity", schema.DefaultBaseEntity, "class every entity derives from")
	flags.Bool("strict-unions", false, "reject unions of more than one non-NULL type")
	flags.Bool("singular-table", false, "use singular table names")
	flags.String("table-prefix", "", "table name prefix")
	flags.Bool("color", true, "colorize output")
	flags.String("log-level", "warn", "silent, error, warn or info")
	flags.String("log-driver", "default", fmt.Sprintf("one of %v", Drivers))

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newDescribeCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))

	return rootCmd
}

// open loads settings, the catalog and the resolver
func (a *app) open(cmd *cobra.Command) error {
	settings, err := LoadSettings(a.viper, cmd.Flags(), a.configFile)
	if err != nil {
		return err
	}
	a.settings = settings

	if !settings.Color {
		color.NoColor = true
	}

	log, err := NewLogger(settings.Log, settings.Color, cmd.ErrOrStderr(), cmd.Name())
	if err != nil {
		return err
	}

	if a.catalog, err = reflection.LoadCatalog(settings.Catalog); err != nil {
		return err
	}

	opts := []virtprops.ConfigOption{
		virtprops.WithLogger(log),
		virtprops.WithBaseEntity(settings.BaseEntity),
		virtprops.WithNamingStrategy(schema.NamingStrategy{
			TablePrefix:   settings.TablePrefix,
			SingularTable: settings.SingularTable,
		}),
	}
	if settings.StrictUnions {
		opts = append(opts, virtprops.WithUnionPolicy(schema.StrictUnion))
	}

	a.db, err = virtprops.Open(a.catalog, opts...)
	return err
}
