package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yetorm/virtprops/schema"
)

// ErrCheckFailed some entity classes could not be resolved
var ErrCheckFailed = errors.New("check failed")

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve every entity class of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}

			var (
				out      = cmd.OutOrStdout()
				db       = a.db.WithContext(cmd.Context())
				ok       = color.New(color.FgGreen)
				failed   = color.New(color.FgRed)
				entities int
				failures int
			)

			for _, class := range a.catalog.Classes() {
				if _, err := schema.ClassTree(a.catalog, class, a.settings.BaseEntity); err != nil {
					continue
				}
				entities++

				s, err := db.Schema(class)
				if err != nil {
					failures++
					failed.Fprintf(out, "FAIL %s: %v\n", class, err)
					continue
				}
				ok.Fprintf(out, "ok   %s (%d properties)\n", s.Name, len(s.Properties))
			}

			if failures > 0 {
				return fmt.Errorf("%w: %d of %d entity classes", ErrCheckFailed, failures, entities)
			}
			return nil
		},
	}
}
