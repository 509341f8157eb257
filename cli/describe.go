package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yetorm/virtprops/schema"
)

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <class>...",
		Short: "Print the resolved properties of entity classes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}

			db := a.db.WithContext(cmd.Context())
			for i, class := range args {
				s, err := db.Schema(class)
				if err != nil {
					return err
				}

				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printSchema(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func printSchema(out io.Writer, s *schema.Schema) {
	color.New(color.FgCyan, color.Bold).Fprintf(out, "%s", s.Name)
	fmt.Fprintf(out, " (table %s)\n", s.Table)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tFLAGS\tCOLUMN\tDECLARED BY\tDESCRIPTION")
	fmt.Fprintln(w, "----\t----\t-----\t------\t-----------\t-----------")

	for _, property := range s.Properties {
		column, ok := schema.ColumnOf(property)
		if !ok {
			column = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			property.Name(),
			property.Type(),
			flagsOf(property),
			column,
			declaredBy(property),
			property.Description(),
		)
	}
	w.Flush()
}

func flagsOf(property schema.Property) string {
	var flags []string
	if property.Nullable() {
		flags = append(flags, "nullable")
	}
	if property.Readonly() {
		flags = append(flags, "readonly")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func declaredBy(property schema.Property) string {
	if method, ok := property.(*schema.MethodProperty); ok {
		return property.Entity() + "::" + method.Method() + "()"
	}
	return property.Entity()
}
