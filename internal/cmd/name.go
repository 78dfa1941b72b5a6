package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/exportname"
)

// NewNameCommand creates the 'cstexports name' command
func NewNameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <field> <frequency> <label> <index>",
		Short: "Print the canonical filename of a field export",
		Long: `Format the filename an export step writes for a field:

  cstexports name e-field 447 AC 1
  e-field (f=447) [AC1].h5

Exactly four arguments are required; parts are used verbatim.`,
		// Arity is checked by the formatter so the error carries the arguments
		Args: cobra.ArbitraryArgs,
		RunE: runName,
	}

	return cmd
}

func runName(cmd *cobra.Command, args []string) error {
	name, err := exportname.FieldDataName(args...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}
