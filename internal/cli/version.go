// The version command.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alignstore/pkg/alignstore"
)

const modulePath = "github.com/mesh-intelligence/alignstore"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the alignstore version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "alignstore v%s\nmodule: %s\n", alignstore.Version, modulePath)
			return nil
		},
	}
}
