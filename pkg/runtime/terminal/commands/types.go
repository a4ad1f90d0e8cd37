package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fit-tools/fittrack/pkg/services/workout"
	"github.com/spf13/cobra"
)

type TypesCmd struct {
	registry workout.Registry
}

func NewTypesCmd(registry workout.Registry) *cobra.Command {
	tc := &TypesCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List supported workout type codes",
		RunE:  tc.run,
	}

	return cmd
}

func (tc *TypesCmd) run(cmd *cobra.Command, _ []string) error {
	codes := tc.registry.ListCodes()
	if len(codes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No workout types registered")
		return nil
	}

	sort.Strings(codes)
	fmt.Fprintf(cmd.OutOrStdout(), "Supported workout types:\n%s\n", strings.Join(codes, "\n"))

	return nil
}
