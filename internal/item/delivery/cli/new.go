package cli

import (
	"io"

	"github.com/spf13/cobra"

	"campus-lost-found/internal/item"
)

type commands struct {
	uc  item.UseCase
	out io.Writer
}

// NewItemsCommand returns the `items` command group bound to the given use case.
func NewItemsCommand(uc item.UseCase, out io.Writer) *cobra.Command {
	c := commands{uc: uc, out: out}

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Browse and claim lost & found items",
	}
	cmd.AddCommand(c.listCmd())
	cmd.AddCommand(c.recentCmd())
	cmd.AddCommand(c.showCmd())
	cmd.AddCommand(c.claimCmd())
	return cmd
}
