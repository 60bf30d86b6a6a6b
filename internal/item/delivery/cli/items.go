package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campus-lost-found/internal/item"
	"campus-lost-found/internal/item/query"
)

func (c commands) listCmd() *cobra.Command {
	var (
		categories []string
		colors     []string
		itemType   string
		sortBy     string
		sortOrder  string
		cached     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Long: `List items with optional filtering and sorting.

Examples:
  lostfound items list --type found
  lostfound items list --category Eletrônicos --category Documentos
  lostfound items list --sort date --order asc`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := query.ParseSpec(categories, colors, itemType, sortBy, sortOrder)
			if err != nil {
				return err
			}

			out, err := c.uc.List(cmd.Context(), item.ListInput{Query: spec, Cached: cached})
			if err != nil {
				return err
			}
			if out.Message != "" {
				fmt.Fprintln(c.out, out.Message)
				return nil
			}
			if len(out.Items) == 0 {
				fmt.Fprintln(c.out, "No items found.")
				return nil
			}

			c.printTable(out.Items)
			fmt.Fprintf(c.out, "\n%d item(s)\n", out.Total)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "Filter by category (repeatable)")
	cmd.Flags().StringSliceVar(&colors, "color", nil, "Filter by color (repeatable)")
	cmd.Flags().StringVar(&itemType, "type", "all", "Filter by type (all, found, lost)")
	cmd.Flags().StringVar(&sortBy, "sort", "createdAt", "Sort by field (createdAt, date)")
	cmd.Flags().StringVar(&sortOrder, "order", "desc", "Sort order (asc, desc)")
	cmd.Flags().BoolVar(&cached, "cached", false, "Query the last fetched snapshot")
	return cmd
}

func (c commands) recentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently found items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.uc.Recent(cmd.Context(), item.RecentInput{Limit: limit})
			if err != nil {
				return err
			}
			if out.Message != "" {
				fmt.Fprintln(c.out, out.Message)
				return nil
			}
			if len(out.Items) == 0 {
				fmt.Fprintln(c.out, "No items found.")
				return nil
			}
			c.printTable(out.Items)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", item.DefaultRecentLimit, "Number of items")
	return cmd
}

func (c commands) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.uc.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			v := out.Item
			w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID:\t%s\n", v.ID)
			fmt.Fprintf(w, "Name:\t%s\n", v.Name)
			fmt.Fprintf(w, "Type:\t%s\n", v.Type)
			fmt.Fprintf(w, "Status:\t%s (%d%%)\n", item.StatusLabel(v.Status), out.Progress.Percent)
			fmt.Fprintf(w, "Category:\t%s\n", v.Category)
			fmt.Fprintf(w, "Color:\t%s\n", v.Color)
			if v.Location != "" {
				fmt.Fprintf(w, "Location:\t%s\n", v.Location)
			}
			if v.Date != "" {
				fmt.Fprintf(w, "Date:\t%s\n", v.Date)
			}
			if v.Description != "" {
				fmt.Fprintf(w, "Description:\t%s\n", v.Description)
			}
			fmt.Fprintf(w, "Registered:\t%s\n", v.RelativeTime)
			fmt.Fprintf(w, "Image:\t%s\n", v.Image)
			fmt.Fprintf(w, "Claim:\t%s\n", out.Claim)
			return w.Flush()
		},
	}
}

func (c commands) claimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim an item",
		Long: `Claim an item.

A found item is claimed by its owner and moves to analysis.
A lost item is marked as found by whoever has it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.uc.Claim(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Claimed %s (%s): %s, status %s\n",
				out.Item.ID, out.Item.Name, out.Kind, item.StatusLabel(out.Item.Status))
			return nil
		},
	}
}

func (c commands) printTable(views []item.View) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tCATEGORY\tCOLOR\tREGISTERED")
		for _, v := range views {
		marker := ""
		if v.IsNew {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Name, marker, v.Type, item.StatusLabel(v.Status), v.Category, v.Color, v.RelativeTime)
	}
	_ = w.Flush()
}
