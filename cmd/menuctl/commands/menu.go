package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eatwithmaddie/menu-backend/internal/app"
	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/menu"
	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/order"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
)

func (c *CLI) newDailyCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Load and print today's menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(func(a *app.App) error {
				snap, err := a.Menus.Daily(cmd.Context())
				if err != nil {
					return err
				}
				return c.printSnapshot(snap, asJSON)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the load result as JSON")
	return cmd
}

func (c *CLI) newFullCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "full",
		Short: "Load and print the full on-demand menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(func(a *app.App) error {
				snap, err := a.Menus.Full(cmd.Context())
				if err != nil {
					return err
				}
				return c.printSnapshot(snap, asJSON)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the load result as JSON")
	return cmd
}

func (c *CLI) printSnapshot(snap repository.Snapshot, asJSON bool) error {
	if asJSON {
		return c.writeJSON(snap.Result)
	}

	res := snap.Result
	fmt.Fprintf(c.out, "source: %s (%d rows)\n", res.Source, len(res.Rows))
	if res.Warning != "" {
		fmt.Fprintf(c.out, "%s %s\n", i18n.For(i18n.DefaultLanguage).FallbackNotice, res.Warning)
	}
	printRows(c.out, res.Rows)
	return nil
}

// printRows writes rows grouped by category
func printRows(w io.Writer, rows []models.MenuRow) {
	for _, group := range menu.GroupByCategory(rows) {
		fmt.Fprintf(w, "\n%s\n", group.Category)
		for _, row := range group.Rows {
			flag := ""
			if row.OnDemand {
				flag = " [on demand]"
			}
			fmt.Fprintf(w, "  %-8s %s%s  %s\n", row.ID, row.Dish, flag, order.FormatFCFA(row.Price))
		}
	}
}
