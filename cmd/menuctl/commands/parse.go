package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eatwithmaddie/menu-backend/internal/menu"
)

func (c *CLI) newParseCmd() *cobra.Command {
	var (
		opts   menu.ParseOptions
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse and normalize a local CSV export of a menu sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			raw, err := menu.ParseCSV(string(data), opts)
			if err != nil {
				return err
			}
			rows := menu.Normalize(raw)

			if asJSON {
				return c.writeJSON(rows)
			}
			fmt.Fprintf(c.out, "%d of %d rows kept\n", len(rows), len(raw))
			printRows(c.out, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.DefaultOnDemand, "on-demand", false, "Mark rows on demand when the file has no on_demand column")
	cmd.Flags().StringVar(&opts.DefaultCategory, "category", "", "Category for rows when the file has no category column")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the normalized rows as JSON")
	return cmd
}
