package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eatwithmaddie/menu-backend/internal/app"
	"github.com/eatwithmaddie/menu-backend/internal/i18n"
	"github.com/eatwithmaddie/menu-backend/internal/models"
)

func (c *CLI) newLinkCmd() *cobra.Command {
	var (
		kind     string
		items    []string
		zone     string
		lang     string
		customer models.Customer
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build the WhatsApp order link for a cart",
		Example: `  menuctl link --item item-1=2 --item item-4=1 --zone bonapriso --lang fr --name Awa
  menuctl link --menu full --item item-3=1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orderItems, err := parseItems(items)
			if err != nil {
				return err
			}
			req := models.OrderRequest{
				Menu:     models.MenuKind(kind),
				Items:    orderItems,
				ZoneID:   zone,
				Customer: customer,
			}

			return c.withApp(func(a *app.App) error {
				o, err := a.Orders.CreateOrder(cmd.Context(), req, i18n.Resolve(lang))
				if err != nil {
					return err
				}
				if asJSON {
					return c.writeJSON(o)
				}
				fmt.Fprintln(c.out, o.Message)
				fmt.Fprintln(c.out)
				fmt.Fprintln(c.out, o.Link)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "menu", string(models.MenuDaily), "Menu to order from (daily or full)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Cart entry as <item id>=<quantity>, repeatable")
	cmd.Flags().StringVar(&zone, "zone", "", "Delivery zone id (defaults to the first zone)")
	cmd.Flags().StringVar(&lang, "lang", string(i18n.DefaultLanguage), "Message language (en or fr)")
	cmd.Flags().StringVar(&customer.Name, "name", "", "Customer name")
	cmd.Flags().StringVar(&customer.Phone, "phone", "", "Customer phone number")
	cmd.Flags().StringVar(&customer.Address, "address", "", "Delivery address")
	cmd.Flags().StringVar(&customer.Notes, "notes", "", "Special instructions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the whole order as JSON")
	return cmd
}

// parseItems turns "item-1=2" flags into order items; a bare id means one
func parseItems(values []string) ([]models.OrderItem, error) {
	out := make([]models.OrderItem, 0, len(values))
	for _, v := range values {
		id, qty, found := strings.Cut(v, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid --item %q: missing item id", v)
		}
		quantity := 1
		if found {
			n, err := strconv.Atoi(strings.TrimSpace(qty))
			if err != nil {
				return nil, fmt.Errorf("invalid --item %q: quantity must be a number", v)
			}
			quantity = n
		}
		out = append(out, models.OrderItem{ItemID: id, Quantity: quantity})
	}
	return out, nil
}
