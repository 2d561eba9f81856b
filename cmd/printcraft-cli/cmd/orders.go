package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect print orders",
}

var ordersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List print orders",
	Args:    cobra.NoArgs,
	Run:     runOrdersList,
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a print order",
	Args:  cobra.ExactArgs(1),
	Run:   runOrdersGet,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersGetCmd)
}

func runOrdersList(cmd *cobra.Command, args []string) {
	orders, err := apiClient().ListPrintOrders(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESIGN\tQTY\tSIZE\tPAPER\tFINISH\tPRICE\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.DesignID, o.Quantity, o.Size, o.PaperType, o.FinishType, formatCents(o.Price), o.Status)
	}
	w.Flush()
}

func runOrdersGet(cmd *cobra.Command, args []string) {
	order, err := apiClient().GetPrintOrder(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ID:       %s\n", order.ID)
	fmt.Printf("Design:   %s\n", order.DesignID)
	fmt.Printf("Quantity: %d\n", order.Quantity)
	fmt.Printf("Size:     %s\n", order.Size)
	fmt.Printf("Paper:    %s\n", order.PaperType)
	fmt.Printf("Finish:   %s\n", order.FinishType)
	fmt.Printf("Price:    %s\n", formatCents(order.Price))
	fmt.Printf("Status:   %s\n", order.Status)
	fmt.Printf("Created:  %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))
}

// formatCents renders a minor-unit price as a decimal amount.
func formatCents(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
