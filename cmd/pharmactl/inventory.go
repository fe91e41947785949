package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rxdeskhq/pharmaclient"
)

func newMedicinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medicines",
		Short: "Inspect the medicine inventory",
	}
	cmd.AddCommand(newMedicinesListCmd())
	cmd.AddCommand(newMedicinesLowStockCmd())
	cmd.AddCommand(newMedicinesExpiringCmd())
	cmd.AddCommand(newMedicinesStatsCmd())
	return cmd
}

func newMedicinesListCmd() *cobra.Command {
	var search, ordering string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List medicines",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			medicines, err := client.ListMedicines(cmd.Context(), pharmaclient.MedicineListParams{
				ListParams: pharmaclient.ListParams{Search: search, Ordering: ordering},
			})
			if err != nil {
				return err
			}
			return printMedicines(cmd, medicines)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search by name, generic name, or batch")
	cmd.Flags().StringVar(&ordering, "ordering", "", "sort field, prefix with - for descending")
	return cmd
}

func newMedicinesLowStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List medicines at or below their minimum stock level",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			medicines, err := client.ListLowStockMedicines(cmd.Context())
			if err != nil {
				return err
			}
			return printMedicines(cmd, medicines)
		},
	}
}

func newMedicinesExpiringCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "List medicines expiring within a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			medicines, err := client.ListExpiringSoonMedicines(cmd.Context(), days)
			if err != nil {
				return err
			}
			return printMedicines(cmd, medicines)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "expiry window in days")
	return cmd
}

func newMedicinesStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the inventory dashboard numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := client.GetDashboardStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total medicines: %d\n", stats.TotalMedicines)
			fmt.Fprintf(out, "Low stock:       %d\n", stats.LowStockCount)
			fmt.Fprintf(out, "Expiring soon:   %d\n", stats.ExpiringSoonCount)
			fmt.Fprintf(out, "Expired:         %d\n", stats.ExpiredCount)
			fmt.Fprintf(out, "Stock value:     %s\n", stats.TotalValue)
			return nil
		},
	}
}

func printMedicines(cmd *cobra.Command, medicines []pharmaclient.Medicine) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBATCH\tSTOCK\tMIN\tEXPIRY\tPRICE")
	for _, m := range medicines {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			m.Name, m.BatchNumber, m.StockQuantity, m.MinStockLevel, m.ExpiryDate, m.SellingPrice)
	}
	return w.Flush()
}
