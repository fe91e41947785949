package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales reports",
	}
	cmd.AddCommand(newSalesDailySummaryCmd())
	cmd.AddCommand(newSalesTopSellingCmd())
	return cmd
}

func newSalesDailySummaryCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily-summary",
		Short: "Show one day's sales totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := client.GetDailySummary(cmd.Context(), date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date:    %s\n", summary.Date)
			fmt.Fprintf(out, "Sales:   %d\n", summary.TotalSales)
			fmt.Fprintf(out, "Revenue: %s\n", summary.TotalRevenue)
			fmt.Fprintf(out, "Profit:  %s\n", summary.TotalProfit)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to summarize as YYYY-MM-DD (default today)")
	return cmd
}

func newSalesTopSellingCmd() *cobra.Command {
	var days, limit int

	cmd := &cobra.Command{
		Use:   "top-selling",
		Short: "Show the best selling medicines",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := client.GetTopSelling(cmd.Context(), days, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MEDICINE\tQUANTITY\tREVENUE")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%d\t%s\n", row.MedicineName, row.TotalQuantity, row.TotalRevenue)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "reporting window in days")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of rows")
	return cmd
}
