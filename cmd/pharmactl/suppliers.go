package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rxdeskhq/pharmaclient"
)

func newSuppliersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "Inspect suppliers and their purchases",
	}
	cmd.AddCommand(newSuppliersListCmd())
	cmd.AddCommand(newSuppliersPendingCmd())
	return cmd
}

func newSuppliersListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			suppliers, err := client.ListSuppliers(cmd.Context(), pharmaclient.SupplierListParams{
				Search: search,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCONTACT\tPHONE\tACTIVE")
			for _, s := range suppliers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", s.Name, deref(s.ContactPerson), s.Phone, s.IsActive)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search by name or contact")
	return cmd
}

func newSuppliersPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending-payments",
		Short: "List purchases awaiting payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			purchases, err := client.ListPendingPaymentPurchases(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PURCHASE\tSUPPLIER\tTOTAL\tSTATUS")
			for _, p := range purchases {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.InvoiceNumber, p.SupplierName, p.TotalAmount, p.PaymentStatus)
			}
			return w.Flush()
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
