package pharmaclient

import (
	"context"
	"encoding/json"
	"strconv"
)

/*
====================================
CUSTOMERS
====================================
*/

// ListCustomers lists customers.
func (c *Client) ListCustomers(ctx context.Context, params CustomerListParams) ([]Customer, error) {
	query := map[string]string{
		"gender":   params.Gender,
		"search":   params.Search,
		"ordering": params.Ordering,
	}
	return getList[Customer](ctx, c, endpointCustomers, query)
}

// GetCustomer fetches one customer.
func (c *Client) GetCustomer(ctx context.Context, id string) (Customer, error) {
	return getJSON[Customer](ctx, c, detailPath(endpointCustomers, id), nil)
}

// CreateCustomer creates a customer.
func (c *Client) CreateCustomer(ctx context.Context, payload CustomerCreatePayload) (Customer, error) {
	return postJSON[Customer](ctx, c, endpointCustomers, payload)
}

// UpdateCustomer partially updates a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, payload CustomerUpdatePayload) (Customer, error) {
	return patchJSON[Customer](ctx, c, detailPath(endpointCustomers, id), payload)
}

// DeleteCustomer deletes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointCustomers, id))
}

// GetCustomerPurchaseHistory lists a customer's past sales.
func (c *Client) GetCustomerPurchaseHistory(ctx context.Context, id string) ([]Sale, error) {
	return getList[Sale](ctx, c, detailPath(endpointCustomers, id)+"purchase_history/", nil)
}

// GetCustomerLoyaltySummary fetches a customer's loyalty summary as raw
// JSON.
func (c *Client) GetCustomerLoyaltySummary(ctx context.Context, id string) (json.RawMessage, error) {
	return getJSON[json.RawMessage](ctx, c, detailPath(endpointCustomers, id)+"loyalty_summary/", nil)
}

// AddLoyaltyPoints grants loyalty points to a customer.
func (c *Client) AddLoyaltyPoints(ctx context.Context, id string, payload AddLoyaltyPointsPayload) (Customer, error) {
	return postJSON[Customer](ctx, c, detailPath(endpointCustomers, id)+"add_loyalty_points/", payload)
}

/*
====================================
SALES
====================================
*/

// ListSales lists sales.
func (c *Client) ListSales(ctx context.Context, params SaleListParams) ([]Sale, error) {
	query := map[string]string{
		"customer":       params.Customer,
		"payment_method": params.PaymentMethod,
		"payment_status": params.PaymentStatus,
		"served_by":      params.ServedBy,
		"start_date":     params.StartDate,
		"end_date":       params.EndDate,
		"search":         params.Search,
		"ordering":       params.Ordering,
	}
	return getList[Sale](ctx, c, endpointSales, query)
}

// GetSale fetches one sale.
func (c *Client) GetSale(ctx context.Context, id string) (Sale, error) {
	return getJSON[Sale](ctx, c, detailPath(endpointSales, id), nil)
}

// CreateSale creates a sale together with its items and an optional
// immediate payment.
func (c *Client) CreateSale(ctx context.Context, payload SaleCreatePayload) (Sale, error) {
	return postJSON[Sale](ctx, c, endpointSalesCreateWithItems, payload)
}

// UpdateSale partially updates a sale.
func (c *Client) UpdateSale(ctx context.Context, id string, payload SaleUpdatePayload) (Sale, error) {
	return patchJSON[Sale](ctx, c, detailPath(endpointSales, id), payload)
}

// DeleteSale deletes a sale.
func (c *Client) DeleteSale(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointSales, id))
}

// ProcessPayment records a payment against a sale.
func (c *Client) ProcessPayment(ctx context.Context, id string, payload ProcessPaymentPayload) (Sale, error) {
	return postJSON[Sale](ctx, c, detailPath(endpointSales, id)+"process_payment/", payload)
}

// RefundSale refunds all or part of a sale.
func (c *Client) RefundSale(ctx context.Context, id string, payload RefundPayload) (Sale, error) {
	return postJSON[Sale](ctx, c, detailPath(endpointSales, id)+"refund/", payload)
}

// GetDailySummary aggregates sales for a day. An empty date means
// today.
func (c *Client) GetDailySummary(ctx context.Context, date string) (DailySummary, error) {
	query := map[string]string{"date": date}
	return getJSON[DailySummary](ctx, c, endpointSalesDailySummary, query)
}

// GetTopSelling lists the best-selling medicines over the given window.
func (c *Client) GetTopSelling(ctx context.Context, days, limit int) ([]TopSellingMedicine, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 {
		limit = 10
	}
	query := map[string]string{
		"days":  strconv.Itoa(days),
		"limit": strconv.Itoa(limit),
	}
	return getList[TopSellingMedicine](ctx, c, endpointSalesTopSelling, query)
}

/*
====================================
PAYMENTS
====================================
*/

// ListPayments lists recorded payments.
func (c *Client) ListPayments(ctx context.Context, params PaymentListParams) ([]Payment, error) {
	query := map[string]string{
		"sale":           params.Sale,
		"payment_method": params.PaymentMethod,
		"received_by":    params.ReceivedBy,
		"ordering":       params.Ordering,
	}
	return getList[Payment](ctx, c, endpointPayments, query)
}

// GetPayment fetches one payment.
func (c *Client) GetPayment(ctx context.Context, id string) (Payment, error) {
	return getJSON[Payment](ctx, c, detailPath(endpointPayments, id), nil)
}
