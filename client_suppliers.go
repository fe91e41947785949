package pharmaclient

import (
	"context"
	"encoding/json"
)

/*
====================================
SUPPLIERS
====================================
*/

// ListSuppliers lists suppliers.
func (c *Client) ListSuppliers(ctx context.Context, params SupplierListParams) ([]Supplier, error) {
	query := map[string]string{
		"search":    params.Search,
		"ordering":  params.Ordering,
		"is_active": params.IsActive,
	}
	return getList[Supplier](ctx, c, endpointSuppliers, query)
}

// GetSupplier fetches one supplier.
func (c *Client) GetSupplier(ctx context.Context, id string) (Supplier, error) {
	return getJSON[Supplier](ctx, c, detailPath(endpointSuppliers, id), nil)
}

// CreateSupplier creates a supplier.
func (c *Client) CreateSupplier(ctx context.Context, payload SupplierCreatePayload) (Supplier, error) {
	return postJSON[Supplier](ctx, c, endpointSuppliers, payload)
}

// UpdateSupplier partially updates a supplier.
func (c *Client) UpdateSupplier(ctx context.Context, id string, payload SupplierUpdatePayload) (Supplier, error) {
	return patchJSON[Supplier](ctx, c, detailPath(endpointSuppliers, id), payload)
}

// DeleteSupplier deletes a supplier.
func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointSuppliers, id))
}

// ListSupplierPurchases lists the purchase orders placed with one
// supplier.
func (c *Client) ListSupplierPurchases(ctx context.Context, id string) ([]Purchase, error) {
	return getList[Purchase](ctx, c, detailPath(endpointSuppliers, id)+"purchases/", nil)
}

// ListSupplierMedicines lists the medicines sourced from one supplier.
func (c *Client) ListSupplierMedicines(ctx context.Context, id string) ([]Medicine, error) {
	return getList[Medicine](ctx, c, detailPath(endpointSuppliers, id)+"medicines/", nil)
}

// GetSupplierStatistics fetches the supplier's purchase statistics as
// raw JSON.
func (c *Client) GetSupplierStatistics(ctx context.Context, id string) (json.RawMessage, error) {
	return getJSON[json.RawMessage](ctx, c, detailPath(endpointSuppliers, id)+"statistics/", nil)
}

/*
====================================
PURCHASES
====================================
*/

// ListPurchases lists purchase orders.
func (c *Client) ListPurchases(ctx context.Context, params PurchaseListParams) ([]Purchase, error) {
	query := map[string]string{
		"supplier":       params.Supplier,
		"payment_status": params.PaymentStatus,
		"start_date":     params.StartDate,
		"end_date":       params.EndDate,
		"search":         params.Search,
		"ordering":       params.Ordering,
	}
	return getList[Purchase](ctx, c, endpointPurchases, query)
}

// GetPurchase fetches one purchase order.
func (c *Client) GetPurchase(ctx context.Context, id string) (Purchase, error) {
	return getJSON[Purchase](ctx, c, detailPath(endpointPurchases, id), nil)
}

// CreatePurchase creates a purchase order together with its items.
func (c *Client) CreatePurchase(ctx context.Context, payload PurchaseCreatePayload) (Purchase, error) {
	return postJSON[Purchase](ctx, c, endpointPurchasesCreateWithItems, payload)
}

// UpdatePurchase partially updates a purchase order.
func (c *Client) UpdatePurchase(ctx context.Context, id string, payload PurchaseUpdatePayload) (Purchase, error) {
	return patchJSON[Purchase](ctx, c, detailPath(endpointPurchases, id), payload)
}

// DeletePurchase deletes a purchase order.
func (c *Client) DeletePurchase(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointPurchases, id))
}

// ReceivePurchaseItems records received quantities against a purchase
// order, moving them into stock.
func (c *Client) ReceivePurchaseItems(ctx context.Context, id string, payload ReceiveItemsPayload) (Purchase, error) {
	return postJSON[Purchase](ctx, c, detailPath(endpointPurchases, id)+"receive_items/", payload)
}

// UpdatePurchasePaymentStatus sets the payment status of a purchase
// order.
func (c *Client) UpdatePurchasePaymentStatus(ctx context.Context, id string, payload UpdatePaymentStatusPayload) (Purchase, error) {
	return patchJSON[Purchase](ctx, c, detailPath(endpointPurchases, id)+"update_payment_status/", payload)
}

// ListPendingPaymentPurchases lists purchase orders with outstanding
// balances.
func (c *Client) ListPendingPaymentPurchases(ctx context.Context) ([]Purchase, error) {
	return getList[Purchase](ctx, c, endpointPurchasesPendingPayments, nil)
}

// GetPurchaseDashboardStats fetches the purchasing dashboard summary as
// raw JSON.
func (c *Client) GetPurchaseDashboardStats(ctx context.Context) (json.RawMessage, error) {
	return getJSON[json.RawMessage](ctx, c, endpointPurchasesDashboardStats, nil)
}

/*
====================================
PURCHASE ITEMS
====================================
*/

// ListPurchaseItems lists purchase order lines.
func (c *Client) ListPurchaseItems(ctx context.Context, params PurchaseItemListParams) ([]PurchaseItem, error) {
	query := map[string]string{
		"purchase": params.Purchase,
		"medicine": params.Medicine,
	}
	return getList[PurchaseItem](ctx, c, endpointPurchaseItems, query)
}

// GetPurchaseItem fetches one purchase order line.
func (c *Client) GetPurchaseItem(ctx context.Context, id string) (PurchaseItem, error) {
	return getJSON[PurchaseItem](ctx, c, detailPath(endpointPurchaseItems, id), nil)
}
