package pharmaclient

import (
	"context"
	"encoding/json"
	"strconv"
)

func (p ListParams) values() map[string]string {
	return map[string]string{
		"search":    p.Search,
		"ordering":  p.Ordering,
		"is_active": p.IsActive,
		"page":      p.Page,
	}
}

func (p MedicineListParams) values() map[string]string {
	query := p.ListParams.values()
	query["category"] = p.Category
	query["supplier"] = p.Supplier
	query["requires_prescription"] = p.RequiresPrescription
	query["stock_status"] = p.StockStatus
	query["expiry_status"] = p.ExpiryStatus
	return query
}

/*
====================================
CATEGORIES
====================================
*/

// ListCategories lists categories.
func (c *Client) ListCategories(ctx context.Context, params ListParams) ([]Category, error) {
	return getList[Category](ctx, c, endpointCategories, params.values())
}

// GetCategory fetches one category.
func (c *Client) GetCategory(ctx context.Context, id string) (Category, error) {
	return getJSON[Category](ctx, c, detailPath(endpointCategories, id), nil)
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, payload CategoryCreatePayload) (Category, error) {
	return postJSON[Category](ctx, c, endpointCategories, payload)
}

// UpdateCategory partially updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, payload CategoryUpdatePayload) (Category, error) {
	return patchJSON[Category](ctx, c, detailPath(endpointCategories, id), payload)
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointCategories, id))
}

// ListCategoryMedicines lists the medicines in one category.
func (c *Client) ListCategoryMedicines(ctx context.Context, id string) ([]Medicine, error) {
	return getList[Medicine](ctx, c, detailPath(endpointCategories, id)+"medicines/", nil)
}

/*
====================================
MEDICINES
====================================
*/

// ListMedicines lists medicines.
func (c *Client) ListMedicines(ctx context.Context, params MedicineListParams) ([]Medicine, error) {
	return getList[Medicine](ctx, c, endpointMedicines, params.values())
}

// GetMedicine fetches one medicine.
func (c *Client) GetMedicine(ctx context.Context, id string) (Medicine, error) {
	return getJSON[Medicine](ctx, c, detailPath(endpointMedicines, id), nil)
}

// CreateMedicine creates a medicine.
func (c *Client) CreateMedicine(ctx context.Context, payload MedicineCreatePayload) (Medicine, error) {
	return postJSON[Medicine](ctx, c, endpointMedicines, payload)
}

// UpdateMedicine partially updates a medicine.
func (c *Client) UpdateMedicine(ctx context.Context, id string, payload MedicineUpdatePayload) (Medicine, error) {
	return patchJSON[Medicine](ctx, c, detailPath(endpointMedicines, id), payload)
}

// DeleteMedicine deletes a medicine.
func (c *Client) DeleteMedicine(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointMedicines, id))
}

// ListLowStockMedicines lists medicines at or below their minimum
// stock level.
func (c *Client) ListLowStockMedicines(ctx context.Context) ([]Medicine, error) {
	return getList[Medicine](ctx, c, endpointMedicinesLowStock, nil)
}

// ListExpiringSoonMedicines lists medicines expiring within the given
// number of days.
func (c *Client) ListExpiringSoonMedicines(ctx context.Context, days int) ([]Medicine, error) {
	if days <= 0 {
		days = 30
	}
	query := map[string]string{"days": strconv.Itoa(days)}
	return getList[Medicine](ctx, c, endpointMedicinesExpiringSoon, query)
}

// ListExpiredMedicines lists medicines past their expiry date.
func (c *Client) ListExpiredMedicines(ctx context.Context) ([]Medicine, error) {
	return getList[Medicine](ctx, c, endpointMedicinesExpired, nil)
}

// AdjustStock changes a medicine's stock quantity and logs the reason.
func (c *Client) AdjustStock(ctx context.Context, id string, payload StockAdjustment) (Medicine, error) {
	return postJSON[Medicine](ctx, c, detailPath(endpointMedicines, id)+"adjust_stock/", payload)
}

// GetDashboardStats fetches the inventory dashboard summary.
func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	return getJSON[DashboardStats](ctx, c, endpointMedicinesDashboardStats, nil)
}

/*
====================================
STOCK TRANSACTIONS
====================================
*/

// ListStockTransactions lists entries of the stock movement log.
func (c *Client) ListStockTransactions(ctx context.Context, params StockTransactionParams) ([]StockTransaction, error) {
	query := map[string]string{
		"medicine":         params.Medicine,
		"transaction_type": params.TransactionType,
		"created_by":       params.CreatedBy,
		"start_date":       params.StartDate,
		"end_date":         params.EndDate,
	}
	return getList[StockTransaction](ctx, c, endpointStockTransactions, query)
}

// GetStockTransaction fetches one stock movement entry.
func (c *Client) GetStockTransaction(ctx context.Context, id string) (StockTransaction, error) {
	return getJSON[StockTransaction](ctx, c, detailPath(endpointStockTransactions, id), nil)
}

// GetStockTransactionSummary fetches aggregated movement figures for an
// optional date range. The backend's shape varies by filter, so the raw
// JSON is returned.
func (c *Client) GetStockTransactionSummary(ctx context.Context, startDate, endDate string) (json.RawMessage, error) {
	query := map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	}
	return getJSON[json.RawMessage](ctx, c, endpointStockTransactionsSummary, query)
}
