package pharmaclient

/*
====================================
SUPPLIERS
====================================
*/

// Supplier is a medicine supplier.
type Supplier struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	ContactPerson        *string `json:"contact_person"`
	Phone                string  `json:"phone"`
	Email                *string `json:"email"`
	Address              *string `json:"address"`
	TaxID                *string `json:"tax_id"`
	IsActive             bool    `json:"is_active"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
	TotalPurchases       string  `json:"total_purchases"`
	ActiveMedicinesCount int     `json:"active_medicines_count"`
}

// SupplierCreatePayload creates a supplier.
type SupplierCreatePayload struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	TaxID         string `json:"tax_id,omitempty"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

// SupplierUpdatePayload partially updates a supplier.
type SupplierUpdatePayload = SupplierCreatePayload

/*
====================================
PURCHASES
====================================
*/

// PurchaseItem is one line of a purchase order.
type PurchaseItem struct {
	ID                string `json:"id"`
	Medicine          string `json:"medicine"`
	MedicineName      string `json:"medicine_name"`
	MedicineDisplayID string `json:"medicine_display_id"`
	Quantity          int    `json:"quantity"`
	UnitPrice         string `json:"unit_price"`
	DiscountPercent   string `json:"discount_percent"`
	TaxPercent        string `json:"tax_percent"`
	Subtotal          string `json:"subtotal"`
	ReceivedQuantity  int    `json:"received_quantity"`
}

// Purchase is a purchase order with its items.
type Purchase struct {
	ID                string         `json:"id"`
	Supplier          string         `json:"supplier"`
	SupplierName      string         `json:"supplier_name"`
	InvoiceNumber     string         `json:"invoice_number"`
	PurchaseDate      string         `json:"purchase_date"`
	TotalAmount       string         `json:"total_amount"`
	TaxAmount         string         `json:"tax_amount"`
	DiscountAmount    string         `json:"discount_amount"`
	NetAmount         string         `json:"net_amount"`
	PaymentStatus     string         `json:"payment_status"`
	Notes             *string        `json:"notes"`
	CreatedBy         string         `json:"created_by"`
	CreatedByUsername string         `json:"created_by_username"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
	Items             []PurchaseItem `json:"items"`
	AmountPaid        string         `json:"amount_paid"`
	AmountDue         string         `json:"amount_due"`
}

// PurchaseItemPayload is one line of a new purchase order.
type PurchaseItemPayload struct {
	Medicine        string `json:"medicine"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	TaxPercent      string `json:"tax_percent,omitempty"`
}

// PurchaseCreatePayload creates a purchase order with its items.
type PurchaseCreatePayload struct {
	Supplier       string                `json:"supplier"`
	InvoiceNumber  string                `json:"invoice_number"`
	PurchaseDate   string                `json:"purchase_date"`
	TaxAmount      string                `json:"tax_amount,omitempty"`
	DiscountAmount string                `json:"discount_amount,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	Items          []PurchaseItemPayload `json:"items"`
}

// PurchaseUpdatePayload partially updates a purchase order.
type PurchaseUpdatePayload struct {
	InvoiceNumber  string `json:"invoice_number,omitempty"`
	PurchaseDate   string `json:"purchase_date,omitempty"`
	TaxAmount      string `json:"tax_amount,omitempty"`
	DiscountAmount string `json:"discount_amount,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ReceivedItem records a received quantity for one purchase item.
type ReceivedItem struct {
	ItemID           string `json:"item_id"`
	ReceivedQuantity int    `json:"received_quantity"`
}

// ReceiveItemsPayload marks purchase items as received, which moves
// their quantities into stock.
type ReceiveItemsPayload struct {
	Items []ReceivedItem `json:"items"`
}

// UpdatePaymentStatusPayload sets the payment status of a purchase.
type UpdatePaymentStatusPayload struct {
	PaymentStatus string `json:"payment_status"`
}

/*
====================================
LIST PARAMS
====================================
*/

// SupplierListParams filters the supplier list.
type SupplierListParams struct {
	Search   string
	Ordering string
	IsActive string
}

// PurchaseListParams filters the purchase list.
type PurchaseListParams struct {
	Supplier      string
	PaymentStatus string
	StartDate     string
	EndDate       string
	Search        string
	Ordering      string
}

// PurchaseItemListParams filters the purchase item list.
type PurchaseItemListParams struct {
	Purchase string
	Medicine string
}
