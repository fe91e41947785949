package pharmaclient

/*
====================================
CUSTOMERS
====================================
*/

// Customer genders accepted by the backend.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Other"
)

// Customer is a pharmacy customer with loyalty tracking.
type Customer struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         string  `json:"gender"`
	LoyaltyPoints  int     `json:"loyalty_points"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	TotalPurchases int     `json:"total_purchases"`
	TotalSpent     string  `json:"total_spent"`
}

// CustomerCreatePayload creates a customer.
type CustomerCreatePayload struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender"`
}

// CustomerUpdatePayload partially updates a customer.
type CustomerUpdatePayload struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// AddLoyaltyPointsPayload grants loyalty points to a customer.
type AddLoyaltyPointsPayload struct {
	Points int `json:"points"`
}

/*
====================================
SALES
====================================
*/

// Payment methods accepted by the backend.
const (
	PaymentCash      = "cash"
	PaymentCard      = "card"
	PaymentMobile    = "mobile"
	PaymentInsurance = "insurance"
	PaymentCredit    = "credit"
)

// Payment statuses reported by the backend.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusPending = "pending"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	ID           string `json:"id"`
	Medicine     string `json:"medicine"`
	MedicineName string `json:"medicine_name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	BatchNumber  string `json:"batch_number"`
	Subtotal     string `json:"subtotal"`
}

// Payment is one payment recorded against a sale.
type Payment struct {
	ID                   string  `json:"id"`
	PaymentID            string  `json:"payment_id"`
	Sale                 string  `json:"sale"`
	Amount               string  `json:"amount"`
	PaymentMethod        string  `json:"payment_method"`
	PaymentMethodDisplay string  `json:"payment_method_display"`
	PaymentDate          string  `json:"payment_date"`
	TransactionRef       *string `json:"transaction_ref"`
	ReceivedBy           string  `json:"received_by"`
	ReceivedByUsername   string  `json:"received_by_username"`
	Notes                *string `json:"notes"`
	CreatedAt            string  `json:"created_at"`
}

// Sale is an invoice with its items and payments.
type Sale struct {
	ID               string     `json:"id"`
	Customer         *string    `json:"customer"`
	CustomerName     string     `json:"customer_name"`
	InvoiceNumber    string     `json:"invoice_number"`
	SaleDate         string     `json:"sale_date"`
	TotalAmount      string     `json:"total_amount"`
	TaxAmount        string     `json:"tax_amount"`
	DiscountAmount   string     `json:"discount_amount"`
	NetAmount        string     `json:"net_amount"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentStatus    string     `json:"payment_status"`
	ServedBy         string     `json:"served_by"`
	ServedByUsername string     `json:"served_by_username"`
	Notes            *string    `json:"notes"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
	Items            []SaleItem `json:"items"`
	Payments         []Payment  `json:"payments"`
	TotalPaid        string     `json:"total_paid"`
	AmountDue        string     `json:"amount_due"`
	TotalProfit      string     `json:"total_profit"`
}

// SaleItemPayload is one line of a new sale.
type SaleItemPayload struct {
	Medicine    string `json:"medicine"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	BatchNumber string `json:"batch_number"`
}

// SaleCreatePayload creates a sale with its items, optionally taking an
// immediate payment.
type SaleCreatePayload struct {
	Customer       string            `json:"customer,omitempty"`
	SaleDate       string            `json:"sale_date,omitempty"`
	TaxAmount      string            `json:"tax_amount,omitempty"`
	DiscountAmount string            `json:"discount_amount,omitempty"`
	PaymentMethod  string            `json:"payment_method"`
	Notes          string            `json:"notes,omitempty"`
	Items          []SaleItemPayload `json:"items"`
	PaymentAmount  string            `json:"payment_amount,omitempty"`
	TransactionRef string            `json:"transaction_ref,omitempty"`
}

// SaleUpdatePayload partially updates a sale.
type SaleUpdatePayload struct {
	Customer       string `json:"customer,omitempty"`
	SaleDate       string `json:"sale_date,omitempty"`
	TaxAmount      string `json:"tax_amount,omitempty"`
	DiscountAmount string `json:"discount_amount,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ProcessPaymentPayload records a payment against a sale.
type ProcessPaymentPayload struct {
	Amount         string `json:"amount"`
	PaymentMethod  string `json:"payment_method"`
	TransactionRef string `json:"transaction_ref,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// RefundItem names a sale item and quantity to refund.
type RefundItem struct {
	SaleItemID string `json:"sale_item_id"`
	Quantity   int    `json:"quantity"`
}

// RefundPayload refunds all or part of a sale.
type RefundPayload struct {
	RefundAmount  string       `json:"refund_amount"`
	Reason        string       `json:"reason"`
	ItemsToRefund []RefundItem `json:"items_to_refund,omitempty"`
}

// DailySummary aggregates one day of sales.
type DailySummary struct {
	Date         string `json:"date"`
	TotalSales   int    `json:"total_sales"`
	TotalRevenue string `json:"total_revenue"`
	TotalProfit  string `json:"total_profit"`
}

// TopSellingMedicine is one row of the top sellers report.
type TopSellingMedicine struct {
	MedicineID    string `json:"medicine_id"`
	MedicineName  string `json:"medicine_name"`
	TotalQuantity int    `json:"total_quantity"`
	TotalRevenue  string `json:"total_revenue"`
}

/*
====================================
LIST PARAMS
====================================
*/

// CustomerListParams filters the customer list.
type CustomerListParams struct {
	Gender   string
	Search   string
	Ordering string
}

// SaleListParams filters the sale list.
type SaleListParams struct {
	Customer      string
	PaymentMethod string
	PaymentStatus string
	ServedBy      string
	StartDate     string
	EndDate       string
	Search        string
	Ordering      string
}

// PaymentListParams filters the payment list.
type PaymentListParams struct {
	Sale          string
	PaymentMethod string
	ReceivedBy    string
	Ordering      string
}
