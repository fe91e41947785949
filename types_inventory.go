package pharmaclient

/*
====================================
CATEGORIES
====================================
*/

// Category groups medicines for catalog and reporting purposes.
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Code          string `json:"code"`
	DisplayOrder  int    `json:"display_order"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
	MedicineCount int    `json:"medicine_count"`
}

// CategoryCreatePayload creates a category.
type CategoryCreatePayload struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Code         string `json:"code,omitempty"`
	DisplayOrder *int   `json:"display_order,omitempty"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// CategoryUpdatePayload partially updates a category.
type CategoryUpdatePayload = CategoryCreatePayload

/*
====================================
MEDICINES
====================================
*/

// Medicine is a stocked item. Money fields are decimal strings exactly
// as the backend sends them; parse with a decimal library, never float.
type Medicine struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	GenericName          string  `json:"generic_name"`
	Category             string  `json:"category"`
	CategoryName         string  `json:"category_name"`
	Supplier             string  `json:"supplier"`
	SupplierName         string  `json:"supplier_name"`
	BatchNumber          string  `json:"batch_number"`
	ManufactureDate      string  `json:"manufacture_date"`
	ExpiryDate           string  `json:"expiry_date"`
	PurchasePrice        string  `json:"purchase_price"`
	SellingPrice         string  `json:"selling_price"`
	MarkupPercentage     *string `json:"markup_percentage"`
	StockQuantity        int     `json:"stock_quantity"`
	MinStockLevel        int     `json:"min_stock_level"`
	MaxStockLevel        int     `json:"max_stock_level"`
	Unit                 string  `json:"unit"`
	StorageLocation      *string `json:"storage_location"`
	Barcode              *string `json:"barcode"`
	RequiresPrescription bool    `json:"requires_prescription"`
	IsActive             bool    `json:"is_active"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
	ProfitPerUnit        string  `json:"profit_per_unit"`
	DaysToExpiry         int     `json:"days_to_expiry"`
}

// Medicine units accepted by the backend.
const (
	UnitPieces   = "pieces"
	UnitTablets  = "tablets"
	UnitCapsules = "capsules"
	UnitBottles  = "bottles"
	UnitBoxes    = "boxes"
	UnitStrips   = "strips"
	UnitVials    = "vials"
	UnitTubes    = "tubes"
	UnitSachets  = "sachets"
)

// MedicineCreatePayload creates a medicine.
type MedicineCreatePayload struct {
	Name                 string `json:"name"`
	GenericName          string `json:"generic_name"`
	Category             string `json:"category"`
	Supplier             string `json:"supplier"`
	BatchNumber          string `json:"batch_number"`
	ManufactureDate      string `json:"manufacture_date"`
	ExpiryDate           string `json:"expiry_date"`
	PurchasePrice        string `json:"purchase_price"`
	SellingPrice         string `json:"selling_price"`
	StockQuantity        int    `json:"stock_quantity"`
	MinStockLevel        int    `json:"min_stock_level"`
	MaxStockLevel        int    `json:"max_stock_level"`
	Unit                 string `json:"unit"`
	StorageLocation      string `json:"storage_location,omitempty"`
	Barcode              string `json:"barcode,omitempty"`
	RequiresPrescription *bool  `json:"requires_prescription,omitempty"`
	IsActive             *bool  `json:"is_active,omitempty"`
}

// MedicineUpdatePayload partially updates a medicine.
type MedicineUpdatePayload struct {
	Name                 string `json:"name,omitempty"`
	GenericName          string `json:"generic_name,omitempty"`
	Category             string `json:"category,omitempty"`
	Supplier             string `json:"supplier,omitempty"`
	BatchNumber          string `json:"batch_number,omitempty"`
	ManufactureDate      string `json:"manufacture_date,omitempty"`
	ExpiryDate           string `json:"expiry_date,omitempty"`
	PurchasePrice        string `json:"purchase_price,omitempty"`
	SellingPrice         string `json:"selling_price,omitempty"`
	StockQuantity        *int   `json:"stock_quantity,omitempty"`
	MinStockLevel        *int   `json:"min_stock_level,omitempty"`
	MaxStockLevel        *int   `json:"max_stock_level,omitempty"`
	Unit                 string `json:"unit,omitempty"`
	StorageLocation      string `json:"storage_location,omitempty"`
	Barcode              string `json:"barcode,omitempty"`
	RequiresPrescription *bool  `json:"requires_prescription,omitempty"`
	IsActive             *bool  `json:"is_active,omitempty"`
}

// Stock adjustment directions.
const (
	AdjustmentIncrease = "increase"
	AdjustmentDecrease = "decrease"
)

// StockAdjustment changes the stock quantity of a medicine and records
// the reason in the transaction log.
type StockAdjustment struct {
	AdjustmentType string `json:"adjustment_type"`
	Quantity       int    `json:"quantity"`
	Reason         string `json:"reason"`
}

// DashboardStats summarizes inventory health for the dashboard.
type DashboardStats struct {
	TotalMedicines    int    `json:"total_medicines"`
	LowStockCount     int    `json:"low_stock_count"`
	ExpiringSoonCount int    `json:"expiring_soon_count"`
	ExpiredCount      int    `json:"expired_count"`
	TotalValue        string `json:"total_value"`
}

/*
====================================
STOCK TRANSACTIONS
====================================
*/

// StockTransaction is one entry in the stock movement log.
type StockTransaction struct {
	ID                     string  `json:"id"`
	Medicine               string  `json:"medicine"`
	MedicineName           string  `json:"medicine_name"`
	TransactionType        string  `json:"transaction_type"`
	TransactionTypeDisplay string  `json:"transaction_type_display"`
	Quantity               int     `json:"quantity"`
	PreviousQuantity       int     `json:"previous_quantity"`
	NewQuantity            int     `json:"new_quantity"`
	ReferenceType          *string `json:"reference_type"`
	ReferenceID            *string `json:"reference_id"`
	Notes                  *string `json:"notes"`
	CreatedBy              string  `json:"created_by"`
	CreatedByUsername      string  `json:"created_by_username"`
	TransactionDate        string  `json:"transaction_date"`
}

/*
====================================
LIST PARAMS
====================================
*/

// ListParams are the filters shared by most list endpoints.
type ListParams struct {
	Search   string
	Ordering string
	IsActive string
	Page     string
}

// MedicineListParams filters the medicine list.
type MedicineListParams struct {
	ListParams
	Category             string
	Supplier             string
	RequiresPrescription string
	StockStatus          string
	ExpiryStatus         string
}

// StockTransactionParams filters the stock transaction log.
type StockTransactionParams struct {
	Medicine        string
	TransactionType string
	CreatedBy       string
	StartDate       string
	EndDate         string
}
