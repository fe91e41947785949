package pharmaclient

// Backend endpoint paths, relative to the configured base URL. Trailing
// slashes are significant: the backend redirects without them and the
// redirect drops the Authorization header.
const (
	endpointAuthLogin       = "/api/auth/login/"
	endpointAuthRegister    = "/api/auth/register/"
	endpointAuthRefresh     = "/api/auth/jwt/refresh/"
	endpointAuthVerify      = "/api/auth/jwt/verify/"
	endpointAuthLogout      = "/api/auth/logout/"
	endpointAuthMe          = "/api/auth/users/me/"
	endpointAuthSetPassword = "/api/auth/users/set_password/"

	endpointUsers         = "/api/users/"
	endpointUsersAuthInfo = "/api/users/auth_info/"

	endpointRoles       = "/api/auth/roles/"
	endpointPermissions = "/api/auth/permissions/"

	endpointCategories              = "/api/categories/"
	endpointMedicines               = "/api/medicines/"
	endpointMedicinesLowStock       = "/api/medicines/low_stock/"
	endpointMedicinesExpiringSoon   = "/api/medicines/expiring_soon/"
	endpointMedicinesExpired        = "/api/medicines/expired/"
	endpointMedicinesDashboardStats = "/api/medicines/dashboard_stats/"

	endpointStockTransactions        = "/api/stock-transactions/"
	endpointStockTransactionsSummary = "/api/stock-transactions/summary/"

	endpointSuppliers = "/api/suppliers/"

	endpointPurchases                = "/api/purchases/"
	endpointPurchasesCreateWithItems = "/api/purchases/create_with_items/"
	endpointPurchasesPendingPayments = "/api/purchases/pending_payments/"
	endpointPurchasesDashboardStats  = "/api/purchases/dashboard_stats/"

	endpointPurchaseItems = "/api/purchase-items/"

	endpointCustomers = "/api/customers/"

	endpointSales                = "/api/sales/"
	endpointSalesCreateWithItems = "/api/sales/create_with_items/"
	endpointSalesDailySummary    = "/api/sales/daily_summary/"
	endpointSalesTopSelling      = "/api/sales/top_selling/"

	endpointPayments = "/api/payments/"
)
