package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

type DashboardSummary struct {
	TotalUsers         int    `json:"total_users"`
	TotalSignedInUsers int    `json:"total_signed_in_users"`
	TotalAdmins        int    `json:"total_admins"`
	TotalProducts      int    `json:"total_products"`
	TotalOrders        int    `json:"total_orders"`
	RecentUsers        []User `json:"recent_users"`
}

type AnalyticsSummary struct {
	RangeDays      int           `json:"range_days"`
	TotalRevenue   float64       `json:"total_revenue"`
	TotalOrders    int           `json:"total_orders"`
	AvgOrderValue  float64       `json:"avg_order_value"`
	ConversionRate float64       `json:"conversion_rate"`
	MonthlyData    []MonthlyStat `json:"monthly_data"`
	TopProducts    []ProductStat `json:"top_products"`
}

type MonthlyStat struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type ProductStat struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
}
