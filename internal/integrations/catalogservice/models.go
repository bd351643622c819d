package catalogservice

// Service модель услуги из CatalogService
type Service struct {
	ID              int64  `json:"id"`
	TenantID        int64  `json:"tenant_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	OnlineBookable  bool   `json:"online_bookable"`
}

// Staff модель сотрудника из CatalogService
type Staff struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenant_id"`
	Name     string `json:"name"`
	Bookable bool   `json:"bookable"`
}

// EligibleStaffResponse ответ со списком сотрудников, оказывающих услугу
type EligibleStaffResponse struct {
	StaffIDs []int64 `json:"staff_ids"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
