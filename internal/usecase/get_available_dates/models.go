package get_available_dates

// Request модель запроса на сканирование доступных дат месяца
type Request struct {
	TenantID  int64  // ID тенанта
	ServiceID int64  // ID услуги
	StaffID   *int64 // ID сотрудника; nil = любой сотрудник, оказывающий услугу
	Month     int    // Месяц (1-12)
	Year      int    // Год
}

// Response модель ответа со списком доступных дат
type Response struct {
	TenantID  int64
	ServiceID int64
	StaffID   *int64
	Month     int
	Year      int
	// Dates даты "YYYY-MM-DD" по возрастанию, на которые есть хотя бы
	// один доступный слот
	Dates []string
}
