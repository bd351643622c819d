package get_available_dates

import (
	getAvailableDates "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	TenantID  int64    `json:"tenantId"`
	ServiceID int64    `json:"serviceId"`
	StaffID   *int64   `json:"staffId,omitempty"`
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	Dates     []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []string{}
	}

	return &AvailableDatesResponse{
		TenantID:  resp.TenantID,
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		Month:     resp.Month,
		Year:      resp.Year,
		Dates:     dates,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tenantID, serviceID int64, staffID *int64, month, year int) *getAvailableDates.Request {
	return &getAvailableDates.Request{
		TenantID:  tenantID,
		ServiceID: serviceID,
		StaffID:   staffID,
		Month:     month,
		Year:      year,
	}
}
