package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date      string `json:"date"`
	TenantID  int64  `json:"tenantId"`
	ServiceID int64  `json:"serviceId"`
	StaffID   *int64 `json:"staffId,omitempty"`
	Slots     []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	StaffID   *int64 `json:"staffId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			StaffID:   slot.StaffID,
		}
	}

	return &DaySlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		TenantID:  resp.TenantID,
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tenantID, serviceID int64, staffID *int64, dateStr string) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		TenantID:  tenantID,
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	}, nil
}
