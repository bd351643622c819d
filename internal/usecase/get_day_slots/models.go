package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на расчет слотов на день
type Request struct {
	TenantID  int64     // ID тенанта
	ServiceID int64     // ID услуги
	StaffID   *int64    // ID сотрудника; nil = любой сотрудник, оказывающий услугу
	Date      time.Time // Дата для расчета слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	TenantID  int64
	ServiceID int64
	StaffID   *int64
	Date      time.Time
	// Slots список слотов в хронологическом порядке.
	// Для запроса по конкретному сотруднику содержит все кандидаты с флагом
	// доступности; для any-staff запроса — только доступные слоты с атрибуцией.
	Slots []domain.Slot
}
