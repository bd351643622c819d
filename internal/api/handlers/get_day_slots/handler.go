package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_slots"
)

const (
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgServiceNotBookable = "услуга недоступна для онлайн-записи"
	msgStaffNotBookable   = "к сотруднику нельзя записаться онлайн"
	msgInvalidQueryParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tenantId из URL
	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем staffId из query параметров (опционально)
	var staffID *int64
	if staffIDStr := r.URL.Query().Get("staffId"); staffIDStr != "" {
		parsed, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &parsed
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(tenantID, serviceID, staffID, dateStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrServiceNotFound):
			h.logger.Warn("GET /tenants/{id}/available-slots - Service not found: tenant_id=%d, service_id=%d",
				tenantID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getDaySlots.ErrStaffNotFound):
			h.logger.Warn("GET /tenants/{id}/available-slots - Staff not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getDaySlots.ErrServiceNotBookable):
			h.logger.Warn("GET /tenants/{id}/available-slots - Service not bookable: tenant_id=%d, service_id=%d",
				tenantID, serviceID)
			handlers.RespondUnprocessableEntity(w, msgServiceNotBookable)

		case errors.Is(err, getDaySlots.ErrStaffNotBookable):
			h.logger.Warn("GET /tenants/{id}/available-slots - Staff not bookable: tenant_id=%d", tenantID)
			handlers.RespondUnprocessableEntity(w, msgStaffNotBookable)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /tenants/{id}/available-slots - Failed to compute slots: tenant_id=%d, service_id=%d, error=%v",
				tenantID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/available-slots - Slots computed: tenant_id=%d, service_id=%d, slots_count=%d",
		tenantID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
