package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_dates"
)

const (
	msgInvalidTenantID    = "некорректный ID тенанта"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingMonth       = "месяц обязателен"
	msgMissingYear        = "год обязателен"
	msgInvalidMonth       = "некорректный месяц, ожидается число от 1 до 12"
	msgInvalidYear        = "некорректный год"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgServiceNotBookable = "услуга недоступна для онлайн-записи"
	msgStaffNotBookable   = "к сотруднику нельзя записаться онлайн"
	msgInvalidQueryParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-dates
// Query params: serviceId (required), month (required, 1-12), year (required), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tenantId из URL
	tenantID, err := strconv.ParseInt(vars["tenantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-dates - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-dates - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем staffId из query параметров (опционально)
	var staffID *int64
	if staffIDStr := r.URL.Query().Get("staffId"); staffIDStr != "" {
		parsed, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenants/{id}/available-dates - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &parsed
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-dates - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /tenants/{id}/available-dates - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-dates - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-dates - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(tenantID, serviceID, staffID, month, year))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrServiceNotFound):
			h.logger.Warn("GET /tenants/{id}/available-dates - Service not found: tenant_id=%d, service_id=%d",
				tenantID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDates.ErrStaffNotFound):
			h.logger.Warn("GET /tenants/{id}/available-dates - Staff not found: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableDates.ErrServiceNotBookable):
			h.logger.Warn("GET /tenants/{id}/available-dates - Service not bookable: tenant_id=%d, service_id=%d",
				tenantID, serviceID)
			handlers.RespondUnprocessableEntity(w, msgServiceNotBookable)

		case errors.Is(err, getAvailableDates.ErrStaffNotBookable):
			h.logger.Warn("GET /tenants/{id}/available-dates - Staff not bookable: tenant_id=%d", tenantID)
			handlers.RespondUnprocessableEntity(w, msgStaffNotBookable)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /tenants/{id}/available-dates - Failed to scan dates: tenant_id=%d, service_id=%d, error=%v",
				tenantID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/available-dates - Dates computed: tenant_id=%d, service_id=%d, dates_count=%d",
		tenantID, serviceID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
