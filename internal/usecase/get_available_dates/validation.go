package get_available_dates

import (
	"fmt"
	"time"
)

// minYear нижняя граница года в запросе; отсекает опечатки вида year=202
const minYear = 2000

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Month < int(time.January) || req.Month > int(time.December) {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Year < minYear {
		return fmt.Errorf("%w: year must be %d or later", ErrInvalidInput, minYear)
	}

	return nil
}
