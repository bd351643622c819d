package get_day_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrServiceNotBookable возвращается, когда услуга недоступна для онлайн-записи
	ErrServiceNotBookable = errors.New("service is not bookable online")

	// ErrStaffNotBookable возвращается, когда к сотруднику нельзя записаться онлайн
	ErrStaffNotBookable = errors.New("staff member is not bookable online")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
