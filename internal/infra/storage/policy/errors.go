package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда у тенанта нет сохраненной политики бронирования
	ErrPolicyNotFound = errors.New("policy.repository: tenant policy not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("policy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("policy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("policy.repository: failed to scan row")
)
