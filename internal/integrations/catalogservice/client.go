package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с CatalogService (каталог услуг и сотрудников)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает услугу тенанта по ID
func (c *Client) GetService(ctx context.Context, tenantID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d/services/%d", c.baseURL, tenantID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return &service, nil
}

// GetStaff получает сотрудника тенанта по ID
func (c *Client) GetStaff(ctx context.Context, tenantID, staffID int64) (*Staff, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d/staff/%d", c.baseURL, tenantID, staffID)

	var staff Staff
	if err := c.getJSON(ctx, url, &staff, ErrStaffNotFound); err != nil {
		return nil, err
	}

	return &staff, nil
}

// GetEligibleStaffIDs получает сотрудников, оказывающих услугу.
// Каталог возвращает только сотрудников с флагом bookable, привязанных к услуге.
func (c *Client) GetEligibleStaffIDs(ctx context.Context, tenantID, serviceID int64) ([]int64, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d/services/%d/staff", c.baseURL, tenantID, serviceID)

	var resp EligibleStaffResponse
	if err := c.getJSON(ctx, url, &resp, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return resp.StaffIDs, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ.
// notFoundErr возвращается на 404 — семантика зависит от endpoint'а.
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
