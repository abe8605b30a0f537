package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StaffService: профессионалы и каталог услуг
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfessional получает профессионала по ID
func (c *Client) GetProfessional(ctx context.Context, professionalID int64) (*Professional, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d", c.baseURL, professionalID)

	var professional Professional
	if err := c.getJSON(ctx, url, &professional, ErrProfessionalNotFound); err != nil {
		return nil, err
	}

	return &professional, nil
}

// GetServices получает услуги каталога компании по списку ID.
// Если хотя бы одна услуга не найдена, StaffService отвечает 404.
func (c *Client) GetServices(ctx context.Context, companyID int64, serviceIDs []int64) ([]Service, error) {
	ids := make([]string, len(serviceIDs))
	for i, id := range serviceIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	url := fmt.Sprintf("%s/internal/companies/%d/services?ids=%s",
		c.baseURL, companyID, strings.Join(ids, ","))

	var services []Service
	if err := c.getJSON(ctx, url, &services, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return services, nil
}

// getJSON выполняет GET запрос и декодирует ответ.
// notFoundErr возвращается на 404.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
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

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
