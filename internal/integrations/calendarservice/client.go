package calendarservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с календарным сервисом
// Сервис отвечает за хранение и отображение событий; бронирования ссылаются
// на события по ID, владельцем ссылки является booking engine
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календарного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateEvent создает событие в календаре и возвращает его ID
func (c *Client) CreateEvent(ctx context.Context, event *Event) (int64, error) {
	url := fmt.Sprintf("%s/internal/events", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var created createEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return created.ID, nil
}

// UpdateEvent обновляет поля события в календаре
func (c *Client) UpdateEvent(ctx context.Context, eventID int64, update *EventUpdate) error {
	url := fmt.Sprintf("%s/internal/events/%d", c.baseURL, eventID)

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal update: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
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
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// DeleteEvent удаляет событие из календаря
// Отсутствие события не считается ошибкой: цель - чтобы его не было
func (c *Client) DeleteEvent(ctx context.Context, eventID int64) error {
	url := fmt.Sprintf("%s/internal/events/%d", c.baseURL, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// CreateEventWithGracefulDegradation создает событие с graceful degradation
// При недоступности календарного сервиса возвращает ErrServiceDegraded:
// переход статуса бронирования уже зафиксирован и не откатывается
func (c *Client) CreateEventWithGracefulDegradation(ctx context.Context, event *Event) (int64, error) {
	c.log.Info("Creating calendar event for booking_id=%d", event.ExternalRef)

	eventID, err := c.CreateEvent(ctx, event)
	if err != nil {
		c.log.Error("CalendarService unavailable, applying graceful degradation for booking_id=%d: %v",
			event.ExternalRef, err)
		return 0, fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, event.ExternalRef, err)
	}

	c.log.Info("Successfully created calendar event id=%d for booking_id=%d", eventID, event.ExternalRef)
	return eventID, nil
}

// UpdateEventWithGracefulDegradation обновляет событие с graceful degradation
func (c *Client) UpdateEventWithGracefulDegradation(ctx context.Context, eventID int64, update *EventUpdate) error {
	c.log.Info("Updating calendar event id=%d", eventID)

	if err := c.UpdateEvent(ctx, eventID, update); err != nil {
		if err == ErrEventNotFound {
			c.log.Warn("Calendar event id=%d not found during update", eventID)
			return err
		}
		c.log.Error("CalendarService unavailable, applying graceful degradation for event_id=%d: %v", eventID, err)
		return fmt.Errorf("%w: event_id=%d, error=%v", ErrServiceDegraded, eventID, err)
	}

	return nil
}

// DeleteEventWithGracefulDegradation удаляет событие с graceful degradation
func (c *Client) DeleteEventWithGracefulDegradation(ctx context.Context, eventID int64) error {
	c.log.Info("Deleting calendar event id=%d", eventID)

	if err := c.DeleteEvent(ctx, eventID); err != nil {
		c.log.Error("CalendarService unavailable, applying graceful degradation for event_id=%d: %v", eventID, err)
		return fmt.Errorf("%w: event_id=%d, error=%v", ErrServiceDegraded, eventID, err)
	}

	return nil
}
