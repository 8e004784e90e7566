package crimeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/shenikar/crime_pulse/internal/models"
)

// Client - HTTP-клиент удаленного API с данными о преступлениях.
// Клиент только транспортирует данные: весь расчет аналитики
// (горячие точки, паттерны, тренды, патрули) выполняет сам API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient создает клиент с таймаутом на каждый запрос
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetToken устанавливает bearer-токен, добавляемый ко всем последующим запросам
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken убирает bearer-токен (logout)
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) authorize(req *http.Request) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ в out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("crimeapi: failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crimeapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crimeapi: unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("crimeapi: failed to decode response: %w", err)
	}
	return nil
}

type crimesEnvelope struct {
	Success bool                 `json:"success"`
	Data    []models.CrimeRecord `json:"data"`
	Count   int                  `json:"count"`
}

// FetchCrimes возвращает полную коллекцию записей о преступлениях
func (c *Client) FetchCrimes(ctx context.Context) ([]models.CrimeRecord, error) {
	var envelope crimesEnvelope
	if err := c.getJSON(ctx, "/api/crime-data", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// FetchNew возвращает записи с отметкой времени строго больше since.
// Отметка времени в ответе задается сервером и служит границей
// следующей выборки.
func (c *Client) FetchNew(ctx context.Context, since string) (*models.CrimeUpdate, error) {
	path := "/api/crime-data/new?since=" + url.QueryEscape(since)
	update := &models.CrimeUpdate{}
	if err := c.getJSON(ctx, path, update); err != nil {
		return nil, err
	}
	return update, nil
}

// FetchStats возвращает агрегированную статистику по коллекции
func (c *Client) FetchStats(ctx context.Context) (*models.CrimeStats, error) {
	stats := &models.CrimeStats{}
	if err := c.getJSON(ctx, "/api/stats", stats); err != nil {
		return nil, err
	}
	return stats, nil
}

type hotspotsEnvelope struct {
	Data []models.Hotspot `json:"data"`
}

// FetchHotspots возвращает горячие точки, рассчитанные сервером
func (c *Client) FetchHotspots(ctx context.Context) ([]models.Hotspot, error) {
	var envelope hotspotsEnvelope
	if err := c.getJSON(ctx, "/api/analytics/hotspots", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type patternsEnvelope struct {
	Data *models.TimePatterns `json:"data"`
}

// FetchPatterns возвращает временные паттерны преступности
func (c *Client) FetchPatterns(ctx context.Context) (*models.TimePatterns, error) {
	var envelope patternsEnvelope
	if err := c.getJSON(ctx, "/api/analytics/patterns", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type trendsEnvelope struct {
	Data *models.CrimeTrends `json:"data"`
}

// FetchTrends возвращает динамику преступности за заданное число дней
func (c *Client) FetchTrends(ctx context.Context, days int) (*models.CrimeTrends, error) {
	var envelope trendsEnvelope
	path := "/api/analytics/trends?days=" + strconv.Itoa(days)
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type patrolEnvelope struct {
	Data []models.PatrolSuggestion `json:"data"`
}

// FetchPatrolRoutes возвращает рекомендации по патрулированию для officers нарядов
func (c *Client) FetchPatrolRoutes(ctx context.Context, officers int) ([]models.PatrolSuggestion, error) {
	var envelope patrolEnvelope
	path := "/api/analytics/patrol-routes?officers=" + strconv.Itoa(officers)
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// postAuth выполняет POST на эндпоинт аутентификации. Ответ с кодом 4xx
// и корректным телом {success:false, error} не считается транспортной
// ошибкой: строка error предназначена пользователю.
func (c *Client) postAuth(ctx context.Context, path string, creds credentials) (*models.AuthResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("crimeapi: failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("crimeapi: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crimeapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("crimeapi: unexpected status code: %d", resp.StatusCode)
	}

	result := &models.AuthResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("crimeapi: failed to decode auth response: %w", err)
	}
	return result, nil
}

// Login выполняет вход по email и паролю
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	return c.postAuth(ctx, "/api/auth/login", credentials{Email: email, Password: password})
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	return c.postAuth(ctx, "/api/auth/register", credentials{Name: name, Email: email, Password: password})
}
