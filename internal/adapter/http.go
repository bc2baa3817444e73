package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/utils"
	"github.com/retailstack/store-api/models"
)

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// HTTPClientConfig configures the resty-based API client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPAPIClient constructs an HTTP implementation of [APIClient].
// It normalises and validates the base URL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api client base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [APIClient]. It POSTs the credentials to
// POST /api/auth/register; on success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpAPIClient) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [APIClient]. It POSTs the credentials to
// POST /api/auth/login; on success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpAPIClient) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpAPIClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := h.getJSON(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (h *httpAPIClient) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	if err := h.getJSON(ctx, fmt.Sprintf("/api/products/%d", id), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (h *httpAPIClient) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	var created models.Product
	if err := h.postJSON(ctx, "/api/products", product, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

func (h *httpAPIClient) UpdateProduct(ctx context.Context, product models.Product) error {
	return h.putJSON(ctx, fmt.Sprintf("/api/products/%d", product.ID), product)
}

func (h *httpAPIClient) DeleteProduct(ctx context.Context, id int64) error {
	return h.delete(ctx, fmt.Sprintf("/api/products/%d", id))
}

func (h *httpAPIClient) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := h.getJSON(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h *httpAPIClient) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	var order models.Order
	if err := h.getJSON(ctx, fmt.Sprintf("/api/orders/%d", id), &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (h *httpAPIClient) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	if err := h.postJSON(ctx, "/api/orders", order, &created); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

func (h *httpAPIClient) UpdateOrder(ctx context.Context, order models.Order) error {
	return h.putJSON(ctx, fmt.Sprintf("/api/orders/%d", order.ID), order)
}

func (h *httpAPIClient) DeleteOrder(ctx context.Context, id int64) error {
	return h.delete(ctx, fmt.Sprintf("/api/orders/%d", id))
}

func (h *httpAPIClient) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpAPIClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, fmt.Sprintf("/api/users/%d", id), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpAPIClient) AddUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := h.postJSON(ctx, "/api/users", user, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, user models.User) error {
	return h.putJSON(ctx, fmt.Sprintf("/api/users/%d", user.ID), user)
}

func (h *httpAPIClient) DeleteUser(ctx context.Context, id int64) error {
	return h.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpAPIClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpAPIClient) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpAPIClient) putJSON(ctx context.Context, path string, body any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpAPIClient) delete(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return mapHTTPError(resp)
}
