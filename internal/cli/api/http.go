package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"SimpleMercari/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyName — попытка создать объявление без названия.
	ErrEmptyName = errors.New("item name is required")
	// ErrInvalidID — некорректный идентификатор записи.
	ErrInvalidID = errors.New("invalid item id")
)

// StatusError — ответ API с кодом вне диапазона 2xx.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Body)
}

// Client — HTTP-клиент API маркетплейса.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

// NewClient создаёт клиента. httpClient и log могут быть nil.
func NewClient(baseURL string, httpClient *http.Client, log *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// BaseURL возвращает адрес API без завершающего слэша.
func (c *Client) BaseURL() string { return c.baseURL }

// ImageURL строит адрес изображения записи: base + /image/ + filename.
func (c *Client) ImageURL(filename string) string {
	return c.baseURL + "/image/" + filename
}

// ListItems — GET /items.
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	var res model.ItemsResponse
	if err := c.getJSON(ctx, "/items", nil, &res); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []model.Item{}
	}
	return res.Items, nil
}

// SearchItems — GET /search?keyword=.
func (c *Client) SearchItems(ctx context.Context, keyword string) ([]model.Item, error) {
	var res model.ItemsResponse
	q := url.Values{"keyword": []string{keyword}}
	if err := c.getJSON(ctx, "/search", q, &res); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []model.Item{}
	}
	return res.Items, nil
}

// GetItem — GET /items/{id}.
func (c *Client) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	var it model.Item
	if err := c.getJSON(ctx, "/items/"+strconv.FormatInt(id, 10), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Hello — GET /, приветствие API. Используется как проверка доступности.
func (c *Client) Hello(ctx context.Context) (string, error) {
	var res model.MessageResponse
	if err := c.getJSON(ctx, "/", nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// CreateItem — POST /items с multipart-телом из частей name, category, image.
// Если изображение не выбрано, часть image отправляется пустой строкой.
// Тело ответа не разбирается; возвращается HTTP-статус.
func (c *Client) CreateItem(ctx context.Context, d model.Draft) (int, error) {
	if strings.TrimSpace(d.Name) == "" {
		return 0, ErrEmptyName
	}
	body, contentType, err := encodeDraft(d)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items", body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("POST error", "name", d.Name, "error", err)
		return 0, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	c.log.Infow("POST status", "status", resp.Status, "name", d.Name)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}
	return resp.StatusCode, nil
}

// FetchImage — GET /image/{filename}. Возвращает байты и Content-Type.
func (c *Client) FetchImage(ctx context.Context, filename string) ([]byte, string, error) {
	if filename == "" || strings.ContainsAny(filename, "/\\") {
		return nil, "", fmt.Errorf("invalid image filename: %q", filename)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(url.PathEscape(filename)), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("GET error", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Errorw("GET error", "path", path, "error", err)
		return fmt.Errorf("decode %s: %w", path, err)
	}
	c.log.Debugw("GET success", "path", path, "bytes", len(body))
	return nil
}

// encodeDraft собирает multipart-тело черновика.
func encodeDraft(d model.Draft) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("name", d.Name); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("category", d.Category); err != nil {
		return nil, "", err
	}
	if d.Image.Selected() {
		f, err := os.Open(d.Image.Path())
		if err != nil {
			return nil, "", fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		part, err := w.CreateFormFile("image", d.Image.FileName())
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("read image: %w", err)
		}
	} else if err := w.WriteField("image", ""); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
