// Package apitest поднимает поддельный API маркетплейса для тестов.
package apitest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"SimpleMercari/internal/model"

	"github.com/labstack/echo/v4"
)

// Upload — разобранный multipart-запрос POST /items.
type Upload struct {
	Name          string
	Category      string
	ImageFileName string
	ImageBytes    []byte
	// ImageField — значение части image, если она пришла строкой, а не файлом.
	ImageField string
	Parts      []string
}

// Request — запись о принятом запросе.
type Request struct {
	Method string
	Path   string
	Header http.Header
}

// Server — поддельный API поверх httptest.Server.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	items      []model.Item
	nextID     int64
	listStatus int
	postStatus int
	requests   []Request
	uploads    []Upload
}

// New запускает сервер с начальным набором записей и закрывает его по окончании теста.
func New(t testing.TB, items ...model.Item) *Server {
	t.Helper()
	s := &Server{items: append([]model.Item{}, items...)}
	for _, it := range items {
		if it.ID > s.nextID {
			s.nextID = it.ID
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.record)
	e.GET("/", s.root)
	e.GET("/items", s.getItems)
	e.POST("/items", s.addItem)
	e.GET("/items/:itemID", s.getItemByID)
	e.GET("/search", s.searchItems)
	e.GET("/image/:imageFilename", s.getImg)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// SetItems заменяет содержимое каталога.
func (s *Server) SetItems(items ...model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Item{}, items...)
}

// FailList заставляет GET /items отвечать кодом code; 0 — обычный ответ.
func (s *Server) FailList(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listStatus = code
}

// FailCreate заставляет POST /items отвечать кодом code; 0 — обычный ответ.
func (s *Server) FailCreate(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postStatus = code
}

// Count возвращает число принятых запросов с методом и путём.
func (s *Server) Count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Requests возвращает копию журнала запросов.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

// Uploads возвращает копию принятых multipart-загрузок.
func (s *Server) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Upload{}, s.uploads...)
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()})
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Hello, world!"})
}

func (s *Server) getItems(c echo.Context) error {
	s.mu.Lock()
	status := s.listStatus
	items := append([]model.Item{}, s.items...)
	s.mu.Unlock()
	if status != 0 {
		return c.String(status, "list failed")
	}
	return c.JSON(http.StatusOK, model.ItemsResponse{Items: items})
}

func (s *Server) searchItems(c echo.Context) error {
	keyword := strings.ToLower(c.QueryParam("keyword"))
	s.mu.Lock()
	var found []model.Item
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Name), keyword) {
			found = append(found, it)
		}
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, model.ItemsResponse{Items: found})
}

func (s *Server) getItemByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "bad id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return c.JSON(http.StatusOK, it)
		}
	}
	return c.String(http.StatusNotFound, "not found")
}

func (s *Server) addItem(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid multipart form")
	}
	up := Upload{
		Name:       c.FormValue("name"),
		Category:   c.FormValue("category"),
		ImageField: c.FormValue("image"),
	}
	for k := range form.Value {
		up.Parts = append(up.Parts, k)
	}
	for k := range form.File {
		up.Parts = append(up.Parts, k)
	}
	if fh, err := c.FormFile("image"); err == nil {
		up.ImageFileName = fh.Filename
		if f, err := fh.Open(); err == nil {
			up.ImageBytes, _ = io.ReadAll(f)
			_ = f.Close()
		}
	}

	s.mu.Lock()
	s.uploads = append(s.uploads, up)
	status := s.postStatus
	if status == 0 {
		s.nextID++
		s.items = append(s.items, model.Item{
			ID:            s.nextID,
			Name:          up.Name,
			Category:      up.Category,
			ImageFilename: up.ImageFileName,
		})
	}
	s.mu.Unlock()

	if status != 0 {
		return c.String(status, "create failed")
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: fmt.Sprintf("item received: %s", up.Name)})
}

func (s *Server) getImg(c echo.Context) error {
	name := c.Param("imageFilename")
	if !strings.HasSuffix(name, ".jpg") {
		return c.JSON(http.StatusBadRequest, model.MessageResponse{Message: "Image path does not end with .jpg"})
	}
	return c.Blob(http.StatusOK, "image/jpeg", []byte("jpeg:"+name))
}
