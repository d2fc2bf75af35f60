package web

import (
	"context"
	"embed"
	"html/template"

	"SimpleMercari/internal/middleware"
	"SimpleMercari/internal/model"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// Catalog — источник записей для страницы.
type Catalog interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	ImageURL(filename string) string
}

// Submitter отправляет черновик объявления.
type Submitter interface {
	Submit(ctx context.Context, d model.Draft) error
}

// Handler — роутер веб-страницы.
type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров веб-страницы
func NewHandler(catalog Catalog, submitter Submitter, logger *zap.SugaredLogger, style string) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	page := NewPageHandler(catalog, submitter, logger, style)

	r.Get("/", page.Show)
	r.Post("/listing", page.Submit)
	r.Get("/healthz", page.Health)

	return &Handler{Router: r}
}
