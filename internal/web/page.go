package web

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"SimpleMercari/internal/config"
	"SimpleMercari/internal/model"

	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

// PageHandler отдаёт страницу (форма над списком) и принимает отправку формы.
type PageHandler struct {
	catalog   Catalog
	submitter Submitter
	logger    *zap.SugaredLogger
	style     string
}

func NewPageHandler(catalog Catalog, submitter Submitter, logger *zap.SugaredLogger, style string) *PageHandler {
	if style != config.StyleCard {
		style = config.StylePlain
	}
	return &PageHandler{catalog: catalog, submitter: submitter, logger: logger, style: style}
}

type entryView struct {
	Key      string
	ImageURL string
	Name     string
	Category string
}

type pageView struct {
	Style   string
	Status  string
	Error   string
	Entries []entryView
}

// Show рендерит страницу. Каждый GET заново запрашивает весь каталог.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	view := pageView{Style: h.style, Status: r.URL.Query().Get("status")}

	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		h.logger.Errorw("GET error", "error", err)
		view.Error = "Could not load items"
	}
	for _, it := range items {
		view.Entries = append(view.Entries, entryView{
			Key:      it.Key(),
			ImageURL: h.catalog.ImageURL(it.ImageFilename),
			Name:     it.Name,
			Category: it.Category,
		})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, view); err != nil {
		h.logger.Errorw("Show: render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Submit принимает multipart-форму и передаёт её в API.
// После ответа API (успешного или нет) браузер перенаправляется на /, что перезагружает список.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.logger.Warnw("Submit: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	d := model.Draft{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
	}

	f, hdr, err := r.FormFile("image")
	if err == nil {
		defer f.Close()
		dir, err := os.MkdirTemp("", "simplemercari-upload-*")
		if err != nil {
			h.logger.Errorw("Submit: temp dir", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, filepath.Base(hdr.Filename))
		if err := saveUpload(path, f); err != nil {
			h.logger.Errorw("Submit: save upload", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		d.Image = model.SelectedImage(path)
	}

	if missing := d.MissingRequired(); len(missing) > 0 {
		redirect(w, r, "Required: "+strings.Join(missing, ", "))
		return
	}

	if err := h.submitter.Submit(r.Context(), d); err != nil {
		h.logger.Errorw("POST error", "name", d.Name, "error", err)
		redirect(w, r, fmt.Sprintf("Listing %q failed: %v", d.Name, err))
		return
	}
	redirect(w, r, fmt.Sprintf("Listed %q", d.Name))
}

// Health — проверка живости.
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

func redirect(w http.ResponseWriter, r *http.Request, status string) {
	http.Redirect(w, r, "/?status="+url.QueryEscape(status), http.StatusSeeOther)
}
