package tui

import (
	"context"
	"fmt"
	"strings"

	"SimpleMercari/internal/model"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Submitter отправляет черновик объявления.
type Submitter interface {
	Submit(ctx context.Context, d model.Draft) error
}

const (
	fieldName = iota
	fieldCategory
	fieldImage
	fieldSubmit
)

// ListingForm — форма нового объявления: name, category, image и кнопка отправки.
type ListingForm struct {
	ctx       context.Context
	submitter Submitter
	logger    *zap.SugaredLogger

	inputs []textinput.Model
	focus  int
	draft  model.Draft
	status string
}

func NewListingForm(ctx context.Context, submitter Submitter, logger *zap.SugaredLogger) ListingForm {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	f := ListingForm{
		ctx:       ctx,
		submitter: submitter,
		logger:    logger,
		inputs:    make([]textinput.Model, 3),
	}
	for i, placeholder := range []string{"name", "category", "path/to/image.jpg"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Cursor.SetMode(cursor.CursorStatic)
		f.inputs[i] = ti
	}
	f.setFocus(fieldName)
	return f
}

func (f ListingForm) Init() tea.Cmd { return nil }

// Draft возвращает текущий черновик.
func (f ListingForm) Draft() model.Draft { return f.draft }

// Status — строка состояния последней отправки.
func (f ListingForm) Status() string { return f.status }

func (f ListingForm) Update(msg tea.Msg) (ListingForm, tea.Cmd) {
	switch msg := msg.(type) {
	case ListingCompletedMsg:
		if msg.Err != nil {
			f.status = fmt.Sprintf("Listing %q failed: %v", msg.Name, msg.Err)
		} else {
			f.status = fmt.Sprintf("Listed %q", msg.Name)
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % (fieldSubmit + 1))
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldSubmit) % (fieldSubmit + 1))
			return f, nil
		case "ctrl+s":
			return f.submit()
		case "enter":
			if f.focus == fieldSubmit {
				return f.submit()
			}
			f.setFocus(f.focus + 1)
			return f, nil
		}
	}

	if f.focus == fieldSubmit {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.syncDraft()
	return f, cmd
}

func (f ListingForm) View() string {
	var b strings.Builder
	labels := []string{"Name", "Category", "Image"}
	for i, label := range labels {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + labelStyle.Render(label) + f.inputs[i].View() + "\n")
	}
	button := buttonStyle.Render("[ List this item ]")
	if f.focus == fieldSubmit {
		button = focusedButtonStyle.Render("[ List this item ]")
	}
	b.WriteString("  " + button + "\n")
	if f.status != "" {
		b.WriteString(statusStyle.Render(f.status) + "\n")
	}
	return b.String()
}

// submit блокирует отправку без обязательных полей, иначе отправляет черновик
// и сразу сбрасывает форму, не дожидаясь ответа.
func (f ListingForm) submit() (ListingForm, tea.Cmd) {
	f.syncDraft()
	if missing := f.draft.MissingRequired(); len(missing) > 0 {
		f.status = "Required: " + strings.Join(missing, ", ")
		if missing[0] == "name" {
			f.setFocus(fieldName)
		} else {
			f.setFocus(fieldImage)
		}
		return f, nil
	}

	d := f.draft
	f.reset()
	f.status = fmt.Sprintf("Listing %q...", d.Name)

	ctx, submitter, logger := f.ctx, f.submitter, f.logger
	return f, func() tea.Msg {
		err := submitter.Submit(ctx, d)
		if err != nil {
			logger.Errorw("POST error", "name", d.Name, "error", err)
		}
		// уведомление уходит при любом исходе
		return ListingCompletedMsg{Name: d.Name, Err: err}
	}
}

func (f *ListingForm) syncDraft() {
	f.draft = model.Draft{
		Name:     f.inputs[fieldName].Value(),
		Category: f.inputs[fieldCategory].Value(),
		Image:    model.ParseImageSelection(f.inputs[fieldImage].Value()),
	}
}

func (f *ListingForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.draft = model.Draft{}
	f.setFocus(fieldName)
}

func (f *ListingForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			_ = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}
