package tui

import (
	"context"
	"strings"

	"SimpleMercari/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Catalog — источник записей для списка.
type Catalog interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	ImageURL(filename string) string
}

// Entry — одна отрисованная запись списка.
type Entry struct {
	Key      string
	ImageURL string
	Name     string
	Category string
}

// ItemList загружает и отображает весь каталог.
// Загрузка идёт при монтировании (если reload) и на каждом переходе reload false→true.
type ItemList struct {
	ctx     context.Context
	catalog Catalog
	logger  *zap.SugaredLogger
	style   Style

	reload bool
	items  []model.Item
	width  int
}

// ListOption настраивает ItemList.
type ListOption func(*ItemList)

// WithStyle задаёт вариант отображения.
func WithStyle(s Style) ListOption {
	return func(l *ItemList) { l.style = s }
}

// WithReload задаёт начальное значение reload (по умолчанию true).
func WithReload(v bool) ListOption {
	return func(l *ItemList) { l.reload = v }
}

func NewItemList(ctx context.Context, catalog Catalog, logger *zap.SugaredLogger, opts ...ListOption) ItemList {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	l := ItemList{
		ctx:     ctx,
		catalog: catalog,
		logger:  logger,
		reload:  true,
		items:   []model.Item{},
	}
	for _, o := range opts {
		o(&l)
	}
	return l
}

func (l ItemList) Init() tea.Cmd {
	if l.reload {
		return l.fetch()
	}
	return nil
}

// SetReload передаёт новое значение флага. Запрос уходит только на переходе false→true.
func (l ItemList) SetReload(v bool) (ItemList, tea.Cmd) {
	prev := l.reload
	l.reload = v
	if v && !prev {
		return l, l.fetch()
	}
	return l, nil
}

// Reload возвращает текущее значение флага.
func (l ItemList) Reload() bool { return l.reload }

// Items возвращает текущую коллекцию в порядке сервера.
func (l ItemList) Items() []model.Item { return l.items }

// Entries возвращает записи в том виде, в котором они отрисовываются.
func (l ItemList) Entries() []Entry {
	entries := make([]Entry, 0, len(l.items))
	for _, it := range l.items {
		entries = append(entries, Entry{
			Key:      it.Key(),
			ImageURL: l.catalog.ImageURL(it.ImageFilename),
			Name:     it.Name,
			Category: it.Category,
		})
	}
	return entries
}

func (l ItemList) Update(msg tea.Msg) (ItemList, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsFetchedMsg:
		if msg.err != nil {
			// коллекция остаётся прежней
			l.logger.Errorw("GET error", "error", msg.err)
			return l, notify(LoadCompletedMsg{Count: len(l.items), Err: msg.err})
		}
		l.items = msg.items
		if l.items == nil {
			l.items = []model.Item{}
		}
		l.logger.Infow("GET success", "count", len(l.items))
		return l, notify(LoadCompletedMsg{Count: len(l.items)})
	case tea.WindowSizeMsg:
		l.width = msg.Width
	}
	return l, nil
}

func (l ItemList) View() string {
	entries := l.Entries()
	if len(entries) == 0 {
		return imageStyle.Render("No items yet.")
	}
	frame := plainStyle
	if l.style == StyleCard {
		frame = cardStyle
		if l.width > 4 {
			frame = frame.Width(l.width - 4)
		}
	}
	var b strings.Builder
	for _, e := range entries {
		body := imageStyle.Render("[image] "+e.ImageURL) + "\n" +
			nameStyle.Render(e.Name) + "\n" +
			categoryStyle.Render("Category: "+e.Category)
		b.WriteString(frame.Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

func (l ItemList) fetch() tea.Cmd {
	ctx, catalog := l.ctx, l.catalog
	return func() tea.Msg {
		items, err := catalog.ListItems(ctx)
		return itemsFetchedMsg{items: items, err: err}
	}
}
