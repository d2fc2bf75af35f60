package tui

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"SimpleMercari/internal/cli/api"
	"SimpleMercari/internal/cli/api/apitest"
	"SimpleMercari/internal/model"
	"SimpleMercari/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run выполняет команду (и вложенные batch-команды) и возвращает полученные сообщения.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// pump прогоняет цикл событий модели, пока есть команды.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("event loop did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, next)
	}
	return m
}

// loadList выполняет запрос списка и отдаёт результат в Update.
func loadList(t *testing.T, l ItemList, cmd tea.Cmd) (ItemList, []LoadCompletedMsg) {
	t.Helper()
	var done []LoadCompletedMsg
	for _, msg := range run(t, cmd) {
		var next tea.Cmd
		l, next = l.Update(msg)
		for _, m := range run(t, next) {
			if lc, ok := m.(LoadCompletedMsg); ok {
				done = append(done, lc)
			}
		}
	}
	return l, done
}

func typeText(f ListingForm, s string) ListingForm {
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return f
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func writeImage(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "chair.jpg")
	require.NoError(t, os.WriteFile(p, []byte("jpeg"), 0o600))
	return p
}

func TestItemList_RendersFetchedItem(t *testing.T) {
	srv := apitest.New(t, model.Item{ID: 1, Name: "Book", Category: "Books", ImageFilename: "a.jpg"})
	l := NewItemList(context.Background(), api.NewClient(srv.URL, nil, nil), nil)

	l, done := loadList(t, l, l.Init())

	require.Len(t, done, 1)
	assert.NoError(t, done[0].Err)
	assert.Equal(t, 1, done[0].Count)
	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Book", entries[0].Name)
	assert.Equal(t, "Books", entries[0].Category)
	assert.Equal(t, srv.URL+"/image/a.jpg", entries[0].ImageURL)

	view := l.View()
	assert.Contains(t, view, "Book")
	assert.Contains(t, view, "Category: Books")
	assert.Contains(t, view, srv.URL+"/image/a.jpg")
}

func TestItemList_EmptyCollection_NotifiesOnce(t *testing.T) {
	srv := apitest.New(t)
	l := NewItemList(context.Background(), api.NewClient(srv.URL, nil, nil), nil)

	l, done := loadList(t, l, l.Init())

	require.Len(t, done, 1)
	assert.Equal(t, 0, done[0].Count)
	assert.Empty(t, l.Entries())
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/items"))
}

func TestItemList_FetchOnlyOnFalseToTrue(t *testing.T) {
	srv := apitest.New(t, model.Item{ID: 1, Name: "Book", ImageFilename: "a.jpg"})
	l := NewItemList(context.Background(), api.NewClient(srv.URL, nil, nil), nil, WithReload(false))

	assert.Nil(t, l.Init(), "no fetch on mount when reload is false")

	var cmd tea.Cmd
	l, cmd = l.SetReload(true)
	require.NotNil(t, cmd)
	l, _ = loadList(t, l, cmd)
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/items"))

	// повторный true без перехода — без запроса
	l, cmd = l.SetReload(true)
	assert.Nil(t, cmd)

	l, cmd = l.SetReload(false)
	assert.Nil(t, cmd)
	assert.False(t, l.Reload())
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/items"))

	_, cmd = l.SetReload(true)
	run(t, cmd)
	assert.Equal(t, 2, srv.Count(http.MethodGet, "/items"))
}

func TestItemList_KeysUniqueAndLengthMatches(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "A", ImageFilename: "a.jpg"},
		{ID: 2, Name: "B", ImageFilename: "b.jpg"},
		{ID: 10, Name: "C", ImageFilename: "c.jpg"},
		{ID: 11, Name: "D", ImageFilename: "d.jpg"},
	}
	srv := apitest.New(t, items...)
	l := NewItemList(context.Background(), api.NewClient(srv.URL, nil, nil), nil, WithStyle(StyleCard))
	l, _ = loadList(t, l, l.Init())

	entries := l.Entries()
	require.Len(t, entries, len(items))
	seen := map[string]bool{}
	for i, e := range entries {
		assert.False(t, seen[e.Key], "duplicate key %s", e.Key)
		seen[e.Key] = true
		assert.Equal(t, items[i].Name, e.Name, "server order must be kept")
	}
	assert.Contains(t, l.View(), "D")
}

func TestItemList_FailedFetchKeepsCollection(t *testing.T) {
	srv := apitest.New(t, model.Item{ID: 1, Name: "Book", ImageFilename: "a.jpg"})
	l := NewItemList(context.Background(), api.NewClient(srv.URL, nil, nil), nil)
	l, _ = loadList(t, l, l.Init())
	require.Len(t, l.Items(), 1)

	srv.FailList(http.StatusInternalServerError)
	l, _ = l.SetReload(false)
	l, cmd := l.SetReload(true)
	l, done := loadList(t, l, cmd)

	require.Len(t, done, 1)
	assert.Error(t, done[0].Err)
	assert.Equal(t, 1, done[0].Count)
	require.Len(t, l.Items(), 1)
	assert.Equal(t, "Book", l.Items()[0].Name)
}

func TestListingForm_SubmitSendsMultipartAndNotifies(t *testing.T) {
	srv := apitest.New(t)
	svc := service.NewListingService(api.NewClient(srv.URL, nil, nil), nil, nil)
	f := NewListingForm(context.Background(), svc, nil)
	img := writeImage(t)

	f = typeText(f, "Chair")
	f, _ = f.Update(key(tea.KeyTab))
	f = typeText(f, "Furniture")
	f, _ = f.Update(key(tea.KeyTab))
	f = typeText(f, img)
	assert.Equal(t, model.Draft{Name: "Chair", Category: "Furniture", Image: model.SelectedImage(img)}, f.Draft())

	f, cmd := f.Update(key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	// черновик сброшен сразу после отправки
	assert.Equal(t, model.Draft{}, f.Draft())
	assert.Equal(t, 0, srv.Count(http.MethodPost, "/items"))

	msgs := run(t, cmd)
	require.Len(t, msgs, 1)
	done, ok := msgs[0].(ListingCompletedMsg)
	require.True(t, ok)
	assert.NoError(t, done.Err)
	assert.Equal(t, "Chair", done.Name)

	ups := srv.Uploads()
	require.Len(t, ups, 1)
	assert.Equal(t, "Chair", ups[0].Name)
	assert.Equal(t, "Furniture", ups[0].Category)
	assert.Equal(t, "chair.jpg", ups[0].ImageFileName)
	assert.ElementsMatch(t, []string{"name", "category", "image"}, ups[0].Parts)

	f, _ = f.Update(done)
	assert.Equal(t, `Listed "Chair"`, f.Status())
}

func TestListingForm_NotifiesOnFailure(t *testing.T) {
	srv := apitest.New(t)
	srv.FailCreate(http.StatusInternalServerError)
	svc := service.NewListingService(api.NewClient(srv.URL, nil, nil), nil, nil)
	f := NewListingForm(context.Background(), svc, nil)

	f = typeText(f, "Chair")
	f, _ = f.Update(key(tea.KeyTab))
	f, _ = f.Update(key(tea.KeyTab))
	f = typeText(f, writeImage(t))
	f, _ = f.Update(key(tea.KeyTab))
	f, cmd := f.Update(key(tea.KeyEnter))

	msgs := run(t, cmd)
	require.Len(t, msgs, 1)
	done, ok := msgs[0].(ListingCompletedMsg)
	require.True(t, ok)
	assert.Error(t, done.Err)

	f, _ = f.Update(done)
	assert.Contains(t, f.Status(), "failed")
}

func TestListingForm_RequiredFieldsBlockSubmit(t *testing.T) {
	srv := apitest.New(t)
	svc := service.NewListingService(api.NewClient(srv.URL, nil, nil), nil, nil)
	f := NewListingForm(context.Background(), svc, nil)

	f, cmd := f.Update(key(tea.KeyCtrlS))
	assert.Nil(t, cmd)
	assert.Equal(t, "Required: name, image", f.Status())

	f = typeText(f, "Chair")
	f, cmd = f.Update(key(tea.KeyCtrlS))
	assert.Nil(t, cmd)
	assert.Equal(t, "Required: image", f.Status())
	assert.Equal(t, "Chair", f.Draft().Name, "blocked submit keeps the draft")
	assert.Empty(t, srv.Uploads())
}

func TestListingForm_FirstOfManyImages(t *testing.T) {
	f := NewListingForm(context.Background(), nil, nil)
	f, _ = f.Update(key(tea.KeyShiftTab))
	f, _ = f.Update(key(tea.KeyShiftTab))
	f = typeText(f, "/tmp/a.jpg, /tmp/b.jpg")
	assert.Equal(t, "/tmp/a.jpg", f.Draft().Image.Path())
}

func newTestPage(t *testing.T, srv *apitest.Server) Page {
	t.Helper()
	client := api.NewClient(srv.URL, nil, nil)
	svc := service.NewListingService(client, nil, nil)
	return NewPage(
		NewListingForm(context.Background(), svc, nil),
		NewItemList(context.Background(), client, nil),
	)
}

func TestPage_InitialLoadResetsFlag(t *testing.T) {
	srv := apitest.New(t, model.Item{ID: 1, Name: "Book", ImageFilename: "a.jpg"})
	p := newTestPage(t, srv)
	assert.True(t, p.Reload())

	m := pump(t, p, p.Init())
	p = m.(Page)

	assert.False(t, p.Reload())
	assert.Len(t, p.List().Items(), 1)
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/items"))
	assert.Contains(t, p.View(), "Simple Mercari")
}

func TestPage_ListingTriggersSingleReload(t *testing.T) {
	srv := apitest.New(t)
	p := newTestPage(t, srv)
	p = pump(t, p, p.Init()).(Page)
	require.False(t, p.Reload())

	var m tea.Model = p
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Chair")},
		key(tea.KeyTab),
		key(tea.KeyTab),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(writeImage(t))},
	} {
		m, _ = m.Update(msg)
	}
	m, cmd := m.Update(key(tea.KeyCtrlS))
	p = pump(t, m, cmd).(Page)

	assert.Equal(t, 1, srv.Count(http.MethodPost, "/items"))
	assert.Equal(t, 2, srv.Count(http.MethodGet, "/items"))
	assert.False(t, p.Reload())
	require.Len(t, p.List().Items(), 1)
	assert.Equal(t, "Chair", p.List().Items()[0].Name)
	assert.Equal(t, `Listed "Chair"`, p.Form().Status())
	assert.Equal(t, model.Draft{}, p.Form().Draft())
}

func TestPage_FailedSubmitStillReloads(t *testing.T) {
	srv := apitest.New(t)
	srv.FailCreate(http.StatusInternalServerError)
	p := newTestPage(t, srv)
	p = pump(t, p, p.Init()).(Page)

	m, cmd := p.Update(ListingCompletedMsg{Name: "Chair", Err: &api.StatusError{Code: 500}})
	p = m.(Page)
	assert.True(t, p.Reload())
	p = pump(t, p, cmd).(Page)

	assert.Equal(t, 2, srv.Count(http.MethodGet, "/items"))
	assert.False(t, p.Reload())
	assert.Contains(t, p.Form().Status(), `Listing "Chair" failed`)
}

func TestPage_FailedLoadDoesNotStickFlag(t *testing.T) {
	srv := apitest.New(t)
	srv.FailList(http.StatusBadGateway)
	p := newTestPage(t, srv)

	p = pump(t, p, p.Init()).(Page)
	assert.False(t, p.Reload())

	// следующая отправка снова запускает загрузку
	srv.FailList(0)
	m, cmd := p.Update(ListingCompletedMsg{Name: "x"})
	pump(t, m, cmd)
	assert.Equal(t, 2, srv.Count(http.MethodGet, "/items"))
}

func TestPage_Quit(t *testing.T) {
	srv := apitest.New(t)
	p := newTestPage(t, srv)

	_, cmd := p.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, StyleCard, ParseStyle("card"))
	assert.Equal(t, StylePlain, ParseStyle("plain"))
	assert.Equal(t, StylePlain, ParseStyle(""))
}
