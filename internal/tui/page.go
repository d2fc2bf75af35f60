package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Page — корневая модель: форма над списком и флаг reload между ними.
//
// reload=true (ожидание загрузки) → false по LoadCompletedMsg,
// false → true по ListingCompletedMsg. Начальное значение true.
type Page struct {
	form   ListingForm
	list   ItemList
	reload bool

	width  int
	height int
}

func NewPage(form ListingForm, list ItemList) Page {
	list, _ = list.SetReload(true)
	return Page{form: form, list: list, reload: true}
}

func (p Page) Init() tea.Cmd {
	return tea.Batch(p.form.Init(), p.list.Init())
}

// Reload возвращает текущее значение флага.
func (p Page) Reload() bool { return p.reload }

// List и Form — дочерние компоненты (только чтение).
func (p Page) List() ItemList { return p.list }
func (p Page) Form() ListingForm { return p.form }

func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return p, tea.Quit
		}
		p.form, cmd = p.form.Update(msg)
		return p, cmd

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.list, cmd = p.list.Update(msg)
		return p, cmd

	case ListingCompletedMsg:
		p.form, _ = p.form.Update(msg)
		p.reload = true
		p.list, cmd = p.list.SetReload(true)
		return p, cmd

	case LoadCompletedMsg:
		p.reload = false
		p.list, cmd = p.list.SetReload(false)
		return p, cmd

	case itemsFetchedMsg:
		p.list, cmd = p.list.Update(msg)
		return p, cmd
	}

	p.form, cmd = p.form.Update(msg)
	return p, cmd
}

func (p Page) View() string {
	title := titleStyle.Render("Simple Mercari")
	if p.width > 0 {
		title = titleStyle.Width(p.width).Render("Simple Mercari")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		p.form.View(),
		p.list.View(),
		helpStyle.Render("tab: next field • enter/ctrl+s: list item • esc: quit"),
	)
}
