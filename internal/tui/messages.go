package tui

import (
	"SimpleMercari/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadCompletedMsg — список закончил загрузку (успешно или с ошибкой).
type LoadCompletedMsg struct {
	Count int
	Err   error
}

// ListingCompletedMsg — отправка объявления завершилась (успешно или с ошибкой).
type ListingCompletedMsg struct {
	Name string
	Err  error
}

// itemsFetchedMsg — результат GET /items для ItemList.
type itemsFetchedMsg struct {
	items []model.Item
	err   error
}

func notify(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
