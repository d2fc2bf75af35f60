package commands

import (
	"context"
	"flag"
	"io"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
	"SimpleMercari/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

type uiCmd struct{}

func (uiCmd) Name() string { return "ui" }
func (uiCmd) Description() string { return "Открыть интерактивную страницу: форма и список" }
func (uiCmd) Usage() string { return "ui [--style=plain|card]" }

// runProgram запускает программу bubbletea; в тестах подменяется.
var runProgram = func(ctx context.Context, m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (uiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	style := fs.String("style", cfg.ListStyle, "item list style: plain|card")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if *style != "" && *style != config.StylePlain && *style != config.StyleCard {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	deps.Logger.Infow("starting ui", "api", cfg.APIURL, "style", *style)
	page := tui.NewPage(
		tui.NewListingForm(ctx, deps.Listings, deps.Logger),
		tui.NewItemList(ctx, deps.Client, deps.Logger, tui.WithStyle(tui.ParseStyle(*style))),
	)
	return runProgram(ctx, page)
}

func init() { RegisterCmd(uiCmd{}) }
