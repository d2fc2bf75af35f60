package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
)

type historyCmd struct{}

func (historyCmd) Name() string { return "history" }
func (historyCmd) Description() string { return "Показать историю отправленных объявлений" }
func (historyCmd) Usage() string { return "history [--limit=N]" }

func (historyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", 20, "сколько последних записей показать")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *limit < 0 {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	if deps.HistoryErr != nil {
		return fmt.Errorf("history unavailable: %w", deps.HistoryErr)
	}
	list, err := deps.Listings.History(ctx, *limit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "История пуста")
		return nil
	}
	for _, s := range list {
		line := fmt.Sprintf("- %s  %-6s  %s", s.CreatedAt.Format("2006-01-02 15:04:05"), s.Status, s.Name)
		if s.Category != "" {
			line += "  [" + s.Category + "]"
		}
		if s.Error != "" {
			line += "  error=" + s.Error
		}
		fmt.Fprintln(Out, line)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(historyCmd{}) }
