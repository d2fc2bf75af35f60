package commands

import (
	"context"
	"strings"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
)

type searchCmd struct{}

func (searchCmd) Name() string { return "search" }
func (searchCmd) Description() string { return "Найти объявления по ключевому слову" }
func (searchCmd) Usage() string { return "search <keyword>" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	list, err := deps.Client.SearchItems(ctx, args[0])
	if err != nil {
		return err
	}
	printItems(deps.Client, list)
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
