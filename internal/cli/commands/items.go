package commands

import (
	"context"
	"fmt"

	"SimpleMercari/internal/cli/api"
	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
	"SimpleMercari/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string { return "Показать все объявления" }
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	list, err := deps.Client.ListItems(ctx)
	if err != nil {
		return err
	}
	printItems(deps.Client, list)
	return nil
}

// printItems печатает список записей в общем для items/search формате.
func printItems(c *api.Client, list []model.Item) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет объявлений")
		return
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- #%d  %s  [%s]  %s\n", it.ID, it.Name, it.Category, c.ImageURL(it.ImageFilename))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
}

func init() { RegisterCmd(itemsCmd{}) }
