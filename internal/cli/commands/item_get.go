package commands

import (
	"context"
	"fmt"
	"strconv"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string { return "item" }
func (itemGetCmd) Description() string { return "Показать объявление по id" }
func (itemGetCmd) Usage() string { return "item <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	it, err := deps.Client.GetItem(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:        %d\n", it.ID)
	fmt.Fprintf(Out, "name:      %s\n", it.Name)
	fmt.Fprintf(Out, "category:  %s\n", it.Category)
	fmt.Fprintf(Out, "image:     %s\n", deps.Client.ImageURL(it.ImageFilename))
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
