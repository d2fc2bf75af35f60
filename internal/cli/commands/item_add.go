package commands

import (
	"context"
	"fmt"
	"strings"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
	"SimpleMercari/internal/model"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "add" }
func (itemAddCmd) Description() string {
	return "Выставить объявление (название, изображение, категория)"
}
func (itemAddCmd) Usage() string { return "add <name> <image-path> [category]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	d := model.Draft{Name: args[0], Image: model.ParseImageSelection(args[1])}
	if len(args) == 3 {
		d.Category = args[2]
	}
	if len(d.MissingRequired()) > 0 {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	fmt.Fprintf(Out, "→ Отправка %q...\n", d.Name)
	if err := deps.Listings.Submit(ctx, d); err != nil {
		fmt.Fprintf(Out, "× Ошибка отправки: %v\n", err)
		return fmt.Errorf("submit %q: %w", d.Name, err)
	}
	fmt.Fprintln(Out, "✓ Объявление выставлено")
	fmt.Fprintf(Out, "  name:     %s\n", d.Name)
	if strings.TrimSpace(d.Category) != "" {
		fmt.Fprintf(Out, "  category: %s\n", d.Category)
	}
	fmt.Fprintf(Out, "  image:    %s\n", d.Image.FileName())
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
