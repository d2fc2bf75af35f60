package commands

import (
	"context"
	"fmt"
	"os"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
)

type imageCmd struct{}

func (imageCmd) Name() string { return "image" }
func (imageCmd) Description() string { return "Скачать изображение объявления" }
func (imageCmd) Usage() string { return "image <image_filename> [out-path]" }

func (imageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return ErrUsage
	}
	out := args[0]
	if len(args) == 2 {
		out = args[1]
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	data, contentType, err := deps.Client.FetchImage(ctx, args[0])
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	fmt.Fprintf(Out, "Saved %s (%s, %d bytes)\n", out, contentType, len(data))
	return nil
}

func init() { RegisterCmd(imageCmd{}) }
