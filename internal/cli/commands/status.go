package commands

import (
	"context"
	"fmt"

	"SimpleMercari/internal/cli/bootstrap"
	"SimpleMercari/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string { return "Проверить доступность API" }
func (statusCmd) Usage() string { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	deps, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()
	msg, err := deps.Client.Hello(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "API: %s\n", deps.Client.BaseURL())
	fmt.Fprintln(Out, "Status:", msg)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
