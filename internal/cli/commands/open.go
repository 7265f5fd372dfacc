package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/cli/bootstrap"
	"PassKeeper/internal/config"
)

type openCmd struct{}

func (openCmd) Name() string { return "open" }
func (openCmd) Description() string {
	return "Copy login and password to the clipboard and open the website"
}
func (openCmd) Usage() string { return "open <id>" }

func (openCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	svc, done, err := bootstrap.OpenCredentialService(cfg, log)
	if err != nil {
		return err
	}
	defer done()

	res, err := svc.Open(ctx, id, Desktop)
	if err != nil {
		return err
	}
	c := res.Credential
	if res.OpenedURL != "" {
		fmt.Fprintf(Out, "Opened %s\n", res.OpenedURL)
	}
	if c.Login != nil && *c.Login != "" {
		fmt.Fprintf(Out, "Copied login and password for %s to clipboard\n", c.Name)
	} else {
		fmt.Fprintf(Out, "Copied password for %s to clipboard\n", c.Name)
	}
	return nil
}

func init() { RegisterCmd(openCmd{}) }
