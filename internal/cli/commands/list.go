package commands

import (
	"context"
	"fmt"
	"strings"

	"PassKeeper/internal/cli/bootstrap"
	"PassKeeper/internal/config"
	"PassKeeper/internal/model"
)

type listCmd struct{}

func (listCmd) Name() string { return "list" }
func (listCmd) Description() string {
	return "Show saved passwords"
}
func (listCmd) Usage() string { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenCredentialService(cfg, log)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No saved passwords")
		return nil
	}
	for _, c := range list {
		fmt.Fprintln(Out, formatRow(c))
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

// formatRow renders one record without its password.
func formatRow(c model.Credential) string {
	parts := []string{fmt.Sprintf("#%d %s", c.ID, c.Name)}
	if c.Login != nil {
		parts = append(parts, "login="+*c.Login)
	}
	if c.Website != nil {
		parts = append(parts, "website="+*c.Website)
	}
	if c.Description != nil {
		parts = append(parts, fmt.Sprintf("description=%q", *c.Description))
	}
	parts = append(parts, "created="+c.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	last := "never"
	if c.LastUsed != nil {
		last = c.LastUsed.Local().Format("2006-01-02 15:04:05")
	}
	parts = append(parts, "last_used="+last)
	return strings.Join(parts, "  ")
}

func init() { RegisterCmd(listCmd{}) }
