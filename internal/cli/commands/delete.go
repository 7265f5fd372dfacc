package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"PassKeeper/internal/cli/bootstrap"
	"PassKeeper/internal/config"
	"PassKeeper/internal/service"
)

type deleteCmd struct{}

func (deleteCmd) Name() string { return "delete" }
func (deleteCmd) Description() string {
	return "Delete a saved password (asks for confirmation)"
}
func (deleteCmd) Usage() string { return "delete [-y] <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("delete")
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	svc, done, err := bootstrap.OpenCredentialService(cfg, log)
	if err != nil {
		return err
	}
	defer done()

	c, err := svc.Find(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		// удаление отсутствующей записи — не ошибка
		fmt.Fprintf(Out, "No saved password #%d, nothing to delete\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	if !*yes && !confirm(fmt.Sprintf("Are you sure you want to delete the password for %s? [y/N]: ", c.Name)) {
		fmt.Fprintln(Out, "Cancelled")
		return nil
	}
	if err := svc.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted password: %s\n", c.Name)
	return nil
}

func confirm(prompt string) bool {
	fmt.Fprint(Out, prompt)
	line, _ := bufio.NewReader(In).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() { RegisterCmd(deleteCmd{}) }
