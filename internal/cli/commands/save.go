package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/cli/bootstrap"
	"PassKeeper/internal/config"
	"PassKeeper/internal/service"
)

type saveCmd struct{}

func (saveCmd) Name() string { return "save" }
func (saveCmd) Description() string {
	return "Save a password under a name"
}
func (saveCmd) Usage() string {
	return "save -name <name> [-login L] [-website W] [-description D] <password>"
}

func (saveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	var in service.SaveInput
	fs := newFlagSet("save")
	fs.StringVar(&in.Name, "name", "", "password name")
	fs.StringVar(&in.Login, "login", "", "login")
	fs.StringVar(&in.Website, "website", "", "website")
	fs.StringVar(&in.Description, "description", "", "description")
	if err := fs.Parse(args); err != nil || fs.NArg() > 1 {
		return ErrUsage
	}
	in.Password = fs.Arg(0)

	svc, done, err := bootstrap.OpenCredentialService(cfg, log)
	if err != nil {
		return err
	}
	defer done()

	id, err := svc.Save(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved password #%d (%s)\n", id, in.Name)
	return nil
}

func init() { RegisterCmd(saveCmd{}) }
