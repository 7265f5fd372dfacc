package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
	"PassKeeper/internal/generator"
)

type generateCmd struct{}

func (generateCmd) Name() string { return "generate" }
func (generateCmd) Description() string {
	return "Generate random passwords"
}
func (generateCmd) Usage() string {
	return "generate [-length N] [-count N] [-symbols] [-digits] [-capitalize] [-copy K]"
}

// Run не открывает хранилище: генерация работает даже при недоступной базе.
func (generateCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	opts := cfg.GeneratorDefaults()
	fs := newFlagSet("generate")
	fs.IntVar(&opts.Length, "length", opts.Length, "password length (1-50)")
	fs.IntVar(&opts.Count, "count", opts.Count, "number of passwords (1-10)")
	fs.BoolVar(&opts.Symbols, "symbols", false, "include punctuation")
	fs.BoolVar(&opts.Digits, "digits", false, "include digits")
	fs.BoolVar(&opts.Capitalize, "capitalize", false, "capitalize first letter, lowercase the rest")
	copyIdx := fs.Int("copy", 0, "copy the K-th password to the clipboard")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	list, err := generator.Generate(opts)
	if err != nil {
		return err
	}
	for i, pw := range list {
		fmt.Fprintf(Out, "%2d. %s\n", i+1, pw)
	}

	if *copyIdx == 0 {
		return nil
	}
	if *copyIdx < 0 || *copyIdx > len(list) {
		return fmt.Errorf("no password #%d to copy", *copyIdx)
	}
	if err := Desktop.CopyToClipboard(list[*copyIdx-1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Copied password #%d to clipboard\n", *copyIdx)
	return nil
}

func init() { RegisterCmd(generateCmd{}) }
