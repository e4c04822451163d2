package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/hwnotes/blogbuilder/cmd/blogbuilder/commands"
	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
	"github.com/hwnotes/blogbuilder/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("blogbuilder"),
		kong.Description("Checks and maintains the source tree of a static blog."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	bberrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
