package main

import (
	"context"
	"os"

	"github.com/agbru/fanjoin/internal/app"
	apperrors "github.com/agbru/fanjoin/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		err = apperrors.WrapError(err, "fanjoin: invalid configuration")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
