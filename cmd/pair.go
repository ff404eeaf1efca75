package cmd

import (
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kennyg/cppkit/internal/action"
)

var pairCmd = &cobra.Command{
	Use:     "pair <header>",
	Aliases: []string{"companion", "source"},
	Short:   "Create the source file that goes with a header",
	Long: `Create the companion implementation file for a C/C++ header.

The file is placed next to the header, unless the header lives below an
"include" directory: then a sibling "Src" or "src" directory of that include
directory is used, or the include directory's parent when neither exists.

Headers below "include" are pulled in with an angle-bracket include relative
to it; any other header with a quoted include relative to the new file.

An existing companion file is never overwritten.

Examples:
  cppkit pair include/mylib/widget.hpp    # -> src/widget.cpp
  cppkit pair util/strings.h              # -> util/strings.cpp`,
	Args: cobra.ExactArgs(1),
	RunE: runPair,
}

func runPair(cmd *cobra.Command, args []string) error {
	act := &action.CreateCompanion{
		Host:      newTerminal(args[0]),
		Fs:        afero.NewOsFs(),
		Now:       time.Now,
		Banner:    settings.Banner(),
		SourceExt: settings.SourceExtension,
		Logger:    logger,
	}
	return act.Run()
}
