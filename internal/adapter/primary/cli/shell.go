package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pomoplay/internal/logging"
)

func newShellCmd() *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run pomoplay commands from an interactive prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveShell(prompt)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "pomoplay> ", "shell prompt string")
	return cmd
}

func runInteractiveShell(prompt string) error {
	historyFile := filepath.Join(os.TempDir(), "pomoplay-shell.history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	sessionVerbosity := verbosity
	fmt.Println("Interactive shell. 'help' for usage, 'exit' to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "exit", "quit":
			fmt.Println("Bye!")
			return nil
		case "help":
			printShellHelp()
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "log" {
			if err := handleShellLog(tokens[1:], &sessionVerbosity); err != nil {
				fmt.Printf("log: %v\n", err)
			}
			continue
		}
		if tokens[0] == "shell" {
			fmt.Println("Already in the shell. Enter another command or 'exit'.")
			continue
		}

		verbosity = sessionVerbosity
		if err := executeArgs(tokens); err != nil {
			fmt.Printf("command error: %v\n", err)
		}
		sessionVerbosity = verbosity
	}
}

func executeArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func handleShellLog(args []string, sessionVerbosity *int) error {
	fs := pflag.NewFlagSet("log", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var vcount int
	var level string
	var show bool
	fs.CountVarP(&vcount, "verbose", "v", "increase verbosity (-v... up to 4)")
	fs.StringVar(&level, "level", "", "set a level by name (error|warn|info|debug|trace)")
	fs.BoolVarP(&show, "show", "s", false, "show the current level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case show && vcount == 0 && level == "":
		fmt.Printf("log level: %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
		return nil
	case level != "":
		_, count, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		*sessionVerbosity = count
	case vcount > 0:
		*sessionVerbosity = vcount
	default:
		fmt.Printf("log level: %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
		return nil
	}

	verbosity = *sessionVerbosity
	logging.SetVerbosity(*sessionVerbosity)
	fmt.Printf("log level set to %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
	return nil
}

func printShellHelp() {
	fmt.Println(`Examples:
  -w 50 -b 10 -i 3            # run a 50/10 timer for 3 cycles
  --playlist "Deep Focus"     # drive a Music playlist instead of volume
  plan --json                 # inspect the timeline without running
  config get                  # show stored defaults
  config set --work 50        # change stored defaults
  volume set --level 40       # set the output volume directly
  log -vv                     # raise log verbosity
  log --show                  # show the current log level
  exit / quit                 # leave the shell`)
}
