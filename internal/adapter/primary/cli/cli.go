package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pomoplay/internal/adapter/secondary/media"
	"pomoplay/internal/adapter/secondary/repository"
	"pomoplay/internal/domain"
	"pomoplay/internal/logging"
	"pomoplay/internal/usecase"
)

var (
	prefsPath string
	verbosity int
)

// sessionFlags carries the timer flags shared by the root run and the
// plan subcommand.
type sessionFlags struct {
	work      int
	brk       int
	cycles    int
	playlist  string
	search    bool
	lastBreak bool
}

// NewRootCmd creates the root CLI command. Running it with no subcommand
// starts a timer session; plan, config, volume and shell are layered on
// top of the same flags.
func NewRootCmd() *cobra.Command {
	flags := &sessionFlags{}
	dryRun := new(bool)

	cmd := &cobra.Command{
		Use:   "pomoplay [url]",
		Short: "Work/break interval timer that drives macOS audio and media",
		Long: `pomoplay alternates work and break periods and makes the transitions
audible: breaks mute the output volume or pause the Music app, work
unmutes or resumes, and completion restores everything and chimes.
Passing an http(s) URL opens it in the browser and mutes around it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runTimer(flags, dryRun),
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&prefsPath, "config", repository.DefaultPath(), "path to the preferences file")
	pf.CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv, ... up to 4)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetVerbosity(verbosity)
	}

	pf.IntVarP(&flags.work, "work", "w", 25, "work interval length in minutes")
	pf.IntVarP(&flags.brk, "break", "b", 5, "break interval length in minutes")
	pf.IntVarP(&flags.cycles, "interval", "i", 4, "number of work/break cycles")
	pf.StringVar(&flags.playlist, "playlist", "", "Music playlist to play during the session")
	pf.BoolVar(&flags.search, "search", false, "search the catalog when the playlist is not in the library")
	pf.BoolVar(&flags.lastBreak, "last-break", false, "run a break after the final cycle too")
	cmd.Flags().BoolVar(dryRun, "dry-run", false, "run the timeline without touching audio or media")

	cmd.AddCommand(
		newStartCmd(flags, dryRun),
		newPlanCmd(flags),
		newConfigCmd(),
		newVolumeCmd(),
		newShellCmd(),
	)

	return cmd
}

// newStartCmd is an explicit alias for the root runner so that
// "pomoplay start" reads naturally in scripts and shell history.
func newStartCmd(flags *sessionFlags, dryRun *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "start [url]",
		Short:        "Start a timer session",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runTimer(flags, dryRun),
	}
	cmd.Flags().BoolVar(dryRun, "dry-run", false, "run the timeline without touching audio or media")
	return cmd
}

func runTimer(flags *sessionFlags, dryRun *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := flags.resolveConfig(cmd, args)
		if err != nil {
			return err
		}

		var controller domain.MediaController = media.NewAppleScriptController()
		if *dryRun {
			controller = media.NewNoopController()
		}
		session, err := usecase.NewSession(controller, nil, cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := session.SelectMode(ctx); err != nil {
			return err
		}

		fmt.Printf("pomoplay: %d cycles of %dm work / %dm break (%s mode)\n",
			cfg.Cycles, cfg.WorkMinutes, cfg.BreakMinutes, session.Mode())

		if err := session.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println("interrupted")
				return nil
			}
			return err
		}
		return nil
	}
}

// resolveConfig merges persisted defaults, explicit flags and the
// positional URL into one validated session config. Explicit flags win
// over the preferences file.
func (f *sessionFlags) resolveConfig(cmd *cobra.Command, args []string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if repo, err := repository.NewFilePrefs(prefsPath); err == nil {
		if stored, err := repo.Load(); err == nil {
			cfg = stored
		} else {
			logging.Warnf("preferences unreadable, using defaults: %v", err)
		}
	}

	changed := cmd.Flags().Changed
	if changed("work") {
		cfg.WorkMinutes = f.work
	}
	if changed("break") {
		cfg.BreakMinutes = f.brk
	}
	if changed("interval") {
		cfg.Cycles = f.cycles
	}
	if changed("playlist") {
		cfg.Playlist = f.playlist
	}
	if changed("search") {
		cfg.Search = f.search
	}
	if changed("last-break") {
		cfg.LastBreak = f.lastBreak
	}
	cfg.VideoURL = positionalURL(args)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// positionalURL returns the first positional argument when, trimmed, it
// begins with an HTTP scheme. Anything else is ignored.
func positionalURL(args []string) string {
	if len(args) == 0 {
		return ""
	}
	v := strings.TrimSpace(args[0])
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return ""
}

func newPlanCmd(flags *sessionFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "plan [url]",
		Short: "Print the computed session timeline without running it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			timeline := domain.BuildTimeline(cfg)

			if asJSON {
				type entry struct {
					OffsetMinutes float64 `json:"offsetMinutes"`
					Event         string  `json:"event"`
					Cycle         int     `json:"cycle,omitempty"`
				}
				entries := make([]entry, 0, len(timeline))
				for _, ev := range timeline {
					entries = append(entries, entry{
						OffsetMinutes: ev.Offset.Minutes(),
						Event:         ev.Kind.String(),
						Cycle:         ev.Cycle,
					})
				}
				out, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			for _, ev := range timeline {
				if ev.Kind == domain.EventComplete {
					fmt.Fprintf(cmd.OutOrStdout(), "%7s  %s\n", formatOffset(ev.Offset), ev.Kind)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%7s  %-11s  cycle %d\n", formatOffset(ev.Offset), ev.Kind, ev.Cycle)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the timeline as JSON")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or update the persisted session defaults",
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the stored defaults as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewFilePrefs(prefsPath)
			if err != nil {
				return err
			}
			cfg, err := repo.Load()
			if err != nil {
				return err
			}

			display := map[string]any{
				"workMinutes":  cfg.WorkMinutes,
				"breakMinutes": cfg.BreakMinutes,
				"cycles":       cfg.Cycles,
				"search":       cfg.Search,
				"lastBreak":    cfg.LastBreak,
			}
			if cfg.Playlist != "" {
				display["playlist"] = cfg.Playlist
			}
			out, _ := json.MarshalIndent(display, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var (
		workFlag      int
		breakFlag     int
		cyclesFlag    int
		playlistFlag  string
		searchFlag    bool
		lastBreakFlag bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the stored defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewFilePrefs(prefsPath)
			if err != nil {
				return err
			}
			cfg, err := repo.Load()
			if err != nil {
				return err
			}

			changed := cmd.Flags().Changed
			if changed("work") {
				cfg.WorkMinutes = workFlag
			}
			if changed("break") {
				cfg.BreakMinutes = breakFlag
			}
			if changed("cycles") {
				cfg.Cycles = cyclesFlag
			}
			if changed("playlist") {
				cfg.Playlist = playlistFlag
			}
			if changed("search") {
				cfg.Search = searchFlag
			}
			if changed("last-break") {
				cfg.LastBreak = lastBreakFlag
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := repo.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved: work=%dm break=%dm cycles=%d\n",
				cfg.WorkMinutes, cfg.BreakMinutes, cfg.Cycles)
			return nil
		},
	}
	cmd.Flags().IntVar(&workFlag, "work", 25, "default work minutes")
	cmd.Flags().IntVar(&breakFlag, "break", 5, "default break minutes")
	cmd.Flags().IntVar(&cyclesFlag, "cycles", 4, "default cycle count")
	cmd.Flags().StringVar(&playlistFlag, "playlist", "", "default playlist name")
	cmd.Flags().BoolVar(&searchFlag, "search", false, "default catalog search fallback")
	cmd.Flags().BoolVar(&lastBreakFlag, "last-break", false, "default final-break behavior")
	return cmd
}

func newVolumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Query or set the system output volume directly",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current output volume",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := media.NewAppleScriptController()
			fmt.Fprintln(cmd.OutOrStdout(), controller.GetVolume(cmd.Context()))
			return nil
		},
	}

	var level int
	set := &cobra.Command{
		Use:   "set",
		Short: "Set the output volume (0-100)",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := media.NewAppleScriptController()
			controller.SetVolume(cmd.Context(), level)
			return nil
		},
	}
	set.Flags().IntVar(&level, "level", media.FallbackVolume, "output volume percentage")

	cmd.AddCommand(get, set)
	return cmd
}

func formatOffset(d time.Duration) string {
	m := d.Minutes()
	if m == float64(int(m)) {
		return fmt.Sprintf("%dm", int(m))
	}
	return fmt.Sprintf("%.1fm", m)
}
