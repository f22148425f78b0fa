package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"riftrewind/pkg/game/api"
	"riftrewind/pkg/game/config"
	"riftrewind/pkg/game/devtools"
	"riftrewind/pkg/game/devtools/mockbackend"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/landing"
	"riftrewind/pkg/game/menu"
	"riftrewind/pkg/game/renderer"
	ebitenrenderer "riftrewind/pkg/game/renderer/ebiten"
	"riftrewind/pkg/game/renderer/tui"
	"riftrewind/pkg/game/state"
	"riftrewind/pkg/game/storage"
	"riftrewind/pkg/game/story"
	"riftrewind/pkg/game/zones"
)

// options holds the command-line flags and what was loaded from them.
type options struct {
	configPath  string
	apiURL      string
	storagePath string
	zonesFile   string
	mapImage    string
	locale      string

	form landing.Form

	cfg    *config.Config
	layout *zones.Layout
}

func (o *options) bindPersistent(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML config file")
	pf.StringVar(&o.apiURL, "api-url", "", "backend base URL")
	pf.StringVar(&o.storagePath, "storage", "", "file the rewind is stored in")
	pf.StringVar(&o.zonesFile, "zones", "", "zone layout YAML (built-in layout if empty)")
	pf.StringVar(&o.mapImage, "map-image", "", "PNG or JPEG map background (generated if empty)")
	pf.StringVar(&o.locale, "locale", "", "message catalog to use")
}

func (o *options) bindLanding(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.form.GameName, "game-name", "", "pre-fill the game name")
	f.StringVar(&o.form.TagLine, "tag-line", "", "pre-fill the tag line")
	f.StringVar(&o.form.Platform, "platform", "", "pre-fill the platform (default na1)")
}

// load resolves the config: defaults, file, environment, then flags.
func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	if o.storagePath != "" {
		cfg.StoragePath = o.storagePath
	}
	if o.zonesFile != "" {
		cfg.ZonesFile = o.zonesFile
	}
	if o.mapImage != "" {
		cfg.MapImage = o.mapImage
	}
	if o.locale != "" {
		cfg.Locale = o.locale
	}

	if err := i18n.Load(cfg.Locale); err != nil {
		return err
	}
	layout, err := zones.LoadLayout(cfg.ZonesFile)
	if err != nil {
		return err
	}

	o.cfg, o.layout = cfg, layout
	return nil
}

// forwardArgs passes the resolved settings on to a child process.
func (o *options) forwardArgs() []string {
	var args []string
	add := func(flag, value string) {
		if value != "" {
			args = append(args, "--"+flag, value)
		}
	}
	add("config", o.configPath)
	add("api-url", o.cfg.APIURL)
	add("storage", o.cfg.StoragePath)
	add("zones", o.cfg.ZonesFile)
	add("map-image", o.cfg.MapImage)
	add("locale", i18n.Locale())
	return args
}

func (o *options) client() *api.Client {
	return api.NewClient(o.cfg.APIURL, o.cfg.RequestTimeout)
}

func (o *options) store() *storage.Store {
	return storage.New(o.cfg.StoragePath)
}

func newConsole() *tui.TUIRenderer {
	t := tui.New()
	t.Init()
	renderer.SetConsole(t)
	return t
}

// runApp shows the main menu and alternates between the landing flow and
// the map window until the user quits. Pre-filled player flags skip the menu
// the first time round.
func runApp(ctx context.Context, o *options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	console := newConsole()
	console.PrintBanner()

	store := o.store()
	client := o.client()
	log.Printf("Using backend at %s", client.BaseURL())
	checkBackend(ctx, client)
	flow := &landing.Flow{
		Console: console,
		Client:  client,
		Store:   store,
		Prefill: o.form,
	}
	skipMenu := o.form != (landing.Form{})

	for {
		action := menu.MainMenuActionStart
		if !skipMenu {
			var err error
			action, err = menu.RunMainMenu(console, store.HasPlayerData())
			if err != nil {
				return ignoreInputEnd(err)
			}
		}
		skipMenu = false

		switch action {
		case menu.MainMenuActionQuit:
			return nil
		case menu.MainMenuActionStories:
			if data, err := loadStored(console, store); err == nil {
				console.PrintZoneList(data)
			} else if !errors.Is(err, errBack) {
				return err
			}
			continue
		case menu.MainMenuActionControls:
			menu.ShowBindings(console)
			continue
		}

		if _, err := flow.Run(ctx); err != nil {
			return ignoreInputEnd(err)
		}
		flow.Prefill = landing.Form{}

		back, err := openMapWindow(ctx, o)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

// checkBackend logs whether the backend answers its health check. The
// landing flow reports connection errors itself, so this is only a hint.
func checkBackend(ctx context.Context, client *api.Client) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Health(ctx); err != nil {
		log.Printf("Backend health check failed: %v", err)
	}
}

// ignoreInputEnd treats a closed stdin or Ctrl-C as quitting.
func ignoreInputEnd(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openMapWindow runs the map command in a child process, since an Ebiten
// window can only be opened once per process. back reports whether the user
// asked to return to the landing flow.
func openMapWindow(ctx context.Context, o *options) (back bool, err error) {
	exe, err := os.Executable()
	if err != nil {
		return false, fmt.Errorf("locate executable: %w", err)
	}

	cmd := exec.CommandContext(ctx, exe, append([]string{"map"}, o.forwardArgs()...)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	log.Printf("Opening map window")
	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return false, nil
	case errors.As(err, &exitErr) && exitErr.ExitCode() == exitBack:
		return true, nil
	case ctx.Err() != nil:
		return false, nil
	default:
		return false, fmt.Errorf("map window: %w", err)
	}
}

// loadStored reads the stored rewind. Missing or unreadable data is reported
// on the console and turned into errBack so the caller goes to landing.
func loadStored(console *tui.TUIRenderer, store *storage.Store) (*state.PlayerData, error) {
	data, err := store.LoadPlayerData()
	if err == nil {
		return data, nil
	}

	var decodeErr *storage.DecodeError
	switch {
	case errors.Is(err, storage.ErrNoData):
		console.PrintError(i18n.T("NO_DATA"))
	case errors.As(err, &decodeErr):
		log.Printf("Stored rewind is unreadable, removing it: %v", err)
		if err := store.RemoveItem(state.StorageKey); err != nil {
			log.Printf("Removing stored rewind: %v", err)
		}
		console.PrintError(i18n.T("BAD_DATA"))
	default:
		return nil, err
	}
	return nil, errBack
}

func mapCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Open the map window for the stored rewind",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			console := newConsole()
			store := o.store()
			data, err := loadStored(console, store)
			if err != nil {
				return err
			}

			client := o.client()
			win := ebitenrenderer.New(ebitenrenderer.Options{
				Width:    o.cfg.Window.Width,
				Height:   o.cfg.Window.Height,
				Data:     data,
				Layout:   o.layout,
				MapImage: o.cfg.MapImage,
				Refresh: func(ctx context.Context, info state.PlayerInfo) (*state.PlayerData, error) {
					return landing.Refresh(ctx, client, store, info)
				},
			})

			outcome, err := win.Run()
			if err != nil {
				return err
			}
			if outcome == ebitenrenderer.OutcomeBack {
				return errBack
			}
			return nil
		},
	}
}

func rewindCmd(o *options) *cobra.Command {
	var req api.LegacyRewindRequest

	cmd := &cobra.Command{
		Use:   "rewind",
		Short: "Send a player to the legacy rewind endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			console := newConsole()
			resp, err := o.client().LegacyRewind(cmd.Context(), req)

			var apiErr *api.APIError
			switch {
			case err == nil:
				console.PrintSuccess(i18n.T("REWIND_RECEIVED", resp.Message))
			case errors.As(err, &apiErr):
				console.PrintError(i18n.T("ERROR_GENERIC", apiErr.Message))
			default:
				console.PrintError(i18n.T("ERROR_CONNECTION", err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "summoner name")
	cmd.Flags().StringVar(&req.Hashtag, "hashtag", "", "tag, e.g. #NA1")
	cmd.Flags().StringVar(&req.Server, "server", landing.DefaultPlatform, "platform")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("hashtag")
	return cmd
}

func storyCmd(o *options) *cobra.Command {
	var (
		dump   bool
		export bool
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "story [zone-id]",
		Short: "Print the stored zone stories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			console := newConsole()
			data, err := loadStored(console, o.store())
			if errors.Is(err, errBack) {
				return nil
			}
			if err != nil {
				return err
			}

			now := time.Now()
			switch {
			case dump:
				path, err := devtools.DumpRewindToFile(data, o.layout, outDir, now)
				if err != nil {
					return err
				}
				console.PrintSuccess(i18n.T("DUMP_WRITTEN", path))
			case export:
				path, err := devtools.SaveStoryHTML(data, o.layout, outDir, now)
				if err != nil {
					return err
				}
				console.PrintSuccess(i18n.T("EXPORT_WRITTEN", path))
			case len(args) == 1:
				console.PrintStory(story.ActivateZone(data.Zones, args[0]))
			default:
				console.PrintZoneList(data)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "write a debug dump of the stored rewind")
	cmd.Flags().BoolVar(&export, "html", false, "write the stories to an HTML page")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory for --dump and --html")
	return cmd
}

func mockServerCmd(o *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Run a development backend with canned stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if port == 0 {
				port = o.cfg.MockServer.Port
			}
			dbURL := o.cfg.MockServer.DatabaseURL

			store, err := mockbackend.OpenStore(ctx, dbURL, time.Now())
			if err != nil {
				return fmt.Errorf("open analysis store: %w", err)
			}
			defer store.Close()
			if dbURL != "" {
				log.Printf("Mock backend using PostgreSQL")
			} else {
				log.Printf("Mock backend using in-memory storage, seeded with %s", mockbackend.SeedRiotID)
			}

			return mockbackend.NewServer(store).ListenAndServe(ctx, fmt.Sprintf(":%d", port))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (default from config, 5000)")
	return cmd
}
