package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	pixiv "github.com/GeminiLab/go-pixiv"
)

type options struct {
	Config  string `short:"c" long:"config" description:"path to the config file" default:"pixivctl.yaml"`
	Verbose bool   `short:"v" long:"verbose" description:"enable debug logging"`

	User     userCmd     `command:"user" description:"show a user's profile"`
	Illust   illustCmd   `command:"illust" description:"show an illustration"`
	Search   searchCmd   `command:"search" description:"search illustrations by word"`
	Ranking  rankingCmd  `command:"ranking" description:"show a ranking board"`
	Download downloadCmd `command:"download" description:"download an illustration's images"`
}

// app holds what every command needs; built in main before commands run.
type appState struct {
	client *pixiv.Client
	cfg    fileConfig
	log    zerolog.Logger
}

var app appState

func main() {
	_ = godotenv.Load()

	opts := &options{}
	parser := flags.NewParser(opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setup(opts); err != nil {
			return err
		}
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "pixivctl:", err)
		os.Exit(1)
	}
}

func setup(opts *options) error {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app = appState{
		client: pixiv.NewClient(pixiv.ClientConfig{
			RefreshToken: cfg.RefreshToken,
			AccessToken:  cfg.AccessToken,
			BaseURL:      cfg.BaseURL,
			Logger:       &log,
		}),
		cfg: cfg,
		log: log,
	}
	return nil
}

type userCmd struct {
	Args struct {
		UserID uint64 `positional-arg-name:"user-id" required:"yes"`
	} `positional-args:"yes"`
	Illusts bool `long:"illusts" description:"list the user's illustrations too"`
}

func (cmd *userCmd) Execute(_ []string) error {
	ctx := context.Background()
	detail, err := app.client.UserDetail(ctx, cmd.Args.UserID, nil)
	if err != nil {
		return err
	}
	fmt.Printf("%s (@%s)\n", detail.User.Name, detail.User.Account)
	fmt.Printf("  illusts: %d  novels: %d  following: %d\n",
		detail.Profile.TotalIllusts, detail.Profile.TotalNovels, detail.Profile.TotalFollowUsers)
	if detail.Profile.Webpage != nil {
		fmt.Printf("  web: %s\n", *detail.Profile.Webpage)
	}

	if !cmd.Illusts {
		return nil
	}
	n := 0
	for illust, err := range app.client.UserIllustsAll(ctx, cmd.Args.UserID, nil) {
		if err != nil {
			return err
		}
		fmt.Printf("  %d\t%s\n", illust.ID, illust.Title)
		if n++; n >= 100 {
			break
		}
	}
	return nil
}

type illustCmd struct {
	Args struct {
		IllustID uint64 `positional-arg-name:"illust-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *illustCmd) Execute(_ []string) error {
	detail, err := app.client.IllustDetail(context.Background(), cmd.Args.IllustID)
	if err != nil {
		return err
	}
	il := detail.Illust
	fmt.Printf("%s by %s (@%s)\n", il.Title, il.User.Name, il.User.Account)
	fmt.Printf("  %dx%d, %d page(s), %d bookmarks, %d views\n",
		il.Width, il.Height, il.PageCount, il.TotalBookmarks, il.TotalView)
	for _, t := range il.Tags {
		fmt.Printf("  #%s\n", t.Name)
	}
	return nil
}

type searchCmd struct {
	Args struct {
		Word string `positional-arg-name:"word" required:"yes"`
	} `positional-args:"yes"`
	Sort  string `long:"sort" description:"sort order" default:"date_desc" choice:"date_desc" choice:"date_asc" choice:"popular_desc"`
	Limit int    `long:"limit" description:"stop after this many results" default:"30"`
}

func (cmd *searchCmd) Execute(_ []string) error {
	opts := &pixiv.SearchIllustOptions{Sort: pixiv.Sort(cmd.Sort)}
	n := 0
	for illust, err := range app.client.SearchIllustAll(context.Background(), cmd.Args.Word, opts) {
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\t%s\n", illust.ID, illust.User.Name, illust.Title)
		if n++; n >= cmd.Limit {
			break
		}
	}
	return nil
}

type rankingCmd struct {
	Mode string `long:"mode" description:"ranking mode" default:"day"`
	Date string `long:"date" description:"ranking date (YYYY-MM-DD)"`
}

func (cmd *rankingCmd) Execute(_ []string) error {
	raw, err := app.client.IllustRanking(context.Background(), &pixiv.IllustRankingOptions{
		Mode: pixiv.RankingMode(cmd.Mode),
		Date: cmd.Date,
	})
	if err != nil {
		return err
	}
	os.Stdout.Write(raw)
	fmt.Println()
	return nil
}

type downloadCmd struct {
	Args struct {
		IllustID uint64 `positional-arg-name:"illust-id" required:"yes"`
	} `positional-args:"yes"`
	Dir string `short:"d" long:"dir" description:"destination directory"`
}

func (cmd *downloadCmd) Execute(_ []string) error {
	ctx := context.Background()
	dir := cmd.Dir
	if dir == "" {
		dir = app.cfg.DownloadDir
	}

	detail, err := app.client.IllustDetail(ctx, cmd.Args.IllustID)
	if err != nil {
		return err
	}

	var urls []string
	il := detail.Illust
	if len(il.MetaPages) > 0 {
		for _, p := range il.MetaPages {
			urls = append(urls, p.ImageURLs.Large)
		}
	} else if il.MetaSinglePage.OriginalImageURL != "" {
		urls = append(urls, il.MetaSinglePage.OriginalImageURL)
	} else {
		urls = append(urls, il.ImageURLs.Large)
	}

	for _, u := range urls {
		written, err := app.client.Download(ctx, u, dir, nil)
		if err != nil {
			return err
		}
		if written {
			app.log.Info().Str("url", u).Msg("downloaded")
		} else {
			app.log.Info().Str("url", u).Msg("already present")
		}
	}
	return nil
}
