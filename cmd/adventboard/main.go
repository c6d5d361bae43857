package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/pflag"

	"github.com/adventboard/adventboard/internal/config"
	"github.com/adventboard/adventboard/internal/domain/leaderboard"
	"github.com/adventboard/adventboard/internal/domain/rank"
	"github.com/adventboard/adventboard/internal/domain/registry"
	"github.com/adventboard/adventboard/internal/fsstore"
	"github.com/adventboard/adventboard/internal/origin"
	"github.com/adventboard/adventboard/internal/render"
	"github.com/adventboard/adventboard/internal/request"
	"github.com/adventboard/adventboard/internal/sqlite"
)

const usage = `usage: adventboard <command> [flags]

commands:
  view     show a leaderboard ranked across the whole event
  day      show a single day's completion times
  publish  mint (or return) the public token for a leaderboard
  resolve  show a leaderboard by its public token
  renew    replace the session credential behind a public token
`

// Some shells deliver the cookie value still wrapped in quotes.
var quotedSession = regexp.MustCompile(`^"(.*)"$`)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	flags := pflag.NewFlagSet(command, pflag.ExitOnError)
	sessionFlag := flags.String("session", "", "session cookie for the origin site")
	group := flags.String("group", "", "private leaderboard id")
	year := flags.Int("year", time.Now().Year(), "event year")
	sortKey := flags.String("sort", "local", "order: local, global, stars or time")
	day := flags.Int("day", 0, "day of the event (1-25)")
	daySort := flags.String("day-sort", "total", "day order: total, part1 or part2")
	token := flags.String("token", "", "public leaderboard token")
	flags.Parse(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	req := request.New(time.Now())
	logger = req.Logger(logger)
	ctx := context.Background()

	session := normalizeSession(*sessionFlag)
	if session == "" {
		session = normalizeSession(os.Getenv("ADVENTBOARD_SESSION"))
	}

	client := origin.NewHTTPClient(cfg.Origin.BaseURL, cfg.Origin.Timeout())
	boards := leaderboard.NewService(
		fsstore.NewStandingsStore(cfg.Cache.Root),
		client,
		policyFromConfig(cfg.Freshness),
		logger,
	)

	registrySvc, cleanup, err := buildRegistry(cfg, logger)
	if err != nil {
		logger.Error("failed to open registry", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	switch command {
	case "view":
		requireFlags(map[string]string{"session": session, "group": *group})
		runView(ctx, boards, session, *group, *year, *sortKey, req.ReceivedAt)
	case "day":
		requireFlags(map[string]string{"session": session, "group": *group})
		runDay(ctx, boards, session, *group, *year, *day, *daySort, req.ReceivedAt)
	case "publish":
		requireFlags(map[string]string{"session": session, "group": *group})
		runPublish(ctx, registrySvc, *group, session)
	case "resolve":
		requireFlags(map[string]string{"token": *token})
		runResolve(ctx, registrySvc, boards, *token, *year, *sortKey, req.ReceivedAt)
	case "renew":
		requireFlags(map[string]string{"token": *token, "session": session})
		runRenew(ctx, registrySvc, *token, session)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runView(ctx context.Context, boards *leaderboard.Service, session, group string, year int, sortKey string, now time.Time) {
	s, err := boards.GetOrRefresh(ctx, session, group, year, now)
	if err != nil {
		fail(err)
	}
	rows, err := rank.Rank(s, rank.ParseKey(sortKey))
	if err != nil {
		fail(err)
	}
	fmt.Print(render.OverallTable(rows))
}

func runDay(ctx context.Context, boards *leaderboard.Service, session, group string, year, day int, daySort string, now time.Time) {
	s, err := boards.GetOrRefresh(ctx, session, group, year, now)
	if err != nil {
		fail(err)
	}
	rows, err := rank.RankDay(s, year, day, rank.ParseDayKey(daySort))
	if err != nil {
		fail(err)
	}
	fmt.Print(render.DayTable(rows))
}

func runPublish(ctx context.Context, svc *registry.Service, group, session string) {
	token, err := svc.Publish(ctx, group, session)
	if err != nil {
		fail(err)
	}
	fmt.Println(token)
}

func runResolve(ctx context.Context, svc *registry.Service, boards *leaderboard.Service, token string, year int, sortKey string, now time.Time) {
	pub, err := svc.Resolve(ctx, token)
	if err != nil {
		fail(err)
	}
	runView(ctx, boards, pub.Session, pub.GroupID, year, sortKey, now)
}

func runRenew(ctx context.Context, svc *registry.Service, token, session string) {
	if err := svc.Renew(ctx, token, session); err != nil {
		fail(err)
	}
	fmt.Println("renewed")
}

func buildRegistry(cfg config.Config, logger *slog.Logger) (*registry.Service, func(), error) {
	if cfg.Registry.Backend == "sqlite" {
		if err := ensureDir(cfg.Registry.SQLitePath); err != nil {
			return nil, nil, err
		}
		db, err := sqlite.New(cfg.Registry.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return registry.NewService(sqlite.NewRegistryStore(db), logger), func() { db.Close() }, nil
	}
	return registry.NewService(fsstore.NewRegistryStore(cfg.Cache.Root), logger), func() {}, nil
}

func normalizeSession(s string) string {
	if m := quotedSession.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

func requireFlags(values map[string]string) {
	for name, value := range values {
		if value == "" {
			fmt.Fprintf(os.Stderr, "missing required --%s\n", name)
			os.Exit(2)
		}
	}
}

func policyFromConfig(f config.FreshnessConfig) leaderboard.Policy {
	return leaderboard.Policy{
		BurstTTL:     time.Duration(f.BurstSeconds) * time.Second,
		BurstNoCache: f.BurstNoCache,
		ActiveTTL:    time.Duration(f.ActiveSeconds) * time.Second,
		IdleTTL:      time.Duration(f.IdleSeconds) * time.Second,
	}
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
