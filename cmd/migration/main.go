package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// migrator is the subset of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Steps(n int) error
	Migrate(version uint) error
	Force(version int) error
	Version() (version uint, dirty bool, err error)
}

type command struct {
	args string
	run  func(m migrator, args []string, out io.Writer) (string, error)
}

var commands = map[string]command{
	"up": {run: func(m migrator, _ []string, _ io.Writer) (string, error) {
		return "migrations applied", m.Up()
	}},
	"down": {args: "[steps]", run: func(m migrator, args []string, _ io.Writer) (string, error) {
		steps := 1
		if len(args) > 0 {
			n, err := parseNumber(args[0], "steps")
			if err != nil {
				return "", err
			}
			if n == 0 {
				return "", errors.New("down steps must be > 0")
			}
			steps = int(n)
		}
		return fmt.Sprintf("rolled back %d step(s)", steps), m.Steps(-steps)
	}},
	"goto": {args: "<version>", run: func(m migrator, args []string, _ io.Writer) (string, error) {
		target, err := requireVersion(args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("migrated to version %d", target), m.Migrate(target)
	}},
	"force": {args: "<version>", run: func(m migrator, args []string, _ io.Writer) (string, error) {
		version, err := requireVersion(args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("forced version %d", version), m.Force(int(version))
	}},
	"version": {run: func(m migrator, _ []string, out io.Writer) (string, error) {
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			_, _ = fmt.Fprintln(out, "version: none\ndirty: false")
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("read version: %w", err)
		}
		_, _ = fmt.Fprintf(out, "version: %d\ndirty: %t\n", version, dirty)
		return "", nil
	}},
}

func main() {
	logger := logging.NewConsole(logging.LevelInfo)
	defer logger.Sync()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}
	name := strings.ToLower(strings.TrimSpace(os.Args[1]))
	cmd, ok := commands[name]
	if !ok {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	m, sourceURL, err := openMigrator()
	if err != nil {
		logger.Error("migration setup failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("migration source", "url", sourceURL)

	err = execute(m, cmd, os.Args[2:], os.Stdout, logger)
	srcErr, dbErr := m.Close()
	if err == nil {
		err = errors.Join(srcErr, dbErr)
	}
	if err != nil {
		logger.Error("migration failed", "command", name, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// execute runs cmd and treats migrate.ErrNoChange as success.
func execute(m migrator, cmd command, args []string, out io.Writer, logger *logging.Logger) error {
	done, err := cmd.run(m, args, out)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("no migration changes")
		return nil
	case err != nil:
		return err
	case done != "":
		logger.Info(done)
	}
	return nil
}

func openMigrator() (*migrate.Migrate, string, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return nil, "", errors.New("DB_URL is required")
	}
	binary, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("DB_BINARY_PARAMETERS")))

	dir, err := migrationsDir(os.Getenv("MIGRATIONS_DIR"), "./db/migrations", "/app/db/migrations")
	if err != nil {
		return nil, "", err
	}
	sourceURL := "file://" + filepath.ToSlash(dir)

	m, err := migrate.New(sourceURL, withBinaryParameters(dbURL, binary))
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, sourceURL, nil
}

func migrationsDir(candidates ...string) (string, error) {
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("no migrations directory among %q", candidates)
}

// withBinaryParameters mirrors the API's DB_BINARY_PARAMETERS handling.
func withBinaryParameters(raw string, enabled bool) string {
	u, err := url.Parse(raw)
	if !enabled || err != nil || u.Scheme == "" {
		return raw
	}
	q := u.Query()
	if !q.Has("binary_parameters") {
		q.Set("binary_parameters", "yes")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func requireVersion(args []string) (uint, error) {
	if len(args) == 0 {
		return 0, errors.New("a version argument is required")
	}
	return parseNumber(args[0], "version")
}

func parseNumber(raw, what string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return uint(n), nil
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	prog := filepath.Base(os.Args[0])
	_, _ = fmt.Fprintf(w, "usage: %s <command> [args]\ncommands:\n", prog)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s %s %s\n", prog, name, commands[name].args)
	}
}
