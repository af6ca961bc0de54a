package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/erp/installment/internal/infrastructure/config"
	"github.com/erp/installment/internal/infrastructure/logger"
	"github.com/erp/installment/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

var errUsage = errors.New("usage")

// dbCommand runs against an open migrator; args excludes the command name
type dbCommand func(m *migration.Migrator, log *zap.Logger, args []string) error

var dbCommands = map[string]dbCommand{
	"up": func(m *migration.Migrator, _ *zap.Logger, _ []string) error {
		return m.Up()
	},
	"down": func(m *migration.Migrator, _ *zap.Logger, _ []string) error {
		return m.Down()
	},
	"step": func(m *migration.Migrator, _ *zap.Logger, args []string) error {
		n, err := intArg(args, "step count")
		if err != nil {
			return err
		}
		return m.Steps(n)
	},
	"goto": func(m *migration.Migrator, _ *zap.Logger, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: version required", errUsage)
		}
		version, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: invalid version %q", errUsage, args[0])
		}
		return m.GoTo(uint(version))
	},
	"version": func(m *migration.Migrator, log *zap.Logger, _ []string) error {
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			log.Info("No migrations applied")
			return nil
		}
		log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	},
	"force": func(m *migration.Migrator, log *zap.Logger, args []string) error {
		version, err := intArg(args, "version")
		if err != nil {
			return err
		}
		log.Warn("Forcing migration version; the schema is not touched", zap.Int("version", version))
		return m.Force(version)
	},
}

func main() {
	var migrationsPath, logLevel string
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: database.migrations_path)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(args, migrationsPath, log); err != nil {
		if errors.Is(err, errUsage) {
			log.Error("Invalid arguments", zap.Error(err))
			printUsage()
			os.Exit(2)
		}
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func run(args []string, migrationsPath string, log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dir, err := resolveMigrationsPath(migrationsPath, cfg.Database.MigrationsPath)
	if err != nil {
		return err
	}
	command, rest := args[0], args[1:]
	log.Info("Migration CLI started", zap.String("command", command), zap.String("migrations_path", dir))

	switch command {
	case "create":
		if len(rest) == 0 {
			return fmt.Errorf("%w: migration name required", errUsage)
		}
		description := ""
		if len(rest) > 1 {
			description = rest[1]
		}
		mf, err := migration.CreateMigration(dir, rest[0], description)
		if err != nil {
			return err
		}
		log.Info("Migration created",
			zap.Uint("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath))
		return nil
	case "list":
		names, err := migration.ListMigrations(dir)
		if err != nil {
			return err
		}
		log.Info("Available migrations", zap.Int("count", len(names)))
		for _, name := range names {
			fmt.Println("  -", name)
		}
		return nil
	}

	cmd, ok := dbCommands[command]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	m, err := migration.New(db, dir, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return cmd(m, log, rest)
}

// resolveMigrationsPath prefers the flag, then the configured path. A relative
// path that does not exist is retried next to the executable's repository root.
func resolveMigrationsPath(flagPath, configured string) (string, error) {
	dir := flagPath
	if dir == "" {
		dir = configured
	}
	if _, err := os.Stat(dir); err != nil && !filepath.IsAbs(dir) {
		if execPath, execErr := os.Executable(); execErr == nil {
			candidate := filepath.Join(filepath.Dir(execPath), "..", "..", dir)
			if _, statErr := os.Stat(candidate); statErr == nil {
				dir = candidate
			}
		}
	}
	return filepath.Abs(dir)
}

func intArg(args []string, name string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s required", errUsage, name)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errUsage, name, args[0])
	}
	return n, nil
}

func printUsage() {
	fmt.Println(`Installment ledger schema migrations

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (negative rolls back)
  goto <version>        Migrate to a specific version
  version               Show the current version
  force <version>       Set the version without running migrations
  create <name> [desc]  Create an up/down migration pair
  list                  List migration files

Flags:
  -path string          Migrations directory (default: database.migrations_path)
  -log-level string     debug, info, warn or error (default: info)

Connection settings come from config.toml or INSTALLMENT_DATABASE_* variables.`)
}
