package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tracklet-io/tracklet/internal/infrastructure/auth"
	"github.com/tracklet-io/tracklet/internal/infrastructure/config"
	"github.com/tracklet-io/tracklet/internal/infrastructure/database"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/seeds"
	"github.com/tracklet-io/tracklet/internal/infrastructure/repository"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

var (
	env        string
	configPath string
	usersFile  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed initial users",
		Long:  `Create the initial user accounts. Nothing is inserted when the users table already has rows.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&usersFile, "file", "f", "", "Users seed YAML file (default: built-in users)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("seed")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	path := usersFile
	if path == "" {
		path = cfg.Seed.UsersFile
	}

	created, err := Users(cmd.Context(), database.Get(), cfg.Auth.Password.BcryptCost, path, log)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d user(s)\n", created)
	return nil
}

// Users loads the seed file at path (built-in users when empty) and inserts
// them into an empty users table.
func Users(ctx context.Context, gdb *gorm.DB, bcryptCost int, path string, log logger.Interface) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	users, err := seeds.LoadUsers(path)
	if err != nil {
		return 0, err
	}

	seeder := seeds.NewUserSeeder(
		repository.NewUserRepository(gdb, log),
		auth.NewBcryptPasswordHasher(bcryptCost),
		db.NewTransactionManager(gdb),
		log,
	)

	created, err := seeder.Seed(ctx, users)
	if err != nil {
		return 0, fmt.Errorf("failed to seed users: %w", err)
	}
	return created, nil
}
