package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tracklet-io/tracklet/internal/domain/user"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

//go:embed users.yaml
var defaultUsersYAML []byte

// UserSeed is one entry of a users seed file.
type UserSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	// Active defaults to true when omitted.
	Active *bool `yaml:"active"`
}

type usersFile struct {
	Users []UserSeed `yaml:"users"`
}

// LoadUsers reads a seed file, or the built-in users when path is empty.
func LoadUsers(path string) ([]UserSeed, error) {
	data := defaultUsersYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read users seed file: %w", err)
		}
	}
	return ParseUsers(data)
}

func ParseUsers(data []byte) ([]UserSeed, error) {
	var file usersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse users seed file: %w", err)
	}

	for i, u := range file.Users {
		if u.Username == "" || u.Password == "" {
			return nil, fmt.Errorf("users[%d]: username and password are required", i)
		}
	}

	return file.Users, nil
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type UserSeeder struct {
	repo   user.Repository
	hasher PasswordHasher
	txMgr  db.Transactor
	logger logger.Interface
}

func NewUserSeeder(repo user.Repository, hasher PasswordHasher, txMgr db.Transactor, logger logger.Interface) *UserSeeder {
	return &UserSeeder{
		repo:   repo,
		hasher: hasher,
		txMgr:  txMgr,
		logger: logger,
	}
}

// Seed inserts the users only when the users table is empty and returns how
// many were created. All users are created in one transaction.
func (s *UserSeeder) Seed(ctx context.Context, seeds []UserSeed) (int, error) {
	created := 0

	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := s.repo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			s.logger.Infow("users table not empty, skipping seed", "existing", count)
			return nil
		}

		for _, seed := range seeds {
			hash, err := s.hasher.Hash(seed.Password)
			if err != nil {
				return err
			}

			u, err := user.NewUser(seed.Username, seed.Email, hash)
			if err != nil {
				return fmt.Errorf("seed user %q: %w", seed.Username, err)
			}
			if seed.Active != nil && !*seed.Active {
				u.Deactivate()
			}

			if err := s.repo.Create(txCtx, u); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Infow("user seed completed", "created", created)
	return created, nil
}
