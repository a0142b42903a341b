// Package store bootstraps the relational store and exposes the
// repository manager the services are wired with.
package store

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Open connects to the SQLite store behind the shim driver.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateSchema creates the tables the repositories expect. Safe to call
// on every startup.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*auth.User)(nil),
		(*gym.Gym)(nil),
		(*gym.Profile)(nil),
		(*gym.Member)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Users() auth.Users
	Gyms() *gym.Gyms
	Members() *gym.Members
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Validate() error
	MustValidate()
}

type mngr struct {
	db      *bun.DB
	users   auth.Users
	gyms    *gym.Gyms
	members *gym.Members
}

// ManagerOption customizes repository construction.
type ManagerOption func(*mngr)

// WithUsersOptions forwards options to the users repository.
func WithUsersOptions(opts ...auth.UsersOption) ManagerOption {
	return func(m *mngr) {
		m.users = auth.NewUsersRepository(m.db, opts...)
	}
}

func NewRepositoryManager(db *bun.DB, opts ...ManagerOption) RepositoryManager {
	m := &mngr{
		db:      db,
		users:   auth.NewUsersRepository(db),
		gyms:    gym.NewGymsRepository(db),
		members: gym.NewMembersRepository(db),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m
}

func (m *mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.gyms == nil {
		return errors.New("repository gyms should be initialized")
	}

	if m.members == nil {
		return errors.New("repository members should be initialized")
	}

	return nil
}

func (m *mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m *mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m *mngr) Users() auth.Users {
	return m.users
}

func (m *mngr) Gyms() *gym.Gyms {
	return m.gyms
}

func (m *mngr) Members() *gym.Members {
	return m.members
}
