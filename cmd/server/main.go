package main

import (
	"context"
	"log"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/config"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	"github.com/Rajat-Bansal3/Logit-Gym/httpapi"
	"github.com/Rajat-Bansal3/Logit-Gym/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := store.Open(cfg.SQLiteDSN)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := store.CreateSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	var managerOpts []store.ManagerOption
	if cfg.DeterministicUserIDs {
		managerOpts = append(managerOpts, store.WithUsersOptions(auth.WithDeterministicIDs()))
	}

	repos := store.NewRepositoryManager(db, managerOpts...)
	repos.MustValidate()

	logger := auth.DefaultLogger()

	tokens := auth.NewTokenService(
		[]byte(cfg.JWTAccessSecret),
		[]byte(cfg.JWTRefreshSecret),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
		logger,
	)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	scopes := gym.NewScopeResolver(repos.Gyms(), repos.Members())

	auther := auth.NewAuthenticator(repos.Users(), scopes, hasher, tokens).
		WithLogger(logger)

	guard := gym.NewGuard(repos.Members()).WithLogger(logger)
	gyms := gym.NewService(repos.Gyms(), guard).WithLogger(logger)

	server := httpapi.NewServer(auther, gyms).WithLogger(logger)

	app := server.App()
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
