// Command seed registers or updates one admin account. The password
// lives in the identity provider, not here: this only creates the
// local record the login flow looks up after verification.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/config"
	"github.com/syberke1354/exion-sub001/internal/domain/enums"
	"github.com/syberke1354/exion-sub001/internal/domain/model"
	"github.com/syberke1354/exion-sub001/internal/infra/logger"
	pgrepo "github.com/syberke1354/exion-sub001/internal/repo/postgres"
)

func main() {
	var (
		email    = flag.String("email", "", "admin email (must exist in the identity provider)")
		name     = flag.String("name", "", "display name")
		role     = flag.String("role", string(enums.RoleSuperAdmin), "admin role")
		inactive = flag.Bool("inactive", false, "create the account disabled")
	)
	flag.Parse()

	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	if *email == "" {
		log.Fatal("email flag is required")
	}
	parsedRole, ok := enums.ParseRole(*role)
	if !ok {
		log.Fatal("unknown role", zap.String("role", *role))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := pgrepo.NewAdminAccountRepo(pool)
	account, err := repo.Create(ctx, model.AdminAccount{
		Email:    *email,
		Name:     *name,
		Role:     parsedRole,
		IsActive: !*inactive,
	})
	if err != nil {
		log.Fatal("seed admin account", zap.Error(err))
	}

	log.Info("admin account seeded",
		zap.Int64("id", account.ID),
		zap.String("email", account.Email),
		zap.String("role", string(account.Role)),
	)
}
