package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/priyanshu599/backendRantease/internal/adapters/observability"
	"github.com/priyanshu599/backendRantease/internal/domain"
	"github.com/priyanshu599/backendRantease/internal/shared"
	mysqlrepo "github.com/priyanshu599/backendRantease/internal/storage/mysql"
)

type fixture struct {
	owner      domain.User
	properties []domain.Property
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repos := mysqlrepo.New(db)

	fixtures := demoFixtures()
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, f := range fixtures {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(f fixture) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repos.Users.Create(ctx, f.owner); err != nil {
				log.Warn().Str("email", f.owner.Email).Err(err).Msg("seed user failed")
				return
			}
			for _, p := range f.properties {
				if err := repos.Properties.Create(ctx, p); err != nil {
					log.Warn().Str("title", p.Title).Err(err).Msg("seed property failed")
					return
				}
			}
			log.Info().Str("email", f.owner.Email).Int("properties", len(f.properties)).Msg("seed ok")
		}(f)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

// demoFixtures builds a small set of landlords with listings plus a
// couple of tenants and an admin. Passwords are placeholders; token
// issuance lives outside this service.
func demoFixtures() []fixture {
	now := time.Now().UTC()
	user := func(name, email string, role domain.Role) domain.User {
		return domain.User{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: "$2a$10$seed.placeholder.hash",
			Role:         role,
			CreatedAt:    now,
		}
	}
	prop := func(owner domain.User, title, location string, price float64) domain.Property {
		return domain.Property{
			ID:        uuid.NewString(),
			Title:     title,
			Price:     price,
			Location:  location,
			CreatedBy: owner.ID,
			CreatedAt: now,
		}
	}

	ravi := user("Ravi Sharma", "ravi@rantease.dev", domain.RoleLandlord)
	meera := user("Meera Patel", "meera@rantease.dev", domain.RoleLandlord)

	return []fixture{
		{
			owner: ravi,
			properties: []domain.Property{
				prop(ravi, "2BHK near metro", "Pune", 18000),
				prop(ravi, "Studio with balcony", "Pune", 11000),
			},
		},
		{
			owner: meera,
			properties: []domain.Property{
				prop(meera, "Furnished 3BHK", "Bengaluru", 32000),
			},
		},
		{owner: user("Anil Kumar", "anil@rantease.dev", domain.RoleTenant)},
		{owner: user("Sana Iqbal", "sana@rantease.dev", domain.RoleTenant)},
		{owner: user("Platform Admin", "admin@rantease.dev", domain.RoleAdmin)},
	}
}
