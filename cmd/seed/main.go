// seed inserts development sample data for local testing: a member, their tontine groups and an optional send policy.
// Idempotent: skips inserts if the dev member's phone already exists.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"likelemba/internal/config"
	"likelemba/internal/db"
	"likelemba/internal/phone"
	policydomain "likelemba/internal/policy/domain"
	policyrepo "likelemba/internal/policy/repository"
	tontinerepo "likelemba/internal/tontine/repository"
	userdomain "likelemba/internal/user/domain"
	userrepo "likelemba/internal/user/repository"
)

func main() {
	devPhone := flag.String("phone", "+243812345678", "Phone number of the dev member")
	devName := flag.String("name", "Dev Member", "Display name of the dev member")
	policyFile := flag.String("policy", "", "Optional Rego file for package likelemba.otp to store as an enabled send policy")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; set DATABASE_URL in the environment or .env")
	}

	canonical := phone.Canonical(*devPhone)
	if !phone.Valid(canonical) {
		log.Fatalf("invalid phone %q", *devPhone)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(conn)

	existing, err := users.GetByPhone(ctx, canonical)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Printf("Seed already applied (%s exists). Skipping.", phone.Mask(canonical))
		os.Exit(0)
	}

	now := time.Now().UTC()
	u := &userdomain.User{
		ID:        uuid.New().String(),
		Name:      *devName,
		Phone:     canonical,
		Status:    userdomain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("create dev member: %v", err)
	}

	if err := tontinerepo.SeedDemo(ctx, tontinerepo.NewPostgresRepository(conn), u.ID, now); err != nil {
		log.Fatalf("seed tontine groups: %v", err)
	}

	if *policyFile != "" {
		rules, err := os.ReadFile(*policyFile)
		if err != nil {
			log.Fatalf("read policy: %v", err)
		}
		if err := policyrepo.NewPostgresRepository(conn).Create(ctx, &policydomain.Policy{
			ID:        uuid.New().String(),
			Name:      *policyFile,
			Rules:     string(rules),
			Enabled:   true,
			CreatedAt: now,
		}); err != nil {
			log.Fatalf("create policy: %v", err)
		}
	}

	log.Println("Seed completed successfully.")
	fmt.Printf("Dev member: %s (%s)\n", u.Name, canonical)
}
