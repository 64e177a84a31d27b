// scripts/issue-token/main.go
//
// Issues a signed JWT for local testing, using the same jwt.* settings as the
// API (config.yaml or JWT_SECRET_KEY).
//
// Usage:
//   go run scripts/issue-token/main.go --user student_1 --role student
//   go run scripts/issue-token/main.go --user demo --demo --ttl 10m

package main

import (
	"fmt"
	"log"

	"github.com/spf13/pflag"

	"github.com/spu-coder/my-ai-advisor/config"
	"github.com/spu-coder/my-ai-advisor/internal/model"
	"github.com/spu-coder/my-ai-advisor/pkg/scope"
)

func main() {
	userID := pflag.String("user", "", "token subject (student or admin id)")
	role := pflag.String("role", string(model.RoleStudent), "student or admin")
	demo := pflag.Bool("demo", false, "issue a demo token")
	ttl := pflag.Duration("ttl", 0, "token lifetime (default jwt.ttl)")
	pflag.Parse()

	if *userID == "" {
		log.Fatal("--user is required")
	}
	if *role != string(model.RoleStudent) && *role != string(model.RoleAdmin) {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	manager, err := scope.New(scope.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})
	if err != nil {
		log.Fatalf("Failed to create JWT manager: %v", err)
	}

	token, err := manager.Generate(scope.Payload{
		UserID: *userID,
		Role:   *role,
		IsDemo: *demo,
		TTL:    *ttl,
	})
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
