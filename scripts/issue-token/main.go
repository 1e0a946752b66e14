// scripts/issue-token/main.go
//
// Issues a session token for local testing, signed with jwt.secret_key from
// the regular config.
//
// Usage:
//   go run scripts/issue-token/main.go -user <uuid> [-email me@example.com]

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"smart-todo/config"
	"smart-todo/pkg/scope"
)

func main() {
	userID := flag.String("user", "", "user id (uuid); a random one is generated when empty")
	email := flag.String("email", "", "email stored in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *userID == "" {
		*userID = uuid.NewString()
	} else if _, err := uuid.Parse(*userID); err != nil {
		log.Fatalf("Invalid -user %q: %v", *userID, err)
	}

	mgr, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	token, err := mgr.CreateToken(scope.Payload{UserID: *userID, Email: *email})
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Printf("user:  %s\n", *userID)
	fmt.Printf("token: %s\n", token)
	fmt.Printf("\ncurl -H 'Authorization: Bearer %s' http://localhost:%d/api/v1/todos\n", token, cfg.HTTPServer.Port)
}
