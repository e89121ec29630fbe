// issue-token mints an access token for local development, signed with the
// configured secret the same way the auth provider signs its tokens.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/config"
	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/jwt"
	"github.com/google/uuid"
)

func main() {
	var (
		configFolder string
		userId       string
		email        string
		ttl          time.Duration
	)
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&userId, "user", "", "user uuid (random when empty)")
	flag.StringVar(&email, "email", "", "email claim")
	flag.DurationVar(&ttl, "ttl", 0, "token lifetime (config jwt_ttl when zero)")
	flag.Parse()

	cfg := config.MustLoad(configFolder)

	if userId == "" {
		userId = uuid.NewString()
	} else if _, err := uuid.Parse(userId); err != nil {
		log.Fatalf("user must be a uuid: %v", err)
	}
	if ttl == 0 {
		ttl = cfg.JwtTTL()
	}

	token, err := jwt.New(cfg.JwtKey(), ttl).NewToken(domain.User{Id: userId, Email: email})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println("user:", userId)
	fmt.Println("expires in:", ttl)
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Use it as:")
	fmt.Printf("Authorization: Bearer %s\n", token)
}
