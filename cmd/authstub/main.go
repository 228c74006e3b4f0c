// Command authstub is a stand-in for the external authentication
// collaborator: POST /auth/login with {email, password}, 200 on a match.
// The dashboard API only ever looks at the status code.
package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/medidash/clinic-api/pkg/security"
)

type Config struct {
	Port int `envconfig:"PORT" default:"8000"`
	// Users is "email:password" pairs separated by commas.
	Users string `envconfig:"USERS" default:"guest@clinic.com:guest,admin@clinic.com:admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("authstub", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	hasher := security.NewBcryptHasher(0)
	users, err := parseUsers(cfg.Users, hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse user list")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.POST("/auth/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		hash, ok := users[req.Email]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		if err := hasher.Compare(hash, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Welcome %s", req.Email)})
	})

	log.Info().Int("port", cfg.Port).Msg("starting auth stub")
	if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// parseUsers hashes the configured plaintext passwords at boot so the
// comparison path matches a real credential store.
func parseUsers(list string, hasher security.PasswordHasher) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range strings.Split(list, ",") {
		email, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("malformed user entry %q", pair)
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", email, err)
		}
		users[email] = hash
	}
	return users, nil
}
