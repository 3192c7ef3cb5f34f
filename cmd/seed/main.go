// Command seed populates the database with demo accounts, players,
// evaluations and watchlist entries through the store's create operations.
package main

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/scoutconnect-dev/scoutconnect/db"
	"github.com/scoutconnect-dev/scoutconnect/internal/apperrors"
	"github.com/scoutconnect-dev/scoutconnect/internal/config"
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
)

type seedAccount struct {
	username string
	email    string
	password string
	role     string
}

type seedPlayer struct {
	firstName string
	lastName  string
	born      string
	sport     string
	position  string
	heightCm  int
	weightKg  int
}

var accounts = []seedAccount{
	{"admin", "admin@scoutconnect.com", "admin123", models.RoleAdmin},
	{"coach_john", "john@scoutconnect.com", "coach123", models.RoleCoach},
	{"scout_mary", "mary@scoutconnect.com", "scout123", models.RoleScout},
}

var players = []seedPlayer{
	{"Michael", "Jordan", "1985-05-15", "basketball", "Guard", 198, 98},
	{"Serena", "Williams", "1981-09-26", "tennis", "Player", 175, 70},
	{"Tom", "Brady", "1977-08-03", "football", "Quarterback", 193, 102},
	{"Alex", "Morgan", "1989-07-02", "soccer", "Forward", 170, 62},
	{"Jordan", "Fields", "1995-01-31", "football", "LB", 162, 80},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := store.New(conn)

	created := make([]*models.Account, 0, len(accounts))

	for _, a := range accounts {
		account, err := s.RegisterAccount(a.username, a.email, a.password, a.role)

		if err != nil {
			var conflict *apperrors.ConflictError
			if errors.As(err, &conflict) {
				log.Printf("Account %s already exists, skipping", a.username)
				continue
			}
			log.Fatalf("Failed to create account %s: %v", a.username, err)
		}

		created = append(created, account)
		log.Printf("Created account %s (%s)", account.Username, account.Role)
	}

	if len(created) < len(accounts) {
		log.Println("Existing data detected, skipping players and evaluations")
		return
	}

	coach := created[1]
	scout := created[2]

	for i, p := range players {
		born, err := time.Parse("2006-01-02", p.born)

		if err != nil {
			log.Fatalf("Bad date for %s %s: %v", p.firstName, p.lastName, err)
		}

		heightCm := p.heightCm
		weightKg := p.weightKg

		player, err := s.CreatePlayer(store.NewPlayer{
			FirstName:   p.firstName,
			LastName:    p.lastName,
			DateOfBirth: &born,
			Sport:       p.sport,
			Position:    p.position,
			HeightCm:    &heightCm,
			WeightKg:    &weightKg,
		})

		if err != nil {
			log.Fatalf("Failed to create player %s %s: %v", p.firstName, p.lastName, err)
		}

		log.Printf("Created player %s %s (%s)", player.FirstName, player.LastName, player.Sport)

		evaluatorID := coach.ID

		if _, err := s.CreateEvaluation(store.NewEvaluation{
			PlayerID:    player.ID,
			EvaluatorID: &evaluatorID,
			Sport:       player.Sport,
			Criteria: map[string]float64{
				"technique": 85 + float64(i),
				"athletics": 80 + float64(i),
				"mentality": 90 - float64(i),
			},
			Score: 85.5 + float64(i),
			Notes: "Seeded evaluation",
		}); err != nil {
			log.Fatalf("Failed to create evaluation for player %d: %v", player.ID, err)
		}

		if _, err := s.CreateWatchlistEntry(scout.ID, player.ID, "Seeded watchlist entry"); err != nil {
			log.Fatalf("Failed to create watchlist entry for player %d: %v", player.ID, err)
		}
	}

	log.Println("Seeding complete")
}
