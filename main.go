package main

import (
	"log"

	"github.com/DhruvJoshi-17/pitchbook/config"
	_ "github.com/DhruvJoshi-17/pitchbook/docs"
	"github.com/DhruvJoshi-17/pitchbook/internal/booking"
	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
	"github.com/DhruvJoshi-17/pitchbook/internal/match"
	"github.com/DhruvJoshi-17/pitchbook/internal/rating"
	"github.com/DhruvJoshi-17/pitchbook/internal/team"
	"github.com/DhruvJoshi-17/pitchbook/internal/user"
	"github.com/DhruvJoshi-17/pitchbook/routes"
)

// @title PitchBook REST API
// @version 1.0
// @description Cricket ground booking and match hosting platform.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&ground.Ground{}, &ground.Slot{},
		&booking.Booking{},
		&match.Match{}, &match.MatchPlayer{},
		&team.Team{}, &team.TeamMember{},
		&rating.Rating{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
