package main

import (
	"fmt"
	"log"
	"net/http"

	"shivamroadways/config"
	"shivamroadways/db"
	"shivamroadways/db/mongo"
	"shivamroadways/db/postgres"
	"shivamroadways/dispatch"
	"shivamroadways/handlers"
	"shivamroadways/render"
	"shivamroadways/repository"
	"shivamroadways/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var bookingRepo repository.BookingRepository
	var userRepo repository.UserRepository
	var companyRepo repository.CompanyRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		bookingRepo = repository.NewPostgresBookingRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		bookingRepo = repository.NewMongoBookingRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)
		companyRepo = repository.NewMongoCompanyRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	renderer, err := render.New()
	if err != nil {
		panic(err)
	}

	var gateway dispatch.Gateway
	if cfg.GatewayURL != "" {
		gateway = dispatch.NewWhatsAppGateway(cfg.GatewayURL, cfg.GatewayToken)
	} else {
		log.Println("GATEWAY_URL not set, slip dispatch disabled")
	}

	archive, err := dispatch.NewArchiveFromEnv()
	if err != nil {
		log.Printf("R2 archive disabled: %v", err)
		archive = nil
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	bookingHandler := &handlers.BookingHandler{Repo: bookingRepo}
	companyHandler := &handlers.CompanyHandler{Repo: companyRepo}

	// Slip handler with combined repository
	slipHandler := &handlers.SlipHandler{
		Repo:     repository.NewSlipRepository(bookingRepo, companyRepo),
		Renderer: renderer,
		Gateway:  gateway,
		Archive:  archive,
		SavePath: cfg.SlipSavePath,
		BiltyFee: cfg.BiltyFee,
	}

	// Setup routes including the slip pipeline
	routes.SetupRoutes(userHandler, bookingHandler, companyHandler, slipHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
