package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/dvigun/beerbot/internal/common/clock"
	"github.com/dvigun/beerbot/internal/common/uuid"
	"github.com/dvigun/beerbot/internal/handlers/telegram"
	beerselectionRepo "github.com/dvigun/beerbot/internal/repositories/beerselection"
	eventRepo "github.com/dvigun/beerbot/internal/repositories/event"
	groupadminRepo "github.com/dvigun/beerbot/internal/repositories/groupadmin"
	sessionRepo "github.com/dvigun/beerbot/internal/repositories/session"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
	"github.com/dvigun/beerbot/internal/scheduler"
	beerService "github.com/dvigun/beerbot/internal/services/beer"
	eventService "github.com/dvigun/beerbot/internal/services/event"
	membershipService "github.com/dvigun/beerbot/internal/services/membership"
	notifyService "github.com/dvigun/beerbot/internal/services/notify"
	registrationService "github.com/dvigun/beerbot/internal/services/registration"
)

func main() {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	botToken := getEnv("BOT_TOKEN", "")
	if botToken == "" {
		log.Fatal("BOT_TOKEN environment variable is required")
	}

	timezone, err := time.LoadLocation(getEnv("BOT_TIMEZONE", "Europe/Moscow"))
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	bartenderChatID := getEnvInt64("BARTENDER_CHAT_ID", 0)
	if bartenderChatID == 0 {
		log.Fatal("BARTENDER_CHAT_ID environment variable is required")
	}

	selectionWindow := time.Duration(getEnvInt64("SELECTION_WINDOW_MINUTES", 30)) * time.Minute
	geofenceRadius := float64(getEnvInt64("GEOFENCE_RADIUS_METERS", 300))
	minAgeYears := int(getEnvInt64("MIN_AGE_YEARS", 18))
	defaultBeerLabel := getEnv("DEFAULT_BEER_LABEL", "Лагер")

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Open SQLite database
	db, err := sql.Open("sqlite3", getEnv("SQLITE_PATH", "./beerbot.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Initialize repositories
	users, err := userRepo.NewSQLite(&userRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	groupAdmins, err := groupadminRepo.NewSQLite(&groupadminRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create group admin repository: %v", err)
	}

	events, err := eventRepo.NewSQLite(&eventRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	beerSelections, err := beerselectionRepo.NewSQLite(&beerselectionRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create beer selection repository: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Initialize the job scheduler
	sched, err := scheduler.NewRedis(&scheduler.Config{
		RedisClient: redisClient,
		UUID:        uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Initialize the Telegram client and the transport adapter
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram client: %v", err)
	}

	transport, err := telegram.NewTransport(api)
	if err != nil {
		log.Fatalf("Failed to create transport: %v", err)
	}

	systemClock := &clock.DefaultClock{}

	// Initialize services
	notifier, err := notifyService.NewService(&notifyService.Config{
		Timezone:         timezone,
		SelectionWindow:  selectionWindow,
		DefaultBeerLabel: defaultBeerLabel,
		BartenderChatID:  bartenderChatID,
	}, events, users, beerSelections, transport)
	if err != nil {
		log.Fatalf("Failed to create notify service: %v", err)
	}

	registration, err := registrationService.NewService(&registrationService.Config{
		Timezone:    timezone,
		MinAgeYears: minAgeYears,
	}, users, groupAdmins, sessions, systemClock)
	if err != nil {
		log.Fatalf("Failed to create registration service: %v", err)
	}

	eventCreation, err := eventService.NewService(&eventService.Config{
		Timezone:         timezone,
		DefaultBeerLabel: defaultBeerLabel,
	}, events, groupAdmins, sessions, sched, notifier, systemClock)
	if err != nil {
		log.Fatalf("Failed to create event service: %v", err)
	}

	beerSelection, err := beerService.NewService(&beerService.Config{
		Timezone:             timezone,
		SelectionWindow:      selectionWindow,
		GeofenceRadiusMeters: geofenceRadius,
		DefaultBeerLabel:     defaultBeerLabel,
	}, users, events, beerSelections, sessions, systemClock)
	if err != nil {
		log.Fatalf("Failed to create beer service: %v", err)
	}

	membership, err := membershipService.NewService(groupAdmins, transport, systemClock)
	if err != nil {
		log.Fatalf("Failed to create membership service: %v", err)
	}

	// Initialize the bot handler
	bot, err := telegram.New(&telegram.Config{
		API:           api,
		Timezone:      timezone,
		Registration:  registration,
		EventCreation: eventCreation,
		BeerSelection: beerSelection,
		Membership:    membership,
		Sessions:      sessions,
		UserRepo:      users,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot stopped with error: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt64 gets an integer environment variable or returns a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}
