package main

import (
	"context"
	"database/sql"
	"fmt"
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
	"github.com/dvigun/beerbot/internal/handlers/telegram"
	beerselectionRepo "github.com/dvigun/beerbot/internal/repositories/beerselection"
	eventRepo "github.com/dvigun/beerbot/internal/repositories/event"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
	"github.com/dvigun/beerbot/internal/scheduler"
	notifyService "github.com/dvigun/beerbot/internal/services/notify"
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

	events, err := eventRepo.NewSQLite(&eventRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	beerSelections, err := beerselectionRepo.NewSQLite(&beerselectionRepo.Config{DB: db})
	if err != nil {
		log.Fatalf("Failed to create beer selection repository: %v", err)
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

	// Initialize the notification dispatcher
	notifier, err := notifyService.NewService(&notifyService.Config{
		Timezone:         timezone,
		SelectionWindow:  selectionWindow,
		DefaultBeerLabel: defaultBeerLabel,
		BartenderChatID:  bartenderChatID,
	}, events, users, beerSelections, transport)
	if err != nil {
		log.Fatalf("Failed to create notify service: %v", err)
	}

	// Initialize the worker and bind the tasks
	worker, err := scheduler.NewWorker(&scheduler.WorkerConfig{
		RedisClient: redisClient,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create worker: %v", err)
	}

	worker.Register(scheduler.TaskUserNotification, func(ctx context.Context, payload map[string]string) error {
		eventID, err := payloadEventID(payload)
		if err != nil {
			return err
		}

		out, err := notifier.NotifyParticipants(ctx, &notifyService.NotifyParticipantsInput{EventID: eventID})
		if err != nil {
			return err
		}

		log.Printf("worker: notified participants of event %d: %d sent, %d failed", eventID, out.Sent, out.Failed)
		return nil
	})

	worker.Register(scheduler.TaskBartenderSummary, func(ctx context.Context, payload map[string]string) error {
		eventID, err := payloadEventID(payload)
		if err != nil {
			return err
		}

		return notifier.BartenderSummary(ctx, &notifyService.BartenderSummaryInput{EventID: eventID})
	})

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Worker is now running. Press CTRL-C to exit.")

	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Worker stopped with error: %v", err)
	}

	log.Println("Worker has been shut down")
}

// payloadEventID extracts the event ID every task payload must carry
func payloadEventID(payload map[string]string) (int64, error) {
	raw, ok := payload[scheduler.PayloadEventID]
	if !ok {
		return 0, fmt.Errorf("payload is missing %s", scheduler.PayloadEventID)
	}

	eventID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid event ID %q: %w", raw, err)
	}

	return eventID, nil
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
