package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reservation/cmd"
	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/application/usecases/queries"
	"reservation/internal/core/domain/model/payment"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs)

	ctx := context.Background()
	if err := app.SeedDemoData(ctx); err != nil {
		log.Fatalf("Error seeding demo data: %v", err)
	}

	runDemo(ctx, &app, configs, logger)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	waitForShutdown(logger)
}

// runDemo books two customers onto the seeded schedule, reprices a shared
// flight and shows the notification fan-out.
func runDemo(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	book := app.CreateBookItineraryCommandHandler()

	paypal := payment.NewPayPalMethod(configs.PayPalEmail, configs.PayPalPassword, app.Wallets())
	johnCmd, err := commands.NewBookItineraryCommand("John", []string{"John"}, []int{101, 102}, 210, paypal)
	if err != nil {
		log.Fatalf("Error building booking command: %v", err)
	}
	johnResult, err := book.Handle(ctx, johnCmd)
	if err != nil {
		log.Fatalf("Error booking itinerary for John: %v", err)
	}
	logger.InfoContext(ctx, "Booked itinerary",
		"customer", "John", "reference", johnResult.Reference, "paid", johnResult.Paid)

	card := payment.NewCreditCard("4111111111111111", time.Now().AddDate(2, 0, 0), "123", 500)
	janeCmd, err := commands.NewBookItineraryCommand("Jane", []string{"Jane"}, []int{101}, 120,
		payment.NewCreditCardMethod(card))
	if err != nil {
		log.Fatalf("Error building booking command: %v", err)
	}
	janeResult, err := book.Handle(ctx, janeCmd)
	if err != nil {
		log.Fatalf("Error booking itinerary for Jane: %v", err)
	}
	logger.InfoContext(ctx, "Booked itinerary",
		"customer", "Jane", "reference", janeResult.Reference, "paid", janeResult.Paid)

	// Both customers are now subscribed to flight 101; repricing it fans out.
	reprice := app.CreateChangeFlightPriceCommandHandler()
	repriceCmd, err := commands.NewChangeFlightPriceCommand(101, 150)
	if err != nil {
		log.Fatalf("Error building reprice command: %v", err)
	}
	if err := reprice.Handle(ctx, repriceCmd); err != nil {
		log.Fatalf("Error repricing flight: %v", err)
	}

	// Only John is on the connecting flight 102; delay it, then cancel it.
	reschedule := app.CreateRescheduleFlightCommandHandler()
	rescheduleCmd, err := commands.NewRescheduleFlightCommand(102, time.Now().Add(30*time.Hour))
	if err != nil {
		log.Fatalf("Error building reschedule command: %v", err)
	}
	if err := reschedule.Handle(ctx, rescheduleCmd); err != nil {
		log.Fatalf("Error rescheduling flight: %v", err)
	}

	cancel := app.CreateCancelFlightCommandHandler()
	cancelCmd, err := commands.NewCancelFlightCommand(102)
	if err != nil {
		log.Fatalf("Error building cancel command: %v", err)
	}
	if err := cancel.Handle(ctx, cancelCmd); err != nil {
		log.Fatalf("Error cancelling flight: %v", err)
	}

	feed := app.CreateGetCustomerNotificationsQueryHandler()
	for _, name := range []string{"John", "Jane"} {
		q, err := queries.NewGetCustomerNotificationsQuery(name)
		if err != nil {
			log.Fatalf("Error building notifications query: %v", err)
		}
		notifications, err := feed.Handle(ctx, q)
		if err != nil {
			log.Fatalf("Error reading notifications: %v", err)
		}
		for _, n := range notifications {
			logger.InfoContext(ctx, "Customer notification", "customer", name, "message", n)
		}
	}
}

func waitForShutdown(logger *slog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("Shutting down")
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		NoFlyNames:     goDotEnvVariable("NO_FLY_NAMES", "Peter"),
		JobSchedule:    goDotEnvVariable("JOB_SCHEDULE", "*/10 * * * * *"),
		PayPalEmail:    goDotEnvVariable("PAYPAL_EMAIL", "john@example.com"),
		PayPalPassword: goDotEnvVariable("PAYPAL_PASSWORD", "secret"),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	// The demo runs without a .env file; defaults cover every variable.
	_ = godotenv.Load(".env")
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
