package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"playprotect/internal/config"
	"playprotect/internal/database"
	"playprotect/internal/repository"
	"playprotect/internal/service"
)

func main() {
	// Define subcommands
	reconcileCmd := flag.NewFlagSet("reconcile", flag.ExitOnError)
	diagnoseCmd := flag.NewFlagSet("diagnose", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)

	// Reconcile flags
	reconcileNotify := reconcileCmd.Bool("notify", false, "Record parent alerts and send notification emails for unlock changes")

	// Diagnose flags
	diagnoseVerbose := diagnoseCmd.Bool("verbose", false, "Print a line for every user, including OK ones")

	// Seed flags
	seedInput := seedCmd.String("input", "", "Seed file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	gameRepo := repository.NewGameRepository(db)
	userRepo := repository.NewUserRepository(db)
	unlockRepo := repository.NewUnlockRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	switch os.Args[1] {
	case "reconcile":
		reconcileCmd.Parse(os.Args[2:])
		handleReconcile(ctx, cfg, gameRepo, userRepo, unlockRepo, alertRepo, *reconcileNotify)

	case "diagnose":
		diagnoseCmd.Parse(os.Args[2:])
		handleDiagnose(gameRepo, userRepo, unlockRepo, *diagnoseVerbose)

	case "seed":
		seedCmd.Parse(os.Args[2:])
		if *seedInput == "" {
			fmt.Println("Error: -input flag is required")
			seedCmd.PrintDefaults()
			os.Exit(1)
		}
		handleSeed(gameRepo, userRepo, *seedInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleReconcile(ctx context.Context, cfg *config.Config, gameRepo *repository.GameRepository, userRepo *repository.UserRepository, unlockRepo *repository.UnlockRepository, alertRepo *repository.AlertRepository, notify bool) {
	var alertService *service.AlertService
	if notify {
		emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.EmailDebug)
		if err != nil {
			log.Fatalf("Failed to initialize email service: %v", err)
		}
		alertService = service.NewAlertService(alertRepo, emailService)
	}

	unlockService := service.NewUnlockService(gameRepo, userRepo, unlockRepo, alertService)
	summary, err := unlockService.ReconcileAll(ctx)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	fmt.Printf("Reconciled %d child users: %d created, %d updated, %d unchanged\n",
		summary.Users, summary.Created, summary.Updated, summary.Unchanged)
}

func handleDiagnose(gameRepo *repository.GameRepository, userRepo *repository.UserRepository, unlockRepo *repository.UnlockRepository, verbose bool) {
	diagnoseService := service.NewDiagnoseService(gameRepo, userRepo, unlockRepo)
	report, err := diagnoseService.Diagnose()
	if err != nil {
		log.Fatalf("Diagnosis failed: %v", err)
	}

	for _, result := range report.Results {
		if result.Status == service.StatusOK && !verbose {
			continue
		}
		switch result.Status {
		case service.StatusOK:
			fmt.Printf("  OK             %s (%s): %d games\n", result.UserName, result.AgeGroup, len(result.Actual))
		case service.StatusMissingRecord:
			fmt.Printf("  MISSING_RECORD %s (%s): expected %d games\n", result.UserName, result.AgeGroup, len(result.Expected))
		case service.StatusStaleIDs:
			fmt.Printf("  STALE_IDS      %s (%s): %d ids no longer in catalog\n", result.UserName, result.AgeGroup, len(result.Stale))
		case service.StatusMismatch:
			fmt.Printf("  MISMATCH       %s (%s): %d missing, %d extra\n", result.UserName, result.AgeGroup, len(result.Missing), len(result.Extra))
		}
	}

	fmt.Printf("Summary: %d OK, %d missing record, %d stale ids, %d mismatched\n",
		report.Counts[service.StatusOK],
		report.Counts[service.StatusMissingRecord],
		report.Counts[service.StatusStaleIDs],
		report.Counts[service.StatusMismatch])
}

func handleSeed(gameRepo *repository.GameRepository, userRepo *repository.UserRepository, inputPath string) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Seed file does not exist: %s", inputPath)
	}

	seedService := service.NewSeedService(gameRepo, userRepo)
	if err := seedService.Seed(inputPath); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

func printUsage() {
	fmt.Println("Play, Learn & Protect - Unlock Maintenance Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  unlocks reconcile [options]   Recompute every child's unlocked games")
	fmt.Println("  unlocks diagnose [options]    Compare stored unlock records against the catalog (read-only)")
	fmt.Println("  unlocks seed [options]        Load games and accounts from a JSON file")
	fmt.Println()
	fmt.Println("Reconcile Options:")
	fmt.Println("  -notify           Record parent alerts and send notification emails for unlock changes")
	fmt.Println()
	fmt.Println("Diagnose Options:")
	fmt.Println("  -verbose          Print a line for every user, including OK ones")
	fmt.Println()
	fmt.Println("Seed Options:")
	fmt.Println("  -input <file>     Seed file path (required)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DATABASE_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./playprotect.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  SES_FROM_EMAIL   Sender address for parent notifications (emails disabled when unset)")
}
