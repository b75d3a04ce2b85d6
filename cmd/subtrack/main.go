package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bravian1/subtrack"
)

type config struct {
	logLevel      string
	sweepInterval time.Duration
	historySize   int
}

func loadConfig() config {
	_ = godotenv.Load()

	return config{
		logLevel:      getEnv("SUBTRACK_LOG_LEVEL", "warn"),
		sweepInterval: getEnvAsDuration("SUBTRACK_SWEEP_INTERVAL", 0),
		historySize:   getEnvAsInt("SUBTRACK_HISTORY_SIZE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	var value int
	if _, err := fmt.Sscanf(getEnv(key, ""), "%d", &value); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// A zero duration disables the background sweep; the menu still offers a
// manual one.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func newLogger(level string) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		zapCfg.Level = parsed
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	cfg := loadConfig()
	logger := newLogger(cfg.logLevel)
	defer logger.Sync()

	ctx := context.Background()
	manager := subtrack.NewManager(ctx,
		subtrack.WithEventLog(subtrack.NewInMemoryEventLog()),
		subtrack.WithLogger(logger),
	)
	defer manager.Shutdown()

	if cfg.sweepInterval > 0 {
		if err := manager.StartAutoCancel(cfg.sweepInterval); err != nil {
			logger.Warn("could not start background sweep", zap.Error(err))
		}
	}

	run(ctx, manager, cfg)
}

func run(ctx context.Context, manager *subtrack.Manager, cfg config) {
	in := bufio.NewScanner(os.Stdin)

	for {
		printMenu()
		choice, ok := readLine(in, "Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			addSubscription(ctx, in, manager)
		case "2":
			removeSubscription(ctx, in, manager)
		case "3":
			listSubscriptions(ctx, manager, false)
		case "4":
			listSubscriptions(ctx, manager, true)
		case "5":
			autoCancel(ctx, in, manager)
		case "6":
			cancelSubscription(ctx, in, manager)
		case "7":
			renewSubscription(ctx, in, manager)
		case "8":
			showTotals(ctx, manager)
		case "9":
			showHistory(ctx, manager, cfg.historySize)
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please select a valid option.")
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("Subscription Tracker")
	fmt.Println("1. Add subscription")
	fmt.Println("2. Remove subscription")
	fmt.Println("3. List all subscriptions")
	fmt.Println("4. List only active subscriptions")
	fmt.Println("5. Auto-cancel due subscriptions")
	fmt.Println("6. Cancel a subscription")
	fmt.Println("7. Renew a subscription")
	fmt.Println("8. Show totals")
	fmt.Println("9. Show recent history")
	fmt.Println("0. Exit")
}

func readLine(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func readDate(in *bufio.Scanner, prompt string) (time.Time, bool) {
	value, ok := readLine(in, prompt)
	if !ok {
		return time.Time{}, false
	}
	date, err := subtrack.ParseDate(value)
	if err != nil {
		fmt.Println("Invalid date format. Please use YYYY-MM-DD.")
		return time.Time{}, false
	}
	return date, true
}

func addSubscription(ctx context.Context, in *bufio.Scanner, manager *subtrack.Manager) {
	name, ok := readLine(in, "Enter subscription name: ")
	if !ok {
		return
	}
	costStr, ok := readLine(in, "Enter monthly cost (e.g. 9.99): ")
	if !ok {
		return
	}
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		fmt.Println("Invalid cost. Please enter a numeric value.")
		return
	}
	renewalDate, ok := readDate(in, "Enter renewal date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	if _, err := manager.Add(ctx, name, cost, renewalDate); err != nil {
		printError(err)
		return
	}
	fmt.Printf("Subscription %q added successfully.\n", name)
}

func removeSubscription(ctx context.Context, in *bufio.Scanner, manager *subtrack.Manager) {
	name, ok := readLine(in, "Enter subscription name to remove: ")
	if !ok {
		return
	}
	if err := manager.Remove(ctx, name); err != nil {
		printError(err)
		return
	}
	fmt.Printf("Subscription %q removed.\n", name)
}

func listSubscriptions(ctx context.Context, manager *subtrack.Manager, activeOnly bool) {
	var (
		subs []*subtrack.Subscription
		err  error
	)
	if activeOnly {
		subs, err = manager.ListActive(ctx)
	} else {
		subs, err = manager.ListAll(ctx)
	}
	if err != nil {
		printError(err)
		return
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions found.")
		return
	}
	for _, sub := range subs {
		fmt.Printf("- %s: $%s/mo, renewal date %s, %s\n",
			sub.Name, sub.Cost.StringFixed(2), sub.RenewalDate.Format(subtrack.DateLayout), sub.Status)
	}
}

func autoCancel(ctx context.Context, in *bufio.Scanner, manager *subtrack.Manager) {
	today, ok := readDate(in, "Enter today's date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	cancelled, err := manager.AutoCancelDue(ctx, today)
	if err != nil {
		printError(err)
		return
	}
	if len(cancelled) == 0 {
		fmt.Println("No subscriptions were due for renewal.")
		return
	}
	fmt.Printf("Cancelled: %s\n", strings.Join(cancelled, ", "))
}

func cancelSubscription(ctx context.Context, in *bufio.Scanner, manager *subtrack.Manager) {
	name, ok := readLine(in, "Enter subscription name to cancel: ")
	if !ok {
		return
	}
	if err := manager.Cancel(ctx, name); err != nil {
		printError(err)
		return
	}
	fmt.Printf("Subscription %q cancelled.\n", name)
}

func renewSubscription(ctx context.Context, in *bufio.Scanner, manager *subtrack.Manager) {
	name, ok := readLine(in, "Enter subscription name to renew: ")
	if !ok {
		return
	}
	today, ok := readDate(in, "Enter today's date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	if err := manager.Renew(ctx, name, subtrack.NextRenewalDate(today)); err != nil {
		printError(err)
		return
	}
	sub, err := manager.Get(ctx, name)
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Subscription %q renewed. Next renewal date: %s.\n",
		name, sub.RenewalDate.Format(subtrack.DateLayout))
}

func showTotals(ctx context.Context, manager *subtrack.Manager) {
	activeTotal, err := manager.TotalActiveMonthlyCost(ctx)
	if err != nil {
		printError(err)
		return
	}
	savings, err := manager.TotalSavings(ctx)
	if err != nil {
		printError(err)
		return
	}
	fmt.Printf("Total monthly cost of active subscriptions: $%s\n", activeTotal.StringFixed(2))
	fmt.Printf("Total monthly savings from cancelled subscriptions: $%s\n", savings.StringFixed(2))
}

func showHistory(ctx context.Context, manager *subtrack.Manager, limit int) {
	events, err := manager.History(ctx, limit)
	if err != nil {
		printError(err)
		return
	}
	if len(events) == 0 {
		fmt.Println("No history yet.")
		return
	}
	for _, event := range events {
		fmt.Printf("- %s %s %s ($%s/mo)\n",
			event.At.Format(time.RFC3339), event.Name, event.Kind, event.Cost.StringFixed(2))
	}
}

func printError(err error) {
	switch {
	case errors.Is(err, subtrack.ErrNotFound):
		fmt.Println("No subscription with that name exists.")
	case errors.Is(err, subtrack.ErrDuplicateName):
		fmt.Println("A subscription with that name already exists.")
	case errors.Is(err, subtrack.ErrInvalidInput):
		fmt.Printf("Invalid input: %v\n", err)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}
