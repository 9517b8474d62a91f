package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"masroufi/internal/categories"
	"masroufi/internal/cli"
	"masroufi/internal/core"
	"masroufi/internal/log"
	"masroufi/internal/services"
	"masroufi/internal/settings"
	"masroufi/internal/stats"
)

const usage = `masroufi - personal finance tracker

Usage:
  masroufi add -type <income|expense> -amount <n> -category <id> [-date YYYY-MM-DD] [-note text]
  masroufi list [-month YYYY-MM]
  masroufi stats [-month YYYY-MM]
  masroufi delete -id <id>
  masroufi clear -yes
  masroufi categories [-type <income|expense>]
  masroufi settings [flags] | settings -clear
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	result := cli.OpenBackend(logger, cfg)
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", log.FieldError, err)
			}
		}
	}()

	publisher := cli.NewEventPublisher(logger, cfg)
	svc := services.NewTransactionService(result.Store, publisher)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Service close failed", log.FieldError, err)
		}
	}()

	settingsStore := settings.NewStore(cfg.DataDir)
	aggregator := stats.New(result.Store)

	var err error
	switch os.Args[1] {
	case "add":
		err = runAdd(ctx, svc, os.Args[2:])
	case "list":
		err = runList(ctx, svc, settingsStore, os.Args[2:])
	case "stats":
		err = runStats(ctx, aggregator, settingsStore, os.Args[2:])
	case "delete":
		err = runDelete(ctx, svc, os.Args[2:])
	case "clear":
		err = runClear(ctx, svc, os.Args[2:])
	case "categories":
		err = runCategories(os.Args[2:])
	case "settings":
		err = runSettings(ctx, settingsStore, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runAdd(ctx context.Context, svc *services.TransactionService, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	typ := fs.String("type", "expense", "transaction type: income or expense")
	amount := fs.String("amount", "", "positive amount, e.g. 12.50")
	category := fs.String("category", "", "category id")
	date := fs.String("date", "", "transaction date YYYY-MM-DD (default today)")
	note := fs.String("note", "", "optional note")
	fs.Parse(args)

	amt, err := core.ParseAmount(*amount)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", *amount, err)
	}

	day := core.Today()
	if *date != "" {
		if day, err = core.ParseDate(*date); err != nil {
			return fmt.Errorf("parse date %q: %w", *date, err)
		}
	}

	if _, ok := categories.ByID(*category); !ok {
		return fmt.Errorf("unknown category id %q (run 'masroufi categories')", *category)
	}

	id, err := svc.Add(ctx, core.Transaction{
		Type:     core.TransactionType(*typ),
		Amount:   amt,
		Category: *category,
		Date:     day,
		Note:     *note,
	})
	if err != nil {
		return err
	}

	fmt.Println("added", id)
	return nil
}

func runList(ctx context.Context, svc *services.TransactionService, st *settings.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	month := fs.String("month", "", "restrict to month YYYY-MM")
	fs.Parse(args)

	var transactions []core.Transaction
	if *month != "" {
		year, m, err := parseMonth(*month)
		if err != nil {
			return err
		}
		transactions = svc.ListMonth(ctx, year, m)
	} else {
		transactions = svc.List(ctx)
	}

	currency := st.Get(ctx).Currency
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tCATEGORY\tNOTE\tID")
	for _, t := range transactions {
		name := t.Category
		if c, ok := categories.ByID(t.Category); ok {
			name = c.Icon + " " + c.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%s\n",
			t.Date, t.Type, core.FormatAmount(t.Amount), currency, name, t.Note, t.ID)
	}
	return w.Flush()
}

func runStats(ctx context.Context, aggregator *stats.Aggregator, st *settings.Store, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	month := fs.String("month", "", "month to summarize YYYY-MM (default current)")
	fs.Parse(args)

	today := core.Today()
	year, m := today.Year(), today.Month()
	if *month != "" {
		var err error
		if year, m, err = parseMonth(*month); err != nil {
			return err
		}
	}

	summary := aggregator.ComputeStats(ctx, year, m)
	currency := st.Get(ctx).Currency

	fmt.Printf("%04d-%02d: %d transaction(s)\n", summary.Year, summary.Month, summary.TransactionCount)
	fmt.Printf("  income   %s %s\n", core.FormatAmount(summary.TotalIncome), currency)
	fmt.Printf("  expense  %s %s\n", core.FormatAmount(summary.TotalExpense), currency)
	fmt.Printf("  balance  %s %s\n", core.FormatAmount(summary.Balance), currency)

	if len(summary.CategoryStats) > 0 {
		fmt.Println("  by category:")
		for _, c := range categories.All() {
			if amount, ok := summary.CategoryStats[c.ID]; ok {
				fmt.Printf("    %s %-12s %s %s\n", c.Icon, c.Name, core.FormatAmount(amount), currency)
			}
		}
	}
	return nil
}

func runDelete(ctx context.Context, svc *services.TransactionService, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "transaction id to delete")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("missing -id")
	}
	svc.Delete(ctx, *id)
	fmt.Println("deleted", *id)
	return nil
}

func runClear(ctx context.Context, svc *services.TransactionService, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	yes := fs.Bool("yes", false, "confirm removing every transaction")
	fs.Parse(args)

	if !*yes {
		return fmt.Errorf("clear removes every transaction irreversibly; re-run with -yes")
	}
	svc.Clear(ctx)
	fmt.Println("all transactions cleared")
	return nil
}

func runCategories(args []string) error {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	typ := fs.String("type", "", "filter: income or expense")
	fs.Parse(args)

	list := categories.All()
	if *typ != "" {
		list = categories.ForType(core.TransactionType(*typ))
		if list == nil {
			return fmt.Errorf("unknown type %q", *typ)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME\t")
	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%s %s (%s)\t\n", c.ID, c.Type, c.Icon, c.Name, c.NameAr)
	}
	return w.Flush()
}

func runSettings(ctx context.Context, st *settings.Store, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	clear := fs.Bool("clear", false, "reset settings to defaults")
	darkMode := fs.String("dark-mode", "", "true or false")
	security := fs.String("security", "", "true or false")
	securityType := fs.String("security-type", "", "pin or biometric")
	pin := fs.String("pin", "", "4-digit pin")
	language := fs.String("language", "", "ui language code")
	currency := fs.String("currency", "", "currency code")
	fs.Parse(args)

	if *clear {
		if err := st.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("settings reset to defaults")
		return nil
	}

	patch := settings.Patch{}
	changed := false
	if *darkMode != "" {
		v := *darkMode == "true"
		patch.DarkMode, changed = &v, true
	}
	if *security != "" {
		v := *security == "true"
		patch.SecurityEnabled, changed = &v, true
	}
	if *securityType != "" {
		v := settings.SecurityType(*securityType)
		patch.SecurityType, changed = &v, true
	}
	if *pin != "" {
		if len(*pin) != 4 || strings.Trim(*pin, "0123456789") != "" {
			return fmt.Errorf("pin must be exactly 4 digits")
		}
		patch.PIN, changed = pin, true
	}
	if *language != "" {
		patch.Language, changed = language, true
	}
	if *currency != "" {
		patch.Currency, changed = currency, true
	}

	if changed {
		if err := st.Save(ctx, patch); err != nil {
			return err
		}
	}

	s := st.Get(ctx)
	fmt.Printf("dark mode: %t\nsecurity: %t (%s)\nlanguage: %s\ncurrency: %s\n",
		s.DarkMode, s.SecurityEnabled, s.SecurityType, s.Language, s.Currency)
	return nil
}

func parseMonth(s string) (year, month int, err error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse month %q: expected YYYY-MM", s)
	}
	return t.Year(), int(t.Month()), nil
}
