package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/cli"
	"fintrack/internal/core"
	"fintrack/internal/events"
	"fintrack/internal/export/sheets"
	"fintrack/internal/i18n"
	"fintrack/internal/locale"
	"fintrack/internal/log"
	"fintrack/internal/store"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: fintrack <command> [flags]

commands:
  register      create an account
  login         authenticate and load data
  logout        drop the local session
  list          list loaded transactions
  add           record a transaction
  categories    list categories
  add-category  create a category
  rm-category   delete a category (its transactions get archived server-side)
  dashboard     show aggregated totals and trends
  settings      show or change currency/language/theme
  export        append loaded transactions to a Google Sheets spreadsheet
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	local := cli.InitLocalStore(logger, cfg.LocalDBPath)
	defer local.Close()

	appearance := cli.NewTerminalAppearance(logger.WithComponent(log.ComponentApp))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The unauthorized hook closes over the store variable: the client must
	// exist before the store that uses it.
	var st *store.Store
	client := api.NewClient(cfg.BackendURL,
		api.WithTokenSource(local),
		api.OnUnauthorized(func() {
			if st != nil {
				st.ForceLogout()
			}
			if err := local.DeleteSession(ctx); err != nil {
				logger.Warn("Failed to clear stored session", log.FieldError, err)
			}
			fmt.Fprintln(os.Stderr, "session expired, please login again")
		}))

	var publisher store.Publisher
	if cfg.AMQPURL != "" {
		ev, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", log.FieldError, err)
		} else {
			defer ev.Close()
			publisher = ev
		}
	}

	st = store.New(ctx, store.Config{
		Backend:    client,
		Local:      local,
		Appearance: appearance,
		Publisher:  publisher,
		Logger:     logger.WithComponent(log.ComponentStore),
		PageSize:   cfg.PageSize,
		CacheSize:  cfg.DashboardCacheSize,
		CacheTTL:   cfg.DashboardCacheTTL,
	})

	var err error
	switch os.Args[1] {
	case "register":
		err = runRegister(ctx, client, os.Args[2:])
	case "login":
		err = runLogin(ctx, st, os.Args[2:])
	case "logout":
		err = st.Logout(ctx)
	case "list":
		err = runList(ctx, st)
	case "add":
		err = runAdd(ctx, st, os.Args[2:])
	case "categories":
		err = runCategories(st)
	case "add-category":
		err = runAddCategory(ctx, st, os.Args[2:])
	case "rm-category":
		err = runDeleteCategory(ctx, st, os.Args[2:])
	case "dashboard":
		err = runDashboard(ctx, st)
	case "settings":
		err = runSettings(ctx, st, os.Args[2:])
	case "export":
		err = runExport(ctx, st)
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func requireSession(st *store.Store) (core.Session, error) {
	sess, ok := st.Session()
	if !ok {
		return core.Session{}, fmt.Errorf("not logged in (run fintrack login)")
	}
	return sess, nil
}

func runRegister(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	reg := core.Registration{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Password:  *password,
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := client.Register(ctx, reg); err != nil {
		return err
	}
	fmt.Println("account created, you can login now")
	return nil
}

func runLogin(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if err := st.Login(ctx, core.Credentials{Email: *email, Password: *password}); err != nil {
		return err
	}
	sess, _ := st.Session()
	fmt.Printf("welcome, %s %s\n", sess.FirstName, sess.LastName)
	if msg := st.LastError(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	return nil
}

func runList(ctx context.Context, st *store.Store) error {
	if _, err := requireSession(st); err != nil {
		return err
	}
	if err := st.RefreshAll(ctx); err != nil {
		return err
	}

	set := st.Settings()
	lang := i18n.Resolve(set.Language)
	txs := st.Transactions()
	if len(txs) == 0 {
		fmt.Println(i18n.T(lang, "noTransactions"))
		return nil
	}

	fmt.Printf("%-12s  %-8s  %-20s  %-12s  %s\n",
		i18n.T(lang, "date"), i18n.T(lang, "type"), i18n.T(lang, "category"),
		i18n.T(lang, "amount"), i18n.T(lang, "description"))
	for _, tx := range txs {
		fmt.Printf("%-12s  %-8s  %-20s  %-12s  %s\n",
			locale.FormatDate(tx.Date.Format(time.RFC3339), lang),
			i18n.T(lang, string(tx.Type)),
			tx.Category,
			locale.FormatCurrency(tx.Amount, set.Currency, lang),
			tx.Description)
	}
	return nil
}

func runAdd(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	typ := fs.String("type", "expense", "income or expense")
	categoryID := fs.Int64("category", 0, "category id")
	date := fs.String("date", "", "date (2006-01-02), defaults to today")
	desc := fs.String("desc", "", "description")
	fs.Parse(args)

	if _, err := requireSession(st); err != nil {
		return err
	}

	value, err := core.ParseAmount(*amount)
	if err != nil {
		return err
	}
	txType, err := core.ParseTransactionType(*typ)
	if err != nil {
		return err
	}
	when := time.Now()
	if *date != "" {
		if when, err = time.Parse("2006-01-02", *date); err != nil {
			return fmt.Errorf("invalid date %q: %w", *date, err)
		}
	}

	tx, err := st.AddTransaction(ctx, core.TransactionDraft{
		Amount:      value,
		Type:        txType,
		CategoryID:  *categoryID,
		Date:        when,
		Description: *desc,
	})
	if err != nil {
		return err
	}

	set := st.Settings()
	lang := i18n.Resolve(set.Language)
	fmt.Printf("added #%d: %s %s\n", tx.ID,
		locale.FormatCurrency(tx.Amount, set.Currency, lang), tx.Description)
	return nil
}

func runCategories(st *store.Store) error {
	if _, err := requireSession(st); err != nil {
		return err
	}
	set := st.Settings()
	lang := i18n.Resolve(set.Language)
	for _, c := range st.Categories() {
		fmt.Printf("%4d  %-8s  %s %s\n", c.ID, i18n.T(lang, string(c.Type)), c.Icon, c.Name)
	}
	return nil
}

func runAddCategory(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-category", flag.ExitOnError)
	name := fs.String("name", "", "category name")
	typ := fs.String("type", "expense", "income or expense")
	icon := fs.String("icon", "", "icon glyph")
	color := fs.String("color", "#8884d8", "display color token")
	fs.Parse(args)

	if _, err := requireSession(st); err != nil {
		return err
	}
	txType, err := core.ParseTransactionType(*typ)
	if err != nil {
		return err
	}

	cat, err := st.AddCategory(ctx, core.CategoryDraft{
		Name:  *name,
		Type:  txType,
		Icon:  *icon,
		Color: *color,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added category #%d %s\n", cat.ID, cat.Name)
	return nil
}

func runDeleteCategory(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("rm-category", flag.ExitOnError)
	id := fs.Int64("id", 0, "category id")
	fs.Parse(args)

	if _, err := requireSession(st); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("missing -id")
	}
	if err := st.DeleteCategory(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("deleted category #%d; its transactions move to %q on the next refresh\n",
		*id, core.ArchivedCategory)
	return nil
}

func runDashboard(ctx context.Context, st *store.Store) error {
	if _, err := requireSession(st); err != nil {
		return err
	}
	set := st.Settings()
	lang := i18n.Resolve(set.Language)

	stats, err := st.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", i18n.T(lang, "totalBalance"),
		locale.FormatCurrency(stats.Balance, set.Currency, lang))
	fmt.Printf("%s: %s\n", i18n.T(lang, "totalIncome"),
		locale.FormatCurrency(stats.TotalIncome, set.Currency, lang))
	fmt.Printf("%s: %s\n", i18n.T(lang, "totalExpenses"),
		locale.FormatCurrency(stats.TotalExpense, set.Currency, lang))

	slices, err := st.ExpenseByCategory(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", i18n.T(lang, "expenseByCategory"))
	for _, sl := range slices {
		fmt.Printf("  %-20s %s\n", sl.Name, locale.FormatCurrency(sl.Value, set.Currency, lang))
	}

	points, err := st.MonthlyAnalysis(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", i18n.T(lang, "spendingAnalysis"))
	for _, p := range points {
		fmt.Printf("  %-6s %s %-14s %s %s\n", p.Name,
			i18n.T(lang, "income"), locale.FormatCurrency(p.Income, set.Currency, lang),
			i18n.T(lang, "expense"), locale.FormatCurrency(p.Expense, set.Currency, lang))
	}
	return nil
}

func runSettings(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	currency := fs.String("currency", "", "3-letter currency code")
	language := fs.String("language", "", "2-letter language code")
	theme := fs.String("theme", "", "light or dark")
	fs.Parse(args)

	patch := core.SettingsPatch{Currency: *currency, Language: *language, Theme: *theme}
	if patch == (core.SettingsPatch{}) {
		set := st.Settings()
		fmt.Printf("currency: %s\nlanguage: %s\ntheme: %s\n", set.Currency, set.Language, set.Theme)
		return nil
	}

	if _, err := requireSession(st); err != nil {
		return err
	}
	if err := st.UpdateSettings(ctx, patch); err != nil {
		return err
	}
	set := st.Settings()
	fmt.Printf("settings saved: %s / %s / %s\n", set.Currency, set.Language, set.Theme)
	return nil
}

func runExport(ctx context.Context, st *store.Store) error {
	if _, err := requireSession(st); err != nil {
		return err
	}
	if err := st.RefreshAll(ctx); err != nil {
		return err
	}

	exporter, err := sheets.NewFromEnv(ctx)
	if err != nil {
		return err
	}
	n, err := exporter.Export(ctx, st.Transactions())
	if err != nil {
		return err
	}
	fmt.Printf("exported %d transactions\n", n)
	return nil
}
