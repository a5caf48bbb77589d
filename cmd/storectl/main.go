// Command storectl is the terminal console for the store administration API.
//
// Usage:
//
//	storectl [-server http://localhost:5001] <resource> <action> [flags]
//
// Resources and actions:
//
//	login -email -password          two-step sign in (code read from stdin)
//	register -name -email -password -confirm
//	logout
//	whoami
//	category list|create|update|delete
//	product  list|create|update|delete
//	sale     list|create|delete|stats
//	expense  list|create|update|delete|stats
//	repair   list|create|update|fixed|not-fixed|deliver|delete|stats
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalogapp "github.com/storehub/backend/internal/application/catalog"
	financeapp "github.com/storehub/backend/internal/application/finance"
	repairsapp "github.com/storehub/backend/internal/application/repairs"
	salesapp "github.com/storehub/backend/internal/application/sales"
	"github.com/storehub/backend/internal/client"
	"github.com/storehub/backend/internal/console"
)

func main() {
	server := flag.String("server", "http://localhost:5001", "base URL of the store API")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	storage, err := client.NewFileStorage()
	if err != nil {
		fail("resolve session path: %v", err)
	}
	session := client.NewSessionStore(storage)
	api := client.New(*server, session, client.WithOnUnauthenticated(func() {
		fmt.Fprintln(os.Stderr, "Session expired; run 'storectl login' again.")
	}))
	c := console.New(api, os.Stdout)
	ctx := context.Background()

	if err := dispatch(ctx, c, args); err != nil {
		fail("%v", err)
	}
}

func dispatch(ctx context.Context, c *console.Console, args []string) error {
	switch args[0] {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		parse(fs, args[1:])
		return c.Login(ctx, *email, *password, os.Stdin)
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		confirm := fs.String("confirm", "", "password confirmation")
		parse(fs, args[1:])
		return c.Register(ctx, *name, *email, *password, *confirm)
	case "logout":
		return c.Logout(ctx)
	case "whoami":
		return c.WhoAmI(ctx)
	case "category":
		return categoryCommand(ctx, c, args[1:])
	case "product":
		return productCommand(ctx, c, args[1:])
	case "sale":
		return saleCommand(ctx, c, args[1:])
	case "expense":
		return expenseCommand(ctx, c, args[1:])
	case "repair":
		return repairCommand(ctx, c, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func categoryCommand(ctx context.Context, c *console.Console, args []string) error {
	action, rest := pop(args)
	switch action {
	case "list", "":
		return c.ShowCategories(ctx)
	case "create":
		fs := flag.NewFlagSet("category create", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		desc := fs.String("desc", "", "description")
		parse(fs, rest)
		return c.CreateCategory(ctx, *name, *desc)
	case "update":
		fs := flag.NewFlagSet("category update", flag.ExitOnError)
		id := fs.String("id", "", "category id")
		name := fs.String("name", "", "category name")
		desc := fs.String("desc", "", "description")
		parse(fs, rest)
		return c.UpdateCategory(ctx, *id, *name, *desc)
	case "delete":
		fs := flag.NewFlagSet("category delete", flag.ExitOnError)
		id := fs.String("id", "", "category id")
		parse(fs, rest)
		return c.DeleteCategory(ctx, *id)
	default:
		return fmt.Errorf("unknown category action %q", action)
	}
}

func productCommand(ctx context.Context, c *console.Console, args []string) error {
	action, rest := pop(args)
	switch action {
	case "list", "":
		fs := flag.NewFlagSet("product list", flag.ExitOnError)
		category := fs.String("category", "", "filter by category id")
		parse(fs, rest)
		return c.ShowProducts(ctx, *category)
	case "create":
		fs := flag.NewFlagSet("product create", flag.ExitOnError)
		category := fs.String("category", "", "category id")
		name := fs.String("name", "", "product name")
		desc := fs.String("desc", "", "description")
		price := fs.String("price", "0", "retail price")
		wholesale := fs.String("wholesale", "0", "wholesale price")
		stock := fs.Int("stock", 0, "initial stock")
		parse(fs, rest)
		return c.CreateProduct(ctx, catalogapp.CreateProductRequest{
			CategoryID:     *category,
			Name:           *name,
			Description:    *desc,
			Price:          mustDecimal(*price),
			WholesalePrice: mustDecimal(*wholesale),
			Stock:          *stock,
		})
	case "update":
		fs := flag.NewFlagSet("product update", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		category := fs.String("category", "", "category id")
		name := fs.String("name", "", "product name")
		desc := fs.String("desc", "", "description")
		price := fs.String("price", "0", "retail price")
		wholesale := fs.String("wholesale", "0", "wholesale price")
		stock := fs.Int("stock", 0, "stock")
		parse(fs, rest)
		return c.UpdateProduct(ctx, *id, catalogapp.UpdateProductRequest{
			CategoryID:     *category,
			Name:           *name,
			Description:    *desc,
			Price:          mustDecimal(*price),
			WholesalePrice: mustDecimal(*wholesale),
			Stock:          *stock,
		})
	case "delete":
		fs := flag.NewFlagSet("product delete", flag.ExitOnError)
		id := fs.String("id", "", "product id")
		parse(fs, rest)
		return c.DeleteProduct(ctx, *id)
	default:
		return fmt.Errorf("unknown product action %q", action)
	}
}

// itemList collects repeated -item productId:quantity flags
type itemList []salesapp.SaleItemRequest

func (l *itemList) String() string {
	return fmt.Sprintf("%d items", len(*l))
}

func (l *itemList) Set(value string) error {
	productID, qty, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("expected productId:quantity, got %q", value)
	}
	quantity, err := strconv.Atoi(qty)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", qty, err)
	}
	*l = append(*l, salesapp.SaleItemRequest{ProductID: productID, Quantity: quantity})
	return nil
}

func saleCommand(ctx context.Context, c *console.Console, args []string) error {
	action, rest := pop(args)
	switch action {
	case "list", "":
		return c.ShowSales(ctx)
	case "create":
		fs := flag.NewFlagSet("sale create", flag.ExitOnError)
		var items itemList
		fs.Var(&items, "item", "sale line as productId:quantity (repeatable)")
		parse(fs, rest)
		return c.RecordSale(ctx, items)
	case "delete":
		fs := flag.NewFlagSet("sale delete", flag.ExitOnError)
		id := fs.String("id", "", "sale id")
		parse(fs, rest)
		return c.DeleteSale(ctx, *id)
	case "stats":
		year, month, err := monthFlags("sale stats", rest)
		if err != nil {
			return err
		}
		return c.ShowSalesStats(ctx, year, month)
	default:
		return fmt.Errorf("unknown sale action %q", action)
	}
}

func expenseCommand(ctx context.Context, c *console.Console, args []string) error {
	action, rest := pop(args)
	switch action {
	case "list", "":
		return c.ShowExpenses(ctx)
	case "create":
		fs := flag.NewFlagSet("expense create", flag.ExitOnError)
		desc := fs.String("desc", "", "what the money was spent on")
		amount := fs.String("amount", "", "amount spent")
		date := fs.String("date", "", "expense date (2006-01-02, default today)")
		parse(fs, rest)
		return c.CreateExpense(ctx, financeapp.CreateExpenseRequest{
			Description: *desc,
			Amount:      mustDecimal(*amount),
			ExpenseDate: mustDate(*date),
		})
	case "update":
		fs := flag.NewFlagSet("expense update", flag.ExitOnError)
		id := fs.String("id", "", "expense id")
		desc := fs.String("desc", "", "what the money was spent on")
		amount := fs.String("amount", "", "amount spent")
		date := fs.String("date", "", "expense date (2006-01-02)")
		parse(fs, rest)
		return c.UpdateExpense(ctx, *id, financeapp.UpdateExpenseRequest{
			Description: *desc,
			Amount:      mustDecimal(*amount),
			ExpenseDate: mustDate(*date),
		})
	case "delete":
		fs := flag.NewFlagSet("expense delete", flag.ExitOnError)
		id := fs.String("id", "", "expense id")
		parse(fs, rest)
		return c.DeleteExpense(ctx, *id)
	case "stats":
		year, month, err := monthFlags("expense stats", rest)
		if err != nil {
			return err
		}
		return c.ShowExpenseStats(ctx, year, month)
	default:
		return fmt.Errorf("unknown expense action %q", action)
	}
}

func repairCommand(ctx context.Context, c *console.Console, args []string) error {
	action, rest := pop(args)
	switch action {
	case "list", "":
		fs := flag.NewFlagSet("repair list", flag.ExitOnError)
		customer := fs.String("customer", "", "filter by customer name")
		parse(fs, rest)
		return c.ShowRepairs(ctx, *customer)
	case "create":
		fs := flag.NewFlagSet("repair create", flag.ExitOnError)
		customer := fs.String("customer", "", "customer name")
		device := fs.String("device", "", "device name")
		problem := fs.String("problem", "", "problem description")
		cost := fs.String("cost", "0", "repair cost")
		parse(fs, rest)
		return c.CreateRepair(ctx, repairsapp.CreateRepairRequest{
			CustomerName: *customer,
			DeviceName:   *device,
			ProblemDesc:  *problem,
			Cost:         mustDecimal(*cost),
		})
	case "update":
		fs := flag.NewFlagSet("repair update", flag.ExitOnError)
		id := fs.String("id", "", "repair id")
		customer := fs.String("customer", "", "customer name")
		device := fs.String("device", "", "device name")
		problem := fs.String("problem", "", "problem description")
		cost := fs.String("cost", "0", "repair cost")
		parse(fs, rest)
		return c.UpdateRepair(ctx, *id, repairsapp.UpdateRepairRequest{
			CustomerName: *customer,
			DeviceName:   *device,
			ProblemDesc:  *problem,
			Cost:         mustDecimal(*cost),
		})
	case "fixed":
		fs := flag.NewFlagSet("repair fixed", flag.ExitOnError)
		id := fs.String("id", "", "repair id")
		parse(fs, rest)
		return c.MarkRepairFixed(ctx, *id)
	case "not-fixed":
		fs := flag.NewFlagSet("repair not-fixed", flag.ExitOnError)
		id := fs.String("id", "", "repair id")
		parse(fs, rest)
		return c.MarkRepairNotFixed(ctx, *id)
	case "deliver":
		fs := flag.NewFlagSet("repair deliver", flag.ExitOnError)
		id := fs.String("id", "", "repair id")
		parse(fs, rest)
		return c.DeliverRepair(ctx, *id)
	case "delete":
		fs := flag.NewFlagSet("repair delete", flag.ExitOnError)
		id := fs.String("id", "", "repair id")
		parse(fs, rest)
		return c.DeleteRepair(ctx, *id)
	case "stats":
		year, month, err := monthFlags("repair stats", rest)
		if err != nil {
			return err
		}
		return c.ShowRepairStats(ctx, year, month)
	default:
		return fmt.Errorf("unknown repair action %q", action)
	}
}

func monthFlags(name string, args []string) (int, time.Month, error) {
	now := time.Now()
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	year := fs.Int("year", now.Year(), "year")
	month := fs.Int("month", int(now.Month()), "month (1-12)")
	parse(fs, args)
	if *month < 1 || *month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}
	return *year, time.Month(*month), nil
}

func pop(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

func parse(fs *flag.FlagSet, args []string) {
	// ExitOnError flag sets never return an error
	_ = fs.Parse(args)
}

func mustDecimal(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		fail("invalid amount %q: %v", value, err)
	}
	return d
}

func mustDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		fail("invalid date %q: %v", value, err)
	}
	return t
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
