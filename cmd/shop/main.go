// Command shop is a terminal storefront client for the EMALL Cambodia
// API. Cart, favorites, session, and order history live on this device,
// under ~/.emall/state.json, exactly like the web client keeps them in
// browser local storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/PhornSunnich/emall-cambodia/client/api"
	"github.com/PhornSunnich/emall-cambodia/client/checkout"
	"github.com/PhornSunnich/emall-cambodia/client/localstore"
	"github.com/PhornSunnich/emall-cambodia/client/shop"
)

const usage = `usage: shop <command> [args]

  products [-search s] [-category c] [-page n]   browse the catalog
  product <id>                                   show one product
  add <product-id>                               add a product to the cart
  cart                                           show the cart
  qty <product-id> <quantity>                    change a line item quantity
  remove <product-id>                            remove a line item
  fav <product-id>                               toggle a favorite
  favs                                           list favorites
  register <username> <email> <password>         create an account
  login <email> <password>                       sign in
  logout                                         sign out (cart survives)
  checkout [-method id] [-qr file.png]           pay and record the order
  orders                                         show order history
`

type app struct {
	api     *api.Client
	cart    *shop.Cart
	favs    *shop.Favorites
	session *shop.Session
	history *shop.History
}

func main() {
	log.SetFlags(0)
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := openStore()
	if err != nil {
		log.Fatalf("shop: cannot open state: %v", err)
	}

	a := &app{
		api:     api.New(apiBase()),
		cart:    shop.NewCart(store),
		favs:    shop.NewFavorites(store),
		session: shop.NewSession(store),
		history: shop.NewHistory(store),
	}
	a.api.SetTokenSource(a.session.Token)
	a.api.OnUnauthorized(a.session.Logout)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("shop: %v", err)
	}
}

func apiBase() string {
	if base := os.Getenv("EMALL_API"); base != "" {
		return base
	}
	return "http://localhost:5000"
}

func openStore() (*localstore.FileStore, error) {
	dir := os.Getenv("EMALL_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".emall")
	}
	return localstore.OpenFile(filepath.Join(dir, "state.json"))
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "products":
		return a.products(ctx, args)
	case "product":
		return a.product(ctx, args)
	case "add":
		return a.add(ctx, args)
	case "cart":
		return a.showCart()
	case "qty":
		return a.qty(args)
	case "remove":
		return a.remove(args)
	case "fav":
		return a.fav(ctx, args)
	case "favs":
		return a.showFavs()
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("Signed out. Your cart is still here.")
		return nil
	case "checkout":
		return a.checkout(args)
	case "orders":
		return a.orders()
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	search := fs.String("search", "", "search term")
	category := fs.String("category", "", "category name")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products, pagination, err := a.api.Products(ctx, api.ProductQuery{
		Search:   *search,
		Category: *category,
		Page:     *page,
	})
	if err != nil {
		// Catalog failures degrade to an empty listing
		fmt.Println("No products found.")
		return nil
	}

	for _, p := range products {
		fmt.Printf("%6d  $%8.2f  %-12s  %s\n", p.ID, p.Price, p.Category, p.Name)
	}
	fmt.Printf("page %d of %d (%d products)\n", pagination.Current, pagination.Pages, pagination.Total)
	return nil
}

func (a *app) product(ctx context.Context, args []string) error {
	id, err := parseID(args, "product <id>")
	if err != nil {
		return err
	}
	p, err := a.api.ProductByID(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("#%d %s\n$%.2f  %s\n%s\n", p.ID, p.Name, p.Price, p.Category, p.Description)
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	id, err := parseID(args, "add <product-id>")
	if err != nil {
		return err
	}
	p, err := a.api.ProductByID(ctx, id)
	if err != nil {
		return err
	}
	a.cart.Add(p)
	fmt.Printf("Added %s. Cart: %d items, $%.2f\n", p.Name, a.cart.Count(), a.cart.Total())
	return nil
}

func (a *app) showCart() error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%6d  %-30s  x%-3d  $%8.2f\n", item.ID, item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Printf("total: $%.2f (%d items)\n", a.cart.Total(), a.cart.Count())
	return nil
}

func (a *app) qty(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: qty <product-id> <quantity>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad product id %q", args[0])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad quantity %q", args[1])
	}
	a.cart.SetQuantity(id, quantity)
	return a.showCart()
}

func (a *app) remove(args []string) error {
	id, err := parseID(args, "remove <product-id>")
	if err != nil {
		return err
	}
	a.cart.Remove(id)
	return a.showCart()
}

func (a *app) fav(ctx context.Context, args []string) error {
	id, err := parseID(args, "fav <product-id>")
	if err != nil {
		return err
	}
	p, err := a.api.ProductByID(ctx, id)
	if err != nil {
		return err
	}
	a.favs.Toggle(p)
	if a.favs.IsFavorite(id) {
		fmt.Printf("Added %s to favorites.\n", p.Name)
	} else {
		fmt.Printf("Removed %s from favorites.\n", p.Name)
	}
	return nil
}

func (a *app) showFavs() error {
	favs := a.favs.List()
	if len(favs) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}
	for _, p := range favs {
		fmt.Printf("%6d  $%8.2f  %s\n", p.ID, p.Price, p.Name)
	}
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: register <username> <email> <password>")
	}
	if err := a.api.Register(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}
	fmt.Println("Account created. Now: shop login", args[1], "<password>")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	result, err := a.api.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.session.Login(result.User, result.Token)
	fmt.Printf("Welcome back, %s!\n", result.User.Username)
	return nil
}

func (a *app) checkout(args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	methodID := fs.String("method", "", "payment method id (aba, acleda, wing, cod)")
	qrFile := fs.String("qr", "", "write the scan-to-pay QR code to this PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flow, err := checkout.Begin(a.cart, a.history)
	if err != nil {
		return err
	}

	if *methodID != "" {
		if err := flow.SelectMethod(*methodID); err != nil {
			return err
		}
	}

	method := flow.Selected()
	fmt.Printf("Total: $%.2f  method: %s\n", flow.Total(), method.DisplayName)

	if method.RequiresQR && *qrFile != "" {
		png, err := checkout.QRImage(method, flow.Total(), 256)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*qrFile, png, 0o644); err != nil {
			return err
		}
		fmt.Printf("Scan to pay: %s (%s)\n", *qrFile, method.Account)
	}

	order, err := flow.Confirm()
	if err != nil {
		return err
	}
	fmt.Printf("Payment successful! Order #%d [%s] $%s via %s\n", order.ID, order.Status, order.Total, order.Method)
	return nil
}

func (a *app) orders() error {
	orders := a.history.List()
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("Order #%d  %s %s  $%s  %-8s %s\n", o.ID, o.Date, o.Time, o.Total, o.Status, o.Method)
		for _, item := range o.Items {
			fmt.Printf("    %-30s x%-3d $%8.2f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
		}
	}
	return nil
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad product id %q", args[0])
	}
	return id, nil
}
