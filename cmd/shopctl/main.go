package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"shopfront/internal/address"
	"shopfront/internal/admin"
	"shopfront/internal/api"
	"shopfront/internal/auth"
	"shopfront/internal/cart"
	"shopfront/internal/config"
	"shopfront/internal/content"
	"shopfront/internal/logger"
	"shopfront/internal/order"
	"shopfront/internal/payment"
	"shopfront/internal/product"
	"shopfront/internal/session"
	"shopfront/internal/wishlist"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	app := newApp(cfg, os.Stdout)

	if err := app.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// printNavigator renders forced navigations (the 401 login redirect) as a
// line on the output, the closest a terminal gets to a location change.
type printNavigator struct {
	out io.Writer
}

func (n *printNavigator) Navigate(to string) {
	fmt.Fprintf(n.out, "session expired, sign in again: %s\n", to)
}

type app struct {
	out io.Writer

	store   *session.Store
	manager *session.Manager

	auth      auth.Service
	addresses address.Service
	products  product.Service
	carts     cart.Service
	wishes    wishlist.Service
	orders    order.Service
	payments  payment.Service
	content   content.Service
	admin     admin.Service
}

func newApp(cfg *config.Config, out io.Writer) *app {
	a := &app{out: out}

	a.store = session.NewStore(cfg.SessionFile)

	client := api.New(api.Config{
		BaseURL:    cfg.APIBaseURL,
		Tokens:     a.store,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		OnUnauthorized: func(route string) {
			a.manager.Expire(route)
		},
	})

	a.auth = auth.NewService(client, a.store)
	a.manager = session.NewManager(a.store, a.auth, &printNavigator{out: out})

	a.addresses = address.NewService(client)
	a.products = product.NewService(client)
	a.carts = cart.NewService(client)
	a.wishes = wishlist.NewService(client)
	a.orders = order.NewService(client)
	a.payments = payment.NewService(client)
	a.content = content.NewService(client)
	a.admin = admin.NewService(client)

	return a
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	if err := a.manager.Bootstrap(ctx); err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami()
	case "home":
		return a.cmdHome(ctx)
	case "products":
		return a.cmdProducts(ctx, rest)
	case "product":
		return a.cmdProduct(ctx, rest)
	case "cart":
		return a.cmdCart(ctx, rest)
	case "wishlist":
		return a.cmdWishlist(ctx, rest)
	case "orders":
		return a.cmdOrders(ctx, rest)
	case "order":
		return a.cmdOrder(ctx, rest)
	case "checkout":
		return a.cmdCheckout(ctx, rest)
	case "addresses":
		return a.cmdAddresses(ctx, rest)
	case "admin":
		return a.cmdAdmin(ctx, rest)
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) usage() {
	fmt.Fprintln(a.out, `usage: shopctl <command> [flags]

commands:
  login       sign in (-email, -password)
  register    create an account (-email, -password, -first, -last)
  logout      sign out and clear the saved session
  whoami      show the signed-in user
  home        show the storefront landing content
  products    list the catalog (-category, -search)
  product     show one product: product <id>
  cart        cart get|add|update|remove|clear|discount
  wishlist    wishlist get|add|remove|clear
  addresses   addresses list|add|remove|default
  checkout    place an order from your cart (-address, -discount, -method)
  orders      list your orders (-status, -page)
  order       show one order: order <id> [-cancel] [-track]
  admin       admin stats|products|orders|users|discounts|upload|template`)
}

// guard aborts the command when the session does not satisfy the
// requirement, printing the route the web app would send the user to.
func (a *app) guard(d session.Decision) bool {
	if d.Allowed {
		return true
	}
	fmt.Fprintf(a.out, "not allowed, go to %s\n", d.RedirectTo)
	return false
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, auth.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	a.manager.Establish(a.store.Token(), user)

	fmt.Fprintf(a.out, "signed in as %s\n", user.Email)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, auth.RegisterInput{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
	})
	if err != nil {
		return err
	}
	a.manager.Establish(a.store.Token(), user)

	fmt.Fprintf(a.out, "welcome, %s\n", user.Email)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *app) cmdWhoami() error {
	user, ok := a.manager.Current()
	if !ok {
		fmt.Fprintln(a.out, "not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.Role)
	return nil
}

// cmdHome renders the landing view: homepage content, testimonials and
// featured products are fetched concurrently and joined before printing.
func (a *app) cmdHome(ctx context.Context) error {
	ctx = api.WithRoute(ctx, "/")

	var (
		wg           sync.WaitGroup
		home         *content.Homepage
		testimonials []content.Testimonial
		featured     []*product.Product
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		home, _ = a.content.Homepage(ctx)
	}()
	go func() {
		defer wg.Done()
		testimonials, _ = a.content.Testimonials(ctx)
	}()
	go func() {
		defer wg.Done()
		featured, _ = a.products.Featured(ctx, 4)
	}()
	wg.Wait()

	fmt.Fprintf(a.out, "%s\n%s\n\n", home.Hero.Title, home.Hero.Subtitle)

	fmt.Fprintln(a.out, "featured:")
	for _, p := range featured {
		fmt.Fprintf(a.out, "  %-12s %-30s $%.2f\n", p.ID, p.Name, p.Price.Float64())
	}

	fmt.Fprintln(a.out, "\nwhat customers say:")
	for _, tm := range testimonials {
		fmt.Fprintf(a.out, "  %q - %s, %s\n", tm.Content, tm.Name, tm.Company)
	}
	return nil
}

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	category := fs.String("category", "", "filter by category")
	search := fs.String("search", "", "search term")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx = api.WithRoute(ctx, "/products")
	products, err := a.products.GetProducts(ctx, product.Filter{Category: *category, Search: *search})
	if err != nil {
		return err
	}

	for _, p := range products {
		stock := "in stock"
		if !p.InStock() {
			stock = "out of stock"
		}
		fmt.Fprintf(a.out, "%-12s %-30s $%-8.2f %s\n", p.ID, p.Name, p.Price.Float64(), stock)
	}
	return nil
}

func (a *app) cmdProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: product <id>")
	}
	id := args[0]

	ctx = api.WithRoute(ctx, "/products/"+id)
	p, err := a.products.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s\ncategory: %s\nprice: $%.2f\nstock: %d\n",
		p.Name, p.Description, p.Category, p.Price.Float64(), p.Stock)

	if _, ok := a.manager.Current(); ok {
		if saved, err := a.wishes.Contains(ctx, id); err == nil && saved {
			fmt.Fprintln(a.out, "saved to your wishlist")
		}
	}
	return nil
}

func (a *app) cmdCart(ctx context.Context, args []string) error {
	if !a.guard(a.manager.RequireAuth("/cart")) {
		return nil
	}
	ctx = api.WithRoute(ctx, "/cart")

	sub := "get"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "get":
		c, err := a.carts.GetCart(ctx)
		if err != nil {
			return err
		}
		a.printCart(c)
		return nil
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ContinueOnError)
		productID := fs.String("product", "", "product id")
		qty := fs.Int("qty", 1, "quantity")
		if err := fs.Parse(args); err != nil {
			return err
		}
		c, err := a.carts.AddItem(ctx, *productID, *qty)
		if err != nil {
			return err
		}
		a.printCart(c)
		return nil
	case "update":
		fs := flag.NewFlagSet("cart update", flag.ContinueOnError)
		itemID := fs.String("item", "", "cart item id")
		qty := fs.Int("qty", 1, "quantity")
		if err := fs.Parse(args); err != nil {
			return err
		}
		c, err := a.carts.UpdateItem(ctx, *itemID, *qty)
		if err != nil {
			return err
		}
		a.printCart(c)
		return nil
	case "remove":
		if len(args) == 0 {
			return fmt.Errorf("usage: cart remove <item-id>")
		}
		c, err := a.carts.RemoveItem(ctx, args[0])
		if err != nil {
			return err
		}
		a.printCart(c)
		return nil
	case "clear":
		if err := a.carts.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "cart cleared")
		return nil
	case "discount":
		if len(args) == 0 {
			c, err := a.carts.RemoveDiscount(ctx)
			if err != nil {
				return err
			}
			a.printCart(c)
			return nil
		}
		c, err := a.carts.ApplyDiscount(ctx, args[0])
		if err != nil {
			return err
		}
		a.printCart(c)
		return nil
	default:
		return fmt.Errorf("unknown cart subcommand %q", sub)
	}
}

func (a *app) printCart(c *cart.Cart) {
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "your cart is empty")
		return
	}
	for _, item := range c.Items {
		fmt.Fprintf(a.out, "%-12s %-30s x%-3d $%.2f\n", item.ID, item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(a.out, "subtotal: $%.2f\n", c.Subtotal)
	if c.Discount > 0 {
		fmt.Fprintf(a.out, "discount (%s): -$%.2f\n", c.DiscountCode, c.Discount)
	}
	fmt.Fprintf(a.out, "total: $%.2f\n", c.Total)
}

func (a *app) cmdWishlist(ctx context.Context, args []string) error {
	if !a.guard(a.manager.RequireAuth("/wishlist")) {
		return nil
	}
	ctx = api.WithRoute(ctx, "/wishlist")

	sub := "get"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "get":
		w, err := a.wishes.GetWishlist(ctx)
		if err != nil {
			return err
		}
		if len(w.Items) == 0 {
			fmt.Fprintln(a.out, "your wishlist is empty")
			return nil
		}
		for _, item := range w.Items {
			fmt.Fprintf(a.out, "%-12s %-30s $%.2f\n", item.ProductID, item.Name, item.Price)
		}
		fmt.Fprintf(a.out, "%d item(s)\n", w.TotalItems)
		return nil
	case "add":
		if len(args) == 0 {
			return fmt.Errorf("usage: wishlist add <product-id>")
		}
		if _, err := a.wishes.AddItem(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "saved")
		return nil
	case "remove":
		if len(args) == 0 {
			return fmt.Errorf("usage: wishlist remove <item-id>")
		}
		if _, err := a.wishes.RemoveItem(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "removed")
		return nil
	case "clear":
		if err := a.wishes.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "wishlist cleared")
		return nil
	default:
		return fmt.Errorf("unknown wishlist subcommand %q", sub)
	}
}

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	if !a.guard(a.manager.RequireAuth("/orders")) {
		return nil
	}

	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status")
	page := fs.Int("page", 0, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx = api.WithRoute(ctx, "/orders")
	orders, err := a.orders.GetOrders(ctx, order.ListOptions{
		Status: order.OrderStatus(*status),
		Page:   *page,
	})
	if err != nil {
		return err
	}

	for _, o := range orders {
		fmt.Fprintf(a.out, "%-12s %-12s %-12s $%.2f\n", o.ID, o.Status, o.PaymentStatus, o.TotalAmount)
	}
	return nil
}

func (a *app) cmdOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: order <id> [-cancel] [-track]")
	}
	id := args[0]

	if !a.guard(a.manager.RequireAuth("/orders/" + id)) {
		return nil
	}

	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	cancel := fs.Bool("cancel", false, "cancel the order")
	track := fs.Bool("track", false, "show tracking")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	ctx = api.WithRoute(ctx, "/orders/"+id)

	if *cancel {
		o, err := a.orders.Cancel(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "order %s is now %s\n", o.ID, o.Status)
		return nil
	}

	if *track {
		tr, err := a.orders.GetTracking(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "order %s: %s\n", id, tr.Status)
		return nil
	}

	o, err := a.orders.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "order %s (%s, payment %s)\n", o.ID, o.Status, o.PaymentStatus)
	for _, item := range o.Items {
		fmt.Fprintf(a.out, "  %-30s x%-3d $%.2f\n", item.ProductName, item.Quantity, item.Price)
	}
	fmt.Fprintf(a.out, "total: $%.2f\n", o.TotalAmount)
	return nil
}

func (a *app) cmdAddresses(ctx context.Context, args []string) error {
	if !a.guard(a.manager.RequireAuth("/account/addresses")) {
		return nil
	}
	ctx = api.WithRoute(ctx, "/account/addresses")

	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		addresses, err := a.addresses.List(ctx)
		if err != nil {
			return err
		}
		for _, addr := range addresses {
			marker := " "
			if addr.IsDefault {
				marker = "*"
			}
			fmt.Fprintf(a.out, "%s %-12s %-10s %s\n", marker, addr.ID, addr.Name, addr.Line())
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("addresses add", flag.ContinueOnError)
		name := fs.String("name", "", "label, e.g. Home")
		phone := fs.String("phone", "", "contact phone")
		line1 := fs.String("line1", "", "street address")
		line2 := fs.String("line2", "", "unit, suite, ...")
		city := fs.String("city", "", "city")
		province := fs.String("province", "", "province or state")
		postal := fs.String("postal", "", "postal code")
		country := fs.String("country", "", "country code")
		setDefault := fs.Bool("default", false, "make this the default")
		if err := fs.Parse(args); err != nil {
			return err
		}

		addr, err := a.addresses.Create(ctx, address.Input{
			Name:         *name,
			Phone:        *phone,
			AddressLine1: *line1,
			AddressLine2: *line2,
			City:         *city,
			Province:     *province,
			PostalCode:   *postal,
			Country:      *country,
			SetAsDefault: *setDefault,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "saved %s\n", addr.ID)
		return nil
	case "remove":
		if len(args) == 0 {
			return fmt.Errorf("usage: addresses remove <id>")
		}
		if err := a.addresses.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "removed")
		return nil
	case "default":
		if len(args) == 0 {
			return fmt.Errorf("usage: addresses default <id>")
		}
		addr, err := a.addresses.SetDefault(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s is now the default\n", addr.Name)
		return nil
	default:
		return fmt.Errorf("unknown addresses subcommand %q", sub)
	}
}

// cmdCheckout turns the current cart into an order and starts payment for
// it. Without -method it stops after the intent and lists the saved payment
// methods to choose from.
func (a *app) cmdCheckout(ctx context.Context, args []string) error {
	if !a.guard(a.manager.RequireAuth("/checkout")) {
		return nil
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	shippingAddr := fs.String("address", "", "shipping address, default address when empty")
	discount := fs.String("discount", "", "discount code")
	method := fs.String("method", "", "payment method id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx = api.WithRoute(ctx, "/checkout")

	c, err := a.carts.GetCart(ctx)
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "your cart is empty")
		return nil
	}

	shipTo := *shippingAddr
	if shipTo == "" {
		if addresses, err := a.addresses.List(ctx); err == nil {
			for _, addr := range addresses {
				if addr.IsDefault {
					shipTo = addr.Line()
					break
				}
			}
		}
	}

	input := order.CreateOrderInput{
		ShippingAddress: shipTo,
		DiscountCode:    *discount,
	}
	for _, item := range c.Items {
		input.Items = append(input.Items, order.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	o, err := a.orders.Create(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "order %s created, total $%.2f\n", o.ID, o.TotalAmount)

	intent, err := a.payments.CreateIntent(ctx, o.ID)
	if err != nil {
		return err
	}

	if *method == "" {
		methods, err := a.payments.Methods(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "pick a payment method and re-run with -method:")
		for _, m := range methods {
			fmt.Fprintf(a.out, "  %-12s %s %s ****%s\n", m.ID, m.Type, m.Brand, m.Last4)
		}
		return nil
	}

	conf, err := a.payments.Confirm(ctx, intent.ID.String(), *method)
	if err != nil {
		return err
	}
	if conf.Success {
		fmt.Fprintln(a.out, "payment confirmed")
	} else {
		fmt.Fprintln(a.out, "payment failed")
	}
	return nil
}

func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if !a.guard(a.manager.RequireAdmin("/admin")) {
		return nil
	}
	ctx = api.WithRoute(ctx, "/admin")

	sub := "stats"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "stats":
		stats, err := a.admin.DashboardStats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "revenue: $%.2f  orders: %d  users: %d  products: %d\n",
			stats.TotalRevenue, stats.TotalOrders, stats.TotalUsers, stats.TotalProducts)
		for _, o := range stats.RecentOrders {
			fmt.Fprintf(a.out, "  recent %-12s %-12s $%.2f\n", o.ID, o.Status, o.TotalAmount)
		}
		return nil
	case "products":
		fs := flag.NewFlagSet("admin products", flag.ContinueOnError)
		category := fs.String("category", "", "filter by category")
		search := fs.String("search", "", "search term")
		if err := fs.Parse(args); err != nil {
			return err
		}
		products, err := a.admin.Products(ctx, admin.ProductFilter{Category: *category, Search: *search})
		if err != nil {
			return err
		}
		for _, p := range products {
			active := "active"
			if !p.IsActive {
				active = "inactive"
			}
			fmt.Fprintf(a.out, "%-12s %-30s $%-8.2f stock %-5d %s\n",
				p.ID, p.Name, p.Price.Float64(), p.StockQuantity, active)
		}
		return nil
	case "orders":
		fs := flag.NewFlagSet("admin orders", flag.ContinueOnError)
		status := fs.String("status", "", "filter by status")
		page := fs.Int("page", 0, "page number")
		setStatus := fs.String("set-status", "", "update an order: -id required")
		id := fs.String("id", "", "order id for -set-status")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if *setStatus != "" {
			o, err := a.admin.UpdateOrderStatus(ctx, *id, order.OrderStatus(*setStatus))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "order %s is now %s\n", o.ID, o.Status)
			return nil
		}

		orders, err := a.admin.Orders(ctx, admin.OrderFilter{
			Status: order.OrderStatus(*status),
			Page:   *page,
		})
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Fprintf(a.out, "%-12s %-24s %-12s $%.2f\n", o.ID, o.UserEmail, o.Status, o.TotalAmount)
		}
		return nil
	case "users":
		fs := flag.NewFlagSet("admin users", flag.ContinueOnError)
		role := fs.String("role", "", "filter by role")
		search := fs.String("search", "", "search term")
		setRole := fs.String("set-role", "", "update a user: -id required")
		id := fs.String("id", "", "user id for -set-role")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if *setRole != "" {
			u, err := a.admin.UpdateUserRole(ctx, *id, session.Role(*setRole))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "user %s is now %s\n", u.Email, u.Role)
			return nil
		}

		users, err := a.admin.Users(ctx, admin.UserFilter{
			Role:   session.Role(*role),
			Search: *search,
		})
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Fprintf(a.out, "%-12s %-24s %-10s\n", u.ID, u.Email, u.Role)
		}
		return nil
	case "discounts":
		discounts, err := a.admin.Discounts(ctx)
		if err != nil {
			return err
		}
		for _, d := range discounts {
			fmt.Fprintf(a.out, "%-12s %-16s %-10s %.2f used %d\n",
				d.ID, d.Code, d.DiscountType, d.DiscountValue.Float64(), d.UsedCount)
		}
		return nil
	case "upload":
		if len(args) == 0 {
			return fmt.Errorf("usage: admin upload <file.csv>")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		result, err := a.admin.UploadProductsCSV(ctx, f.Name(), f)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "imported %d, failed %d\n", result.Success, result.Failed)
		for _, msg := range result.Errors {
			fmt.Fprintln(a.out, " ", msg)
		}
		return nil
	case "template":
		fs := flag.NewFlagSet("admin template", flag.ContinueOnError)
		out := fs.String("o", "products-template.csv", "output path")
		if err := fs.Parse(args); err != nil {
			return err
		}
		blob, err := a.admin.DownloadCSVTemplate(ctx)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, blob, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "wrote %s (%d bytes)\n", *out, len(blob))
		return nil
	default:
		return fmt.Errorf("unknown admin subcommand %q", sub)
	}
}
