package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restofood-client/auth"
	"github.com/yeremiapane/restofood-client/config"
	"github.com/yeremiapane/restofood-client/controllers"
	"github.com/yeremiapane/restofood-client/gateway"
	"github.com/yeremiapane/restofood-client/geo"
	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/session"
	"github.com/yeremiapane/restofood-client/stubserver"
	"github.com/yeremiapane/restofood-client/utils"
)

func init() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env file")
	}
	utils.InitLogger()
}

func main() {
	cmd := flag.String("cmd", "restaurants", "Command: login|register|logout|profile|restaurants|favorites|favorite|add|edit|delete|menus|menu-add|menu-edit|menu-del")
	stub := flag.Bool("stub", false, "Run the local stub API server instead of the client")
	addr := flag.String("addr", ":8000", "Stub server listen address")

	email := flag.String("email", "", "Email (login/register)")
	password := flag.String("password", "", "Password (login/register)")
	name := flag.String("name", "", "Name (register) / restaurant or menu name")
	role := flag.String("role", "user", "Role for register: user|admin")

	query := flag.String("q", "", "Restaurant name filter (client-side)")
	category := flag.String("category", "", "Restaurant category filter (client-side)")
	id := flag.Uint("id", 0, "Restaurant id (favorite/edit/delete/menu commands)")
	menuID := flag.Uint("menu-id", 0, "Menu id (menu-edit/menu-del)")

	address := flag.String("address", "", "Restaurant address (add/edit)")
	lat := flag.Float64("lat", 0, "Restaurant latitude (add/edit)")
	lon := flag.Float64("lon", 0, "Restaurant longitude (add/edit)")
	hours := flag.String("hours", "", "Restaurant opening hours (add/edit)")
	price := flag.Int("price", 0, "Menu price in whole Rupiah (menu-add/menu-edit)")
	desc := flag.String("desc", "", "Menu description (menu-add/menu-edit)")
	yes := flag.Bool("yes", false, "Skip delete confirmations")
	flag.Parse()

	cfg := config.Load()

	if *stub {
		runStub(*addr)
		return
	}

	httpClient := &http.Client{}
	if cfg.HTTPTimeout > 0 {
		httpClient.Timeout = cfg.HTTPTimeout
	}

	store := session.NewStore(cfg.SessionFile)
	api := gateway.NewClient(cfg.BaseURL, httpClient)
	authc := auth.NewController(store, api)
	ctx := context.Background()

	app := &cli{
		cfg:      cfg,
		store:    store,
		api:      api,
		auth:     authc,
		location: geo.FixedProvider{Coordinates: geo.Coordinates{Latitude: cfg.Latitude, Longitude: cfg.Longitude}},
		confirm:  newConfirmer(*yes),
	}

	var err error
	switch *cmd {
	case "login":
		err = app.login(ctx, *email, *password)
	case "register":
		err = app.register(ctx, *name, *email, *password, *role)
	case "logout":
		err = authc.Logout()
		fmt.Println("Logged out")
	case "profile":
		err = app.profile()
	case "restaurants":
		err = app.restaurants(*query, *category)
	case "favorites":
		err = app.favorites()
	case "favorite":
		err = app.toggleFavorite(*id)
	case "add":
		err = app.adminSave(ctx, 0, controllers.RestaurantInput{
			Name: *name, Address: *address, Latitude: *lat, Longitude: *lon,
			Category: *category, OpeningHours: *hours,
		})
	case "edit":
		err = app.adminSave(ctx, *id, controllers.RestaurantInput{
			Name: *name, Address: *address, Latitude: *lat, Longitude: *lon,
			Category: *category, OpeningHours: *hours,
		})
	case "delete":
		err = app.adminDelete(ctx, *id)
	case "menus":
		err = app.menus(*id)
	case "menu-add":
		err = app.menuSave(ctx, *id, 0, controllers.MenuInput{Name: *name, Price: *price, Description: *desc})
	case "menu-edit":
		err = app.menuSave(ctx, *id, *menuID, controllers.MenuInput{Name: *name, Price: *price, Description: *desc})
	case "menu-del":
		err = app.menuDelete(ctx, *id, *menuID)
	default:
		fmt.Println("Unknown command:", *cmd)
		os.Exit(1)
	}

	if err != nil {
		os.Exit(1)
	}
}

func runStub(addr string) {
	gin.SetMode(gin.ReleaseMode)

	db, err := stubserver.Open("restofood_stub.db")
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open stub database: %v", err)
	}
	if err := stubserver.SeedDemo(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed stub database: %v", err)
	}

	r := stubserver.NewRouter(db)
	utils.InfoLogger.Printf("Stub API listening on %s", addr)
	if err := r.Run(addr); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// cli memegang dependensi bersama semua perintah; padanan Router di aplikasi
// mobile yang memilih layar berdasarkan {isLoggedIn, role}.
type cli struct {
	cfg      config.Config
	store    *session.Store
	api      *gateway.Client
	auth     *auth.Controller
	location geo.Provider
	confirm  controllers.Confirmer
}

func (a *cli) login(ctx context.Context, email, password string) error {
	if err := a.auth.Login(ctx, email, password); err != nil {
		printError(err, "Login failed")
		return err
	}
	_, role := a.auth.Status()
	fmt.Printf("Login successful (role=%s)\n", role)
	if role == models.RoleAdmin {
		fmt.Println("Admin commands available: add, edit, delete, menu-add, menu-edit, menu-del")
	}
	return nil
}

func (a *cli) register(ctx context.Context, name, email, password, role string) error {
	if err := a.auth.Register(ctx, name, email, password, role); err != nil {
		printError(err, "Registration failed")
		return err
	}
	_, gotRole := a.auth.Status()
	fmt.Printf("Account created, logged in (role=%s)\n", gotRole)
	return nil
}

func (a *cli) profile() error {
	screen := controllers.NewProfileController(a.api, a.store, a.auth)
	defer screen.Close()

	if err := screen.Refresh(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	user := screen.User()
	fmt.Printf("Nama : %s\nEmail: %s\nRole : %s\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *cli) restaurants(query, category string) error {
	screen := controllers.NewHomeController(a.api, a.store, a.auth, a.location)
	defer screen.Close()

	if err := screen.Refresh(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	screen.SetQuery(query)
	screen.SetCategory(category)

	list := screen.Restaurants()
	if len(list) == 0 {
		fmt.Println("No restaurants found")
		return nil
	}
	for _, r := range list {
		line := fmt.Sprintf("#%d %s - %s", r.ID, r.Name, r.Address)
		if r.Category != "" {
			line += " [" + r.Category + "]"
		}
		if r.Distance > 0 {
			line += fmt.Sprintf(" (%.2f km)", r.Distance)
		}
		fmt.Println(line)
		for _, m := range r.Menus {
			fmt.Printf("    - %s %s\n", m.Name, utils.FormatRupiah(m.Price))
		}
	}
	return nil
}

func (a *cli) favorites() error {
	screen := controllers.NewFavoritesController(a.api, a.store, a.auth)
	defer screen.Close()

	if err := screen.Refresh(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	list := screen.Favorites()
	if len(list) == 0 {
		fmt.Println("Belum ada restoran favorit")
		return nil
	}
	for _, f := range list {
		fmt.Printf("#%d %s - %s\n", f.Restaurant.ID, f.Restaurant.Name, f.Restaurant.Address)
	}
	return nil
}

func (a *cli) toggleFavorite(restaurantID uint) error {
	restaurant, err := a.findRestaurant(restaurantID)
	if err != nil {
		return err
	}

	screen := controllers.NewDetailController(a.api, a.store, a.auth, restaurant)
	defer screen.Close()

	if err := screen.CheckFavorite(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	if err := screen.ToggleFavorite(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	if screen.IsFavorite() {
		fmt.Printf("%s ditambahkan ke favorit\n", restaurant.Name)
	} else {
		fmt.Printf("%s dihapus dari favorit\n", restaurant.Name)
	}
	return nil
}

// requireAdmin menjalankan Bootstrap lalu menolak kalau sesi bukan admin;
// gerbang role yang di aplikasi mobile dipegang navigator tab.
func (a *cli) requireAdmin(ctx context.Context) error {
	_ = a.auth.Bootstrap(ctx)
	state, role := a.auth.Status()
	if state != auth.StateLoggedIn {
		fmt.Println("Please login first")
		return gateway.ErrAuthExpired
	}
	if role != models.RoleAdmin {
		fmt.Println("Admin access required")
		return &gateway.ValidationError{Message: "Admin access required"}
	}
	return nil
}

func (a *cli) adminSave(ctx context.Context, id uint, in controllers.RestaurantInput) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}

	screen := controllers.NewAdminController(a.api, a.store, a.auth, a.confirm)
	defer screen.Close()

	var err error
	if id == 0 {
		err = screen.Create(in)
	} else {
		if err = screen.Refresh(); err != nil {
			fmt.Println(screen.ErrorMessage())
			return err
		}
		err = screen.Update(id, in)
	}
	if err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	fmt.Println("Saved", in.Name)
	return nil
}

func (a *cli) adminDelete(ctx context.Context, id uint) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}

	screen := controllers.NewAdminController(a.api, a.store, a.auth, a.confirm)
	defer screen.Close()

	if err := screen.Refresh(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	if err := screen.Delete(id); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	fmt.Println("Deleted restaurant", id)
	return nil
}

func (a *cli) menus(restaurantID uint) error {
	restaurant, err := a.findRestaurant(restaurantID)
	if err != nil {
		return err
	}

	if len(restaurant.Menus) == 0 {
		fmt.Println("Belum ada menu")
		return nil
	}
	for _, m := range restaurant.Menus {
		fmt.Printf("#%d %s %s\n", m.ID, m.Name, utils.FormatRupiah(m.Price))
		if m.Description != "" {
			fmt.Printf("    %s\n", m.Description)
		}
	}
	return nil
}

func (a *cli) menuSave(ctx context.Context, restaurantID, menuID uint, in controllers.MenuInput) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	restaurant, err := a.findRestaurant(restaurantID)
	if err != nil {
		return err
	}

	screen := controllers.NewMenusController(a.api, a.store, a.auth, a.confirm, restaurant)
	defer screen.Close()

	if err := screen.Save(in, menuID); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	for _, m := range screen.Menus() {
		fmt.Printf("#%d %s %s\n", m.ID, m.Name, utils.FormatRupiah(m.Price))
	}
	return nil
}

func (a *cli) menuDelete(ctx context.Context, restaurantID, menuID uint) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	restaurant, err := a.findRestaurant(restaurantID)
	if err != nil {
		return err
	}

	screen := controllers.NewMenusController(a.api, a.store, a.auth, a.confirm, restaurant)
	defer screen.Close()

	if err := screen.Delete(menuID); err != nil {
		fmt.Println(screen.ErrorMessage())
		return err
	}
	fmt.Println("Deleted menu", menuID)
	return nil
}

// findRestaurant mengambil record restoran dari daftar; layar detail dan
// menu memang selalu masuk membawa record hasil listing, bukan fetch ulang.
func (a *cli) findRestaurant(id uint) (models.Restaurant, error) {
	if id == 0 {
		fmt.Println("-id wajib diisi")
		return models.Restaurant{}, &gateway.ValidationError{Message: "-id wajib diisi"}
	}

	screen := controllers.NewAdminController(a.api, a.store, a.auth, a.confirm)
	defer screen.Close()

	if err := screen.Refresh(); err != nil {
		fmt.Println(screen.ErrorMessage())
		return models.Restaurant{}, err
	}
	for _, r := range screen.Restaurants() {
		if r.ID == id {
			return r, nil
		}
	}
	fmt.Println("Restaurant not found:", id)
	return models.Restaurant{}, &gateway.ValidationError{Message: "Restaurant not found"}
}

func printError(err error, fallback string) {
	var validation *gateway.ValidationError
	if errors.As(err, &validation) {
		fmt.Println(validation.Message)
		return
	}
	fmt.Println(gateway.Message(err, fallback))
}

// newConfirmer membaca jawaban y/N dari stdin, atau selalu setuju dengan
// flag -yes.
func newConfirmer(always bool) controllers.Confirmer {
	if always {
		return controllers.ConfirmerFunc(func(string) bool { return true })
	}
	reader := bufio.NewReader(os.Stdin)
	return controllers.ConfirmerFunc(func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})
}
