package main

import (
	auth "Safetyguide360/internal/auth"
	batch "Safetyguide360/internal/calc/batch"
	costing "Safetyguide360/internal/calc/costing"
	estimate "Safetyguide360/internal/calc/estimate"
	flooding "Safetyguide360/internal/calc/flooding"
	importer "Safetyguide360/internal/calc/importer"
	report "Safetyguide360/internal/calc/report"
	migrations "Safetyguide360/internal/migrations"
	pricing "Safetyguide360/internal/pricing"
	quote "Safetyguide360/internal/quote"
	repo "Safetyguide360/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") //у меня нет домена это тестовый сервер
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// loadPricing resolves the price table and exchange rates once at startup.
// Engines receive them as arguments; nothing global, nothing reloaded mid-call.
func loadPricing() (pricing.Table, pricing.Rates) {
	prices := pricing.Defaults()
	if path := os.Getenv("PRICES_PATH"); path != "" {
		loaded, err := pricing.LoadTable(path)
		if err != nil {
			log.Fatalf("Price table %s: %v", path, err)
		}
		prices = loaded
	}

	rates := pricing.DefaultRates()
	if path := os.Getenv("RATES_PATH"); path != "" {
		loaded, err := pricing.LoadRates(path)
		if err != nil {
			log.Fatalf("Rates %s: %v", path, err)
		}
		rates = loaded
	}
	if url := os.Getenv("RATES_URL"); url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		fetched, err := pricing.FetchRates(ctx, url)
		if err != nil {
			log.Printf("Rates fetch failed, using bundled table: %v", err)
		} else {
			rates = fetched
		}
	}
	return prices, rates
}

func HandleList(mux *mux.Router, db *sql.DB, prices pricing.Table, rates pricing.Rates) {
	quoteRepo := repo.NewPostgresQuoteDB(db)
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: quoteRepo}
	quoteH := &quote.QuoteHandler{Repo: quoteRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	floodingH := &flooding.Handler{}
	costingH := &costing.Handler{Prices: prices, Rates: rates}
	estimateH := &estimate.Handler{Prices: prices, Rates: rates}
	batchH := &batch.Handler{Prices: prices, Rates: rates}
	importH := &importer.Handler{Prices: prices, Rates: rates}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/flooding/calc", floodingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/costing/calc", costingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/costing/convert", costingH.Convert).Methods("POST")
	secureApi.HandleFunc("/tools/estimate/calc", estimateH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/batch/calc", batchH.Rooms).Methods("POST")
	secureApi.HandleFunc("/tools/import/xlsx", importH.Rooms).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.GeneratePDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/csv", reportH.GenerateCSV).Methods("POST")

	secureApi.HandleFunc("/quotes", quoteH.Save).Methods("POST")
	secureApi.HandleFunc("/quotes", quoteH.List).Methods("GET")
	secureApi.HandleFunc("/quotes/{id:[0-9]+}", quoteH.Get).Methods("GET")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}
	if err := migrations.Up(db, migrationsDir); err != nil {
		log.Fatalf("Migrations: %v", err)
	}

	prices, rates := loadPricing()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}

	mux := mux.NewRouter()
	log.Println("Starting server on", addr)
	HandleList(mux, db, prices, rates)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Закрытие активных соединений")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
