package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"Corbel/internal/auth"
	"Corbel/internal/calc/loads"
	"Corbel/internal/calc/segmentation"
	"Corbel/internal/capacity"
	"Corbel/internal/optimizer"
	"Corbel/internal/repo"
)

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB, table *capacity.Table, log *zap.Logger) {
	userRepo := repo.NewPostgresUserDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTKey: []byte(tokenKey), Repo: userRepo, Log: log}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authEnv.AuthMiddleware)

	optH := &optimizer.Handler{Engine: optimizer.New(table, log)}
	segH := &segmentation.Handler{}
	loadsH := &loads.Handler{}

	secureAPI.HandleFunc("/tools/bracket/optimise", optH.Optimise).Methods("POST")
	secureAPI.HandleFunc("/tools/bracket/verify", optH.Verify).Methods("POST")
	secureAPI.HandleFunc("/tools/bracket/verify-batch", optH.VerifyBatch).Methods("POST")
	secureAPI.HandleFunc("/tools/bracket/segment", segH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
}

func loadCapacityTable(log *zap.Logger) *capacity.Table {
	path := os.Getenv("CAPACITY_TABLE")
	if path == "" {
		log.Info("CAPACITY_TABLE not set, using built-in capacity table")
		return capacity.DefaultTable(log)
	}
	table, warnings, err := capacity.LoadWorkbook(path, log)
	if err != nil {
		log.Fatal("loading capacity table", zap.String("path", path), zap.Error(err))
	}
	for _, w := range warnings {
		log.Warn(w)
	}
	log.Info("capacity table loaded", zap.String("path", path), zap.Int("entries", table.Len()))
	return table
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, relying on the environment")
	}

	db := auth.InitDB(log)
	defer db.Close()

	table := loadCapacityTable(log)

	router := mux.NewRouter()
	HandleList(router, db, table, log)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: CORS(router),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", addr))
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
