package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"labStore/handlers"
	"labStore/repository"
	"labStore/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment variables")
	}

	storage, err := initStorage()
	if err != nil {
		panic(err)
	}
	log.Printf("cart storage ready")

	bR, err := repository.NewBackendRepository(getenv("BACKEND_URL", "http://localhost:8000"))
	if err != nil {
		panic(err)
	}
	cartR, err := repository.NewCartRepository(storage)
	if err != nil {
		panic(err)
	}

	hp := handlers.HandlerParams{
		CatService: services.NewCatalogService(bR),
		CrtService: services.NewCartService(cartR),
		OrdService: services.NewOrderService(cartR, bR),
	}
	ha := handlers.NewHandler(hp)
	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)

	router.HandleFunc("/", ha.Welcome)
	router.HandleFunc("/products", ha.GetProducts).Methods("GET")
	router.HandleFunc("/cart", ha.GetCart).Methods("GET")
	router.HandleFunc("/cart", ha.AddToCart).Methods("POST")
	router.HandleFunc("/cart/checkout", ha.Checkout).Methods("POST")

	log.Printf("starting server...")
	http.ListenAndServe(":"+getenv("PORT", "8080"), router)
}

func initStorage() (repository.CartStorage, error) {
	switch getenv("CART_STORAGE", "file") {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
			Password: "",
			DB:       0,
		})
		ctx, cncl := context.WithTimeout(context.Background(), 5*time.Second)
		defer cncl()
		if status := rdb.Ping(ctx); status.Err() != nil {
			return nil, errors.New("redis is not working: " + status.Err().Error())
		}
		log.Printf("redis connected")
		return repository.NewRedisCartStorage(rdb, context.Background())
	case "db":
		db, err := sql.Open(getenv("CART_DB_DRIVER", "sqlite3"), getenv("CART_DB_DSN", "carts.db"))
		if err != nil {
			return nil, err
		}
		log.Printf("db connected")
		return repository.NewDBCartStorage(db)
	case "file":
		return repository.NewFileCartStorage(getenv("CART_FILE_DIR", "data"))
	default:
		return nil, errors.New("unknown CART_STORAGE, want file, redis or db")
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
