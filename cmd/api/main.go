package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	_ "storeflow/docs"
	"storeflow/pkg/cart"
	cartredis "storeflow/pkg/cart/redis"
	"storeflow/pkg/catalog"
	catalogpg "storeflow/pkg/catalog/postgres"
	"storeflow/pkg/checkout"
	"storeflow/pkg/config"
	"storeflow/pkg/logger"
	orderpg "storeflow/pkg/order/postgres"
	"storeflow/pkg/otel"
	"storeflow/pkg/payment"
	"storeflow/pkg/user"
	userpg "storeflow/pkg/user/postgres"
)

var (
	cfg         config.Config
	redisClient *redis.Client
	users       user.Repository
	products    catalog.Repository
	cartStore   cart.Store
	svc         *checkout.Service
	payments    payment.Processor
	tracer      trace.Tracer
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	price NUMERIC NOT NULL,
	stock INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users (id),
	total_price NUMERIC NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS order_items (
	order_id TEXT NOT NULL REFERENCES orders (id),
	position INT NOT NULL,
	product_id TEXT NOT NULL,
	quantity INT NOT NULL,
	unit_price NUMERIC NOT NULL,
	PRIMARY KEY (order_id, position)
);`

// @title Storeflow API
// @version 1.0
// @description Online store backend: catalog, session carts, checkout.
// @host localhost:8443
// @BasePath /
func main() {
	cfg = config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.Log

	tp, shutdown, err := otel.InitTracing(otel.Config{
		ServiceName: "storeflow",
		Host:        cfg.OtelHost,
		Probability: cfg.TraceProb,
	})
	if err != nil {
		log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("storeflow")

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	if _, err := db.Exec(schema); err != nil {
		log.Fatal("create tables", zap.Error(err))
	}
	products = catalogpg.New(db)
	users = userpg.New(db)
	svc = checkout.New(users, products, orderpg.New(db))
	payments = payment.NewStub(log)

	redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	cartStore = cartredis.New(redisClient, cfg.SessionTTL)

	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.HandleFunc("/login", loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/products", listProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", getProductHandler).Methods(http.MethodGet)

	cartAPI := r.PathPrefix("/cart").Subrouter()
	cartAPI.Use(authMiddleware)
	cartAPI.HandleFunc("/add", addCartItemHandler).Methods(http.MethodPost)
	cartAPI.HandleFunc("", viewCartHandler).Methods(http.MethodGet)
	cartAPI.HandleFunc("/remove", removeCartItemHandler).Methods(http.MethodDelete)

	ordersAPI := r.PathPrefix("/orders").Subrouter()
	ordersAPI.Use(authMiddleware)
	ordersAPI.HandleFunc("", createOrderHandler).Methods(http.MethodPost)
	ordersAPI.HandleFunc("", listOrdersHandler).Methods(http.MethodGet)
	ordersAPI.HandleFunc("/{id}", getOrderHandler).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.HandleFunc("/orders", listOrdersHandler).Methods(http.MethodGet)
	admin.HandleFunc("/products", addProductHandler).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", deleteProductHandler).Methods(http.MethodDelete)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServeTLS(cfg.HTTPAddr, cfg.CertFile, cfg.KeyFile, r); err != nil {
		log.Error("server closed", zap.Error(err))
	}
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
