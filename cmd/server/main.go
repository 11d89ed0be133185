package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/config"
	"github.com/iliyamo/restaurant-pos/internal/handler"
	"github.com/iliyamo/restaurant-pos/internal/notify"
	"github.com/iliyamo/restaurant-pos/internal/router"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

func main() {
	cfg := config.Load()

	// The hub serves connected stream subscribers. Without a broker
	// the stores publish straight into it; with AMQP_URL set they
	// publish to RabbitMQ and a relay feeds broker events back into
	// the hub, so every instance sees every event.
	hub := notify.NewHub()
	var pub notify.Publisher = hub
	if cfg.AMQPURL != "" {
		pub = notify.NewAMQPPublisher(cfg.AMQPURL)
		go notify.StartRelay(cfg.AMQPURL, hub)
		log.Printf("notifications bridged via AMQP")
	}

	seed := store.DefaultSeed(cfg.BcryptCost)
	orders := store.NewOrderStore(seed.Orders, pub)
	menu := store.NewMenuStore(seed.Menu)
	tables := store.NewTableStore(seed.Tables)
	inventory := store.NewInventoryStore(seed.Inventory, pub)
	users := store.NewUserStore(seed.Users)
	shifts := store.NewShiftStore(seed.Shifts, users)
	payments := store.NewPaymentStore(nil, orders)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	router.Register(e, router.Handlers{
		Auth:      &handler.AuthHandler{Users: users, JWTSecret: cfg.JWTSecret, TTLMin: cfg.AccessTTLMin},
		Orders:    &handler.OrderHandler{Orders: orders},
		Payments:  &handler.PaymentHandler{Payments: payments, Orders: orders},
		Menu:      &handler.MenuHandler{Menu: menu},
		Tables:    &handler.TableHandler{Tables: tables, Orders: orders},
		Inventory: &handler.InventoryHandler{Inventory: inventory},
		Users:     &handler.UserHandler{Users: users, BcryptCost: cfg.BcryptCost},
		Shifts:    &handler.ShiftHandler{Shifts: shifts},
		Reports:   &handler.ReportHandler{Orders: orders, Payments: payments},
		Notify:    &handler.NotifyHandler{Hub: hub, Pub: pub},
	}, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
