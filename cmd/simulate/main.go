package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"ticket-ledger/internal/config"
	"ticket-ledger/internal/database"
	"ticket-ledger/internal/journal"
	"ticket-ledger/internal/models"
	"ticket-ledger/internal/payments"
	"ticket-ledger/internal/services"
)

// logEmitter mirrors every ledger event to the structured log.
type logEmitter struct {
	log *logrus.Logger
}

func (e logEmitter) Emit(ev models.LedgerEvent) {
	fields := logrus.Fields{
		"event_id": ev.ID,
		"actor":    ev.Actor,
	}
	if ev.TicketID != nil {
		fields["ticket_id"] = *ev.TicketID
	}
	for k, v := range ev.Details {
		fields[k] = v
	}
	e.log.WithFields(fields).Info(string(ev.Type))
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	emitters := services.MultiEmitter{logEmitter{log: log}}

	// Journal events when a database is configured; the simulation still
	// runs without one.
	if cfg.Database.URL != "" {
		db, err := database.NewConnection(database.Config{URL: cfg.Database.URL})
		if err != nil {
			log.WithError(err).Fatal("failed to connect to journal database")
		}
		defer db.Close()
		if err := db.RunMigrations(); err != nil {
			log.WithError(err).Fatal("failed to migrate journal database")
		}
		emitters = append(emitters, journal.NewEmitter(journal.NewRepository(db.DB), log))
	}

	admin := models.Principal(cfg.Ledger.Admin)
	book := payments.NewBook()
	ledger := services.NewLedger(admin, models.Principal(cfg.Ledger.RoyaltyRecipient), book,
		services.WithEmitter(emitters))

	ctx := context.Background()
	alice := models.Principal("alice")
	bob := models.Principal("bob")
	gate := models.Principal("gate-scanner")

	book.Deposit(bob, 10_000)

	if err := ledger.GrantRole(ctx, admin, admin, models.RoleMinter); err != nil {
		log.WithError(err).Fatal("grant minter")
	}
	if err := ledger.GrantRole(ctx, admin, gate, models.RoleValidator); err != nil {
		log.WithError(err).Fatal("grant validator")
	}

	id, err := ledger.Mint(ctx, admin, models.MintRequest{
		To:          alice,
		MetadataRef: "ipfs://demo-ticket",
		EventID:     "summer-fest-2026",
		Price:       1_000,
		EventDate:   time.Now().Add(30 * 24 * time.Hour),
	})
	if err != nil {
		log.WithError(err).Fatal("mint")
	}

	if err := ledger.Resell(ctx, alice, id, 5_000); err != nil {
		log.WithError(err).Fatal("resell")
	}

	// Overpay on purpose; the excess comes straight back.
	if err := ledger.Buy(ctx, bob, id, 7_500); err != nil {
		log.WithError(err).Fatal("buy")
	}

	if err := ledger.Validate(ctx, gate, id); err != nil {
		log.WithError(err).Fatal("validate")
	}

	recipient, royalty, err := ledger.RoyaltyInfo(id, 5_000)
	if err != nil {
		log.WithError(err).Fatal("royalty info")
	}

	log.WithFields(logrus.Fields{
		"tickets":           ledger.TicketCount(),
		"alice_balance":     book.Balance(alice),
		"bob_balance":       book.Balance(bob),
		"royalty_recipient": recipient,
		"royalty_amount":    royalty,
	}).Info("simulation complete")
}
