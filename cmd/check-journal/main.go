package main

import (
	"flag"
	"fmt"
	"log"

	"ticket-ledger/internal/config"
	"ticket-ledger/internal/database"
	"ticket-ledger/internal/journal"
)

func main() {
	var (
		limitFlag  = flag.Int("limit", 20, "Number of entries to show")
		ticketFlag = flag.Int64("ticket", -1, "Show the full history of one ticket id")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	repo := journal.NewRepository(db.DB)

	var entries []journal.Entry
	if *ticketFlag >= 0 {
		entries, err = repo.ByTicket(uint64(*ticketFlag))
	} else {
		entries, err = repo.Recent(*limitFlag)
	}
	if err != nil {
		log.Fatal("Failed to read journal:", err)
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries found")
		return
	}

	for _, entry := range entries {
		ticket := "-"
		if entry.TicketID != nil {
			ticket = fmt.Sprintf("%d", *entry.TicketID)
		}
		fmt.Printf("%s  %-18s ticket=%-6s actor=%s", entry.OccurredAt.Format("2006-01-02 15:04:05"), entry.Type, ticket, entry.Actor)
		for k, v := range entry.Details {
			fmt.Printf(" %s=%s", k, v)
		}
		fmt.Println()
	}
}
