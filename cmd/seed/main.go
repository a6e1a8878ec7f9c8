package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"mandir/internal/config"
	"mandir/internal/database"
)

var (
	clearExisting = flag.Bool("clear", false, "Clear existing seed data before inserting")
	slotDays      = flag.Int("days", 14, "Number of days of darshan slots to generate")
	dryRun        = flag.Bool("dry-run", false, "Show what would be inserted without making changes")
)

type Seeder struct {
	db *database.DB
}

func main() {
	flag.Parse()

	slog.Info("Starting seeder...")

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := &Seeder{db: db}

	if *clearExisting {
		if err := seeder.Clear(); err != nil {
			slog.Error("Failed to clear existing data", "error", err)
			os.Exit(1)
		}
	}

	if err := seeder.Run(); err != nil {
		slog.Error("Failed to seed data", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding completed successfully!")
}

func (s *Seeder) Clear() error {
	if *dryRun {
		slog.Info("[dry-run] would clear poojas, festival_events, virtual_darshan_slots, donation_campaigns")
		return nil
	}

	tables := []string{
		"virtual_darshan_bookings",
		"virtual_darshan_slots",
		"festival_events",
		"donation_campaigns",
		"poojas",
	}
	for _, t := range tables {
		if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", t)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", t, err)
		}
		slog.Info("Cleared table", "table", t)
	}
	return nil
}

func (s *Seeder) Run() error {
	if err := s.seedPoojas(); err != nil {
		return fmt.Errorf("failed to seed poojas: %w", err)
	}
	if err := s.seedFestivals(); err != nil {
		return fmt.Errorf("failed to seed festivals: %w", err)
	}
	if err := s.seedCampaigns(); err != nil {
		return fmt.Errorf("failed to seed campaigns: %w", err)
	}
	if err := s.seedDarshanSlots(); err != nil {
		return fmt.Errorf("failed to seed darshan slots: %w", err)
	}
	return nil
}

func (s *Seeder) seedPoojas() error {
	poojas := []struct {
		name     string
		desc     string
		duration int
		price    float64
	}{
		{"Ganesh Pooja", "Invocation of Lord Ganesha for new beginnings", 45, 501},
		{"Satyanarayan Pooja", "Full Satyanarayan katha with prasad", 120, 1101},
		{"Rudrabhishek", "Abhishekam of Lord Shiva with panchamrit", 90, 1501},
		{"Lakshmi Pooja", "Prosperity pooja for home and business", 60, 751},
		{"Navagraha Shanti", "Pacification of the nine planetary deities", 90, 2101},
		{"Archana", "Short archana with flowers and naivedyam", 15, 101},
	}

	for _, p := range poojas {
		if *dryRun {
			slog.Info("[dry-run] would insert pooja", "name", p.name)
			continue
		}
		_, err := s.db.Exec(`
			INSERT INTO poojas (name, description, duration_minutes, base_price)
			VALUES ($1, $2, $3, $4)`,
			p.name, p.desc, p.duration, p.price)
		if err != nil {
			return err
		}
	}

	slog.Info("Seeded poojas", "count", len(poojas))
	return nil
}

func (s *Seeder) seedFestivals() error {
	now := time.Now()
	festivals := []struct {
		title    string
		location string
		offset   int
		major    bool
	}{
		{"Maha Shivaratri", "Main Temple Hall", 20, true},
		{"Hanuman Jayanti", "Main Temple Hall", 45, false},
		{"Ram Navami", "Main Temple Hall", 60, true},
		{"Weekly Bhajan Sandhya", "Community Hall", 5, false},
		{"Annakut Celebration", "Temple Grounds", -30, true},
	}

	for _, f := range festivals {
		date := now.AddDate(0, 0, f.offset).Format("2006-01-02")
		if *dryRun {
			slog.Info("[dry-run] would insert festival", "title", f.title, "date", date)
			continue
		}
		_, err := s.db.Exec(`
			INSERT INTO festival_events (title, location, event_date, start_time, is_major_festival)
			VALUES ($1, $2, $3, $4, $5)`,
			f.title, f.location, date, "18:00", f.major)
		if err != nil {
			return err
		}
	}

	slog.Info("Seeded festival events", "count", len(festivals))
	return nil
}

func (s *Seeder) seedCampaigns() error {
	now := time.Now()
	campaigns := []struct {
		title  string
		target float64
	}{
		{"Temple Kitchen Renovation", 500000},
		{"Gau Seva Fund", 200000},
		{"Annadanam for Festivals", 150000},
	}

	for _, c := range campaigns {
		if *dryRun {
			slog.Info("[dry-run] would insert campaign", "title", c.title)
			continue
		}
		_, err := s.db.Exec(`
			INSERT INTO donation_campaigns (title, target_amount, start_date, end_date)
			VALUES ($1, $2, $3, $4)`,
			c.title, c.target,
			now.Format("2006-01-02"),
			now.AddDate(0, 6, 0).Format("2006-01-02"))
		if err != nil {
			return err
		}
	}

	slog.Info("Seeded donation campaigns", "count", len(campaigns))
	return nil
}

// seedDarshanSlots lays out morning and evening slots for the coming days,
// with slightly randomized capacity the way a live schedule looks.
func (s *Seeder) seedDarshanSlots() error {
	times := []string{"08:00", "09:00", "10:00", "17:00", "18:00", "19:00"}
	now := time.Now()
	count := 0

	for day := 0; day < *slotDays; day++ {
		date := now.AddDate(0, 0, day).Format("2006-01-02")
		for _, t := range times {
			capacity := 5 + rand.Intn(11)
			if *dryRun {
				slog.Info("[dry-run] would insert slot", "date", date, "time", t, "capacity", capacity)
				continue
			}
			_, err := s.db.Exec(`
				INSERT INTO virtual_darshan_slots (slot_date, slot_time, duration_minutes, max_bookings, price)
				VALUES ($1, $2, $3, $4, $5)`,
				date, t, 15, capacity, 51.0)
			if err != nil {
				return err
			}
			count++
		}
	}

	slog.Info("Seeded darshan slots", "count", count, "days", *slotDays)
	return nil
}
