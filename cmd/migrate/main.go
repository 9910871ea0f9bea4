package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Direct Postgres connection; the running service talks PostgREST, but
	// schema management goes straight to the database.
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`DROP TABLE IF EXISTS event_sponsorships`,
		`DROP TABLE IF EXISTS events`,
		`DROP TABLE IF EXISTS contact_submissions`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS contact_submissions (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name text NOT NULL,
			email text NOT NULL,
			phone text,
			subject text,
			message text NOT NULL,
			source text NOT NULL DEFAULT 'contact_form',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			slug text NOT NULL UNIQUE,
			title text NOT NULL,
			description text,
			location text,
			date date NOT NULL,
			time text,
			image_url text,
			active boolean NOT NULL DEFAULT true,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS event_sponsorships (
			id bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			event_id bigint NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			name text NOT NULL,
			price numeric(10,2) NOT NULL,
			description text
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_active_date ON events (active, date)`,
		`CREATE INDEX IF NOT EXISTS idx_sponsorships_event ON event_sponsorships (event_id, price DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_created ON contact_submissions (created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec failed: %w", err)
		}
	}
	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	events := []struct {
		slug, title, description, location, date, time string
	}{
		{"purim-celebration", "Purim Celebration", "Megillah reading, costumes, and a festive seudah.", "Main Hall", "2026-03-03", "18:00"},
		{"shavuot-learning", "Shavuot All-Night Learning", "Torah study sessions through the night with cheesecake breaks.", "Beit Midrash", "2026-05-22", "22:00"},
		{"community-shabbaton", "Community Shabbaton", "A full Shabbat of davening, meals, and classes together.", "Retreat Center", "2026-01-16", "16:30"},
	}

	for _, e := range events {
		var id int64
		err := conn.QueryRow(ctx,
			`INSERT INTO events (slug, title, description, location, date, time)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title
			 RETURNING id`,
			e.slug, e.title, e.description, e.location, e.date, e.time,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed event %s: %w", e.slug, err)
		}

		tiers := []struct {
			name  string
			price float64
		}{
			{"Gold Sponsor", 500},
			{"Silver Sponsor", 250},
			{"Friend", 100},
		}
		for _, t := range tiers {
			if _, err := conn.Exec(ctx,
				`INSERT INTO event_sponsorships (event_id, name, price)
				 SELECT $1, $2, $3
				 WHERE NOT EXISTS (
					SELECT 1 FROM event_sponsorships WHERE event_id = $1 AND name = $2
				 )`,
				id, t.name, t.price,
			); err != nil {
				return fmt.Errorf("seed sponsorship %s: %w", t.name, err)
			}
		}
	}
	return nil
}
