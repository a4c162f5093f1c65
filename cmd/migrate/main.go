package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var statements = []string{
	`create extension if not exists pgcrypto`,
	`create table if not exists lookup_events (
		id uuid primary key default gen_random_uuid(),
		user_id uuid,
		kind text not null,
		input jsonb not null default '{}'::jsonb,
		output jsonb not null default '{}'::jsonb,
		country text,
		created_at timestamptz not null default now()
	)`,
	`create index if not exists lookup_events_user_created_idx
		on lookup_events (user_id, created_at desc)`,
	`create table if not exists integration_tokens (
		id uuid primary key default gen_random_uuid(),
		provider text not null unique,
		token text not null,
		properties jsonb not null default '{}'::jsonb,
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
}

func main() {
	_ = godotenv.Load()

	var dbURL string
	flag.StringVar(&dbURL, "database-url", "", "postgres connection string (fallbacks to DATABASE_URL)")
	flag.Parse()

	if strings.TrimSpace(dbURL) == "" {
		dbURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to ping database: %v\n", err)
		os.Exit(1)
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "migration statement %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	fmt.Println("migrations applied successfully")
}
