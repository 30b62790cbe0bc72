package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the fixture store, creates the schema and seeds the demo
// records. Seeding is idempotent, so a shared in-memory or on-disk DSN can be
// opened more than once.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seedFixtures(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Breeders
CREATE TABLE IF NOT EXISTS breeders(
  slug TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  tagline TEXT NOT NULL DEFAULT '',
  region TEXT NOT NULL DEFAULT '',
  verified INTEGER NOT NULL DEFAULT 0
);

-- Puppies
CREATE TABLE IF NOT EXISTS puppies(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  breed TEXT NOT NULL,
  color TEXT NOT NULL,
  sex TEXT NOT NULL CHECK (sex IN ('Male','Female')),
  price INTEGER NOT NULL CHECK (price >= 0),
  status TEXT NOT NULL CHECK (status IN ('Available','Hold','Sold')),
  breeder_slug TEXT NOT NULL REFERENCES breeders(slug) ON DELETE RESTRICT,
  sort_order INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_puppies_breeder ON puppies(breeder_slug);

-- Breeder applications
CREATE TABLE IF NOT EXISTS applications(
  id TEXT PRIMARY KEY,
  business_name TEXT NOT NULL,
  contact_name TEXT NOT NULL,
  email TEXT NOT NULL,
  region_code TEXT NOT NULL,
  status TEXT NOT NULL CHECK (status IN ('Pending','Approved','Declined')),
  submitted_at TEXT NOT NULL,
  sort_order INTEGER NOT NULL DEFAULT 0
);
`
	_, err := db.Exec(schema)
	return err
}

// seedFixtures inserts the demo records if they are not already present.
func seedFixtures(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO breeders(slug, name, tagline, region, verified) VALUES
		  ('exoticpups', 'ExoticPups', 'Micro Yorkies • Exotic colors • Transparent standards', 'TX', 1)
		ON CONFLICT(slug) DO NOTHING
	`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO puppies(id, name, breed, color, sex, price, status, breeder_slug, sort_order) VALUES
		  ('p1', 'Skye', 'Yorkshire Terrier', 'Merle',      'Female', 3200, 'Available', 'exoticpups', 1),
		  ('p2', 'Nova', 'Yorkshire Terrier', 'Chocolate',  'Female', 2800, 'Available', 'exoticpups', 2),
		  ('p3', 'Onyx', 'Yorkshire Terrier', 'Black/Gold', 'Male',   2400, 'Hold',      'exoticpups', 3),
		  ('p4', 'Luna', 'Yorkshire Terrier', 'Parti',      'Female', 3000, 'Sold',      'exoticpups', 4)
		ON CONFLICT(id) DO NOTHING
	`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO applications(id, business_name, contact_name, email, region_code, status, submitted_at, sort_order) VALUES
		  ('a1', 'ExoticPups',     'Dana Whitfield', 'dana@exoticpups.test',    'TX', 'Approved', '2025-01-06', 1),
		  ('a2', 'Jeanie''s Minis', 'Jeanie Moreau',  'jeanie@jeaniesminis.test', 'OK', 'Pending',  '2025-01-14', 2),
		  ('a3', 'Parti Palace',   'Marcus Hale',    'marcus@partipalace.test', 'FL', 'Pending',  '2025-01-19', 3),
		  ('a4', 'Budget Doodles', 'Ray Tillman',    'ray@budgetdoodles.test',  'NV', 'Declined', '2025-01-21', 4)
		ON CONFLICT(id) DO NOTHING
	`); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Println("[seed] fixtures ready (breeders, puppies, applications)")
	return nil
}
