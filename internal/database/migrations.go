package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createExtensions,
		createEnums,
		createUsersTable,
		createUserRolesTable,
		createProfilesTable,
		createDevoteesTable,
		createPoojasTable,
		createPoojaBookingsTable,
		createTransactionsTable,
		createDonationCampaignsTable,
		createDonationsTable,
		createSubscriptionPoojasTable,
		createFestivalEventsTable,
		createCommunityPostsTable,
		createDarshanSlotsTable,
		createDarshanBookingsTable,
		createInventoryItemsTable,
		createIndexes,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createExtensions = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";`

// Enum columns fail fast on unrecognized literals at the database as well
// as in the service layer.
const createEnums = `
DO $$ BEGIN
    CREATE TYPE app_role AS ENUM ('admin', 'staff', 'devotee');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;
DO $$ BEGIN
    CREATE TYPE pooja_status AS ENUM ('scheduled', 'in_progress', 'completed', 'cancelled');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;
DO $$ BEGIN
    CREATE TYPE transaction_type AS ENUM ('donation', 'pooja_fee', 'prasadam', 'other');
EXCEPTION WHEN duplicate_object THEN NULL; END $$;`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_logged_in TIMESTAMPTZ
);`

const createUserRolesTable = `
CREATE TABLE IF NOT EXISTS user_roles (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role app_role NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    UNIQUE (user_id, role)
);`

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    display_name VARCHAR(255),
    phone VARCHAR(30),
    language_preference VARCHAR(20),
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);`

const createDevoteesTable = `
CREATE TABLE IF NOT EXISTS devotees (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(255) NOT NULL,
    contact_number VARCHAR(30) NOT NULL,
    email VARCHAR(255),
    address TEXT,
    city VARCHAR(100),
    state VARCHAR(100),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createPoojasTable = `
CREATE TABLE IF NOT EXISTS poojas (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(255) NOT NULL,
    description TEXT,
    duration_minutes INTEGER,
    base_price NUMERIC(10,2),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createPoojaBookingsTable = `
CREATE TABLE IF NOT EXISTS pooja_bookings (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    devotee_id UUID NOT NULL REFERENCES devotees(id),
    pooja_id UUID NOT NULL REFERENCES poojas(id),
    user_id UUID REFERENCES users(id),
    scheduled_date DATE NOT NULL,
    scheduled_time TIME NOT NULL,
    amount_paid NUMERIC(10,2),
    special_requests TEXT,
    status pooja_status NOT NULL DEFAULT 'scheduled',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    devotee_id UUID NOT NULL REFERENCES devotees(id),
    amount NUMERIC(12,2) NOT NULL,
    transaction_type transaction_type NOT NULL,
    payment_method VARCHAR(50),
    reference_number VARCHAR(100),
    description TEXT,
    transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createDonationCampaignsTable = `
CREATE TABLE IF NOT EXISTS donation_campaigns (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR(255) NOT NULL,
    description TEXT,
    image_url TEXT,
    target_amount NUMERIC(12,2) NOT NULL,
    current_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
    start_date DATE NOT NULL,
    end_date DATE NOT NULL,
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);`

const createDonationsTable = `
CREATE TABLE IF NOT EXISTS donations (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    campaign_id UUID REFERENCES donation_campaigns(id),
    user_id UUID REFERENCES users(id),
    amount NUMERIC(12,2) NOT NULL,
    donor_name VARCHAR(255) NOT NULL,
    donor_email VARCHAR(255),
    donor_phone VARCHAR(30),
    is_anonymous BOOLEAN DEFAULT FALSE,
    payment_method VARCHAR(50),
    payment_reference VARCHAR(100),
    payment_status VARCHAR(30) DEFAULT 'pending',
    created_at TIMESTAMPTZ DEFAULT NOW()
);`

const createSubscriptionPoojasTable = `
CREATE TABLE IF NOT EXISTS subscription_poojas (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id),
    pooja_id UUID NOT NULL REFERENCES poojas(id),
    frequency VARCHAR(20) NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE,
    next_occurrence DATE NOT NULL,
    amount NUMERIC(10,2) NOT NULL,
    special_requests TEXT,
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);`

const createFestivalEventsTable = `
CREATE TABLE IF NOT EXISTS festival_events (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR(255) NOT NULL,
    description TEXT,
    location VARCHAR(255),
    image_url TEXT,
    event_date DATE NOT NULL,
    start_time TIME,
    end_time TIME,
    is_major_festival BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);`

const createCommunityPostsTable = `
CREATE TABLE IF NOT EXISTS community_posts (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id),
    title VARCHAR(255) NOT NULL,
    content TEXT NOT NULL,
    category VARCHAR(50),
    is_approved BOOLEAN DEFAULT FALSE,
    likes_count INTEGER DEFAULT 0,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);`

const createDarshanSlotsTable = `
CREATE TABLE IF NOT EXISTS virtual_darshan_slots (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    slot_date DATE NOT NULL,
    slot_time TIME NOT NULL,
    duration_minutes INTEGER,
    max_bookings INTEGER DEFAULT 10,
    current_bookings INTEGER NOT NULL DEFAULT 0,
    is_available BOOLEAN DEFAULT TRUE,
    price NUMERIC(10,2),
    meeting_link TEXT,
    created_at TIMESTAMPTZ DEFAULT NOW()
);`

const createDarshanBookingsTable = `
CREATE TABLE IF NOT EXISTS virtual_darshan_bookings (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    slot_id UUID NOT NULL REFERENCES virtual_darshan_slots(id),
    user_id UUID NOT NULL REFERENCES users(id),
    status VARCHAR(30) DEFAULT 'confirmed',
    payment_status VARCHAR(30) DEFAULT 'pending',
    created_at TIMESTAMPTZ DEFAULT NOW()
);`

const createInventoryItemsTable = `
CREATE TABLE IF NOT EXISTS inventory_items (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    item_name VARCHAR(255) NOT NULL,
    category VARCHAR(100),
    quantity INTEGER NOT NULL DEFAULT 0,
    unit VARCHAR(30),
    price_per_unit NUMERIC(10,2),
    reorder_level INTEGER,
    supplier_name VARCHAR(255),
    last_restocked TIMESTAMPTZ,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_devotees_name ON devotees (name);
CREATE INDEX IF NOT EXISTS idx_pooja_bookings_date ON pooja_bookings (scheduled_date DESC);
CREATE INDEX IF NOT EXISTS idx_pooja_bookings_user ON pooja_bookings (user_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (transaction_date DESC);
CREATE INDEX IF NOT EXISTS idx_donations_campaign ON donations (campaign_id);
CREATE INDEX IF NOT EXISTS idx_subscriptions_user ON subscription_poojas (user_id);
CREATE INDEX IF NOT EXISTS idx_festival_events_date ON festival_events (event_date);
CREATE INDEX IF NOT EXISTS idx_darshan_slots_date ON virtual_darshan_slots (slot_date);
CREATE INDEX IF NOT EXISTS idx_darshan_bookings_user ON virtual_darshan_bookings (user_id);
CREATE INDEX IF NOT EXISTS idx_community_posts_approved ON community_posts (is_approved, created_at DESC);`
