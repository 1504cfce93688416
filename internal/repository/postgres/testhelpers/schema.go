package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations применяет *.up.sql из каталога по порядку имён
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	files, err := os.ReadDir(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var upFiles []string
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".up.sql") {
			upFiles = append(upFiles, f.Name())
		}
	}
	sort.Strings(upFiles)

	for _, file := range upFiles {
		content, err := os.ReadFile(filepath.Join(migrationsPath, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	return nil
}

// Catalog - ID справочных записей, созданных SeedCatalog
type Catalog struct {
	AirportID     int64
	HotelID       int64
	VehicleID     int64
	ExtraIDs      []int64
	SupplierID    int64
	ExpenseTypeID int64
}

// SeedCatalog создаёт две локации, автомобиль, тариф и справочники расходов
func SeedCatalog(ctx context.Context, db *sql.DB) (*Catalog, error) {
	c := &Catalog{}

	steps := []struct {
		query string
		dest  *int64
	}{
		{`INSERT INTO locations (name, type, latitude, longitude) VALUES ('Larnaca International Airport', 'airport', 34.8751, 33.6249) RETURNING id`, &c.AirportID},
		{`INSERT INTO locations (name, type, address) VALUES ('Nissi Beach Resort', 'hotel', 'Nissi Avenue, Ayia Napa') RETURNING id`, &c.HotelID},
		{`INSERT INTO vehicles (name, type, capacity, luggage_capacity) VALUES ('Mercedes Vito', 'minivan', 8, 8) RETURNING id`, &c.VehicleID},
		{`INSERT INTO suppliers (name) VALUES ('Petrolina') RETURNING id`, &c.SupplierID},
		{`INSERT INTO expense_types (name) VALUES ('Fuel') RETURNING id`, &c.ExpenseTypeID},
	}
	for _, step := range steps {
		if err := db.QueryRowContext(ctx, step.query).Scan(step.dest); err != nil {
			return nil, fmt.Errorf("seed %q: %w", step.query, err)
		}
	}

	for _, extra := range []struct {
		name  string
		price float64
	}{{"Child seat", 5}, {"Meet and greet", 10}} {
		var id int64
		err := db.QueryRowContext(ctx, `INSERT INTO extras (name, price) VALUES ($1, $2) RETURNING id`,
			extra.name, extra.price).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed extra %s: %w", extra.name, err)
		}
		c.ExtraIDs = append(c.ExtraIDs, id)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO transfer_prices (pickup_location_id, dropoff_location_id, vehicle_id, transfer_type, total_price, currency)
		VALUES ($1, $2, $3, 'private', 65, 'EUR')`, c.AirportID, c.HotelID, c.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("seed transfer price: %w", err)
	}

	return c, nil
}
