// Package seed populates a clinic database with demo bookings.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/platform/config"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
	"github.com/louisbranch/clinicdesk/internal/services/admin/storage/sqlite"
)

// Config holds the seed command configuration.
type Config struct {
	DBPath string `env:"CLINICDESK_DB_PATH" envDefault:"data/clinicdesk.db"`
}

// ParseConfig resolves configuration from the environment and flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite database file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run seeds demo appointments and treatments through the storage API.
// Opening the store also creates the schema and the demo doctors and
// patients, so a fresh database ends up fully browsable. Databases that
// already hold appointments are left untouched.
func Run(ctx context.Context, cfg Config) error {
	cleanPath := filepath.Clean(strings.TrimSpace(cfg.DBPath))
	if cleanPath == "." || cleanPath == "" {
		return errors.New("db path is required")
	}
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := sqlite.Open(cleanPath)
	if err != nil {
		return fmt.Errorf("open sqlite store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	return seedBookings(ctx, store)
}

func seedBookings(ctx context.Context, store storage.Store) error {
	existing, err := store.ListAppointments(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("database already has %d appointments, skipping", len(existing))
		return nil
	}

	patients, err := store.ListPatientOptions(ctx)
	if err != nil {
		return fmt.Errorf("list patients: %w", err)
	}
	doctors, err := store.ListDoctorOptions(ctx)
	if err != nil {
		return fmt.Errorf("list doctors: %w", err)
	}
	if len(patients) < 2 || len(doctors) < 2 {
		return errors.New("expected at least two demo patients and doctors")
	}

	completedID, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: patients[0].ID,
		DoctorID:  doctors[0].ID,
		Date:      "2026-08-10",
		Status:    storage.StatusCompleted,
	})
	if err != nil {
		return fmt.Errorf("create completed appointment: %w", err)
	}
	if _, err := store.CreateTreatment(ctx, storage.Treatment{
		AppointmentID: completedID,
		ServiceName:   "General Consultation",
		Cost:          120.50,
	}); err != nil {
		return fmt.Errorf("create treatment: %w", err)
	}

	if _, err := store.CreateAppointment(ctx, storage.Appointment{
		PatientID: patients[1].ID,
		DoctorID:  doctors[1].ID,
		Date:      "2026-09-05",
		Status:    storage.StatusScheduled,
	}); err != nil {
		return fmt.Errorf("create scheduled appointment: %w", err)
	}

	log.Printf("seeded 2 appointments and 1 treatment")
	return nil
}
