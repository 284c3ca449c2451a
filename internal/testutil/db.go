// Package testutil opens throwaway databases and seeds tenant fixtures
// for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/db"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// NewDB returns a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(0)", name)

	gdb, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// Fixture is a tenant with one service and the professionals qualified
// for it.
type Fixture struct {
	Shop          models.Barbershop
	Service       models.Service
	Professionals []models.Professional
	Client        models.Client
}

// Seed creates a barbershop with a 30 minute service, one client and
// the named professionals, all qualified for the service.
func Seed(t *testing.T, gdb *gorm.DB, slug string, professionals ...string) Fixture {
	t.Helper()

	f := Fixture{
		Shop: models.Barbershop{Name: "Shop " + slug, Slug: slug},
	}
	mustCreate(t, gdb, &f.Shop)

	f.Service = models.Service{
		BarbershopID: f.Shop.ID,
		Name:         "Corte",
		DurationMin:  30,
		Active:       true,
	}
	mustCreate(t, gdb, &f.Service)

	f.Client = models.Client{BarbershopID: f.Shop.ID, Name: "Cliente", Phone: "11999990000"}
	mustCreate(t, gdb, &f.Client)

	for _, name := range professionals {
		p := models.Professional{
			BarbershopID: f.Shop.ID,
			Name:         name,
			Active:       true,
			Services:     []models.Service{f.Service},
		}
		mustCreate(t, gdb, &p)
		f.Professionals = append(f.Professionals, p)
	}

	return f
}

// WorkingHours stores an active weekly window for the professional.
func WorkingHours(t *testing.T, gdb *gorm.DB, professionalID uint, weekday int, open, close string) models.WorkingHours {
	t.Helper()

	wh := models.WorkingHours{
		ProfessionalID: professionalID,
		Weekday:        weekday,
		OpenTime:       open,
		CloseTime:      close,
		Active:         true,
	}
	mustCreate(t, gdb, &wh)
	return wh
}

func mustCreate(t *testing.T, gdb *gorm.DB, v any) {
	t.Helper()
	if err := gdb.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}
