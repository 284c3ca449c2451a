package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/testutil"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

var brt = time.FixedZone("BRT", -3*60*60)

// 2030-01-07 is a Monday.
var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, brt)

func newCompute(gdb *gorm.DB) *ComputeAvailability {
	clock := timezone.FixedClock{At: time.Date(2030, 1, 1, 8, 0, 0, 0, brt), Loc: brt}
	return NewComputeAvailability(Stores{
		Catalog:    repository.NewCatalogGormRepository(gdb),
		Hours:      repository.NewWorkingHoursGormRepository(gdb),
		Exceptions: repository.NewExceptionGormRepository(gdb),
		Blocks:     repository.NewBlockGormRepository(gdb),
		Bookings:   repository.NewAppointmentGormRepository(gdb),
	}, clock, Options{})
}

func starts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.In(brt).Format("15:04"))
	}
	return out
}

func book(t *testing.T, gdb *gorm.DB, f testutil.Fixture, pro models.Professional, hm string, status string) {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02 15:04", "2030-01-07 "+hm, brt)
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&models.Appointment{
		BarbershopID:   f.Shop.ID,
		ProfessionalID: pro.ID,
		ClientID:       f.Client.ID,
		ServiceID:      f.Service.ID,
		DateTime:       at.UTC(),
		Date:           "2030-01-07",
		Status:         status,
	}).Error)
}

func TestCompute_MondayMorningHasSixSlots(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	testutil.WorkingHours(t, gdb, f.Professionals[0].ID, 1, "09:00", "12:00")

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, starts(slots))
	last := slots[len(slots)-1]
	assert.Equal(t, "12:00", last.End.In(brt).Format("15:04"))
	assert.Equal(t, "Ana", last.ProfessionalName)
	assert.Equal(t, f.Professionals[0].ID, last.ProfessionalID)
}

func TestCompute_BlockRemovesOverlappingSlot(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	pro := f.Professionals[0]
	testutil.WorkingHours(t, gdb, pro.ID, 1, "09:00", "12:00")
	require.NoError(t, gdb.Create(&models.Block{
		ProfessionalID: pro.ID, Date: "2030-01-07", StartTime: "10:00", EndTime: "10:30", CreatedBy: "TENANT",
	}).Error)

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, starts(slots))
}

func TestCompute_EmptyResults(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	testutil.WorkingHours(t, gdb, f.Professionals[0].ID, 1, "09:00", "12:00")
	uc := newCompute(gdb)
	ctx := context.Background()

	t.Run("past date", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday.AddDate(0, 0, -14),
		})
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("unknown service", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarbershopID: f.Shop.ID, ServiceID: 9999, Date: monday,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("service of another tenant", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarbershopID: f.Shop.ID + 100, ServiceID: f.Service.ID, Date: monday,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("nobody qualified", func(t *testing.T) {
		svc := models.Service{BarbershopID: f.Shop.ID, Name: "Barba", DurationMin: 30, Active: true}
		require.NoError(t, gdb.Create(&svc).Error)

		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarbershopID: f.Shop.ID, ServiceID: svc.ID, Date: monday,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("day without working hours", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestCompute_ExceptionsOverrideWeeklyHours(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana", "Bruno")
	ana, bruno := f.Professionals[0], f.Professionals[1]
	testutil.WorkingHours(t, gdb, ana.ID, 1, "09:00", "12:00")
	testutil.WorkingHours(t, gdb, bruno.ID, 1, "09:00", "12:00")

	require.NoError(t, gdb.Create(&models.ScheduleException{
		ProfessionalID: ana.ID, Date: "2030-01-07", Kind: models.ExceptionClosed, CreatedBy: "TENANT", Active: true,
	}).Error)
	require.NoError(t, gdb.Create(&models.ScheduleException{
		ProfessionalID: bruno.ID, Date: "2030-01-07", Kind: models.ExceptionSpecialHours,
		OpenTime: "14:00", CloseTime: "15:00", CreatedBy: "PROFESSIONAL", Active: true,
	}).Error)

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"14:00", "14:30"}, starts(slots))
	for _, s := range slots {
		assert.Equal(t, bruno.ID, s.ProfessionalID)
	}
}

func TestCompute_UnknownExceptionKindFallsBackToWeeklyHours(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	ana := f.Professionals[0]
	testutil.WorkingHours(t, gdb, ana.ID, 1, "09:00", "10:00")

	require.NoError(t, gdb.Create(&models.ScheduleException{
		ProfessionalID: ana.ID, Date: "2030-01-07", Kind: "HOLIDAY", CreatedBy: "TENANT", Active: true,
	}).Error)

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, starts(slots))
}

func TestCompute_LunchBreakIsOccupied(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	require.NoError(t, gdb.Create(&models.WorkingHours{
		ProfessionalID: f.Professionals[0].ID, Weekday: 1,
		OpenTime: "09:00", CloseTime: "13:00", LunchStart: "11:00", LunchEnd: "12:00", Active: true,
	}).Error)

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "12:00", "12:30"}, starts(slots))
}

func TestCompute_GroupedByProfessionalInIDOrder(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana", "Bruno")
	testutil.WorkingHours(t, gdb, f.Professionals[1].ID, 1, "09:00", "10:00")
	testutil.WorkingHours(t, gdb, f.Professionals[0].ID, 1, "09:00", "10:00")

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)
	require.Len(t, slots, 4)

	names := []string{}
	for _, s := range slots {
		names = append(names, s.ProfessionalName)
	}
	assert.Equal(t, []string{"Ana", "Ana", "Bruno", "Bruno"}, names)
	assert.Equal(t, []string{"09:00", "09:30", "09:00", "09:30"}, starts(slots))
}

// Bookings occupy a flat hour regardless of the booked service, so a
// 30 minute booking at 10:00 also hides the 10:30 slot.
func TestCompute_BookingsOccupyFlatLength(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	pro := f.Professionals[0]
	testutil.WorkingHours(t, gdb, pro.ID, 1, "09:00", "12:00")

	book(t, gdb, f, pro, "10:00", "PENDENTE")
	book(t, gdb, f, pro, "09:00", "CANCELADO")

	slots, err := newCompute(gdb).Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, starts(slots))
}

func TestCompute_CustomStep(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	testutil.WorkingHours(t, gdb, f.Professionals[0].ID, 1, "09:00", "10:00")

	clock := timezone.FixedClock{At: time.Date(2030, 1, 7, 8, 0, 0, 0, brt), Loc: brt}
	uc := NewComputeAvailability(Stores{
		Catalog:    repository.NewCatalogGormRepository(gdb),
		Hours:      repository.NewWorkingHoursGormRepository(gdb),
		Exceptions: repository.NewExceptionGormRepository(gdb),
		Blocks:     repository.NewBlockGormRepository(gdb),
		Bookings:   repository.NewAppointmentGormRepository(gdb),
	}, clock, Options{SlotStep: 15 * time.Minute})

	// today counts as not past
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: f.Shop.ID, ServiceID: f.Service.ID, Date: monday,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, starts(slots))
}
