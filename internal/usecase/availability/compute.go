package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

const (
	DefaultSlotStep      = 30 * time.Minute
	DefaultBookingLength = 60 * time.Minute
)

// ======================================================
// DEPENDENCIES
// ======================================================

type Stores struct {
	Catalog    schedule.Catalog
	Hours      schedule.WorkingHoursRepository
	Exceptions schedule.ExceptionRepository
	Blocks     schedule.BlockRepository
	Bookings   domain.Repository
}

type Options struct {
	// SlotStep is the distance between candidate start times.
	SlotStep time.Duration
	// BookingLength is how long an existing booking occupies the agenda,
	// whatever service it was made for.
	BookingLength time.Duration
}

// ======================================================
// USE CASE
// ======================================================

type ComputeAvailability struct {
	stores Stores
	clock  timezone.Clock
	opts   Options
}

func NewComputeAvailability(
	stores Stores,
	clock timezone.Clock,
	opts Options,
) *ComputeAvailability {
	if opts.SlotStep <= 0 {
		opts.SlotStep = DefaultSlotStep
	}
	if opts.BookingLength <= 0 {
		opts.BookingLength = DefaultBookingLength
	}
	return &ComputeAvailability{stores: stores, clock: clock, opts: opts}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute lists the open slots of every professional qualified for the
// service on in.Date, grouped by professional in ascending id order.
// Past dates and unknown services yield an empty list.
func (uc *ComputeAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	loc := uc.clock.Location()
	day := timezone.StartOfDay(in.Date, loc)

	slots := []domain.TimeSlot{}

	if day.Before(timezone.Today(uc.clock)) {
		return slots, nil
	}

	// --------------------------------------------------
	// Service
	// --------------------------------------------------
	svc, err := uc.stores.Catalog.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return slots, nil
		}
		return nil, err
	}
	if !svc.Active || svc.DurationMin <= 0 {
		return slots, nil
	}
	duration := time.Duration(svc.DurationMin) * time.Minute

	// --------------------------------------------------
	// Professionals
	// --------------------------------------------------
	pros, err := uc.stores.Catalog.ListQualifiedProfessionals(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	dateKey := timezone.DateKey(day, loc)
	weekday := timezone.ISOWeekday(day)

	for _, p := range pros {
		window, ok, err := uc.window(ctx, p.ID, dateKey, weekday)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		busy, err := uc.busy(ctx, p.ID, dateKey, window)
		if err != nil {
			return nil, err
		}

		for start := window.Open; start.Add(duration) <= window.Close; start = start.Add(uc.opts.SlotStep) {
			candidate := schedule.Interval{Start: start, End: start.Add(duration)}
			if schedule.OverlapsAny(candidate, busy) {
				continue
			}
			slots = append(slots, domain.TimeSlot{
				ProfessionalID:   p.ID,
				ProfessionalName: p.Name,
				Start:            candidate.Start.On(day),
				End:              candidate.End.On(day),
			})
		}
	}

	return slots, nil
}

func (uc *ComputeAvailability) window(
	ctx context.Context,
	professionalID uint,
	dateKey string,
	weekday int,
) (schedule.Window, bool, error) {

	exc, err := uc.stores.Exceptions.FindActiveException(ctx, professionalID, dateKey)
	if err != nil {
		return schedule.Window{}, false, err
	}

	var wh *models.WorkingHours
	if !schedule.Overrides(exc) {
		wh, err = uc.stores.Hours.FindActiveWorkingHours(ctx, professionalID, weekday)
		if err != nil {
			return schedule.Window{}, false, err
		}
	}

	w, ok := schedule.ResolveWindow(exc, wh)
	return w, ok, nil
}

// busy collects breaks, blocks and bookings as occupied intervals.
func (uc *ComputeAvailability) busy(
	ctx context.Context,
	professionalID uint,
	dateKey string,
	window schedule.Window,
) ([]schedule.Interval, error) {

	busy := append([]schedule.Interval{}, window.Breaks...)

	blocks, err := uc.stores.Blocks.ListActiveBlocks(ctx, professionalID, dateKey)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		iv, err := schedule.NewInterval(b.StartTime, b.EndTime)
		if err != nil {
			continue
		}
		busy = append(busy, iv)
	}

	bookings, err := uc.stores.Bookings.ListActiveAppointmentsForDay(ctx, professionalID, dateKey)
	if err != nil {
		return nil, err
	}
	loc := uc.clock.Location()
	for i := range bookings {
		start, _ := domain.Occupied(&bookings[i], uc.opts.BookingLength)
		s := schedule.TimeOfDayOf(start, loc)
		busy = append(busy, schedule.Interval{Start: s, End: s.Add(uc.opts.BookingLength)})
	}

	return busy, nil
}
