package pricing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

const (
	DefaultGSTPercent = 18.0
	billingMonthDays  = 30
)

type UseCase struct{}

func New() *UseCase {
	return &UseCase{}
}

func (uc *UseCase) Quote(_ context.Context, in entity.PricingInput) (*entity.Pricing, error) {
	p, err := Calculate(in)
	if err != nil {
		return nil, fmt.Errorf("PricingUseCase - Quote - Calculate: %w", err)
	}

	return p, nil
}

// Calculate prices a booking pro rata over a 30-day billing month.
func Calculate(in entity.PricingInput) (*entity.Pricing, error) {
	if in.CardRate <= 0 {
		return nil, fmt.Errorf("card rate must be positive: %w", errs.ErrInvalidRate)
	}
	if in.NegotiatedRate < 0 || in.PrintingCost < 0 || in.MountingCost < 0 || in.GSTPercent < 0 {
		return nil, fmt.Errorf("amounts must not be negative: %w", errs.ErrInvalidRate)
	}

	days := BookedDays(in.StartDate, in.EndDate)
	if days < 1 {
		return nil, fmt.Errorf("end date %s before start date %s: %w",
			in.EndDate.Format(time.DateOnly), in.StartDate.Format(time.DateOnly), errs.ErrInvalidBookingPeriod)
	}

	gstPercent := in.GSTPercent
	if gstPercent == 0 {
		gstPercent = DefaultGSTPercent
	}

	effective := in.CardRate
	if in.NegotiatedRate > 0 {
		effective = in.NegotiatedRate
	}

	discount := Round2(math.Max(in.CardRate-effective, 0))

	p := &entity.Pricing{
		Days:            days,
		CardRate:        Round2(in.CardRate),
		EffectiveRate:   Round2(effective),
		DiscountAmount:  discount,
		DiscountPercent: Round2(discount / in.CardRate * 100),
		DisplayCost:     Round2(effective / billingMonthDays * float64(days)),
		PrintingCost:    Round2(in.PrintingCost),
		MountingCost:    Round2(in.MountingCost),
		GSTPercent:      gstPercent,
	}

	p.Subtotal = Round2(p.DisplayCost + p.PrintingCost + p.MountingCost)
	p.GST = Round2(p.Subtotal * gstPercent / 100)
	p.Total = Round2(p.Subtotal + p.GST)

	return p, nil
}

// BookedDays counts calendar days from start to end, both inclusive.
func BookedDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return int(e.Sub(s).Hours()/24) + 1
}

// Round2 rounds half away from zero to two decimals. The nudge absorbs binary
// representation error so 1.005 rounds up.
func Round2(v float64) float64 {
	const nudge = 1e-9
	return math.Round((v+math.Copysign(nudge, v))*100) / 100
}
