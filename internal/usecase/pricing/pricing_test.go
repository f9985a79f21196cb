package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/pkg/types/errs"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{2.675, 2.68},
		{1.004, 1.0},
		{-1.005, -1.01},
		{0, 0},
		{100, 100},
		{33333.333333, 33333.33},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestBookedDays(t *testing.T) {
	assert.Equal(t, 1, BookedDays(date("2024-03-01"), date("2024-03-01")))
	assert.Equal(t, 31, BookedDays(date("2024-03-01"), date("2024-03-31")))
	assert.Equal(t, 29, BookedDays(date("2024-02-01"), date("2024-02-29")))
	assert.Equal(t, 0, BookedDays(date("2024-03-02"), date("2024-03-01")))

	// time of day is ignored
	start := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, BookedDays(start, end))
}

func TestCalculate_FullMonthCardRate(t *testing.T) {
	p, err := Calculate(entity.PricingInput{
		CardRate:  90000,
		StartDate: date("2024-04-01"),
		EndDate:   date("2024-04-30"),
	})
	require.NoError(t, err)

	assert.Equal(t, 30, p.Days)
	assert.Equal(t, 90000.0, p.EffectiveRate)
	assert.Equal(t, 0.0, p.DiscountAmount)
	assert.Equal(t, 90000.0, p.DisplayCost)
	assert.Equal(t, 18.0, p.GSTPercent)
	assert.Equal(t, 16200.0, p.GST)
	assert.Equal(t, 106200.0, p.Total)
}

func TestCalculate_NegotiatedProRata(t *testing.T) {
	p, err := Calculate(entity.PricingInput{
		CardRate:       100000,
		NegotiatedRate: 85000,
		StartDate:      date("2024-05-01"),
		EndDate:        date("2024-05-15"),
		PrintingCost:   12500.5,
		MountingCost:   3000,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, p.Days)
	assert.Equal(t, 15000.0, p.DiscountAmount)
	assert.Equal(t, 15.0, p.DiscountPercent)
	assert.Equal(t, 42500.0, p.DisplayCost)
	assert.Equal(t, 58000.5, p.Subtotal)
	assert.Equal(t, 10440.09, p.GST)
	assert.Equal(t, 68440.59, p.Total)
}

func TestCalculate_RoundsDisplayCost(t *testing.T) {
	p, err := Calculate(entity.PricingInput{
		CardRate:   100000,
		StartDate:  date("2024-06-01"),
		EndDate:    date("2024-06-07"),
		GSTPercent: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, p.Days)
	assert.Equal(t, 23333.33, p.DisplayCost)
	assert.Equal(t, 1166.67, p.GST)
	assert.Equal(t, 24500.0, p.Total)
}

func TestCalculate_NegotiatedAboveCardHasNoDiscount(t *testing.T) {
	p, err := Calculate(entity.PricingInput{
		CardRate:       50000,
		NegotiatedRate: 60000,
		StartDate:      date("2024-01-01"),
		EndDate:        date("2024-01-30"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.DiscountAmount)
	assert.Equal(t, 0.0, p.DiscountPercent)
	assert.Equal(t, 60000.0, p.DisplayCost)
}

func TestCalculate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   entity.PricingInput
		err  error
	}{
		{"zero card rate", entity.PricingInput{StartDate: date("2024-01-01"), EndDate: date("2024-01-02")}, errs.ErrInvalidRate},
		{"negative printing", entity.PricingInput{CardRate: 1, PrintingCost: -1, StartDate: date("2024-01-01"), EndDate: date("2024-01-02")}, errs.ErrInvalidRate},
		{"reversed dates", entity.PricingInput{CardRate: 1, StartDate: date("2024-01-02"), EndDate: date("2024-01-01")}, errs.ErrInvalidBookingPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUseCase_Quote(t *testing.T) {
	uc := New()

	_, err := uc.Quote(context.Background(), entity.PricingInput{CardRate: -5})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidRate)

	p, err := uc.Quote(context.Background(), entity.PricingInput{
		CardRate:  30000,
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p.DisplayCost)
}
