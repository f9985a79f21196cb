package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/pricing"
)

func newQuoteCmd() *cobra.Command {
	var (
		in       entity.PricingInput
		from, to string
	)

	cmd := &cobra.Command{
		Use:     "quote",
		Short:   "Quote a booking on a 30-day billing month with GST",
		Example: `  proofctl quote --card-rate 90000 --negotiated-rate 75000 --from 2024-03-01 --to 2024-03-15 --printing 4500 --mounting 1500`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			in.StartDate, err = time.Parse(time.DateOnly, from)
			if err != nil {
				return fmt.Errorf("--from must be YYYY-MM-DD: %w", err)
			}

			in.EndDate, err = time.Parse(time.DateOnly, to)
			if err != nil {
				return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
			}

			p, err := pricing.Calculate(in)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), p)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.CardRate, "card-rate", 0, "monthly card rate")
	f.Float64Var(&in.NegotiatedRate, "negotiated-rate", 0, "monthly negotiated rate, 0 uses the card rate")
	f.StringVar(&from, "from", "", "first booked day, YYYY-MM-DD")
	f.StringVar(&to, "to", "", "last booked day, YYYY-MM-DD")
	f.Float64Var(&in.PrintingCost, "printing", 0, "printing cost")
	f.Float64Var(&in.MountingCost, "mounting", 0, "mounting cost")
	f.Float64Var(&in.GSTPercent, "gst", pricing.DefaultGSTPercent, "GST percent")
	_ = cmd.MarkFlagRequired("card-rate")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
