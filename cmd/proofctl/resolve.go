package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
	"github.com/andreyxaxa/ooh-proofs/internal/usecase/proof"
)

// rawRecord is one exported photo row. Timestamps stay strings so that
// unparsable values rank as missing instead of failing the whole file.
type rawRecord struct {
	ID         string  `yaml:"id"`
	PhotoURL   string  `yaml:"photo_url"`
	Category   *string `yaml:"category"`
	UploadedAt string  `yaml:"uploaded_at"`
}

type resolveOutput struct {
	Photos       entity.LatestPhotos `json:"photos"`
	Status       entity.ProofStatus  `json:"status"`
	Export       []entity.ExportItem `json:"export"`
	FromFallback bool                `json:"from_fallback"`
}

func newResolveCmd() *cobra.Command {
	var (
		recordsPath  string
		fallbackPath string
		status       string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the latest photo per slot and the proof status",
		Example: `  proofctl resolve --records photos.yaml
  proofctl resolve --records empty.json --fallback proof_photos.json --status Verified`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := loadRecords(recordsPath)
			if err != nil {
				return err
			}

			var fallback []byte
			if fallbackPath != "" {
				fallback, err = os.ReadFile(fallbackPath)
				if err != nil {
					return fmt.Errorf("read fallback: %w", err)
				}
			}

			summary := proof.Summarize(uuid.Nil, records, fallback, status)

			return writeJSON(cmd.OutOrStdout(), resolveOutput{
				Photos:       summary.Photos,
				Status:       summary.Status,
				Export:       proof.ToExportList(summary.Photos),
				FromFallback: summary.FromFallback,
			})
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "YAML or JSON list of photo records")
	cmd.Flags().StringVar(&fallbackPath, "fallback", "", "JSON blob of the aggregated photos column")
	cmd.Flags().StringVar(&status, "status", "", "externally assigned QA status")
	_ = cmd.MarkFlagRequired("records")

	return cmd
}

func loadRecords(path string) ([]entity.PhotoRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	var raw []rawRecord
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}

	records := make([]entity.PhotoRecord, 0, len(raw))
	for i, r := range raw {
		rec := entity.PhotoRecord{
			PhotoURL: r.PhotoURL,
			Category: r.Category,
		}

		if r.ID != "" {
			id, err := uuid.Parse(r.ID)
			if err != nil {
				return nil, fmt.Errorf("record %d: invalid id %q: %w", i, r.ID, err)
			}
			rec.ID = id
		}

		if ts, ok := entity.ParseTimestamp(r.UploadedAt); ok {
			rec.UploadedAt = ts
		}

		records = append(records, rec)
	}

	return records, nil
}
