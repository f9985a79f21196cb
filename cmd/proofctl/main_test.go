package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyxaxa/ooh-proofs/internal/entity"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const recordsYAML = `
- id: 0b9a2f4e-3c1d-4e5f-8a7b-9c0d1e2f3a4b
  photo_url: https://cdn.example.com/np.jpg
  category: Newspaper
  uploaded_at: 2024-01-01T09:00:00Z
- photo_url: https://cdn.example.com/g1.jpg
  category: geo
  uploaded_at: 2024-01-02T09:00:00Z
- photo_url: https://cdn.example.com/g2.jpg
  category: GPS
  uploaded_at: 2024-01-01 09:00:00
- photo_url: https://cdn.example.com/t.jpg
  category: traffic_left
- photo_url: https://cdn.example.com/x.jpg
  category: null
- photo_url: https://cdn.example.com/r.jpg
  category: traffic right
  uploaded_at: not a date
`

func TestResolve_FromRecords(t *testing.T) {
	out, err := run(t, "resolve", "--records", writeFile(t, "photos.yaml", recordsYAML))
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.False(t, got.FromFallback)
	assert.Equal(t, entity.ProofReadyForQA, got.Status)
	require.NotNil(t, got.Photos.Geotag)
	assert.Equal(t, "https://cdn.example.com/g1.jpg", *got.Photos.Geotag)
	require.NotNil(t, got.Photos.Traffic2)
	assert.Equal(t, "https://cdn.example.com/r.jpg", *got.Photos.Traffic2)

	require.Len(t, got.Export, 4)
	assert.Equal(t, "Newspaper Ad", got.Export[0].Label)
}

func TestResolve_FallbackOnlyWhenNoRecords(t *testing.T) {
	empty := writeFile(t, "empty.json", "[]")
	blob := writeFile(t, "proof_photos.json", `{"newspaper_photo":"n.jpg","geo":"g.jpg","traffic":"t.jpg"}`)

	out, err := run(t, "resolve", "--records", empty, "--fallback", blob, "--status", "Verified")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.FromFallback)
	assert.Equal(t, entity.ProofVerified, got.Status)
	require.NotNil(t, got.Photos.Newspaper)
	assert.Equal(t, "n.jpg", *got.Photos.Newspaper)

	out, err = run(t, "resolve", "--records", writeFile(t, "photos.yaml", recordsYAML), "--fallback", blob)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.FromFallback)
}

func TestResolve_Errors(t *testing.T) {
	_, err := run(t, "resolve")
	require.Error(t, err)

	_, err = run(t, "resolve", "--records", writeFile(t, "bad.yaml", "- id: nope\n  photo_url: a.jpg\n"))
	require.ErrorContains(t, err, "invalid id")

	_, err = run(t, "resolve", "--records", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read records")
}

func TestQuote(t *testing.T) {
	out, err := run(t, "quote",
		"--card-rate", "90000", "--negotiated-rate", "75000",
		"--from", "2024-03-01", "--to", "2024-03-15",
		"--printing", "4500", "--mounting", "1500",
	)
	require.NoError(t, err)

	var got entity.Pricing
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 15, got.Days)
	assert.InDelta(t, 15000, got.DiscountAmount, 1e-9)
	assert.InDelta(t, 16.67, got.DiscountPercent, 1e-9)
	assert.InDelta(t, 51330, got.Total, 1e-9)

	_, err = run(t, "quote", "--card-rate", "1000", "--from", "2024-03-10", "--to", "2024-03-01")
	require.Error(t, err)

	_, err = run(t, "quote", "--card-rate", "1000", "--from", "10/03/2024", "--to", "2024-03-11")
	require.ErrorContains(t, err, "--from must be YYYY-MM-DD")
}
