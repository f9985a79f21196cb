package response

type UploadPhoto struct {
	PhotoID     string   `json:"photo_id"`
	AssetID     string   `json:"asset_id"`
	PhotoURL    string   `json:"photo_url"`
	Category    string   `json:"category"`
	Slot        string   `json:"slot"`
	ContentType string   `json:"content_type"`
	Size        int64    `json:"size"`
	Status      string   `json:"status"`
	UploadedAt  string   `json:"uploaded_at"`
	CapturedAt  *string  `json:"captured_at,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}
