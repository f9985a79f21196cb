package entity

// Status is the processing state of a proof photo and of its outbox event.
type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Processed  Status = "processed"
	Failed     Status = "failed"
)
