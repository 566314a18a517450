package assets

import "time"

// AssetMeta describes one stored splat asset.
type AssetMeta struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PointCount int       `json:"point_count"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// StoreStats summarizes the asset store contents.
type StoreStats struct {
	Assets      int   `json:"assets"`
	TotalPoints int64 `json:"total_points"`
	TotalBytes  int64 `json:"total_bytes"`
}

// Errors
var (
	ErrAssetNotFound = &StoreError{"asset not found"}
	ErrCorruption    = &StoreError{"asset data corruption detected"}
)

// StoreError represents an asset store error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
