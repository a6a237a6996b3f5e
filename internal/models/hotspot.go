package models

// Vector3 is a point or direction in tour space
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HotspotPosition places a product inside the 3D tour
type HotspotPosition struct {
	X              float64  `json:"x"`
	Y              float64  `json:"y"`
	Z              float64  `json:"z"`
	StemVector     *Vector3 `json:"stemVector,omitempty"`     // Orientation of the hotspot stem
	NearestSweepID string   `json:"nearestSweepId,omitempty"` // Closest navigable viewpoint
	FloorIndex     int      `json:"floorIndex"`
}

// IsPlaced reports whether the position has been set.
// An all-zero x/y/z counts as unset, so a product placed exactly at the
// origin is reported as unplaced.
func (h *HotspotPosition) IsPlaced() bool {
	if h == nil {
		return false
	}
	return h.X != 0 || h.Y != 0 || h.Z != 0
}
