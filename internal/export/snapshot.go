package export

import (
	"encoding/json"

	"github.com/arabiq/showroomseed/internal/models"
	"github.com/arabiq/showroomseed/internal/utils"
)

// Snapshot is the combined raw dump of both locale responses
type Snapshot struct {
	EN json.RawMessage `json:"en"`
	AR json.RawMessage `json:"ar"`
}

// NewSnapshot pairs the raw bodies of the two responses, with escaped
// non-ASCII text written literally. A page without a raw body is re-encoded
// from its decoded form.
func NewSnapshot(en, ar *models.ProductPage) (*Snapshot, error) {
	enRaw, err := rawOf(en)
	if err != nil {
		return nil, err
	}
	arRaw, err := rawOf(ar)
	if err != nil {
		return nil, err
	}
	return &Snapshot{EN: enRaw, AR: arRaw}, nil
}

// WriteSnapshot writes {"en": ..., "ar": ...} to path
func WriteSnapshot(path string, en, ar *models.ProductPage) error {
	snap, err := NewSnapshot(en, ar)
	if err != nil {
		return err
	}
	return utils.WriteJSONFile(path, snap)
}

func rawOf(page *models.ProductPage) (json.RawMessage, error) {
	if page == nil {
		return json.RawMessage("null"), nil
	}
	if len(page.Raw) > 0 {
		return utils.LiteralJSON(page.Raw)
	}
	return json.Marshal(page)
}
