package decoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
)

// Decoder decodes WooCommerce REST API pages into records.
type Decoder struct {
	// ParentID is set when decoding page of /products/{id}/variations endpoint.
	ParentID string
}

// Decode decodes records from JSON array page and returns each record with decoding error into output channel.
// It returns number of array items read. Items with wrong field types or failing validation are sent with error
// and decoding continues; malformed JSON stops decoding.
func (d Decoder) Decode(ctx context.Context, page io.Reader, output chan<- models.ParsingResult) (int, error) {
	dec := json.NewDecoder(page)

	token, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return 0, ErrNotArray
	}

	var fallbackType models.RecordType
	if d.ParentID != "" {
		fallbackType = models.TypeVariation
	}

	count := 0
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return count, err
		}
		count++

		result := models.ParsingResult{}
		var product Product
		if err := json.Unmarshal(raw, &product); err != nil {
			result.Error = fmt.Errorf("can't decode record %d: %w", count, err)
		} else {
			result.Record, result.Error = toRecord(&product, d.ParentID, fallbackType)
		}

		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case output <- result:
		}
	}

	if _, err := dec.Token(); err != nil {
		return count, err
	}

	return count, nil
}
