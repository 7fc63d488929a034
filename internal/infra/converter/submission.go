package converter

import (
	"encoding/json"

	"lushquote/internal/domain/submission"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/queries"
)

// LineItemRecord is the jsonb shape of one selected-service snapshot.
type LineItemRecord struct {
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

func LineItemsToJSON(items []submission.LineItem) ([]byte, error) {
	records := make([]LineItemRecord, len(items))
	for i, item := range items {
		records[i] = LineItemRecord(item)
	}
	return json.Marshal(records)
}

func LineItemViewsFromJSON(raw []byte) ([]queries.LineItemView, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []LineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode line items column")
	}

	views := make([]queries.LineItemView, len(records))
	for i, r := range records {
		views[i] = queries.LineItemView(r)
	}
	return views, nil
}
