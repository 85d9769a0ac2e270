package gateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharthi/entity"
)

func TestDecodeStallsBareArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":"s1","name":"Silver Row","tier":"SILVER","price":8000,"qtyTotal":8,"qtyLeft":3},
		{"_id":"s2","stallName":"Bronze B","tierName":"bronze","amount":5200,"qty_total":10,"qty_remaining":4}
	]`)

	stalls, err := decodeStalls(raw)
	require.NoError(t, err)
	require.Len(t, stalls, 2)

	assert.Equal(t, entity.Stall{
		ID: "s1", Name: "Silver Row", Tier: entity.TierSilver,
		Price: 8000, QtyTotal: 8, QtyLeft: 3,
	}, stalls[0])

	assert.Equal(t, entity.Stall{
		ID: "s2", Name: "Bronze B", Tier: entity.TierBronze,
		Price: 5200, QtyTotal: 10, QtyLeft: 4,
	}, stalls[1])
}

func TestDecodeStallsWrappedObject(t *testing.T) {
	raw := json.RawMessage(`{"stalls":[{"id":"s1","name":"A","total":5,"qtyLeft":5}]}`)

	stalls, err := decodeStalls(raw)
	require.NoError(t, err)
	require.Len(t, stalls, 1)

	assert.Equal(t, "s1", stalls[0].ID)
	assert.Equal(t, 5, stalls[0].QtyTotal)
	// an unlabelled stall counts as silver
	assert.Equal(t, entity.TierSilver, stalls[0].Tier)
}

func TestDecodeStallsRejectsGarbage(t *testing.T) {
	_, err := decodeStalls(json.RawMessage(`"nope"`))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestEventPayloadNormalize(t *testing.T) {
	payload := eventPayload{
		LegacyID:  "evt-legacy",
		Title:     "Indore Winter Fest",
		StartAt:   "2026-12-18",
		EndAt:     "2026-12-20T21:00:00",
		CreatedAt: "2026-08-01T10:00:00Z",
		TagsCSV:   "music, food ,",
	}

	event := payload.normalize()

	assert.Equal(t, "evt-legacy", event.ID)
	assert.Equal(t, []string{"music", "food"}, event.Tags)
	assert.Equal(t, time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC), event.StartAt)
	assert.Equal(t, time.Date(2026, 12, 20, 21, 0, 0, 0, time.UTC), event.EndAt)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestEventPayloadPrefersTagListOverCSV(t *testing.T) {
	payload := eventPayload{ID: "e1", Tags: []string{"craft"}, TagsCSV: "music,food"}

	assert.Equal(t, []string{"craft"}, payload.normalize().Tags)
}

func TestBookingPayloadNormalize(t *testing.T) {
	raw := `{
		"_id":"bkg-1","status":"paid","amount":8000,"createdAt":"2026-09-01T12:00:00Z",
		"event":{"title":"Jaipur Craft Expo","startAt":"2026-10-09T09:00:00"},
		"stall":{"name":"Silver Row","tier":"SILVER","price":8000},
		"reviewed":true,"rating":4
	}`

	var payload bookingPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	b := payload.normalize()
	assert.Equal(t, "bkg-1", b.ID)
	assert.Equal(t, entity.BookingPaid, b.Status)
	assert.Equal(t, "Jaipur Craft Expo", b.Event.Title)
	assert.Equal(t, entity.TierSilver, b.Stall.Tier)
	assert.True(t, b.Reviewed)
	assert.Equal(t, 4, b.Rating)
}

func TestBookingPayloadMissingStatusDefaultsToPaid(t *testing.T) {
	b := bookingPayload{ID: "bkg-1"}.normalize()

	assert.Equal(t, entity.BookingPaid, b.Status)
}

func TestParseTime(t *testing.T) {
	assert.True(t, parseTime("").IsZero())
	assert.True(t, parseTime("yesterday").IsZero())
	assert.False(t, parseTime("2026-10-09").IsZero())
	assert.False(t, parseTime("2026-10-09T09:00:00").IsZero())
	assert.False(t, parseTime("2026-10-09T09:00:00+05:30").IsZero())
}
