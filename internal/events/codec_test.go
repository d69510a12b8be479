package events

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStatusCodec(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event := domain.ListingStatus{
		ListingID: uuid.New(),
		Status:    domain.AIStatusRejected,
		Message:   "Product does not match the description.",
		Timestamp: &now,
	}

	payload, err := encodeStatus(event)
	require.NoError(t, err)

	decoded, err := decodeStatus(payload)
	require.NoError(t, err)
	require.Equal(t, event.ListingID, decoded.ListingID)
	require.Equal(t, event.Status, decoded.Status)
	require.Equal(t, event.Message, decoded.Message)
	require.True(t, now.Equal(*decoded.Timestamp))

	_, err = decodeStatus(`{"listingId":"` + uuid.NewString() + `","status":"approved"}`)
	require.Error(t, err)

	_, err = decodeStatus("not json")
	require.Error(t, err)
}
