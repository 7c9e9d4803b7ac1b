package businessflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabodha-fernando/autoslot/app/dto"
)

func scanPageOf(n int) *dto.ListScansResponse {
	out := &dto.ListScansResponse{Scans: make([]dto.CameraScanDTO, 0, n)}
	for i := 0; i < n; i++ {
		out.Scans = append(out.Scans, dto.CameraScanDTO{
			ID:         uint(i + 1),
			ScanNumber: int64(n - i),
			ScannedAt:  "2026-08-28T10:00:00Z",
		})
	}
	return out
}

func TestScanPageCache(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		bs, err := encodeScanPage(2, scanPageOf(2))
		require.NoError(t, err)

		out, ok := decodeScanPage(bs, 2)
		require.True(t, ok)
		require.Len(t, out.Scans, 2)
		assert.Equal(t, int64(2), out.Scans[0].ScanNumber)
	})

	t.Run("MismatchedPageSizeIsAMiss", func(t *testing.T) {
		// A page cached for a small size must not be handed to a request
		// for a larger one.
		bs, err := encodeScanPage(2, scanPageOf(2))
		require.NoError(t, err)

		out, ok := decodeScanPage(bs, 50)
		assert.False(t, ok)
		assert.Nil(t, out)
	})

	t.Run("BarePayloadIsAMiss", func(t *testing.T) {
		// A raw ListScansResponse without the size envelope never matches.
		bs, err := json.Marshal(scanPageOf(2))
		require.NoError(t, err)

		out, ok := decodeScanPage(bs, 2)
		assert.False(t, ok)
		assert.Nil(t, out)
	})

	t.Run("GarbageIsAMiss", func(t *testing.T) {
		out, ok := decodeScanPage([]byte("{not json"), 2)
		assert.False(t, ok)
		assert.Nil(t, out)
	})
}
