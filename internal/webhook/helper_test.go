package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullDate(t *testing.T) {
	assert.False(t, nullDate("").Valid)
	assert.False(t, nullDate("10/03/2025").Valid)

	parsed := nullDate("2025-03-10")
	require.True(t, parsed.Valid)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), parsed.Time)

	timestamped := nullDate("2025-03-10T14:30:00Z")
	require.True(t, timestamped.Valid)
	assert.Equal(t, 14, timestamped.Time.Hour())
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)

	value := nullString("sub_001")
	require.True(t, value.Valid)
	assert.Equal(t, "sub_001", value.String)
}
