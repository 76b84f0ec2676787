//go:build unit

package booking_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNumberPattern = regexp.MustCompile(`^BK\d{13}\d{1,3}$`)

func TestRandomNumberGenerator_Format(t *testing.T) {
	gen := booking.NewSeededNumberGenerator(1)
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	number := gen.Next(now)

	assert.Regexp(t, bookingNumberPattern, number)
	assert.True(t, strings.HasPrefix(number, "BK"+strconv.FormatInt(now.UnixMilli(), 10)))

	suffix := strings.TrimPrefix(number, "BK"+strconv.FormatInt(now.UnixMilli(), 10))
	n, err := strconv.Atoi(suffix)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 1000)
}

func TestRandomNumberGenerator_SuffixVaries(t *testing.T) {
	gen := booking.NewSeededNumberGenerator(42)
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	seen := make(map[string]struct{})
	for range 50 {
		seen[gen.Next(now)] = struct{}{}
	}

	// Same millisecond, so distinctness comes from the suffix alone.
	assert.Greater(t, len(seen), 1)
}

func TestRandomNumberGenerator_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	a := booking.NewSeededNumberGenerator(7).Next(now)
	b := booking.NewSeededNumberGenerator(7).Next(now)

	assert.Equal(t, a, b)
}
