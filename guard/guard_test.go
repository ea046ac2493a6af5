package guard

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"goext/bounds"
)

func TestBetween(t *testing.T) {
	require.NoError(t, Between("port", 8080, 1, 65535, bounds.Inclusive))

	err := Between("port", 0, 1, 65535, bounds.Inclusive)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.Contains(t, err.Error(), "port must be between 1 and 65535, got 0")

	err = Between("ratio", 1.0, 0.0, 1.0, bounds.IncludeLowerExcludeUpper)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.Contains(t, err.Error(), "ratio must be greater than or equal to 0 but less than 1, got 1")

	err = Between("retries", 3, 10, 1, bounds.Inclusive)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestBetweenUnknownMode(t *testing.T) {
	err := Between("n", 5, 1, 10, bounds.Mode(77))
	require.True(t, errors.Is(err, ErrUnknownMode))
	require.False(t, errors.Is(err, ErrOutOfRange))
	require.True(t, errors.Is(err, bounds.ErrUnknownMode))
}

func TestBetweenEither(t *testing.T) {
	require.NoError(t, BetweenEither("retries", 3, 10, 1, bounds.Inclusive))

	err := BetweenEither("retries", 10, 10, 1, bounds.Exclusive)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.Contains(t, err.Error(), "retries must be between but not including 1 and 10, got 10")
}

func TestBetweenWith(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	require.NoError(t, BetweenWith("at", start.Add(time.Minute), start, end, bounds.Times, bounds.Exclusive))
	require.True(t, errors.Is(BetweenWith("at", end, start, end, bounds.Times, bounds.Exclusive), ErrOutOfRange))

	lo := uuid.MustParse("10000000-0000-0000-0000-000000000000")
	hi := uuid.MustParse("20000000-0000-0000-0000-000000000000")
	require.NoError(t, BetweenWith("id", uuid.MustParse("15000000-0000-0000-0000-000000000000"), lo, hi, bounds.UUIDs, bounds.Inclusive))
	require.True(t, errors.Is(BetweenWith("id", uuid.Nil, lo, hi, bounds.UUIDs, bounds.Inclusive), ErrOutOfRange))
}

func TestBetweenAny(t *testing.T) {
	require.NoError(t, BetweenAny("timeout", "30", 1, 60, bounds.Inclusive))
	require.NoError(t, BetweenAny("timeout", int64(60), 1, 60, bounds.Inclusive))

	err := BetweenAny("timeout", 61, 1, 60, bounds.Inclusive)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.Contains(t, err.Error(), "got 61")

	err = BetweenAny("timeout", "soon", 1, 60, bounds.Inclusive)
	require.True(t, errors.Is(err, ErrConversion))
}

func TestNotNil(t *testing.T) {
	var p *int
	require.True(t, errors.Is(NotNil("p", p), ErrNil))
	require.True(t, errors.Is(NotNil("v", nil), ErrNil))
	require.NoError(t, NotNil("v", 0))
}

func TestNotEmpty(t *testing.T) {
	require.True(t, errors.Is(NotEmpty("name", " "), ErrEmpty))
	require.NoError(t, NotEmpty("name", "x"))
	require.Contains(t, NotEmpty("name", "").Error(), "name must not be empty")
}
