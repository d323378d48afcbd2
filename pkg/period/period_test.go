package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBoundaries(t *testing.T) {
	p := Month(2024, 2)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), p.End)
	assert.Equal(t, 29, p.Days())
}

func TestMonthNonLeapFebruary(t *testing.T) {
	p := Month(2023, 2)

	assert.Equal(t, time.Date(2023, time.February, 28, 23, 59, 59, 999000000, time.UTC), p.End)
	assert.Equal(t, 28, p.Days())
}

func TestMonthDecember(t *testing.T) {
	p := Month(2024, 12)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestMonthYearRollover(t *testing.T) {
	p := Month(2024, 13)

	assert.Equal(t, 2025, p.Year())
	assert.Equal(t, time.January, p.MonthOf())
	assert.Equal(t, "2025-01", p.Label())
}

func TestMonthNegativeOffset(t *testing.T) {
	// Month 0 of 2024 is December 2023, the shape trend windows rely on.
	p := Month(2024, 0)

	assert.Equal(t, 2023, p.Year())
	assert.Equal(t, time.December, p.MonthOf())
}

func TestNewRejectsInvertedRange(t *testing.T) {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, err := New(start, end)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewAcceptsSingleDay(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	p, err := New(day, EndOfDay(day))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Days())
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(time.Date(2024, time.June, 15, 8, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.June, 15, 23, 59, 59, 999000000, time.UTC), got)
}

func TestDaysInclusive(t *testing.T) {
	p, err := New(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndOfDay(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, err)

	assert.Equal(t, 31, p.Days())
}
