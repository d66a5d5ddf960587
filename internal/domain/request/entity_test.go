//go:build unit

package request_test

import (
	"testing"
	"time"

	"pharmalink/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines(t *testing.T, n int) []request.Line {
	t.Helper()
	names := []string{"Paracetamol", "Amoxicillin", "Ibuprofen"}
	lines := make([]request.Line, 0, n)
	for i := 0; i < n; i++ {
		l, err := request.NewLine(uuid.New(), names[i%len(names)], "500mg", "")
		require.NoError(t, err)
		lines = append(lines, l)
	}
	return lines
}

func TestNewRequest(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	location, err := request.NewLocation(3.848, 11.502)
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		requesterID := uuid.New()
		actual, err := request.NewRequest(requesterID, validLines(t, 2), request.PriorityHigh, location, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, requesterID, actual.RequesterID())
		assert.Equal(t, request.StatusPending, actual.Status())
		assert.Equal(t, request.PriorityHigh, actual.Priority())
		assert.Len(t, actual.Lines(), 2)
		assert.Nil(t, actual.OrderID())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name     string
			lines    []request.Line
			priority request.Priority
			errIs    error
		}{
			{
				name:     "empty line list",
				lines:    nil,
				priority: request.PriorityLow,
				errIs:    request.ErrNoLines,
			},
			{
				name: "duplicate medication",
				lines: func() []request.Line {
					l, err := request.NewLine(uuid.New(), "Paracetamol", "500mg", "")
					require.NoError(t, err)
					return []request.Line{l, l}
				}(),
				priority: request.PriorityLow,
				errIs:    request.ErrDuplicateLine,
			},
			{
				name:     "unknown priority",
				lines:    validLines(t, 1),
				priority: request.Priority("urgent"),
				errIs:    request.ErrInvalidPriority,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := request.NewRequest(uuid.New(), tc.lines, tc.priority, location, now)
				require.Nil(t, actual)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestRequest_AdvanceTo(t *testing.T) {
	now := time.Now()
	location, _ := request.NewLocation(0, 0)

	newRequest := func(t *testing.T) *request.Request {
		t.Helper()
		r, err := request.NewRequest(uuid.New(), validLines(t, 1), request.PriorityMedium, location, now)
		require.NoError(t, err)
		return r
	}

	t.Run("moves forward through every stage", func(t *testing.T) {
		r := newRequest(t)
		for _, s := range []request.Status{
			request.StatusConfirmed,
			request.StatusPreparing,
			request.StatusReady,
			request.StatusCompleted,
		} {
			require.NoError(t, r.AdvanceTo(s))
			assert.Equal(t, s, r.Status())
		}
	})

	t.Run("skipping stages forward is allowed", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.AdvanceTo(request.StatusPreparing))
		assert.Equal(t, request.StatusPreparing, r.Status())
	})

	t.Run("never regresses", func(t *testing.T) {
		r := newRequest(t)
		require.NoError(t, r.AdvanceTo(request.StatusPreparing))

		err := r.AdvanceTo(request.StatusConfirmed)
		require.ErrorIs(t, err, request.ErrStatusRegress)
		assert.Equal(t, request.StatusPreparing, r.Status())

		err = r.AdvanceTo(request.StatusPreparing)
		require.ErrorIs(t, err, request.ErrStatusRegress)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		r := newRequest(t)
		err := r.AdvanceTo(request.Status("canceled"))
		require.ErrorIs(t, err, request.ErrInvalidStatus)
	})
}

func TestRequest_HasLine(t *testing.T) {
	now := time.Now()
	location, _ := request.NewLocation(0, 0)
	lines := validLines(t, 2)

	r, err := request.NewRequest(uuid.New(), lines, request.PriorityLow, location, now)
	require.NoError(t, err)

	assert.True(t, r.HasLine(lines[0].MedicationID))
	assert.True(t, r.HasLine(lines[1].MedicationID))
	assert.False(t, r.HasLine(uuid.New()))
}

func TestNewLocation(t *testing.T) {
	testCases := []struct {
		name  string
		lat   float64
		lng   float64
		errIs error
	}{
		{name: "valid", lat: 3.848, lng: 11.502},
		{name: "boundary", lat: -90, lng: 180},
		{name: "latitude too high", lat: 90.1, lng: 0, errIs: request.ErrInvalidLatitude},
		{name: "longitude too low", lat: 0, lng: -180.5, errIs: request.ErrInvalidLongitude},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := request.NewLocation(tc.lat, tc.lng)
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestNewAvailabilityEntry(t *testing.T) {
	medID := uuid.New()

	t.Run("negative price rejected", func(t *testing.T) {
		price := int64(-1)
		_, err := request.NewAvailabilityEntry(medID, true, &price, nil)
		require.ErrorIs(t, err, request.ErrNegativePrice)
	})

	t.Run("blank comment dropped", func(t *testing.T) {
		comment := "   "
		entry, err := request.NewAvailabilityEntry(medID, false, nil, &comment)
		require.NoError(t, err)
		assert.Nil(t, entry.Comment)
	})

	t.Run("comment trimmed", func(t *testing.T) {
		comment := "  only 10 boxes left  "
		entry, err := request.NewAvailabilityEntry(medID, true, nil, &comment)
		require.NoError(t, err)
		require.NotNil(t, entry.Comment)
		assert.Equal(t, "only 10 boxes left", *entry.Comment)
	})
}
