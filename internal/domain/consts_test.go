package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketOf(t *testing.T) {
	tests := []struct {
		shiftStart string
		expected   ShiftBucket
	}{
		{"07:00", ShiftMorning},
		{"00:00", ShiftMorning},
		{"11:59", ShiftMorning},
		{"12:00", ShiftAfternoon},
		{"13:30", ShiftAfternoon},
		{"23:45", ShiftAfternoon},
		{"", ShiftAfternoon},
		{"noon", ShiftAfternoon},
	}

	for _, tt := range tests {
		t.Run(tt.shiftStart, func(t *testing.T) {
			assert.Equal(t, tt.expected, BucketOf(tt.shiftStart))
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "monday", WeekdayName(time.Monday))
	assert.Equal(t, "sunday", WeekdayName(time.Sunday))

	// Weekdays drives view ordering and must start the week on Monday.
	assert.Equal(t, "monday", Weekdays[0])
	assert.Equal(t, "sunday", Weekdays[6])
	assert.Len(t, Weekdays, 7)
}
