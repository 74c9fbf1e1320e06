package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPeriod(t *testing.T) {
	month, year := CurrentPeriod(time.Date(2025, time.March, 15, 22, 4, 0, 0, time.UTC))
	assert.Equal(t, time.March, month)
	assert.Equal(t, 2025, year)
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Month
		year      int
		wantMonth time.Month
		wantYear  int
	}{
		{"mid year", time.March, 2025, time.February, 2025},
		{"january wraps to december", time.January, 2025, time.December, 2024},
		{"december", time.December, 2025, time.November, 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := PreviousPeriod(tt.month, tt.year)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		want  int
	}{
		{"january", time.January, 2025, 31},
		{"april", time.April, 2025, 30},
		{"february non leap", time.February, 2025, 28},
		{"february leap", time.February, 2024, 29},
		{"century non leap", time.February, 1900, 28},
		{"quadricentennial leap", time.February, 2000, 29},
		{"december", time.December, 2025, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)
	sameDayNextYear := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(morning, night))
	assert.False(t, SameCalendarDay(night, nextDay))
	assert.False(t, SameCalendarDay(morning, sameDayNextYear))
}
