package period

import (
	"errors"
	"testing"
	"time"

	"github.com/magabrotheeeer/ski-station/internal/models"
)

func TestEndDate_TableTests(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		typ     models.SubscriptionType
		start   time.Time
		want    time.Time
		wantErr bool
	}{
		{
			name:  "monthly adds one month",
			typ:   models.TypeMonthly,
			start: start,
			want:  time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "semestriel adds six months",
			typ:   models.TypeSemestriel,
			start: start,
			want:  time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "annual adds twelve months",
			typ:   models.TypeAnnual,
			start: start,
			want:  time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "annual crosses year boundary",
			typ:   models.TypeAnnual,
			start: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unknown type fails",
			typ:     models.SubscriptionType("WEEKLY"),
			start:   start,
			wantErr: true,
		},
		{
			name:    "empty type fails",
			typ:     "",
			start:   start,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EndDate(tt.typ, tt.start)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidSubscriptionType) {
					t.Fatalf("want ErrInvalidSubscriptionType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenew_TableTests(t *testing.T) {
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		typ     models.SubscriptionType
		end     time.Time
		today   time.Time
		want    time.Time
		wantErr bool
	}{
		{
			name:  "active subscription extends from end date",
			typ:   models.TypeMonthly,
			end:   end,
			today: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "lapsed subscription restarts from today",
			typ:   models.TypeAnnual,
			end:   end,
			today: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "renewal exactly on end date extends from end date",
			typ:   models.TypeSemestriel,
			end:   end,
			today: end,
			want:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unknown type fails",
			typ:     models.SubscriptionType("DAILY"),
			end:     end,
			today:   end,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Renew(tt.typ, tt.end, tt.today)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidSubscriptionType) {
					t.Fatalf("want ErrInvalidSubscriptionType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}
