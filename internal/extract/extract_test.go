package extract

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestClampRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     int
		end       int
		total     int
		wantStart int
		wantEnd   int
		wantErr   error
	}{
		{
			name:  "full range untouched",
			start: 1, end: 10, total: 10,
			wantStart: 1, wantEnd: 10,
		},
		{
			name:  "interior range untouched",
			start: 3, end: 7, total: 10,
			wantStart: 3, wantEnd: 7,
		},
		{
			name:  "start below one clamped",
			start: 0, end: 5, total: 10,
			wantStart: 1, wantEnd: 5,
		},
		{
			name:  "negative start clamped",
			start: -3, end: 5, total: 10,
			wantStart: 1, wantEnd: 5,
		},
		{
			name:  "end past total clamped",
			start: 2, end: 99, total: 10,
			wantStart: 2, wantEnd: 10,
		},
		{
			name:  "end zero means last page",
			start: 1, end: 0, total: 10,
			wantStart: 1, wantEnd: 10,
		},
		{
			name:  "single page",
			start: 4, end: 4, total: 10,
			wantStart: 4, wantEnd: 4,
		},
		{
			name:  "start after end",
			start: 8, end: 3, total: 10,
			wantErr: ErrInvalidPageRange,
		},
		{
			name:  "start past total",
			start: 20, end: 0, total: 10,
			wantErr: ErrInvalidPageRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end, err := clampRange(tt.start, tt.end, tt.total)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("clampRange() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("clampRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.pdf")

	if _, err := PageCount(missing); !errors.Is(err, ErrOpenPDF) {
		t.Errorf("PageCount(missing) error = %v, want ErrOpenPDF", err)
	}
	if _, err := Extract(missing, 1, 1); !errors.Is(err, ErrOpenPDF) {
		t.Errorf("Extract(missing) error = %v, want ErrOpenPDF", err)
	}
	if _, err := ExtractAll(missing); !errors.Is(err, ErrOpenPDF) {
		t.Errorf("ExtractAll(missing) error = %v, want ErrOpenPDF", err)
	}
}
