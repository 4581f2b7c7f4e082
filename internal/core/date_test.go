package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "iso date", input: "2021-12-09", want: NewDate(2021, time.December, 9)},
		{name: "leap day", input: "2020-02-29", want: NewDate(2020, time.February, 29)},
		{name: "day first", input: "12-09-2021", wantErr: true},
		{name: "single digit day", input: "2021-12-9", wantErr: true},
		{name: "out of range day", input: "2021-02-30", wantErr: true},
		{name: "date time", input: "2021-12-09T10:00:00", wantErr: true},
		{name: "surrounding space", input: " 2021-12-09", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "invalid-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				var dateErr *InvalidDateInputError
				if !errors.As(err, &dateErr) {
					t.Fatalf("ParseDate(%q) error = %v, want InvalidDateInputError", tt.input, err)
				}
				if dateErr.Input != tt.input {
					t.Errorf("Input = %q, want %q", dateErr.Input, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	d := NewDate(2021, time.December, 9)

	tests := []struct {
		name  string
		other Date
		want  int
	}{
		{name: "same day", other: NewDate(2021, time.December, 9), want: 0},
		{name: "previous day", other: NewDate(2021, time.December, 8), want: 1},
		{name: "next month", other: NewDate(2022, time.January, 1), want: -1},
		{name: "earlier month later day", other: NewDate(2021, time.November, 30), want: 1},
		{name: "previous year", other: NewDate(2020, time.December, 31), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Compare(tt.other); got != tt.want {
				t.Errorf("Compare(%v) = %d, want %d", tt.other, got, tt.want)
			}
			if got := d.Before(tt.other); got != (tt.want < 0) {
				t.Errorf("Before(%v) = %v", tt.other, got)
			}
			if got := d.After(tt.other); got != (tt.want > 0) {
				t.Errorf("After(%v) = %v", tt.other, got)
			}
		})
	}
}

func TestDateOfKeepsOffset(t *testing.T) {
	// 23:30 at -05:00 is already the next day in UTC.
	ts := time.Date(2021, time.December, 8, 23, 30, 0, 0, time.FixedZone("", -5*3600))

	if got, want := DateOf(ts), NewDate(2021, time.December, 8); got != want {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
	if got, want := DateOf(ts.UTC()), NewDate(2021, time.December, 9); got != want {
		t.Errorf("DateOf(UTC) = %v, want %v", got, want)
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(987, time.March, 4).String(); got != "0987-03-04" {
		t.Errorf("String() = %q, want %q", got, "0987-03-04")
	}
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
}
