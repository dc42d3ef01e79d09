package booking

import (
	"testing"
	"time"

	"roomify/models"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)
}

func TestValidateBookingCollectsAllErrors(t *testing.T) {
	res := ValidateBooking(models.Booking{RoomID: 0, Date: "", Time: ""}, models.DefaultSlots(), fixedNow())
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(res.Errors), res.Errors)
	}
	wantCodes := []string{
		models.ErrCodeInvalidRoom,
		models.ErrCodeInvalidDateFormat,
		models.ErrCodeInvalidTimeFormat,
	}
	for i, want := range wantCodes {
		if res.Errors[i].Code != want {
			t.Errorf("error %d: got code %q, want %q", i, res.Errors[i].Code, want)
		}
	}
	for _, e := range res.Errors {
		if e.Code == models.ErrCodePastDate {
			t.Error("past-date error reported for a malformed date")
		}
	}
}

func TestValidateBookingPastDate(t *testing.T) {
	res := ValidateBooking(models.Booking{RoomID: 1, Date: "2024-06-14", Time: "09:00"}, models.DefaultSlots(), fixedNow())
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 1 || res.Errors[0].Code != models.ErrCodePastDate {
		t.Fatalf("expected a single past_date error, got %v", res.Errors)
	}
}

func TestValidateBookingAcceptsTodayAndFuture(t *testing.T) {
	for _, date := range []string{"2024-06-15", "2024-06-16", "2025-01-01"} {
		res := ValidateBooking(models.Booking{RoomID: 1, Date: date, Time: "09:00"}, models.DefaultSlots(), fixedNow())
		if !res.Valid {
			t.Errorf("date %s: expected valid, got %v", date, res.Errors)
		}
	}
}

func TestValidateBookingFormats(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		time     string
		wantCode string
	}{
		{"slash date", "2024/06/20", "09:00", models.ErrCodeInvalidDateFormat},
		{"short year", "24-06-20", "09:00", models.ErrCodeInvalidDateFormat},
		{"impossible date", "2024-13-40", "09:00", models.ErrCodeInvalidDateFormat},
		{"short hour", "2024-06-20", "9:00", models.ErrCodeInvalidTimeFormat},
		{"no colon", "2024-06-20", "0900", models.ErrCodeInvalidTimeFormat},
		{"off-catalog time", "2024-06-20", "09:30", models.ErrCodeInvalidTimeFormat},
		{"after hours", "2024-06-20", "23:00", models.ErrCodeInvalidTimeFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateBooking(models.Booking{RoomID: 1, Date: tc.date, Time: tc.time}, models.DefaultSlots(), fixedNow())
			if res.Valid {
				t.Fatal("expected invalid result")
			}
			if len(res.Errors) != 1 || res.Errors[0].Code != tc.wantCode {
				t.Fatalf("expected a single %s error, got %v", tc.wantCode, res.Errors)
			}
		})
	}
}

func TestValidateBookingNegativeRoom(t *testing.T) {
	res := ValidateBooking(models.Booking{RoomID: -3, Date: "2024-06-20", Time: "09:00"}, models.DefaultSlots(), fixedNow())
	if res.Valid || len(res.Errors) != 1 || res.Errors[0].Code != models.ErrCodeInvalidRoom {
		t.Fatalf("expected a single invalid_room error, got %v", res.Errors)
	}
}
