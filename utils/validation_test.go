package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+5491112345678", "5491112345678", "+34 600 123 456", "(011) 1234-5678"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{"", "abc", "+0123456", "1"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}

func TestValidateHexColor(t *testing.T) {
	valid := []string{"#000000", "#ffffff", "#AbCdEf"}
	for _, color := range valid {
		if !ValidateHexColor(color) {
			t.Errorf("ValidateHexColor(%q) = false, want true", color)
		}
	}

	invalid := []string{"", "000000", "#fff", "#gggggg", "#1234567"}
	for _, color := range invalid {
		if ValidateHexColor(color) {
			t.Errorf("ValidateHexColor(%q) = true, want false", color)
		}
	}
}

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, clock := range valid {
		if !ValidateClock(clock) {
			t.Errorf("ValidateClock(%q) = false, want true", clock)
		}
	}

	invalid := []string{"", "24:00", "12:60", "9:30", "12-30"}
	for _, clock := range invalid {
		if ValidateClock(clock) {
			t.Errorf("ValidateClock(%q) = true, want false", clock)
		}
	}
}

func TestValidateWeekday(t *testing.T) {
	if !ValidateWeekday("Monday") {
		t.Error("ValidateWeekday(Monday) = false, want true")
	}
	if !ValidateWeekday("sunday") {
		t.Error("ValidateWeekday(sunday) = false, want true")
	}
	if ValidateWeekday("funday") {
		t.Error("ValidateWeekday(funday) = true, want false")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("quantity", "must not exceed max")
	if err.Error() != "quantity: must not exceed max" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
