package controllers

import (
	"testing"
)

func TestValidateEmployeeFields(t *testing.T) {
	pct := 50
	if err := validateEmployeeFields("09:00", "18:00", []string{"sunday", "monday"}, &pct); err != nil {
		t.Errorf("valid fields rejected: %v", err)
	}

	if err := validateEmployeeFields("9:00", "", nil, nil); err == nil {
		t.Error("malformed schedule start accepted")
	}

	if err := validateEmployeeFields("", "", []string{"funday"}, nil); err == nil {
		t.Error("unknown weekday accepted")
	}

	if err := validateEmployeeFields("", "", []string{"sunday", "Sunday"}, nil); err == nil {
		t.Error("duplicate weekday accepted")
	}

	over := 150
	if err := validateEmployeeFields("", "", nil, &over); err == nil {
		t.Error("work percentage above 100 accepted")
	}
}
