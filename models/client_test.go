package models

import (
	"reflect"
	"strings"
	"testing"
)

// The phone uniqueness index must span (salon_id, phone): gorm only builds a
// composite index from fields that share the index name, so both columns have
// to carry it.
func TestClientPhoneIndexScopedToSalon(t *testing.T) {
	typ := reflect.TypeOf(Client{})

	salonField, ok := typ.FieldByName("SalonID")
	if !ok {
		t.Fatal("Client has no SalonID field")
	}
	phoneField, ok := typ.FieldByName("Phone")
	if !ok {
		t.Fatal("Client has no Phone field")
	}

	salonTag := salonField.Tag.Get("gorm")
	phoneTag := phoneField.Tag.Get("gorm")

	if !strings.Contains(salonTag, "uniqueIndex:idx_salon_client_phone,priority:1") {
		t.Errorf("SalonID must participate in the composite phone index, tag %q", salonTag)
	}
	if !strings.Contains(phoneTag, "uniqueIndex:idx_salon_client_phone,priority:2") {
		t.Errorf("Phone must participate in the composite phone index, tag %q", phoneTag)
	}
}

// Clients and employees are hard-deleted. A DeletedAt column would keep
// deleted rows inside the unique phone index and block re-registration.
func TestClientAndEmployeeRowsHardDelete(t *testing.T) {
	for _, model := range []interface{}{Client{}, Employee{}} {
		typ := reflect.TypeOf(model)
		if _, ok := typ.FieldByName("DeletedAt"); ok {
			t.Errorf("%s must not carry a soft-delete column", typ.Name())
		}
	}
}
