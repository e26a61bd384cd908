package model

import (
	"encoding/json"
	"testing"
)

func TestCategory_JSONRoundTrip(t *testing.T) {
	cases := []Category{
		IconCategory("Work"),
		IconCategory("Other"),
		CustomCategory("🎸"),
		CustomCategory("band"),
	}
	for _, in := range cases {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("Marshal(%+v) err = %v, want nil", in, err)
		}
		var out Category
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("Unmarshal(%s) err = %v, want nil", data, err)
		}
		if out != in {
			t.Fatalf("round trip = %+v, want %+v", out, in)
		}
	}
}

func TestCategory_LegacyBareString(t *testing.T) {
	var c Category
	if err := json.Unmarshal([]byte(`"Fitness"`), &c); err != nil {
		t.Fatalf("Unmarshal err = %v, want nil", err)
	}
	want := IconCategory("Fitness")
	if c != want {
		t.Fatalf("legacy upgrade = %+v, want %+v", c, want)
	}
}

func TestCategory_MalformedDefaultsToOther(t *testing.T) {
	inputs := []string{
		`"NotACategory"`,
		`42`,
		`{"type":"icon","value":"NotACategory"}`,
		`{"type":"nonsense","value":"Work"}`,
		`{"type":"custom","value":""}`,
	}
	for _, in := range inputs {
		var c Category
		if err := json.Unmarshal([]byte(in), &c); err != nil {
			t.Fatalf("Unmarshal(%s) err = %v, want nil", in, err)
		}
		if c != DefaultCategory() {
			t.Fatalf("Unmarshal(%s) = %+v, want default Other", in, c)
		}
	}
}

func TestPriority_Rank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Fatalf("priority ranks out of order: High=%d Medium=%d Low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
}

func TestValidReminderTime(t *testing.T) {
	valid := []string{"", "00:00", "09:30", "23:59"}
	for _, s := range valid {
		if !ValidReminderTime(s) {
			t.Fatalf("ValidReminderTime(%q) = false, want true", s)
		}
	}
	invalid := []string{"24:00", "9:70", "noon", "12:34:56"}
	for _, s := range invalid {
		if ValidReminderTime(s) {
			t.Fatalf("ValidReminderTime(%q) = true, want false", s)
		}
	}
}
