package model

import "testing"

func TestLookupURL(t *testing.T) {
	lookup := Lookup{Username: "NTSRadio", Slug: "bonobo-4th-april-2022"}

	if got, want := lookup.URL(), "https://www.mixcloud.com/NTSRadio/bonobo-4th-april-2022/"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
	if got, want := lookup.String(), "NTSRadio/bonobo-4th-april-2022"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSectionTimed(t *testing.T) {
	seconds := 12.5
	if (Section{StartSeconds: &seconds}).Timed() != true {
		t.Error("section with start time should be timed")
	}
	if (Section{}).Timed() {
		t.Error("section without start time should not be timed")
	}

	zero := 0.0
	if !(Section{StartSeconds: &zero}).Timed() {
		t.Error("a zero start time still counts as timed")
	}
}
