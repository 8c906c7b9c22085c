package models_test

import (
	"testing"

	"villageconnect-be/models"
)

func TestNormalizeRepresentativePosition(t *testing.T) {
	cases := map[string]string{
		"mp":       "MP",
		"mla":      "MLA",
		"sarpanch": "Sarpanch",
		"zilla":    "Zilla Parishad Member",
		"MP":       "MP",
		"unknown":  "unknown",
		"":         "",
	}
	for in, want := range cases {
		if got := models.NormalizeRepresentativePosition(in); got != want {
			t.Errorf("NormalizeRepresentativePosition(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidRepresentativePosition(t *testing.T) {
	for _, p := range models.RepresentativePositions {
		if !models.ValidRepresentativePosition(p) {
			t.Errorf("ValidRepresentativePosition(%q) = false", p)
		}
	}
	if models.ValidRepresentativePosition("mp") {
		t.Error("lowercase alias accepted as a stored position")
	}
}
