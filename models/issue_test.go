package models_test

import (
	"testing"

	"villageconnect-be/models"
)

func TestValidIssueStatus(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "resolved"} {
		if !models.ValidIssueStatus(s) {
			t.Errorf("ValidIssueStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "open", "closed", "Pending", "in progress"} {
		if models.ValidIssueStatus(s) {
			t.Errorf("ValidIssueStatus(%q) = true", s)
		}
	}
}

func TestValidIssueCategory(t *testing.T) {
	if len(models.IssueCategories) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(models.IssueCategories))
	}
	for _, c := range models.IssueCategories {
		if !models.ValidIssueCategory(c) {
			t.Errorf("ValidIssueCategory(%q) = false", c)
		}
	}
	for _, c := range []string{"", "Roads", "roads & infrastructure", "Potholes"} {
		if models.ValidIssueCategory(c) {
			t.Errorf("ValidIssueCategory(%q) = true", c)
		}
	}
}
