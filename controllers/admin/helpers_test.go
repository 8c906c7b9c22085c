package admin

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolutionRate(t *testing.T) {
	cases := []struct {
		resolved int64
		total    int64
		want     float64
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{7, 8, 87.5},
	}
	for _, tc := range cases {
		if got := resolutionRate(tc.resolved, tc.total); got != tc.want {
			t.Errorf("resolutionRate(%d, %d) = %v, want %v", tc.resolved, tc.total, got, tc.want)
		}
	}
}

func TestParseObjectIDs(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	ids := parseObjectIDs([]string{valid, "not-an-id", "", "123"})
	if len(ids) != 1 {
		t.Fatalf("expected 1 parsed id, got %d", len(ids))
	}
	if ids[0].Hex() != valid {
		t.Errorf("parsed id = %s, want %s", ids[0].Hex(), valid)
	}
}

func TestValidationMessages(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"email"`
	}

	err := validator.New().Struct(form{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	messages := validationMessages(err)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", messages)
	}
	if messages[0] != "Please add a name" {
		t.Errorf("messages[0] = %q", messages[0])
	}
	if messages[1] != "Please add a valid email" {
		t.Errorf("messages[1] = %q", messages[1])
	}
}

func TestValidationMessagesPlainError(t *testing.T) {
	messages := validationMessages(errors.New("unexpected EOF"))
	if len(messages) != 1 || messages[0] != "unexpected EOF" {
		t.Errorf("messages = %v", messages)
	}
}

func TestTotalPagesRoundsUp(t *testing.T) {
	if got := totalPages(21, 10); got != 3 {
		t.Errorf("totalPages(21, 10) = %d, want 3", got)
	}
	if got := totalPages(0, 10); got != 0 {
		t.Errorf("totalPages(0, 10) = %d, want 0", got)
	}
}
