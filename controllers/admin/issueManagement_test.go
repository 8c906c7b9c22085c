package admin

import (
	"testing"
	"time"

	"villageconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBulkIssueFilterDropsMalformedIDs(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	filter := bulkIssueFilter([]string{first.Hex(), "not-an-id", "", second.Hex()})

	idCond, ok := filter["_id"].(bson.M)
	if !ok {
		t.Fatalf("_id condition missing from %v", filter)
	}
	in, ok := idCond["$in"].([]primitive.ObjectID)
	if !ok {
		t.Fatalf("$in = %T, want []primitive.ObjectID", idCond["$in"])
	}
	if len(in) != 2 {
		t.Fatalf("expected 2 targeted ids, got %d", len(in))
	}
	if in[0] != first || in[1] != second {
		t.Errorf("$in = %v, want [%v %v]", in, first, second)
	}
}

func TestBulkIssueFilterAllMalformed(t *testing.T) {
	filter := bulkIssueFilter([]string{"bad", "worse"})

	in := filter["_id"].(bson.M)["$in"].([]primitive.ObjectID)
	if len(in) != 0 {
		t.Errorf("expected no targeted ids, got %v", in)
	}
}

func TestBulkStatusUpdateDocument(t *testing.T) {
	now := time.Now()
	update := bulkStatusUpdate("resolved", "Asha", now)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("$set missing from %v", update)
	}
	if set["status"] != "resolved" {
		t.Errorf("status = %v", set["status"])
	}
	if set["updatedAt"] != now {
		t.Errorf("updatedAt = %v, want %v", set["updatedAt"], now)
	}

	push, ok := update["$push"].(bson.M)
	if !ok {
		t.Fatalf("$push missing from %v", update)
	}
	entry, ok := push["updates"].(models.IssueUpdate)
	if !ok {
		t.Fatalf("updates entry = %T, want IssueUpdate", push["updates"])
	}
	if entry.Text != "Status changed to resolved (Bulk update)" {
		t.Errorf("entry text = %q", entry.Text)
	}
	if entry.UpdatedBy != "Asha" {
		t.Errorf("entry updatedBy = %q", entry.UpdatedBy)
	}
}
