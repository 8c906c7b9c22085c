package controllers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildIssueFilterEmpty(t *testing.T) {
	filter := buildIssueFilter(issueFilterParams{Status: "all", Category: "all"})
	if len(filter) != 0 {
		t.Errorf("status=all&category=all produced filter %v, want empty", filter)
	}

	filter = buildIssueFilter(issueFilterParams{})
	if len(filter) != 0 {
		t.Errorf("empty params produced filter %v, want empty", filter)
	}
}

func TestBuildIssueFilterStatusAndCategory(t *testing.T) {
	filter := buildIssueFilter(issueFilterParams{Status: "pending", Category: "Water Supply"})
	if filter["status"] != "pending" {
		t.Errorf("status = %v", filter["status"])
	}
	if filter["category"] != "Water Supply" {
		t.Errorf("category = %v", filter["category"])
	}
}

func TestBuildIssueFilterSearch(t *testing.T) {
	filter := buildIssueFilter(issueFilterParams{Search: "pothole"})
	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("$or missing from %v", filter)
	}
	if len(or) != 3 {
		t.Fatalf("expected title/description/location branches, got %d", len(or))
	}
	title, ok := or[0]["title"].(bson.M)
	if !ok || title["$regex"] != "pothole" || title["$options"] != "i" {
		t.Errorf("title branch = %v", or[0])
	}
}

func TestBuildIssueFilterDateRange(t *testing.T) {
	filter := buildIssueFilter(issueFilterParams{DateFrom: "2026-01-01", DateTo: "2026-02-01"})
	createdAt, ok := filter["createdAt"].(bson.M)
	if !ok {
		t.Fatalf("createdAt missing from %v", filter)
	}
	if _, ok := createdAt["$gte"]; !ok {
		t.Error("$gte missing")
	}
	if _, ok := createdAt["$lte"]; !ok {
		t.Error("$lte missing")
	}

	filter = buildIssueFilter(issueFilterParams{DateFrom: "not-a-date"})
	if _, ok := filter["createdAt"]; ok {
		t.Error("malformed date produced a createdAt constraint")
	}
}

func TestIssueSortOptions(t *testing.T) {
	cases := []struct {
		sort  string
		key   string
		value int
	}{
		{"oldest", "createdAt", 1},
		{"most-voted", "votes", -1},
		{"recently-updated", "updatedAt", -1},
		{"", "createdAt", -1},
		{"bogus", "createdAt", -1},
	}
	for _, tc := range cases {
		got := issueSortOptions(tc.sort)
		if len(got) != 1 || got[0].Key != tc.key || got[0].Value != tc.value {
			t.Errorf("issueSortOptions(%q) = %v, want {%s %d}", tc.sort, got, tc.key, tc.value)
		}
	}
}

func testContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/api/issues?"+rawQuery, nil)
	c.Request = req
	return c
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query string
		page  int
		limit int
	}{
		{"", 1, 10},
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=0", 1, 10},
		{"page=-5&limit=500", 1, 10},
		{"page=abc&limit=xyz", 1, 10},
		{"limit=100", 1, 100},
	}
	for _, tc := range cases {
		c := testContextWithQuery(t, tc.query)
		page, limit := parsePagination(c)
		if page != tc.page || limit != tc.limit {
			t.Errorf("parsePagination(%q) = (%d, %d), want (%d, %d)", tc.query, page, limit, tc.page, tc.limit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}
	for _, tc := range cases {
		if got := totalPages(tc.count, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.count, tc.limit, got, tc.want)
		}
	}
}

func TestAutoAssignCoordinates(t *testing.T) {
	t.Setenv("AUTO_ASSIGN_COORDINATES", "")
	if !autoAssignCoordinates() {
		t.Error("expected auto-assignment on by default")
	}

	t.Setenv("AUTO_ASSIGN_COORDINATES", "false")
	if autoAssignCoordinates() {
		t.Error("expected auto-assignment off when set to false")
	}
}

func TestDefaultCoordinatesJitter(t *testing.T) {
	t.Setenv("BASE_LATITUDE", "")
	t.Setenv("BASE_LONGITUDE", "")

	for i := 0; i < 50; i++ {
		coords := defaultCoordinates()
		if math.Abs(coords.Lat-defaultBaseLatitude) > 0.005 {
			t.Fatalf("lat %f outside jitter range of %f", coords.Lat, defaultBaseLatitude)
		}
		if math.Abs(coords.Lng-defaultBaseLongitude) > 0.005 {
			t.Fatalf("lng %f outside jitter range of %f", coords.Lng, defaultBaseLongitude)
		}
	}
}

func TestDefaultCoordinatesBaseOverride(t *testing.T) {
	t.Setenv("BASE_LATITUDE", "12.9716")
	t.Setenv("BASE_LONGITUDE", "77.5946")

	coords := defaultCoordinates()
	if math.Abs(coords.Lat-12.9716) > 0.005 {
		t.Errorf("lat %f not near configured base", coords.Lat)
	}
	if math.Abs(coords.Lng-77.5946) > 0.005 {
		t.Errorf("lng %f not near configured base", coords.Lng)
	}
}

func TestParseQueryDate(t *testing.T) {
	if _, ok := parseQueryDate("2026-03-15"); !ok {
		t.Error("rejected date-only format")
	}
	if _, ok := parseQueryDate("2026-03-15T10:30:00Z"); !ok {
		t.Error("rejected RFC3339 format")
	}
	if _, ok := parseQueryDate(""); ok {
		t.Error("accepted empty string")
	}
	if _, ok := parseQueryDate("15/03/2026"); ok {
		t.Error("accepted slash format")
	}
}
