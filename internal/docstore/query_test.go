package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder(t *testing.T) {
	q := NewQuery().
		Where("status", OpEq, "completed").
		Where("week", OpGte, 2).
		OrderBy("date", true).
		WithLimit(10)

	assert.Len(t, q.Wheres, 2)
	assert.Equal(t, Where{Path: "status", Op: OpEq, Value: "completed"}, q.Wheres[0])
	assert.Len(t, q.Orders, 1)
	assert.True(t, q.Orders[0].Desc)
	assert.Equal(t, 10, q.Limit)
}

func TestMatchDocument(t *testing.T) {
	doc := map[string]any{
		"status": "completed",
		"week":   3.0,
		"active": true,
		"note":   nil,
	}

	tests := []struct {
		name   string
		wheres []Where
		want   bool
	}{
		{name: "no clauses matches", wheres: nil, want: true},
		{name: "string equality", wheres: []Where{{Path: "status", Op: OpEq, Value: "completed"}}, want: true},
		{name: "string mismatch", wheres: []Where{{Path: "status", Op: OpEq, Value: "skipped"}}, want: false},
		{name: "number range", wheres: []Where{{Path: "week", Op: OpGte, Value: 2}, {Path: "week", Op: OpLt, Value: 4}}, want: true},
		{name: "number range excluded", wheres: []Where{{Path: "week", Op: OpGt, Value: 3}}, want: false},
		{name: "bool equality", wheres: []Where{{Path: "active", Op: OpEq, Value: true}}, want: true},
		{name: "missing field never matches", wheres: []Where{{Path: "ghost", Op: OpEq, Value: 1}}, want: false},
		{name: "null field never matches", wheres: []Where{{Path: "note", Op: OpEq, Value: "x"}}, want: false},
		{name: "cross-type never matches", wheres: []Where{{Path: "week", Op: OpEq, Value: "3"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchDocument(doc, tt.wheres))
		})
	}
}

func TestSortDocuments(t *testing.T) {
	docs := []Document{
		{ID: "a", Data: map[string]any{"date": "2024-03-01", "n": 2.0}},
		{ID: "b", Data: map[string]any{"date": "2024-01-15", "n": 1.0}},
		{ID: "c", Data: map[string]any{"date": "2024-03-01", "n": 1.0}},
		{ID: "d", Data: map[string]any{"n": 5.0}}, // no date
	}

	SortDocuments(docs, []Order{{Path: "date"}, {Path: "n"}})

	ids := []string{docs[0].ID, docs[1].ID, docs[2].ID, docs[3].ID}
	// Missing date sorts first, then ascending date, ties broken by n.
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids)

	SortDocuments(docs, []Order{{Path: "n", Desc: true}})
	assert.Equal(t, "d", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
}

func TestSortDocumentsNoOrders(t *testing.T) {
	docs := []Document{{ID: "b"}, {ID: "a"}}
	SortDocuments(docs, nil)
	assert.Equal(t, "b", docs[0].ID) // untouched
}
