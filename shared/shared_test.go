package shared_test

import (
	"reflect"
	"tasker/shared"
	"tasker/shared/dto"
	"testing"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Title     *string `db:"title"`
		Completed *bool   `db:"completed"`
		Ignored   *string
	}

	tests := []struct {
		name     string
		input    updateRequest
		expected []string
	}{
		{
			name: "all fields set",
			input: updateRequest{
				Title:     strPtr("Updated"),
				Completed: boolPtr(true),
			},
			expected: []string{"title", "completed"},
		},
		{
			name: "false completed is still an update",
			input: updateRequest{
				Title:     strPtr("Updated"),
				Completed: boolPtr(false),
			},
			expected: []string{"title", "completed"},
		},
		{
			name: "nil fields are skipped",
			input: updateRequest{
				Title: strPtr("Updated"),
			},
			expected: []string{"title"},
		},
		{
			name: "fields without db tag are skipped",
			input: updateRequest{
				Ignored: strPtr("nope"),
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.input)

			if len(result) != len(tt.expected) {
				t.Errorf("expected %d fields, got %d: %v", len(tt.expected), len(result), result)
			}

			for _, field := range tt.expected {
				if _, ok := result[field]; !ok {
					t.Errorf("expected field %q in result, got %v", field, result)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id", "tasks")

	where, args := filter.GetWhereClause()

	if where != "(tasks.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if !reflect.DeepEqual(args, map[string]any{"id": int64(42)}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilterByOwner(t *testing.T) {
	filter := shared.FilterByOwner("alice", "owner", "tasks")

	where, args := filter.GetWhereClause()

	if where != "(tasks.owner = :owner)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if !reflect.DeepEqual(args, map[string]any{"owner": "alice"}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "multiple parts",
			parts:    []string{"task", "alice", "1"},
			expected: "task:alice:1",
		},
		{
			name:     "single part",
			parts:    []string{"task"},
			expected: "task",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFilterGroupNested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "owner", Value: "alice", Operator: dto.FilterOperatorEq, Table: "tasks"},
			dto.Filter{Field: "completed", Value: true, Operator: dto.FilterOperatorEq, Table: "tasks"},
		},
	}

	where, args := group.GetWhereClause()

	if where != "(tasks.owner = :owner AND tasks.completed = :completed)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %v", args)
	}
}
