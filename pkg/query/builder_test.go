package query_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/attest-io/attest/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "widgets", "w").
		Project("id", "ID").
		Project("name", "Name").
		Project("created_at", "CreatedAt")
}

func TestBuild(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).Build()

		want := "SELECT w.id, w.name, w.created_at FROM public.widgets w"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("equality condition", func(t *testing.T) {
		sql, args := query.
			NewBuilder(testProjection()).
			WhereEquals("Name", "gadget").
			Build()

		want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.name = $1"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 1 || args[0] != "gadget" {
			t.Errorf("args = %v, want [gadget]", args)
		}
	})

	t.Run("nil value is a no-op", func(t *testing.T) {
		var name *string
		sql, args := query.
			NewBuilder(testProjection()).
			WhereEquals("Name", name).
			Build()

		want := "SELECT w.id, w.name, w.created_at FROM public.widgets w"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("default sort applies", func(t *testing.T) {
		sql, _ := query.
			NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
			Build()

		want := "SELECT w.id, w.name, w.created_at FROM public.widgets w ORDER BY w.created_at DESC"
		if sql != want {
			t.Errorf("sql = %q, want %q", sql, want)
		}
	})
}

func TestWhereContains(t *testing.T) {
	fragment := "gad"
	sql, args := query.
		NewBuilder(testProjection()).
		WhereContains("Name", &fragment).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.name ILIKE $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "%gad%" {
		t.Errorf("args = %v, want [%%gad%%]", args)
	}
}

func TestProjectionMap(t *testing.T) {
	pm := testProjection()

	if pm.Alias() != "w" {
		t.Errorf("Alias = %q, want w", pm.Alias())
	}
	if pm.From() != "public.widgets w" {
		t.Errorf("From = %q, want public.widgets w", pm.From())
	}
	if pm.Column("Name") != "w.name" {
		t.Errorf("Column(Name) = %q, want w.name", pm.Column("Name"))
	}
	// unmapped names pass through untouched
	if pm.Column("raw_expr") != "raw_expr" {
		t.Errorf("Column(raw_expr) = %q, want raw_expr", pm.Column("raw_expr"))
	}
}

func TestWhereGreaterOrEqual(t *testing.T) {
	since := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)

	sql, args := query.
		NewBuilder(testProjection()).
		WhereGreaterOrEqual("CreatedAt", since).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.created_at >= $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != since {
		t.Errorf("args = %v, want [%v]", args, since)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		BuildPage(2, 10)

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w ORDER BY w.name ASC LIMIT 10 OFFSET 10"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildCount(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Name", "gadget").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.widgets w WHERE w.name = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want one arg", args)
	}
}

func TestWhereSearch(t *testing.T) {
	search := "gad"
	sql, args := query.
		NewBuilder(testProjection()).
		WhereSearch(&search, "Name").
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE (w.name ILIKE $1)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "%gad%" {
		t.Errorf("args = %v, want [%%gad%%]", args)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty string", "", nil},
		{"single ascending", "name", []query.SortField{{Field: "name"}}},
		{"single descending", "-created_at", []query.SortField{{Field: "created_at", Descending: true}}},
		{
			"mixed with whitespace",
			"name, -created_at",
			[]query.SortField{
				{Field: "name"},
				{Field: "created_at", Descending: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
