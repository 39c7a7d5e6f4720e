package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Op is a filter operator.
type Op int

const (
	// OpEq matches rows whose column equals the value.
	OpEq Op = iota
	// OpContains matches a case-insensitive substring of one column.
	OpContains
	// OpAnyContains matches a case-insensitive substring of any of several columns.
	OpAnyContains
	// OpHas matches rows whose JSON array column holds the value.
	OpHas
)

// Filter is one predicate of a Query. Columns are code-defined, never user input.
type Filter struct {
	Op      Op
	Columns []string
	Value   any
}

// Eq builds an equality filter.
func Eq(column string, value any) Filter {
	return Filter{Op: OpEq, Columns: []string{column}, Value: value}
}

// Contains builds a case-insensitive substring filter.
func Contains(column, substr string) Filter {
	return Filter{Op: OpContains, Columns: []string{column}, Value: substr}
}

// AnyContains matches substr against any of columns, case-insensitively.
func AnyContains(substr string, columns ...string) Filter {
	return Filter{Op: OpAnyContains, Columns: columns, Value: substr}
}

// Has builds a JSON array membership filter.
func Has(column string, value string) Filter {
	return Filter{Op: OpHas, Columns: []string{column}, Value: value}
}

// Order is one sort key of a Query. When Rank is set rows sort by the position
// of the column value in Rank (first entry highest, unknown values lowest).
type Order struct {
	Column string
	Desc   bool
	Rank   []string
}

// Desc sorts by column, largest first.
func Desc(column string) Order { return Order{Column: column, Desc: true} }

// Asc sorts by column, smallest first.
func Asc(column string) Order { return Order{Column: column} }

// Ranked sorts by the given ranking of column values, highest rank first.
func Ranked(column string, ranking ...string) Order {
	return Order{Column: column, Desc: true, Rank: ranking}
}

// Query is a predicate, ordering and limit pushed down to the database.
type Query struct {
	Filters []Filter
	Orders  []Order
	Limit   int
}

// Where returns a copy of q with f appended.
func (q Query) Where(f Filter) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), f)
	return q
}

func (q Query) scope(db *gorm.DB) *gorm.DB {
	db = q.filterScope(db)
	if len(q.Orders) > 0 {
		db = db.Order(q.orderClause())
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db
}

func (q Query) filterScope(db *gorm.DB) *gorm.DB {
	for _, f := range q.Filters {
		db = f.apply(db)
	}
	return db
}

func (f Filter) apply(db *gorm.DB) *gorm.DB {
	switch f.Op {
	case OpEq:
		return db.Where("? = ?", clause.Column{Name: f.Columns[0]}, f.Value)
	case OpContains, OpAnyContains:
		pattern := likePattern(fmt.Sprint(f.Value))
		parts := make([]string, 0, len(f.Columns))
		vars := make([]interface{}, 0, 2*len(f.Columns))
		for _, c := range f.Columns {
			parts = append(parts, "LOWER(?) LIKE ? ESCAPE '!'")
			vars = append(vars, clause.Column{Name: c}, pattern)
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", vars...)
	case OpHas:
		col := clause.Column{Name: f.Columns[0]}
		switch db.Dialector.Name() {
		case "mysql":
			return db.Where("JSON_CONTAINS(?, JSON_QUOTE(?))", col, f.Value)
		case "sqlite":
			return db.Where("EXISTS (SELECT 1 FROM json_each(?) WHERE json_each.value = ?)", col, f.Value)
		default:
			_ = db.AddError(fmt.Errorf("array filter not supported on %s", db.Dialector.Name()))
			return db
		}
	default:
		_ = db.AddError(fmt.Errorf("unknown filter op %d", f.Op))
		return db
	}
}

func (q Query) orderClause() clause.OrderBy {
	parts := make([]string, 0, len(q.Orders))
	var vars []interface{}
	for _, o := range q.Orders {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		col := clause.Column{Name: o.Column}
		if len(o.Rank) == 0 {
			parts = append(parts, "? "+dir)
			vars = append(vars, col)
			continue
		}
		var b strings.Builder
		b.WriteString("CASE ?")
		vars = append(vars, col)
		for i, v := range o.Rank {
			fmt.Fprintf(&b, " WHEN ? THEN %d", len(o.Rank)-i)
			vars = append(vars, v)
		}
		b.WriteString(" ELSE 0 END " + dir)
		parts = append(parts, b.String())
	}
	return clause.OrderBy{Expression: clause.Expr{
		SQL:                strings.Join(parts, ", "),
		Vars:               vars,
		WithoutParentheses: true,
	}}
}

// likePattern lower-cases s and escapes LIKE wildcards with '!'.
func likePattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
