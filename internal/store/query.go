package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByPriority  = "priority"
	orderByBudget    = "budget"
	orderByPrice     = "price"
	orderByDateAdded = "date_added"
	orderByName      = "name"
	orderByROI       = "roi"
)

// validLeadOrderBy maps allowed OrderBy values to their SQL column expressions.
var validLeadOrderBy = map[string]string{
	orderByPriority:  "priority_score DESC, date_added ASC",
	orderByBudget:    "max_budget DESC",
	orderByDateAdded: "date_added DESC",
	orderByName:      "name ASC",
}

var validListingOrderBy = map[string]string{
	orderByPriority:  "priority_score DESC, date_added ASC",
	orderByPrice:     "asking_price DESC",
	orderByDateAdded: "date_added DESC",
	orderByROI:       "CASE WHEN asking_price > 0 THEN cashflow / asking_price ELSE 0 END DESC",
}

const defaultOrderBy = "date_added DESC"

// where accumulates numbered placeholders and their arguments.
type where struct {
	conditions []string
	args       []any
}

func (w *where) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, fmt.Sprintf(format, len(w.args)))
}

func (w *where) addIn(column string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		w.args = append(w.args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(w.args))
	}
	w.conditions = append(w.conditions, fmt.Sprintf(
		"%s IN (%s)", column, strings.Join(placeholders, ", "),
	))
}

func (w *where) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

func page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}

func orderClause(orderBy string, valid map[string]string) string {
	if col, ok := valid[orderBy]; ok {
		return col
	}
	return defaultOrderBy
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a lead query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *LeadQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var w where

	if q.Status != nil {
		w.add("status = $%d", string(*q.Status))
	}
	if q.Industry != nil {
		w.add("$%d = ANY(preferred_industries)", string(*q.Industry))
	}
	if q.MinSpend != nil {
		w.add("max_budget >= $%d", *q.MinSpend)
	}
	if q.Search != nil && *q.Search != "" {
		w.add("(name ILIKE $%[1]d OR email ILIKE $%[1]d OR notes ILIKE $%[1]d)", "%"+*q.Search+"%")
	}

	limit, offset := page(q.Limit, q.Offset)
	whereClause := w.clause()

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseLeadsSelect, whereClause, orderClause(q.OrderBy, validLeadOrderBy), limit, offset,
	)
	countSQL = countLeadsSelect + whereClause

	return dataSQL, countSQL, w.args
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing
// query, returning the data SQL, the count SQL, and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var w where

	stages := make([]string, len(q.Stages))
	for i, s := range q.Stages {
		stages[i] = string(s)
	}
	w.addIn("stage", stages)

	if q.Industry != nil {
		w.add("industry = $%d", string(*q.Industry))
	}
	if q.Type != nil {
		w.add("listing_type = $%d", string(*q.Type))
	}
	if q.MinPrice != nil {
		w.add("asking_price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		w.add("asking_price <= $%d", *q.MaxPrice)
	}
	if q.Search != nil && *q.Search != "" {
		w.add("(title ILIKE $%[1]d OR location ILIKE $%[1]d OR seller_name ILIKE $%[1]d)", "%"+*q.Search+"%")
	}

	limit, offset := page(q.Limit, q.Offset)
	whereClause := w.clause()

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause(q.OrderBy, validListingOrderBy), limit, offset,
	)
	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, w.args
}
