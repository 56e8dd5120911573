// Package queries translates an HTTP query string into MongoDB find
// parameters: a filter document, sort order, field projection and
// skip/limit window.
package queries

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const DefaultLimit = 10

// Query holds everything needed to run a paginated find.
type Query struct {
	Criteria bson.M
	Sort     bson.D
	Fields   bson.M
	Skip     int64
	Limit    int64

	// raw criteria params, kept for link generation
	criteriaValues url.Values
}

// Parse interprets the query string. Reserved parameters are sort, fields,
// skip and limit; every other parameter becomes a filter criterion. Filter
// values are coerced to number or boolean when they look like one.
//
// Comparison operators ride along in the parameter itself:
//
//	price>=10  → {price: {$gte: 10}}
//	price<=10  → {price: {$lte: 10}}
//	price>10   → {price: {$gt: 10}}
//	price<10   → {price: {$lt: 10}}
func Parse(values url.Values) Query {
	q := Query{
		Criteria:       bson.M{},
		Fields:         bson.M{},
		Limit:          DefaultLimit,
		criteriaValues: url.Values{},
	}

	for key, vals := range values {
		switch key {
		case "sort":
			q.Sort = parseSort(vals)
		case "fields":
			q.Fields = parseFields(vals)
		case "skip":
			if n, err := strconv.ParseInt(first(vals), 10, 64); err == nil && n >= 0 {
				q.Skip = n
			}
		case "limit":
			if n, err := strconv.ParseInt(first(vals), 10, 64); err == nil && n > 0 {
				q.Limit = n
			}
		default:
			for _, v := range vals {
				field, op, value := splitOperator(key, v)
				q.addCriterion(field, op, value)
			}
			q.criteriaValues[key] = vals
		}
	}

	return q
}

func (q *Query) addCriterion(field, op, raw string) {
	value := coerce(raw)
	if op == "" {
		// repeating a plain field folds into $in
		if existing, ok := q.Criteria[field]; ok {
			if m, isM := existing.(bson.M); isM {
				if in, ok := m["$in"]; ok {
					m["$in"] = append(in.([]interface{}), value)
					return
				}
			}
			q.Criteria[field] = bson.M{"$in": []interface{}{existing, value}}
			return
		}
		q.Criteria[field] = value
		return
	}

	bounds, ok := q.Criteria[field].(bson.M)
	if !ok {
		bounds = bson.M{}
		q.Criteria[field] = bounds
	}
	bounds[op] = value
}

// splitOperator recovers comparison operators from the raw parameter. The
// query parser splits "price>=10" into key "price>" and value "10", while
// "price>10" arrives as a bare key with an empty value.
func splitOperator(key, value string) (field, op, raw string) {
	if value == "" {
		if i := strings.IndexAny(key, "<>"); i > 0 && i < len(key)-1 {
			op := "$gt"
			if key[i] == '<' {
				op = "$lt"
			}
			return key[:i], op, key[i+1:]
		}
		return key, "", value
	}

	switch {
	case strings.HasSuffix(key, ">"):
		return strings.TrimSuffix(key, ">"), "$gte", value
	case strings.HasSuffix(key, "<"):
		return strings.TrimSuffix(key, "<"), "$lte", value
	}
	return key, "", value
}

func parseSort(vals []string) bson.D {
	var sort bson.D
	for _, v := range vals {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			dir := 1
			if strings.HasPrefix(field, "-") {
				dir = -1
				field = field[1:]
			}
			sort = append(sort, bson.E{Key: field, Value: dir})
		}
	}
	return sort
}

func parseFields(vals []string) bson.M {
	fields := bson.M{}
	for _, v := range vals {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			if strings.HasPrefix(field, "-") {
				fields[field[1:]] = 0
			} else {
				fields[field] = 1
			}
		}
	}
	return fields
}

func coerce(raw string) interface{} {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
