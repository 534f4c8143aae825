package nodes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Query errors, reported as 400 with the message as is.
var (
	errOrderByRequired = errors.New("orderBy must be defined when other query parameters are defined")
	errShallowQuery    = errors.New("shallow cannot be combined with other query parameters")
	errBothLimits      = errors.New("limitToFirst and limitToLast cannot both be set")
	errEqualToRange    = errors.New("equalTo cannot be combined with startAt or endAt")
)

const orderByKey = "$key"

// query is a filtered, ordered read of a collection:
//
//	?orderBy="$key"|"<field>"&equalTo=<v>&startAt=<v>&endAt=<v>&limitToFirst=<n>&limitToLast=<n>
//
// Parameter values are JSON, so strings are quoted.
type query struct {
	OrderBy      string
	EqualTo      any
	StartAt      any
	EndAt        any
	LimitToFirst int
	LimitToLast  int

	hasEqualTo, hasStartAt, hasEndAt bool
}

// parseQuery returns nil when the request carries no query parameters.
func parseQuery(v url.Values) (*query, error) {
	names := []string{"orderBy", "equalTo", "startAt", "endAt", "limitToFirst", "limitToLast"}
	present := false
	for _, n := range names {
		if v.Has(n) {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}
	if v.Get("shallow") == "true" {
		return nil, errShallowQuery
	}
	if !v.Has("orderBy") {
		return nil, errOrderByRequired
	}

	q := &query{}
	if err := json.Unmarshal([]byte(v.Get("orderBy")), &q.OrderBy); err != nil || q.OrderBy == "" {
		return nil, fmt.Errorf("orderBy must be a quoted string, got %s", v.Get("orderBy"))
	}

	var err error
	if q.EqualTo, q.hasEqualTo, err = jsonParam(v, "equalTo"); err != nil {
		return nil, err
	}
	if q.StartAt, q.hasStartAt, err = jsonParam(v, "startAt"); err != nil {
		return nil, err
	}
	if q.EndAt, q.hasEndAt, err = jsonParam(v, "endAt"); err != nil {
		return nil, err
	}
	if q.hasEqualTo && (q.hasStartAt || q.hasEndAt) {
		return nil, errEqualToRange
	}

	if q.LimitToFirst, err = limitParam(v, "limitToFirst"); err != nil {
		return nil, err
	}
	if q.LimitToLast, err = limitParam(v, "limitToLast"); err != nil {
		return nil, err
	}
	if q.LimitToFirst > 0 && q.LimitToLast > 0 {
		return nil, errBothLimits
	}
	return q, nil
}

func jsonParam(v url.Values, name string) (any, bool, error) {
	if !v.Has(name) {
		return nil, false, nil
	}
	var out any
	if err := json.Unmarshal([]byte(v.Get(name)), &out); err != nil {
		return nil, false, fmt.Errorf("%s must be a JSON value, got %s", name, v.Get(name))
	}
	return out, true, nil
}

func limitParam(v url.Values, name string) (int, error) {
	if !v.Has(name) {
		return 0, nil
	}
	n, err := strconv.Atoi(v.Get(name))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %s", name, v.Get(name))
	}
	return n, nil
}

type entry struct {
	key   string
	sort  any
	value json.RawMessage
}

// apply filters and limits children. The result is a JSON object, so the
// order only decides which children survive the limits.
func (q *query) apply(children map[string]json.RawMessage) map[string]json.RawMessage {
	entries := make([]entry, 0, len(children))
	for k, raw := range children {
		e := entry{key: k, value: raw}
		if q.OrderBy == orderByKey {
			e.sort = k
		} else {
			var fields map[string]any
			_ = json.Unmarshal(raw, &fields)
			e.sort = fields[q.OrderBy]
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if c := compareValues(entries[i].sort, entries[j].sort); c != 0 {
			return c < 0
		}
		return entries[i].key < entries[j].key
	})

	kept := entries[:0]
	for _, e := range entries {
		switch {
		case q.hasEqualTo && compareValues(e.sort, q.EqualTo) != 0:
		case q.hasStartAt && compareValues(e.sort, q.StartAt) < 0:
		case q.hasEndAt && compareValues(e.sort, q.EndAt) > 0:
		default:
			kept = append(kept, e)
		}
	}

	if q.LimitToFirst > 0 && len(kept) > q.LimitToFirst {
		kept = kept[:q.LimitToFirst]
	}
	if q.LimitToLast > 0 && len(kept) > q.LimitToLast {
		kept = kept[len(kept)-q.LimitToLast:]
	}

	out := make(map[string]json.RawMessage, len(kept))
	for _, e := range kept {
		out[e.key] = e.value
	}
	return out
}

// compareValues orders JSON values the way the realtime database does:
// null, false, true, numbers, strings, then objects and arrays.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch av := a.(type) {
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}

func rank(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 2
		}
		return 1
	case float64:
		return 3
	case string:
		return 4
	}
	return 5
}
