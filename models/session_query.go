package models

import (
	"strings"

	"confcentral/utils"
)

// SessionField names a session attribute a query filter may target.
type SessionField string

const (
	SessionFieldConferenceKey SessionField = "conferenceKey"
	SessionFieldType          SessionField = "type"
	SessionFieldSpeaker       SessionField = "speaker"
	SessionFieldTime          SessionField = "time"
)

// FilterOperator is a comparison operator in a query filter.
type FilterOperator string

const (
	OpEQ   FilterOperator = "EQ"
	OpLT   FilterOperator = "LT"
	OpGT   FilterOperator = "GT"
	OpLTEQ FilterOperator = "LTEQ"
	OpGTEQ FilterOperator = "GTEQ"
	OpNE   FilterOperator = "NE"
)

// IsInequality reports whether the operator restricts an ordered range.
// NE counts: the backing stores treat it like a range exclusion.
func (op FilterOperator) IsInequality() bool {
	return op != OpEQ
}

var sessionFields = map[SessionField]bool{
	SessionFieldConferenceKey: true,
	SessionFieldType:          true,
	SessionFieldSpeaker:       true,
	SessionFieldTime:          true,
}

var filterOperators = map[FilterOperator]bool{
	OpEQ: true, OpLT: true, OpGT: true, OpLTEQ: true, OpGTEQ: true, OpNE: true,
}

// SessionFilter is a single (field, operator, value) predicate.
type SessionFilter struct {
	Field    SessionField   `json:"field"`
	Operator FilterOperator `json:"operator"`
	Value    string         `json:"value"`
}

// SessionQueryForm is the client-supplied filter list for a session search.
type SessionQueryForm struct {
	Filters []SessionFilter `json:"filters"`
}

// SessionQueryPlan is a validated, ordered query over sessions. Building a
// plan never executes it; the session repository translates it into a store
// query when the caller asks for results.
type SessionQueryPlan struct {
	// ConferenceKey scopes the query to one conference's sessions when
	// non-empty. An equality filter on conferenceKey is consumed into
	// this field rather than applied as a generic predicate.
	ConferenceKey string

	// Filters are the remaining predicates, in the order given.
	Filters []SessionFilter

	// OrderBy lists sort fields, ascending. The inequality field comes
	// first when present, session name breaks ties.
	OrderBy []string
}

// BuildPlan validates the filters and produces the query plan. At most one
// field may carry inequality operators across the whole set.
func (f *SessionQueryForm) BuildPlan() (*SessionQueryPlan, error) {
	plan := &SessionQueryPlan{}
	var inequalityField SessionField

	for _, filter := range f.Filters {
		if !sessionFields[filter.Field] {
			return nil, utils.ValidationErr("unknown filter field: %q", string(filter.Field))
		}
		if !filterOperators[filter.Operator] {
			return nil, utils.ValidationErr("unknown filter operator: %q", string(filter.Operator))
		}
		if strings.TrimSpace(filter.Value) == "" {
			return nil, utils.ValidationErr("filter on %q has no value", string(filter.Field))
		}

		if filter.Field == SessionFieldConferenceKey {
			if filter.Operator != OpEQ {
				return nil, utils.ValidationErr("conferenceKey only supports equality filters")
			}
			plan.ConferenceKey = filter.Value
			continue
		}

		if filter.Operator.IsInequality() {
			if inequalityField != "" && inequalityField != filter.Field {
				return nil, utils.ValidationErr("inequality filter is allowed on only one field")
			}
			inequalityField = filter.Field
		}
		plan.Filters = append(plan.Filters, filter)
	}

	if inequalityField == "" {
		plan.OrderBy = []string{"name"}
	} else {
		plan.OrderBy = []string{string(inequalityField), "name"}
	}
	return plan, nil
}
