package models

import (
	"strconv"
	"strings"

	"confcentral/utils"
)

// ConferenceField names a conference attribute a query filter may target.
type ConferenceField string

const (
	ConferenceFieldCity           ConferenceField = "city"
	ConferenceFieldTopic          ConferenceField = "topics"
	ConferenceFieldMonth          ConferenceField = "month"
	ConferenceFieldMaxAttendees   ConferenceField = "maxAttendees"
	ConferenceFieldSeatsAvailable ConferenceField = "seatsAvailable"
)

// conferenceFieldTypes maps each field to whether its value is an integer.
var conferenceFieldTypes = map[ConferenceField]bool{
	ConferenceFieldCity:           false,
	ConferenceFieldTopic:          false,
	ConferenceFieldMonth:          true,
	ConferenceFieldMaxAttendees:   true,
	ConferenceFieldSeatsAvailable: true,
}

// ConferenceFilter is a single (field, operator, value) predicate. Values
// arrive as strings and are converted per field type during BuildPlan.
type ConferenceFilter struct {
	Field    ConferenceField `json:"field"`
	Operator FilterOperator  `json:"operator"`
	Value    string          `json:"value"`
}

// ConferenceQueryForm is the client-supplied filter list for a conference
// search. The same one-inequality-field rule as session queries applies.
type ConferenceQueryForm struct {
	Filters []ConferenceFilter `json:"filters"`
}

// ConferencePredicate is a typed predicate ready for the storage layer.
type ConferencePredicate struct {
	Field    ConferenceField
	Operator FilterOperator
	Value    interface{}
}

// ConferenceQueryPlan is a validated, ordered query over conferences.
type ConferenceQueryPlan struct {
	Predicates []ConferencePredicate
	OrderBy    []string
}

// BuildPlan validates the filters and produces the query plan.
func (f *ConferenceQueryForm) BuildPlan() (*ConferenceQueryPlan, error) {
	plan := &ConferenceQueryPlan{}
	var inequalityField ConferenceField

	for _, filter := range f.Filters {
		isInt, known := conferenceFieldTypes[filter.Field]
		if !known {
			return nil, utils.ValidationErr("unknown filter field: %q", string(filter.Field))
		}
		if !filterOperators[filter.Operator] {
			return nil, utils.ValidationErr("unknown filter operator: %q", string(filter.Operator))
		}
		if strings.TrimSpace(filter.Value) == "" {
			return nil, utils.ValidationErr("filter on %q has no value", string(filter.Field))
		}

		var value interface{} = filter.Value
		if isInt {
			n, err := strconv.Atoi(filter.Value)
			if err != nil {
				return nil, utils.ValidationErr("filter on %q requires an integer value", string(filter.Field))
			}
			value = n
		}

		if filter.Operator.IsInequality() {
			if inequalityField != "" && inequalityField != filter.Field {
				return nil, utils.ValidationErr("inequality filter is allowed on only one field")
			}
			inequalityField = filter.Field
		}
		plan.Predicates = append(plan.Predicates, ConferencePredicate{
			Field:    filter.Field,
			Operator: filter.Operator,
			Value:    value,
		})
	}

	if inequalityField == "" {
		plan.OrderBy = []string{"name"}
	} else {
		plan.OrderBy = []string{string(inequalityField), "name"}
	}
	return plan, nil
}
