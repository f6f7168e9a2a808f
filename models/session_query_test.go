package models

import (
	"testing"

	"confcentral/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionQueryPlanSingleInequality(t *testing.T) {
	form := &SessionQueryForm{Filters: []SessionFilter{
		{Field: SessionFieldTime, Operator: OpLT, Value: "10:00"},
		{Field: SessionFieldSpeaker, Operator: OpEQ, Value: "Alex Martelli"},
	}}

	plan, err := form.BuildPlan()
	require.NoError(t, err)

	assert.Empty(t, plan.ConferenceKey)
	assert.Equal(t, []SessionFilter{
		{Field: SessionFieldTime, Operator: OpLT, Value: "10:00"},
		{Field: SessionFieldSpeaker, Operator: OpEQ, Value: "Alex Martelli"},
	}, plan.Filters)
	assert.Equal(t, []string{"time", "name"}, plan.OrderBy)
}

func TestSessionQueryPlanTwoInequalityFieldsRejected(t *testing.T) {
	form := &SessionQueryForm{Filters: []SessionFilter{
		{Field: SessionFieldTime, Operator: OpLT, Value: "10:00"},
		{Field: SessionFieldType, Operator: OpNE, Value: "workshop"},
	}}

	_, err := form.BuildPlan()
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	assert.Contains(t, err.Error(), "inequality filter is allowed on only one field")
}

func TestSessionQueryPlanRepeatedInequalitySameField(t *testing.T) {
	// Two range bounds on one field stay legal; only a second field trips
	// the rule.
	form := &SessionQueryForm{Filters: []SessionFilter{
		{Field: SessionFieldTime, Operator: OpGTEQ, Value: "09:00"},
		{Field: SessionFieldTime, Operator: OpLT, Value: "19:00"},
	}}

	plan, err := form.BuildPlan()
	require.NoError(t, err)
	assert.Len(t, plan.Filters, 2)
	assert.Equal(t, []string{"time", "name"}, plan.OrderBy)
}

func TestSessionQueryPlanConsumesConferenceKey(t *testing.T) {
	form := &SessionQueryForm{Filters: []SessionFilter{
		{Field: SessionFieldConferenceKey, Operator: OpEQ, Value: "conf-1"},
		{Field: SessionFieldType, Operator: OpEQ, Value: "lecture"},
	}}

	plan, err := form.BuildPlan()
	require.NoError(t, err)

	assert.Equal(t, "conf-1", plan.ConferenceKey)
	assert.Equal(t, []SessionFilter{
		{Field: SessionFieldType, Operator: OpEQ, Value: "lecture"},
	}, plan.Filters)
}

func TestSessionQueryPlanConferenceKeyInequalityRejected(t *testing.T) {
	form := &SessionQueryForm{Filters: []SessionFilter{
		{Field: SessionFieldConferenceKey, Operator: OpGT, Value: "conf-1"},
	}}

	_, err := form.BuildPlan()
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestSessionQueryPlanValidation(t *testing.T) {
	cases := []struct {
		name    string
		filters []SessionFilter
	}{
		{"unknown field", []SessionFilter{{Field: "city", Operator: OpEQ, Value: "London"}}},
		{"unknown operator", []SessionFilter{{Field: SessionFieldType, Operator: "LIKE", Value: "lecture"}}},
		{"empty value", []SessionFilter{{Field: SessionFieldType, Operator: OpEQ, Value: "  "}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := &SessionQueryForm{Filters: tc.filters}
			_, err := form.BuildPlan()
			require.Error(t, err)
			assert.Equal(t, utils.KindValidation, utils.KindOf(err))
		})
	}
}

func TestSessionQueryPlanDefaultOrdering(t *testing.T) {
	form := &SessionQueryForm{Filters: []SessionFilter{
		{Field: SessionFieldSpeaker, Operator: OpEQ, Value: "Alex Martelli"},
	}}

	plan, err := form.BuildPlan()
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, plan.OrderBy)
}

func TestSessionQueryPlanEmptyForm(t *testing.T) {
	form := &SessionQueryForm{}

	plan, err := form.BuildPlan()
	require.NoError(t, err)
	assert.Empty(t, plan.ConferenceKey)
	assert.Empty(t, plan.Filters)
	assert.Equal(t, []string{"name"}, plan.OrderBy)
}
