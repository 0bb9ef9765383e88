package testutil

import (
	"testing"

	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindScenario(t *testing.T) {
	results := []scenario.Result{
		{Name: "Scenario A", Report: economics.Report{TotalPnL: 1000}},
		{Name: "Scenario B", Report: economics.Report{TotalPnL: 2000}},
		{Name: "Another Scenario", Report: economics.Report{TotalPnL: 3000}},
	}

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
		expectedPnL float64
	}{
		{name: "Find existing scenario A", searchName: "Scenario A", expectFound: true, expectedPnL: 1000},
		{name: "Find existing scenario B", searchName: "Scenario B", expectFound: true, expectedPnL: 2000},
		{name: "Find scenario with longer name", searchName: "Another Scenario", expectFound: true, expectedPnL: 3000},
		{name: "Search for non-existent scenario", searchName: "Non-existent"},
		{name: "Empty search name", searchName: ""},
		{name: "Case sensitive search", searchName: "scenario a"},
		{name: "Partial name match", searchName: "Scenario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindScenario(results, tt.searchName)
			if !tt.expectFound {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.searchName, result.Name)
			assert.Equal(t, tt.expectedPnL, result.Report.TotalPnL)
		})
	}
}

func TestFindScenarioEmptyResults(t *testing.T) {
	assert.Nil(t, FindScenario([]scenario.Result{}, "Any Scenario"))
	assert.Nil(t, FindScenario(nil, "Any Scenario"))
}

func TestFindScenarioReturnsPointer(t *testing.T) {
	results := []scenario.Result{{Name: "Test Scenario"}}

	found := FindScenario(results, "Test Scenario")
	require.NotNil(t, found)
	assert.Same(t, &results[0], found)

	found.Warnings = append(found.Warnings, "changed")
	assert.Equal(t, []string{"changed"}, results[0].Warnings)
}

func TestFindScenarioWithDuplicateNames(t *testing.T) {
	results := []scenario.Result{
		{Name: "Duplicate", Report: economics.Report{TotalPnL: 1000}},
		{Name: "Duplicate", Report: economics.Report{TotalPnL: 2000}},
	}

	found := FindScenario(results, "Duplicate")
	require.NotNil(t, found)
	assert.Same(t, &results[0], found)
}
