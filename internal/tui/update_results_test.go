package tui

import (
	"strings"
	"testing"

	"github.com/debaite/podium/internal/api"
)

func resultsModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m.switchView(ViewResults)
	m, _ = apply(t, m, summariesMsg{summaries: []api.ResultSummary{
		{ID: "r1", Topic: "T", Winner: "A", Date: "2026-08-01"},
		{ID: "r2", Topic: "U", Winner: "B", Date: "2026-08-02"},
	}})
	return m
}

func TestResultsSelectionIssuesFetch(t *testing.T) {
	m := resultsModel(t)

	m = press(t, m, "down")
	m = press(t, m, "enter")

	if !m.loadingDetail {
		t.Error("loadingDetail = false after selection")
	}
}

func TestResultsLatestSelectionWins(t *testing.T) {
	m := resultsModel(t)

	first := m.browser.Select("r1")
	second := m.browser.Select("r2")

	detailB := &api.ResultDetail{Metadata: api.ResultMetadata{ID: "r2", Topic: "U"}}
	detailA := &api.ResultDetail{Metadata: api.ResultMetadata{ID: "r1", Topic: "T"}}

	m, _ = apply(t, m, detailMsg{tag: second, detail: detailB})
	m, _ = apply(t, m, detailMsg{tag: first, detail: detailA})

	if m.browser.Detail.Metadata.ID != "r2" {
		t.Errorf("Detail = %q, want r2 (latest selection wins)", m.browser.Detail.Metadata.ID)
	}
}

func TestResultsFetchErrorKeepsList(t *testing.T) {
	m := resultsModel(t)
	m, _ = apply(t, m, summariesMsg{err: assertError{}})

	if len(m.browser.Summaries) != 2 {
		t.Errorf("Summaries = %d entries after failed reload, want 2", len(m.browser.Summaries))
	}
	if m.errorMessage == "" {
		t.Error("list failure surfaced no error")
	}
}

func TestResultsViewRendersList(t *testing.T) {
	m := resultsModel(t)
	out := m.View()

	for _, want := range []string{"Past debates", "T", "U", "winner: A"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsViewRendersDetailCharts(t *testing.T) {
	m := resultsModel(t)
	tag := m.browser.Select("r1")
	m, _ = apply(t, m, detailMsg{tag: tag, detail: &api.ResultDetail{
		Metadata: api.ResultMetadata{ID: "r1", Topic: "T"},
		Evaluation: api.Evaluation{
			GlobalOutcome: &api.GlobalOutcome{
				WinnerName:       "A",
				AverageScores:    map[string]float64{"A": 8.0, "B": 6.0},
				VoteDistribution: map[string]int{"A": 2, "B": 1},
			},
		},
	}})

	out := m.View()
	for _, want := range []string{"Winner: A", "Average scores", "Votes"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
