package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

func TestTargetLabel(t *testing.T) {
	assert.Equal(t, "Last channel", targetLabel("last"))
	assert.Equal(t, "None", targetLabel("none"))
	assert.Equal(t, "custom", targetLabel("custom"), "unknown targets pass through")
}

func TestEditFormPreselectsLastChannel(t *testing.T) {
	form := newEditAgentForm("a1")
	form.seedFromAgent(domain.Agent{
		ID:      "a1",
		Name:    "Deploy bot",
		BoardID: "b1",
		Heartbeat: domain.HeartbeatConfig{
			Every:  "10m",
			Target: "last",
		},
	})

	require.False(t, form.awaitAgent)
	assert.Equal(t, "last", form.selectedTarget())
	assert.Equal(t, "Last channel", targetLabel(form.selectedTarget()))
}

func TestEditFormKeepsNamedChannelTarget(t *testing.T) {
	form := newEditAgentForm("a1")
	form.seedFromAgent(domain.Agent{
		ID:        "a1",
		Name:      "Deploy bot",
		BoardID:   "b1",
		Heartbeat: domain.HeartbeatConfig{Every: "10m", Target: "ops-alerts"},
	})

	assert.Equal(t, "ops-alerts", form.selectedTarget())
	assert.Equal(t, "ops-alerts", targetLabel(form.selectedTarget()))
}

func TestFormSeedBoardsSelectsAgentBoard(t *testing.T) {
	form := newEditAgentForm("a1")
	form.seedFromAgent(domain.Agent{ID: "a1", Name: "Deploy bot", BoardID: "b2"})
	form.seedBoards([]domain.Board{
		{ID: "b1", Name: "Ops"},
		{ID: "b2", Name: "Research"},
	}, "b2")

	assert.Equal(t, 1, form.boardChoice)
	assert.Equal(t, "b2", form.boardID)
}

func TestCreateFormDefaultsTargetToLast(t *testing.T) {
	form := newCreateAgentForm()
	assert.Equal(t, domain.HeartbeatTargetLast, form.target)
	assert.Equal(t, "last", form.selectedTarget())
}

func TestRenderTargetChoiceHighlightsSelection(t *testing.T) {
	m := Model{form: newCreateAgentForm()}
	m.form.targetIndex = 0

	rendered := m.renderTargetChoice()
	assert.True(t, strings.Contains(rendered, "[Last channel]"))
	assert.True(t, strings.Contains(rendered, "None"))
}

func TestHeartbeatSummaryFallsBackToDefaults(t *testing.T) {
	summary := heartbeatSummary(domain.HeartbeatConfig{})
	assert.Contains(t, summary, domain.DefaultHeartbeatEvery)
	assert.Contains(t, summary, "Last channel")
}
