package rules

import (
	"testing"

	"github.com/riskwatch/riskwatch/internal/models"
	"github.com/riskwatch/riskwatch/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRulesAndWatchlistSeeded(t *testing.T) {
	s := NewService(zap.NewNop())
	assert.Len(t, s.Rules(), 4)
	assert.Len(t, s.Watchlist(), 3)
}

func TestToggleRule(t *testing.T) {
	s := NewService(zap.NewNop())

	before := s.Rules()[0]
	require.Equal(t, models.RuleActive, before.Status)

	toggled, err := s.ToggleRule(before.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RuleInactive, toggled.Status)
	assert.True(t, toggled.LastModified.After(before.LastModified))

	back, err := s.ToggleRule(before.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RuleActive, back.Status)
}

func TestToggleUnknownRule(t *testing.T) {
	s := NewService(zap.NewNop())

	_, err := s.ToggleRule("rule-99")
	var appErr pkg.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkg.ErrRecordNotFoundCode, appErr.Code)
}

func TestRulesReturnsCopy(t *testing.T) {
	s := NewService(zap.NewNop())
	rules := s.Rules()
	rules[0].Name = "mutated"
	assert.NotEqual(t, "mutated", s.Rules()[0].Name)
}
