package dialog

import (
	"strings"
	"testing"

	"core/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walk advances the session through all seven turns with the given answers
// (greeting answer first) and returns the final result.
func walk(t *testing.T, c *Controller, sess *Session, answers [7]string) *Result {
	t.Helper()
	var result *Result
	for i, answer := range answers {
		result = c.Advance(sess, answer)
		if i < len(answers)-1 {
			require.False(t, result.Completed, "turn %d should not complete the cycle", i+1)
		}
	}
	return result
}

func TestControllerFullCycleDefaults(t *testing.T) {
	c := NewController()
	sess := NewSession("conv-1")

	result := walk(t, c, sess, [7]string{"hi", "hmm", "hmm", "hmm", "hmm", "hmm", "hmm"})

	require.True(t, result.Completed)
	req := result.Requirements
	require.NotNil(t, req)

	assert.Equal(t, []string{
		model.InstallUnderSink, model.InstallCountertop, model.InstallPitcher, model.InstallPortable,
	}, req.Installation)
	assert.Equal(t, float64(200), req.MaxPrice)
	assert.False(t, req.RemoveChlorine)
	assert.False(t, req.RemoveLead)
	assert.False(t, req.RemoveFluoride)
	assert.False(t, req.RemoveBacteria)
	assert.False(t, req.EcoFriendly)
	assert.False(t, req.Remineralization)
	assert.Equal(t, 3, req.HouseholdSize)
	assert.Equal(t, []string{model.PriorityHealth}, req.Priorities)

	// The cycle resets itself for the next conversation.
	assert.Equal(t, StateGreeting, sess.State)
	assert.Empty(t, sess.Gathered.Installation)
}

func TestControllerFullCycleExtraction(t *testing.T) {
	c := NewController()
	sess := NewSession("conv-2")

	result := walk(t, c, sess, [7]string{
		"hello",
		"under the sink",
		"$100",
		"lead and bacteria please",
		"yes, the planet matters",
		"minerals are important",
		"we're a family of 4",
	})

	require.True(t, result.Completed)
	req := result.Requirements
	assert.Equal(t, []string{model.InstallUnderSink}, req.Installation)
	assert.Equal(t, float64(80), req.MaxPrice)
	assert.True(t, req.RemoveLead)
	assert.True(t, req.RemoveBacteria)
	assert.False(t, req.RemoveFluoride)
	assert.True(t, req.EcoFriendly)
	assert.True(t, req.Remineralization)
	assert.Equal(t, 4, req.HouseholdSize)
	assert.Equal(t, []string{
		model.PriorityHealth, model.PriorityEco, model.PriorityPrice, model.PriorityMaintenance,
	}, req.Priorities)
}

func TestControllerResetOverridesAnyState(t *testing.T) {
	c := NewController()

	for _, phrase := range []string{"let's start over", "please RESET this"} {
		sess := NewSession("conv-3")
		c.Advance(sess, "hi")
		c.Advance(sess, "pitcher")
		require.Equal(t, StateAskBudget, sess.State)

		result := c.Advance(sess, phrase)
		assert.False(t, result.Completed)
		assert.Equal(t, replyReset, result.Reply)
		assert.Equal(t, StateGreeting, sess.State)
		assert.Empty(t, sess.Gathered.Installation)
	}
}

func TestControllerPromptsInOrder(t *testing.T) {
	c := NewController()
	sess := NewSession("conv-4")

	assert.Equal(t, promptInstallation, c.Advance(sess, "hi").Reply)
	assert.Equal(t, promptBudget, c.Advance(sess, "shower").Reply)
	assert.Equal(t, promptContaminants, c.Advance(sess, "£60").Reply)
	assert.Equal(t, promptEco, c.Advance(sess, "chlorine").Reply)
	assert.Equal(t, promptRemin, c.Advance(sess, "no").Reply)
	assert.Equal(t, promptHousehold, c.Advance(sess, "no").Reply)
}

func TestControllerTerminalReplyEmbedsRequirements(t *testing.T) {
	c := NewController()
	sess := NewSession("conv-5")

	result := walk(t, c, sess, [7]string{"hi", "jug", "cheap", "taste", "no", "no", "just me"})

	require.True(t, result.Completed)
	assert.True(t, strings.Contains(result.Reply, "```json"))

	parsed := ExtractRequirements(result.Reply)
	require.NotNil(t, parsed)
	assert.Equal(t, result.Requirements, parsed)
	assert.Equal(t, float64(50), parsed.MaxPrice)
	assert.True(t, parsed.RemoveChlorine)
}

func TestControllerSupersedesPreviousRequirements(t *testing.T) {
	c := NewController()
	sess := NewSession("conv-6")

	first := walk(t, c, sess, [7]string{"hi", "pitcher", "30", "taste", "no", "no", "just me"})
	second := walk(t, c, sess, [7]string{"hi", "shower", "£300", "lead", "yes", "no", "2"})

	require.NotNil(t, sess.Current)
	require.NotNil(t, sess.Previous)
	assert.Equal(t, second.Requirements, sess.Current)
	assert.Equal(t, first.Requirements, sess.Previous)
}

func TestExtractRequirementsMalformed(t *testing.T) {
	assert.Nil(t, ExtractRequirements("no block here"))
	assert.Nil(t, ExtractRequirements("```json\n{not valid json"))
	assert.Nil(t, ExtractRequirements("```json\n{\"max_price\": oops}\n```"))
}
