package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintsApplyDefaults(t *testing.T) {
	c := &Constraints{}
	c.ApplyDefaults()

	assert.Equal(t, DefaultMaxChars, *c.MaxChars)
	assert.True(t, *c.UseEmojis)
	assert.True(t, *c.UseLineBreaks)
	assert.Equal(t, DefaultParagraphsMax, *c.ParagraphsMax)
	assert.Equal(t, DefaultHashtagsMax, *c.HashtagsMax)
}

func TestConstraintsKeepExplicitValues(t *testing.T) {
	maxChars := 500
	emojis := false
	c := &Constraints{MaxChars: &maxChars, UseEmojis: &emojis}
	c.ApplyDefaults()

	assert.Equal(t, 500, *c.MaxChars)
	assert.False(t, *c.UseEmojis)
}

func TestIdeasInputDefaultsAndRanges(t *testing.T) {
	in := &IdeasInput{}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, TopicProjectManagement, in.Topic)
	assert.Equal(t, AudienceIntermediate, in.AudienceLevel)
	assert.Equal(t, DefaultNIdeas, *in.NIdeas)

	n := 13
	in = &IdeasInput{NIdeas: &n}
	in.ApplyDefaults()
	err := in.Validate()
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "NIdeas", pre.Field)
}

func TestOutlineInputRequiresIdeaID(t *testing.T) {
	in := &OutlineInput{}
	in.ApplyDefaults()
	err := in.Validate()
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "IdeaID", pre.Field)

	in = &OutlineInput{IdeaID: "ci-flakiness"}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, FormatTipList, in.Format)
}

func TestDraftInputRequiresOutlineOrBrief(t *testing.T) {
	in := &DraftInput{}
	in.ApplyDefaults()
	var pre *PreconditionError
	require.ErrorAs(t, in.Validate(), &pre)

	in = &DraftInput{Brief: "   "}
	in.ApplyDefaults()
	require.ErrorAs(t, in.Validate(), &pre)

	in = &DraftInput{Brief: "why flaky tests erode trust"}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, TonePractical, in.Tone)
	assert.Equal(t, DefaultMaxChars, *in.Constraints.MaxChars)
}

func TestPolishInputTightenRange(t *testing.T) {
	in := &PolishInput{Draft: "some draft"}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, DefaultTightenByPercent, *in.TightenByPercent)
	assert.Equal(t, DefaultPlatform, in.Platform)

	tighten := 75
	in = &PolishInput{Draft: "some draft", TightenByPercent: &tighten}
	in.ApplyDefaults()
	err := in.Validate()
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "TightenByPercent", pre.Field)

	zero := 0
	in = &PolishInput{Draft: "some draft", TightenByPercent: &zero}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, 0, *in.TightenByPercent)
}

func TestHashtagizeInputMaxTags(t *testing.T) {
	in := &HashtagizeInput{Text: "post"}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, DefaultMaxTags, *in.MaxTags)
	assert.Equal(t, DefaultStrategy, in.Strategy)

	// An explicit zero is a range violation, not "unset".
	zero := 0
	in = &HashtagizeInput{Text: "post", MaxTags: &zero}
	in.ApplyDefaults()
	var pre *PreconditionError
	require.ErrorAs(t, in.Validate(), &pre)
	assert.Equal(t, "MaxTags", pre.Field)
}

func TestFullPostInputDefaults(t *testing.T) {
	in := &FullPostInput{Topic: "devops", Audience: "engineers", Goal: "teach"}
	in.ApplyDefaults()
	require.NoError(t, in.Validate())
	assert.Equal(t, string(TonePractical), in.Tone)
	assert.Equal(t, DefaultMaxTags, *in.MaxHashtags)

	neg := -2
	in = &FullPostInput{Topic: "devops", Audience: "engineers", Goal: "teach", MaxHashtags: &neg}
	in.ApplyDefaults()
	assert.Equal(t, DefaultMaxTags, *in.MaxHashtags)

	in = &FullPostInput{Audience: "engineers", Goal: "teach"}
	in.ApplyDefaults()
	var pre *PreconditionError
	require.ErrorAs(t, in.Validate(), &pre)
	assert.Equal(t, "Topic", pre.Field)
}

func TestCountChars(t *testing.T) {
	assert.Equal(t, 11, CountChars("Hello world"))
	assert.Equal(t, 5, CountChars("héllo"))
	assert.Equal(t, 2, CountChars("日本"))
	assert.Equal(t, 0, CountChars(""))
}
