package stages

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/llm"
	"github.com/arno/linkedin-post-agent/internal/llm/llmtest"
	"github.com/arno/linkedin-post-agent/internal/types"
)

func newService(replies ...llmtest.Reply) (*Service, *llmtest.Client) {
	client := llmtest.New(replies...)
	return New(client, zerolog.Nop()), client
}

func TestIdeas(t *testing.T) {
	svc, client := newService(llmtest.Reply{
		Text: "```json\n[{\"id\":\"flaky-ci\",\"title\":\"Your CI is lying to you\",\"hook\":\"Green builds, red deploys.\"}]\n```",
	})

	out, err := svc.Ideas(context.Background(), &types.IdeasInput{Topic: types.TopicDevOps})
	require.NoError(t, err)
	require.Len(t, out.Ideas, 1)
	assert.Equal(t, "flaky-ci", out.Ideas[0].ID)
	assert.Equal(t, "Your CI is lying to you", out.Ideas[0].Title)
	assert.Equal(t, 1, client.CallCount())
}

func TestIdeasEmptyListIsValid(t *testing.T) {
	svc, _ := newService(llmtest.Reply{Text: "[]"})

	out, err := svc.Ideas(context.Background(), &types.IdeasInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Ideas)
}

func TestIdeasPreconditionSkipsGateway(t *testing.T) {
	svc, client := newService()

	n := 0
	_, err := svc.Ideas(context.Background(), &types.IdeasInput{NIdeas: &n})
	var pre *types.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, 0, client.CallCount())
}

func TestIdeasSchemaMismatch(t *testing.T) {
	svc, _ := newService(llmtest.Reply{Text: `[{"id":"a","hook":"no title"}]`})

	_, err := svc.Ideas(context.Background(), &types.IdeasInput{})
	ee, ok := extract.AsError(err)
	require.True(t, ok)
	assert.Equal(t, extract.KindSchemaMismatch, ee.Kind)
}

func TestOutline(t *testing.T) {
	svc, _ := newService(llmtest.Reply{
		Text: `{"outline":{"hook":"Green builds, red deploys.","bullets":["measure","quarantine"],"cta":"ask_opinion"}}`,
	})

	out, err := svc.Outline(context.Background(), &types.OutlineInput{IdeaID: "flaky-ci"})
	require.NoError(t, err)
	assert.Equal(t, "Green builds, red deploys.", out.Outline.Hook)
	assert.Len(t, out.Outline.Bullets, 2)
}

func TestOutlineMissingField(t *testing.T) {
	svc, _ := newService(llmtest.Reply{Text: `{"plan":{}}`})

	_, err := svc.Outline(context.Background(), &types.OutlineInput{IdeaID: "flaky-ci"})
	ee, ok := extract.AsError(err)
	require.True(t, ok)
	assert.Equal(t, extract.KindMissingField, ee.Kind)
	assert.Equal(t, "outline", ee.Field)
}

func TestDraftPlainText(t *testing.T) {
	svc, _ := newService(llmtest.Reply{Text: "  Flaky tests cost more than you think.\n\nHere is why.  "})

	out, err := svc.Draft(context.Background(), &types.DraftInput{Brief: "flaky tests"})
	require.NoError(t, err)
	assert.Equal(t, "Flaky tests cost more than you think.\n\nHere is why.", out.Draft)
	assert.Equal(t, types.CountChars(out.Draft), out.CharCount)
}

func TestDraftEmptyResponse(t *testing.T) {
	svc, _ := newService(llmtest.Reply{Text: "   "})

	_, err := svc.Draft(context.Background(), &types.DraftInput{Brief: "flaky tests"})
	ee, ok := extract.AsError(err)
	require.True(t, ok)
	assert.Equal(t, extract.KindEmpty, ee.Kind)
}

func TestPolishRecomputesCharCount(t *testing.T) {
	// The reported charCount is deliberately wrong.
	svc, _ := newService(llmtest.Reply{
		Text: `{"polished":"Tight.","charCount":9999,"diffs":[{"from":"Verbose.","to":"Tight.","rationale":"shorter"}]}`,
	})

	out, err := svc.Polish(context.Background(), &types.PolishInput{Draft: "Verbose."})
	require.NoError(t, err)
	assert.Equal(t, "Tight.", out.Polished)
	assert.Equal(t, 6, out.CharCount)
	require.Len(t, out.Diffs, 1)
}

func TestPolishTightenOutOfRange(t *testing.T) {
	svc, client := newService()

	tighten := 75
	_, err := svc.Polish(context.Background(), &types.PolishInput{Draft: "d", TightenByPercent: &tighten})
	var pre *types.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, 0, client.CallCount())
}

func TestHashtagize(t *testing.T) {
	svc, client := newService(llmtest.Reply{
		Text: "```json\n{\"hashtags\":[\"#DevOps\",\"#CI\"],\"rationale\":\"broad plus niche\"}\n```",
	})

	out, err := svc.Hashtagize(context.Background(), &types.HashtagizeInput{Text: "post body"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#DevOps", "#CI"}, out.Hashtags)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0][1].Content, "up to 5")
	assert.Contains(t, calls[0][1].Content, "balanced")
}

func TestImagePrompts(t *testing.T) {
	svc, _ := newService(llmtest.Reply{Text: `{"prompts":["a minimal diagram of a CI pipeline"]}`})

	out, err := svc.ImagePrompts(context.Background(), &types.ImagePromptsInput{Text: "post body"})
	require.NoError(t, err)
	require.Len(t, out.Prompts, 1)
}

func TestPackageRecomputesFinalCharCount(t *testing.T) {
	svc, _ := newService(llmtest.Reply{
		Text: `{"finalText":"Done.","finalCharCount":-1,"hashtags":["#a"],"imagePrompt":"p","warnings":[]}`,
	})

	out, err := svc.Package(context.Background(), &types.PackageInput{Text: "Done."})
	require.NoError(t, err)
	assert.Equal(t, "Done.", out.FinalText)
	assert.Equal(t, 5, out.FinalCharCount)
}

func TestGatewayErrorPassesThrough(t *testing.T) {
	gerr := &llm.GatewayError{Kind: llm.KindTimeout, Message: "deadline exceeded"}
	svc, _ := newService(llmtest.Reply{Err: gerr})

	_, err := svc.Draft(context.Background(), &types.DraftInput{Brief: "b"})
	var got *llm.GatewayError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, llm.KindTimeout, got.Kind)
}
