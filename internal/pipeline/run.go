// Package pipeline runs the end-to-end post generation flow: pick an
// idea, outline it, draft it, then decorate the draft with hashtags
// and an image prompt before assembling the final text.
//
// The legs are not equally load-bearing. Outline and draft failures
// abort the run; the idea, hashtag and image-prompt legs degrade to
// documented fallbacks when their responses cannot be extracted.
// Gateway failures abort the run regardless of leg.
package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/llm"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Stage identifies one leg of the full pipeline.
type Stage string

// Pipeline legs in execution order.
const (
	StageIdea        Stage = "idea"
	StageOutline     Stage = "outline"
	StageDraft       Stage = "draft"
	StageHashtags    Stage = "hashtags"
	StageImagePrompt Stage = "image_prompt"
	StageAssemble    Stage = "assemble"
)

// StageError wraps a fatal leg failure with the leg it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return "pipeline stage " + string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

// ProgressStatus reports how a leg concluded.
type ProgressStatus string

// Leg outcomes reported through the progress callback.
const (
	StatusStarted  ProgressStatus = "started"
	StatusDone     ProgressStatus = "done"
	StatusDegraded ProgressStatus = "degraded"
	StatusFailed   ProgressStatus = "failed"
)

// ProgressEvent describes one leg transition during a run.
type ProgressEvent struct {
	RunID  string         `json:"runId"`
	Stage  Stage          `json:"stage"`
	Status ProgressStatus `json:"status"`
	Err    error          `json:"-"`
}

// ProgressCallback receives leg transitions as the run advances. It is
// called synchronously from the run goroutine.
type ProgressCallback func(event ProgressEvent)

// Options tunes a pipeline run.
type Options struct {
	Logger     zerolog.Logger
	OnProgress ProgressCallback
}

// Runner executes full pipeline runs over an injected gateway client.
type Runner struct {
	llm  llm.Client
	log  zerolog.Logger
	emit ProgressCallback
}

// NewRunner creates a pipeline runner.
func NewRunner(client llm.Client, opts Options) *Runner {
	return &Runner{llm: client, log: opts.Logger, emit: opts.OnProgress}
}

// Run executes the full pipeline for one input. Defaults resolve
// before the first gateway call; a precondition failure returns before
// any call is made.
func (r *Runner) Run(ctx context.Context, in *types.FullPostInput) (*types.FullPostOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := r.log.With().Str("run_id", runID).Logger()

	ideaTitle, err := r.ideaLeg(ctx, runID, log, in)
	if err != nil {
		return nil, err
	}

	outline, err := r.outlineLeg(ctx, runID, log, in, ideaTitle)
	if err != nil {
		return nil, err
	}

	draft, err := r.draftLeg(ctx, runID, log, in, outline)
	if err != nil {
		return nil, err
	}

	hashtags, err := r.hashtagsLeg(ctx, runID, log, in, draft)
	if err != nil {
		return nil, err
	}

	imagePrompt, err := r.imagePromptLeg(ctx, runID, log, draft)
	if err != nil {
		return nil, err
	}

	r.progress(runID, StageAssemble, StatusStarted, nil)
	finalText := strings.TrimSpace(draft)
	if len(hashtags) > 0 {
		finalText += "\n\n" + strings.Join(hashtags, " ")
	}
	r.progress(runID, StageAssemble, StatusDone, nil)

	return &types.FullPostOutput{
		IdeaTitle:   ideaTitle,
		Outline:     outline,
		Draft:       draft,
		Hashtags:    hashtags,
		ImagePrompt: imagePrompt,
		FinalText:   finalText,
		CharCount:   types.CountChars(finalText),
	}, nil
}

// ideaLeg picks the first generated idea title. Extraction failures
// degrade to the caller's goal; gateway failures are fatal.
func (r *Runner) ideaLeg(ctx context.Context, runID string, log zerolog.Logger, in *types.FullPostInput) (string, error) {
	r.progress(runID, StageIdea, StatusStarted, nil)

	raw, err := r.llm.Chat(ctx, prompts.FullIdeas(in.Topic, in.Audience, in.Goal))
	if err != nil {
		return "", r.fail(runID, log, StageIdea, err)
	}

	title, ok := firstIdeaTitle(raw)
	if !ok {
		log.Warn().Str("stage", string(StageIdea)).Msg("idea extraction failed, using goal as title")
		r.progress(runID, StageIdea, StatusDegraded, nil)
		return in.Goal, nil
	}

	r.progress(runID, StageIdea, StatusDone, nil)
	return title, nil
}

// outlineLeg produces the prose outline. Both gateway and extraction
// failures are fatal here.
func (r *Runner) outlineLeg(ctx context.Context, runID string, log zerolog.Logger, in *types.FullPostInput, ideaTitle string) (string, error) {
	r.progress(runID, StageOutline, StatusStarted, nil)

	raw, err := r.llm.Chat(ctx, prompts.FullOutline(ideaTitle, in.Audience, in.Tone))
	if err != nil {
		return "", r.fail(runID, log, StageOutline, err)
	}

	res, err := extract.Field("full_outline", raw, "outline")
	if err != nil {
		return "", r.fail(runID, log, StageOutline, err)
	}
	outline := strings.TrimSpace(res.String())
	if outline == "" {
		return "", r.fail(runID, log, StageOutline, &extract.Error{Stage: "full_outline", Kind: extract.KindEmpty})
	}

	r.progress(runID, StageOutline, StatusDone, nil)
	return outline, nil
}

// draftLeg writes the post body. An empty draft is fatal.
func (r *Runner) draftLeg(ctx context.Context, runID string, log zerolog.Logger, in *types.FullPostInput, outline string) (string, error) {
	r.progress(runID, StageDraft, StatusStarted, nil)

	raw, err := r.llm.Chat(ctx, prompts.FullDraft(outline, in.Audience, in.Tone, in.Constraints))
	if err != nil {
		return "", r.fail(runID, log, StageDraft, err)
	}

	draft, err := extract.Text("full_draft", raw)
	if err != nil {
		return "", r.fail(runID, log, StageDraft, err)
	}

	r.progress(runID, StageDraft, StatusDone, nil)
	return draft, nil
}

// hashtagsLeg suggests hashtags for the draft. Extraction failures
// degrade to no hashtags.
func (r *Runner) hashtagsLeg(ctx context.Context, runID string, log zerolog.Logger, in *types.FullPostInput, draft string) ([]string, error) {
	r.progress(runID, StageHashtags, StatusStarted, nil)

	raw, err := r.llm.Chat(ctx, prompts.FullHashtags(draft, *in.MaxHashtags))
	if err != nil {
		return nil, r.fail(runID, log, StageHashtags, err)
	}

	res, ferr := extract.Field("full_hashtags", raw, "hashtags")
	if ferr != nil || !res.IsArray() {
		log.Warn().Str("stage", string(StageHashtags)).Msg("hashtag extraction failed, continuing without hashtags")
		r.progress(runID, StageHashtags, StatusDegraded, nil)
		return []string{}, nil
	}

	items := res.Array()
	tags := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			continue
		}
		if tag := strings.TrimSpace(item.Str); tag != "" {
			tags = append(tags, tag)
		}
	}

	r.progress(runID, StageHashtags, StatusDone, nil)
	return tags, nil
}

// imagePromptLeg proposes one header-image prompt. Extraction failures
// degrade to an empty prompt.
func (r *Runner) imagePromptLeg(ctx context.Context, runID string, log zerolog.Logger, draft string) (string, error) {
	r.progress(runID, StageImagePrompt, StatusStarted, nil)

	raw, err := r.llm.Chat(ctx, prompts.FullImagePrompt(draft))
	if err != nil {
		return "", r.fail(runID, log, StageImagePrompt, err)
	}

	res, ferr := extract.Field("full_image_prompt", raw, "imagePrompt")
	if ferr != nil || res.Type != gjson.String {
		log.Warn().Str("stage", string(StageImagePrompt)).Msg("image prompt extraction failed, continuing without one")
		r.progress(runID, StageImagePrompt, StatusDegraded, nil)
		return "", nil
	}

	r.progress(runID, StageImagePrompt, StatusDone, nil)
	return strings.TrimSpace(res.Str), nil
}

// firstIdeaTitle pulls the first string title out of an idea-list
// completion. Any shape problem reports !ok so the caller can degrade.
func firstIdeaTitle(raw string) (string, bool) {
	candidate, err := extract.Candidate("full_ideas", raw)
	if err != nil {
		return "", false
	}

	parsed := gjson.Parse(candidate)
	if !parsed.IsArray() {
		return "", false
	}
	items := parsed.Array()
	if len(items) == 0 || items[0].Type != gjson.String {
		return "", false
	}

	title := strings.TrimSpace(items[0].Str)
	if title == "" {
		return "", false
	}
	return title, true
}

func (r *Runner) fail(runID string, log zerolog.Logger, stage Stage, err error) error {
	log.Error().Err(err).Str("stage", string(stage)).Msg("pipeline stage failed")
	r.progress(runID, stage, StatusFailed, err)
	return &StageError{Stage: stage, Err: err}
}

func (r *Runner) progress(runID string, stage Stage, status ProgressStatus, err error) {
	if r.emit == nil {
		return
	}
	r.emit(ProgressEvent{RunID: runID, Stage: stage, Status: status, Err: err})
}
