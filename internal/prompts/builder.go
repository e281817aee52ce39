package prompts

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/arno/linkedin-post-agent/internal/llm"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// System returns the fixed system instruction shared by every stage.
func System() string {
	return MustGet("system")
}

// Ideas builds the ideate stage conversation. The rendered instruction
// names the exact JSON array shape the extractor later enforces.
func Ideas(in *types.IdeasInput) llm.Conversation {
	seeds := ""
	if len(in.SeedKeywords) > 0 {
		seeds = "Seed keywords: " + strings.Join(in.SeedKeywords, ", ")
	}
	avoid := ""
	if len(in.Avoid) > 0 {
		avoid = "Avoid: " + strings.Join(in.Avoid, ", ")
	}

	user := Format(MustGet("ideas"), map[string]string{
		"Count":    strconv.Itoa(*in.NIdeas),
		"Topic":    string(in.Topic),
		"Audience": string(in.AudienceLevel),
		"Seeds":    seeds,
		"Avoid":    avoid,
	})
	return llm.NewConversation(System(), user)
}

// OutlineStage builds the standalone outline stage conversation.
func OutlineStage(in *types.OutlineInput) llm.Conversation {
	keyPoints := ""
	if len(in.KeyPoints) > 0 {
		keyPoints = "Key points: " + strings.Join(in.KeyPoints, " | ")
	}

	user := Format(MustGet("outline"), map[string]string{
		"IdeaTitle": in.IdeaID,
		"Format":    string(in.Format),
		"KeyPoints": keyPoints,
	})
	return llm.NewConversation(System(), user)
}

// Draft builds the draft stage conversation from an outline when one
// is present, otherwise from the free-text brief.
func Draft(in *types.DraftInput) llm.Conversation {
	base := "Brief:\n" + in.Brief
	if in.Outline != nil {
		base = "Use this outline:\n" + toJSON(in.Outline)
	}

	user := Format(MustGet("draft"), map[string]string{
		"Topic":       string(in.Topic),
		"Tone":        string(in.Tone),
		"Constraints": toJSON(in.Constraints),
		"Base":        base,
	})
	return llm.NewConversation(System(), user)
}

// Polish builds the polish stage conversation.
func Polish(in *types.PolishInput) llm.Conversation {
	rules := "front-load value, remove filler, shorten sentences, active voice"
	if len(in.EditRules) > 0 {
		rules = strings.Join(in.EditRules, ", ")
	}

	user := Format(MustGet("polish"), map[string]string{
		"Tighten": strconv.Itoa(*in.TightenByPercent),
		"Rules":   rules,
		"Draft":   in.Draft,
	})
	return llm.NewConversation(System(), user)
}

// Hashtagize builds the hashtag stage conversation.
func Hashtagize(in *types.HashtagizeInput) llm.Conversation {
	user := Format(MustGet("hashtagize"), map[string]string{
		"MaxTags":  strconv.Itoa(*in.MaxTags),
		"Strategy": in.Strategy,
		"Text":     in.Text,
	})
	return llm.NewConversation(System(), user)
}

// ImagePrompts builds the image-prompt stage conversation.
func ImagePrompts(in *types.ImagePromptsInput) llm.Conversation {
	user := Format(MustGet("image-prompts"), map[string]string{
		"Style": in.Style,
		"Text":  in.Text,
	})
	return llm.NewConversation(System(), user)
}

// Package builds the package stage conversation.
func Package(in *types.PackageInput) llm.Conversation {
	user := Format(MustGet("package"), map[string]string{
		"Constraints": toJSON(in.Constraints),
		"Text":        in.Text,
		"Hashtags":    strings.Join(in.Hashtags, " "),
		"ImagePrompt": in.ImagePrompt,
	})
	return llm.NewConversation(System(), user)
}

// FullIdeas builds the full-pipeline idea leg conversation. Its
// contract (array of title strings) intentionally differs from the
// standalone ideate stage.
func FullIdeas(topic, audience, goal string) llm.Conversation {
	user := Format(MustGet("full-ideas"), map[string]string{
		"Topic":    topic,
		"Audience": audience,
		"Goal":     goal,
	})
	return llm.NewConversation(System(), user)
}

// FullOutline builds the full-pipeline outline leg conversation. The
// expected "outline" field is a prose string, not the structured
// object of the standalone stage.
func FullOutline(ideaTitle, audience, tone string) llm.Conversation {
	user := Format(MustGet("full-outline"), map[string]string{
		"IdeaTitle": ideaTitle,
		"Audience":  audience,
		"Tone":      tone,
	})
	return llm.NewConversation(System(), user)
}

// FullDraft builds the full-pipeline draft leg conversation.
func FullDraft(outline, audience, tone, constraints string) llm.Conversation {
	user := Format(MustGet("full-draft"), map[string]string{
		"Outline":     outline,
		"Audience":    audience,
		"Tone":        tone,
		"Constraints": constraints,
	})
	return llm.NewConversation(System(), user)
}

// FullHashtags builds the full-pipeline hashtag leg conversation.
func FullHashtags(draft string, maxTags int) llm.Conversation {
	user := Format(MustGet("full-hashtags"), map[string]string{
		"MaxTags": strconv.Itoa(maxTags),
		"Draft":   draft,
	})
	return llm.NewConversation(System(), user)
}

// FullImagePrompt builds the full-pipeline image-prompt leg conversation.
func FullImagePrompt(draft string) llm.Conversation {
	user := Format(MustGet("full-image-prompt"), map[string]string{
		"Draft": draft,
	})
	return llm.NewConversation(System(), user)
}

// toJSON renders a value inline for instruction text. Marshal cannot
// fail for these types; the fallback keeps rendering total.
func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
