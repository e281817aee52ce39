package types

import "strings"

// Defaults applied during ApplyDefaults. Each optional field resolves
// exactly once, at construction; later code never re-derives them.
const (
	DefaultNIdeas           = 8
	DefaultTightenByPercent = 15
	DefaultMaxTags          = 5
	DefaultStrategy         = "balanced"
	DefaultImageStyle       = "minimal_illustration"
	DefaultPlatform         = "linkedin"
	DefaultMaxChars         = 2200
	DefaultParagraphsMax    = 8
	DefaultHashtagsMax      = 5
)

// Constraints bounds the shape of a generated post. All numeric fields
// are strictly positive after default resolution.
type Constraints struct {
	MaxChars      *int  `json:"maxChars,omitempty" validate:"omitnil,gt=0"`
	UseEmojis     *bool `json:"useEmojis,omitempty"`
	UseLineBreaks *bool `json:"useLineBreaks,omitempty"`
	ParagraphsMax *int  `json:"paragraphsMax,omitempty" validate:"omitnil,gt=0"`
	HashtagsMax   *int  `json:"hashtagsMax,omitempty" validate:"omitnil,gt=0"`
}

// ApplyDefaults fills unset fields with the documented defaults.
func (c *Constraints) ApplyDefaults() {
	c.MaxChars = intDefault(c.MaxChars, DefaultMaxChars)
	c.UseEmojis = boolDefault(c.UseEmojis, true)
	c.UseLineBreaks = boolDefault(c.UseLineBreaks, true)
	c.ParagraphsMax = intDefault(c.ParagraphsMax, DefaultParagraphsMax)
	c.HashtagsMax = intDefault(c.HashtagsMax, DefaultHashtagsMax)
}

// IdeasInput holds parameters for the ideate stage.
type IdeasInput struct {
	Topic         Topic         `json:"topic"`
	AudienceLevel AudienceLevel `json:"audienceLevel,omitempty"`
	NIdeas        *int          `json:"nIdeas,omitempty" validate:"omitnil,min=1,max=12"`
	SeedKeywords  []string      `json:"seedKeywords,omitempty"`
	Avoid         []string      `json:"avoid,omitempty"`
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *IdeasInput) ApplyDefaults() {
	if in.Topic == "" {
		in.Topic = ParseTopic("")
	}
	if in.AudienceLevel == "" {
		in.AudienceLevel = AudienceIntermediate
	}
	in.NIdeas = intDefault(in.NIdeas, DefaultNIdeas)
}

// Validate re-checks the range rules the instruction builder depends on.
func (in *IdeasInput) Validate() error { return checkRanges(in) }

// OutlineInput holds parameters for the standalone outline stage.
type OutlineInput struct {
	IdeaID        string        `json:"ideaId" validate:"required"`
	Format        PostFormat    `json:"format"`
	KeyPoints     []string      `json:"keyPoints,omitempty"`
	AudienceLevel AudienceLevel `json:"audienceLevel,omitempty"`
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *OutlineInput) ApplyDefaults() {
	if in.Format == "" {
		in.Format = ParsePostFormat("")
	}
	if in.AudienceLevel == "" {
		in.AudienceLevel = AudienceIntermediate
	}
}

// Validate re-checks the shape rules the instruction builder depends on.
func (in *OutlineInput) Validate() error { return checkRanges(in) }

// DraftInput holds parameters for the draft stage. Exactly one of
// Outline and Brief is expected; Outline wins when both are present.
type DraftInput struct {
	Outline     *OutlineOutput `json:"outline,omitempty"`
	Brief       string         `json:"brief,omitempty"`
	Topic       Topic          `json:"topic"`
	Tone        Tone           `json:"tone,omitempty"`
	Constraints *Constraints   `json:"constraints,omitempty"`
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *DraftInput) ApplyDefaults() {
	if in.Topic == "" {
		in.Topic = TopicAutomation
	}
	if in.Tone == "" {
		in.Tone = TonePractical
	}
	if in.Constraints == nil {
		in.Constraints = &Constraints{}
	}
	in.Constraints.ApplyDefaults()
}

// Validate requires either an outline or a non-blank brief.
func (in *DraftInput) Validate() error {
	if in.Outline == nil && strings.TrimSpace(in.Brief) == "" {
		return &PreconditionError{Field: "Brief", Message: "either outline or brief is required"}
	}
	return checkRanges(in)
}

// PolishInput holds parameters for the polish stage.
type PolishInput struct {
	Draft            string   `json:"draft" validate:"required"`
	TightenByPercent *int     `json:"tightenByPercent,omitempty" validate:"omitnil,min=0,max=60"`
	EditRules        []string `json:"editRules,omitempty"`
	Platform         string   `json:"platform,omitempty"`
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *PolishInput) ApplyDefaults() {
	in.TightenByPercent = intDefault(in.TightenByPercent, DefaultTightenByPercent)
	if in.Platform == "" {
		in.Platform = DefaultPlatform
	}
}

// Validate re-checks the range rules the instruction builder depends on.
func (in *PolishInput) Validate() error { return checkRanges(in) }

// HashtagizeInput holds parameters for the hashtag stage.
type HashtagizeInput struct {
	Text     string `json:"text" validate:"required"`
	MaxTags  *int   `json:"maxTags,omitempty" validate:"omitnil,min=1,max=5"`
	Strategy string `json:"strategy,omitempty"` // broad | balanced | niche
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *HashtagizeInput) ApplyDefaults() {
	in.MaxTags = intDefault(in.MaxTags, DefaultMaxTags)
	if in.Strategy == "" {
		in.Strategy = DefaultStrategy
	}
}

// Validate re-checks the range rules the instruction builder depends on.
func (in *HashtagizeInput) Validate() error { return checkRanges(in) }

// ImagePromptsInput holds parameters for the image-prompt stage.
type ImagePromptsInput struct {
	Text  string `json:"text" validate:"required"`
	Style string `json:"style,omitempty"` // diagram | minimal_illustration | flat_icon_set | photo | screenshot_mock
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *ImagePromptsInput) ApplyDefaults() {
	if in.Style == "" {
		in.Style = DefaultImageStyle
	}
}

// Validate re-checks the shape rules the instruction builder depends on.
func (in *ImagePromptsInput) Validate() error { return checkRanges(in) }

// PackageInput holds parameters for the package stage.
type PackageInput struct {
	Text        string       `json:"text" validate:"required"`
	Hashtags    []string     `json:"hashtags,omitempty"`
	ImagePrompt string       `json:"imagePrompt,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty"`
}

// ApplyDefaults resolves unset fields to their documented defaults.
func (in *PackageInput) ApplyDefaults() {
	if in.Constraints == nil {
		in.Constraints = &Constraints{}
	}
	in.Constraints.ApplyDefaults()
}

// Validate re-checks the shape rules the instruction builder depends on.
func (in *PackageInput) Validate() error { return checkRanges(in) }

// FullPostInput holds parameters for the end-to-end pipeline. Topic,
// Audience and Goal are free-form text here; the pipeline's instruction
// contracts differ intentionally from the standalone stages.
type FullPostInput struct {
	Topic       string `json:"topic" validate:"required"`
	Audience    string `json:"audience" validate:"required"`
	Goal        string `json:"goal" validate:"required"`
	Tone        string `json:"tone,omitempty"`
	Constraints string `json:"constraints,omitempty"`
	MaxHashtags *int   `json:"maxHashtags,omitempty"`
	Style       string `json:"style,omitempty"`
}

// ApplyDefaults resolves tone and the hashtag budget. A non-positive
// MaxHashtags is treated as absent rather than rejected.
func (in *FullPostInput) ApplyDefaults() {
	if strings.TrimSpace(in.Tone) == "" {
		in.Tone = string(TonePractical)
	}
	if in.MaxHashtags == nil || *in.MaxHashtags <= 0 {
		in.MaxHashtags = intDefault(nil, DefaultMaxTags)
	}
}

// Validate checks the required free-form fields.
func (in *FullPostInput) Validate() error { return checkRanges(in) }

func intDefault(p *int, def int) *int {
	if p == nil {
		v := def
		return &v
	}
	return p
}

func boolDefault(p *bool, def bool) *bool {
	if p == nil {
		v := def
		return &v
	}
	return p
}
