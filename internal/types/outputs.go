package types

import "unicode/utf8"

// IdeaItem is one generated post idea.
type IdeaItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Hook  string `json:"hook"`
}

// IdeasOutput is the ideate stage result.
type IdeasOutput struct {
	Ideas []IdeaItem `json:"ideas"`
}

// Outline is the structured outline returned by the standalone outline
// stage. The full pipeline uses a plain-string outline instead; the two
// contracts are intentionally different.
type Outline struct {
	Hook    string   `json:"hook"`
	Bullets []string `json:"bullets"`
	CTA     string   `json:"cta"`
}

// OutlineOutput is the standalone outline stage result.
type OutlineOutput struct {
	Outline Outline `json:"outline"`
}

// DraftOutput is the draft stage result.
type DraftOutput struct {
	Draft     string `json:"draft"`
	CharCount int    `json:"charCount"`
}

// DiffItem records one edit made during polishing.
type DiffItem struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Rationale string `json:"rationale"`
}

// PolishOutput is the polish stage result. CharCount is recomputed
// over Polished, never trusted from the generation service.
type PolishOutput struct {
	Polished  string     `json:"polished"`
	CharCount int        `json:"charCount"`
	Diffs     []DiffItem `json:"diffs"`
}

// HashtagizeOutput is the hashtag stage result.
type HashtagizeOutput struct {
	Hashtags  []string `json:"hashtags"`
	Rationale string   `json:"rationale"`
}

// ImagePromptsOutput is the image-prompt stage result.
type ImagePromptsOutput struct {
	Prompts []string `json:"prompts"`
}

// PackageOutput is the package stage result. FinalCharCount is
// recomputed over FinalText.
type PackageOutput struct {
	FinalText      string   `json:"finalText"`
	FinalCharCount int      `json:"finalCharCount"`
	Hashtags       []string `json:"hashtags"`
	ImagePrompt    string   `json:"imagePrompt"`
	Warnings       []string `json:"warnings"`
}

// FullPostOutput is the end-to-end pipeline artifact. FinalText is the
// trimmed draft with the hashtag line appended when hashtags exist;
// CharCount is always the character length of FinalText.
type FullPostOutput struct {
	IdeaTitle   string   `json:"ideaTitle"`
	Outline     string   `json:"outline"`
	Draft       string   `json:"draft"`
	Hashtags    []string `json:"hashtags"`
	ImagePrompt string   `json:"imagePrompt"`
	FinalText   string   `json:"finalText"`
	CharCount   int      `json:"charCount"`
}

// CountChars returns the character length of s as counted for platform
// limits (code points, not bytes).
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}
