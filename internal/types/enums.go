// Package types provides type definitions for structured data used throughout the post agent.
package types

import (
	"encoding/json"
	"strings"
)

// Topic is the closed set of post topics the agent writes about.
type Topic string

// Topic variants
const (
	TopicProjectManagement Topic = "project_management"
	TopicDevOps            Topic = "devops"
	TopicAutomation        Topic = "automation"
)

// ParseTopic maps free-form input to a Topic variant. Matching is by
// substring, checked in declaration order; unrecognized input resolves
// to TopicProjectManagement. The mapping is total and never fails.
func ParseTopic(value string) Topic {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.Contains(v, "project"):
		return TopicProjectManagement
	case strings.Contains(v, "devops"):
		return TopicDevOps
	case strings.Contains(v, "automation"), strings.Contains(v, "test"), strings.Contains(v, "qa"):
		return TopicAutomation
	default:
		return TopicProjectManagement
	}
}

// UnmarshalJSON accepts any string and resolves it through ParseTopic.
func (t *Topic) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTopic(s)
	return nil
}

// Tone is the closed set of writing tones.
type Tone string

// Tone variants
const (
	TonePractical     Tone = "practical"
	ToneFriendly      Tone = "friendly"
	ToneStorytelling  Tone = "storytelling"
	ToneInspirational Tone = "inspirational"
)

// ParseTone maps free-form input to a Tone variant, defaulting to
// TonePractical for unrecognized or blank input.
func ParseTone(value string) Tone {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.Contains(v, "friend"):
		return ToneFriendly
	case strings.Contains(v, "story"):
		return ToneStorytelling
	case strings.Contains(v, "inspir"):
		return ToneInspirational
	default:
		return TonePractical
	}
}

// UnmarshalJSON accepts any string and resolves it through ParseTone.
func (t *Tone) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTone(s)
	return nil
}

// PostFormat is the closed set of allowed post formats.
type PostFormat string

// PostFormat variants
const (
	FormatTipList       PostFormat = "tip_list"
	FormatChecklist     PostFormat = "checklist"
	FormatHowTo         PostFormat = "how_to"
	FormatLessonLearned PostFormat = "lesson_learned"
	FormatMythVsFact    PostFormat = "myth_vs_fact"
	FormatMiniCaseStudy PostFormat = "mini_case_study"
	FormatOpinion       PostFormat = "opinion"
)

// ParsePostFormat maps free-form input to a PostFormat variant,
// defaulting to FormatTipList for unrecognized input.
func ParsePostFormat(value string) PostFormat {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.Contains(v, "tip"):
		return FormatTipList
	case strings.Contains(v, "check"):
		return FormatChecklist
	case strings.Contains(v, "how"):
		return FormatHowTo
	case strings.Contains(v, "lesson"):
		return FormatLessonLearned
	case strings.Contains(v, "myth"):
		return FormatMythVsFact
	case strings.Contains(v, "case"):
		return FormatMiniCaseStudy
	case strings.Contains(v, "opinion"):
		return FormatOpinion
	default:
		return FormatTipList
	}
}

// UnmarshalJSON accepts any string and resolves it through ParsePostFormat.
func (f *PostFormat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = ParsePostFormat(s)
	return nil
}

// AudienceLevel is the closed set of audience experience levels.
type AudienceLevel string

// AudienceLevel variants
const (
	AudienceBeginner     AudienceLevel = "beginner"
	AudienceIntermediate AudienceLevel = "intermediate"
	AudienceAdvanced     AudienceLevel = "advanced"
	AudienceExecutive    AudienceLevel = "executive"
)

// ParseAudienceLevel maps free-form input to an AudienceLevel variant,
// defaulting to AudienceIntermediate.
func ParseAudienceLevel(value string) AudienceLevel {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.Contains(v, "begin"):
		return AudienceBeginner
	case strings.Contains(v, "adv"):
		return AudienceAdvanced
	case strings.Contains(v, "exec"):
		return AudienceExecutive
	default:
		return AudienceIntermediate
	}
}

// UnmarshalJSON accepts any string and resolves it through ParseAudienceLevel.
func (a *AudienceLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAudienceLevel(s)
	return nil
}
