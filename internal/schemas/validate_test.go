package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		document string
		valid    bool
	}{
		{
			name:     "idea items ok",
			schema:   IdeaItems,
			document: `[{"id":"a","title":"T","hook":"H"}]`,
			valid:    true,
		},
		{
			name:     "idea items empty array ok",
			schema:   IdeaItems,
			document: `[]`,
			valid:    true,
		},
		{
			name:     "idea items missing title",
			schema:   IdeaItems,
			document: `[{"id":"a","hook":"H"}]`,
			valid:    false,
		},
		{
			name:     "idea items object instead of array",
			schema:   IdeaItems,
			document: `{"ideas":[]}`,
			valid:    false,
		},
		{
			name:     "outline ok",
			schema:   Outline,
			document: `{"hook":"h","bullets":["b"],"cta":"ask_opinion"}`,
			valid:    true,
		},
		{
			name:     "outline bullets wrong type",
			schema:   Outline,
			document: `{"hook":"h","bullets":"b","cta":"c"}`,
			valid:    false,
		},
		{
			name:     "polish ok",
			schema:   Polish,
			document: `{"polished":"p","charCount":1,"diffs":[]}`,
			valid:    true,
		},
		{
			name:     "polish missing polished",
			schema:   Polish,
			document: `{"charCount":1}`,
			valid:    false,
		},
		{
			name:     "hashtagize ok",
			schema:   Hashtagize,
			document: `{"hashtags":["#a"],"rationale":"r"}`,
			valid:    true,
		},
		{
			name:     "package ok",
			schema:   Package,
			document: `{"finalText":"t","finalCharCount":1,"hashtags":[],"imagePrompt":"","warnings":[]}`,
			valid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema, []byte(tt.document))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.schema, verr.Schema)
			assert.NotEmpty(t, verr.Errors)
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	assert.Error(t, err)
}
