package pattern

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahboukie/promptpro/internal/prompt"
)

func TestBuiltinCatalog(t *testing.T) {
	lib := NewLibrary(Builtin())

	ids := make([]string, 0, lib.Count())
	for _, p := range lib.All() {
		ids = append(ids, p.ID)
		assert.NotEmpty(t, p.Template, "pattern %s has no template", p.ID)
		assert.NotEmpty(t, p.BestPractices, "pattern %s has no best practices", p.ID)
		assert.GreaterOrEqual(t, p.Effectiveness, 1)
		assert.LessOrEqual(t, p.Effectiveness, 10)
	}

	assert.Equal(t, []string{
		"blog-outline",
		"social-media-campaign",
		"email-sequence",
		"product-description",
		"seo-article",
		"llm-prompt-engineering",
	}, ids)
}

func TestLibraryGet(t *testing.T) {
	lib := NewLibrary(Builtin())

	p, ok := lib.Get("seo-article")
	require.True(t, ok)
	assert.Equal(t, "SEO-Optimized Article", p.Name)

	_, ok = lib.Get("does-not-exist")
	assert.False(t, ok)

	var nilLib *Library
	_, ok = nilLib.Get("seo-article")
	assert.False(t, ok)
	assert.Zero(t, nilLib.Count())
	assert.Empty(t, nilLib.ByCategory("seo"))
}

func TestLibraryFirstIDWins(t *testing.T) {
	custom := []Pattern{
		{ID: "blog-outline", Name: "Shadowed"},
		{ID: "", Name: "No id"},
		{ID: "launch-notes", Name: "Launch Notes", Template: "Notes for {{product}}"},
	}
	lib := NewLibrary(Builtin(), custom)

	assert.Equal(t, len(Builtin())+1, lib.Count())

	p, ok := lib.Get("blog-outline")
	require.True(t, ok)
	assert.Equal(t, "Blog Post Outline", p.Name)

	_, ok = lib.Get("launch-notes")
	assert.True(t, ok)
}

func TestLibraryFilters(t *testing.T) {
	lib := NewLibrary(Builtin())

	tests := []struct {
		name string
		got  []Pattern
		want []string
	}{
		{
			name: "category seo",
			got:  lib.ByCategory("seo"),
			want: []string{"seo-article"},
		},
		{
			name: "content type blog post",
			got:  lib.ByContentType("Blog Post"),
			want: []string{"blog-outline", "seo-article"},
		},
		{
			name: "goal conversion",
			got:  lib.ByGoal("Conversion"),
			want: []string{"email-sequence", "product-description"},
		},
		{
			name: "goal matching is exact",
			got:  lib.ByGoal("conversion"),
			want: []string{},
		},
		{
			name: "unknown category",
			got:  lib.ByCategory("podcast"),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, p := range tt.got {
				ids = append(ids, p.ID)
			}
			assert.NotNil(t, tt.got)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestApplyBlogOutline(t *testing.T) {
	lib := NewLibrary(Builtin())

	data, err := lib.Apply("blog-outline", map[string]string{
		"industry": "fintech",
		"title":    "Open Banking",
	})
	require.NoError(t, err)

	assert.Equal(t, "Blog Post Outline", data.Title)
	assert.Contains(t, data.Content, "specializing in fintech")
	assert.Contains(t, data.Content, `titled "Open Banking"`)
	assert.Contains(t, data.Content, "[audience]")
	assert.NotContains(t, data.Content, "{{")
	assert.Equal(t, "bullet-points", data.OutputFormat)
	assert.Equal(t, "Expert Content Strategist", data.Role)
	assert.True(t, data.UseRolePlaying)
	assert.True(t, strings.HasPrefix(data.SpecificDetails, "Best practices for this pattern:\n- Be specific about your target audience"))
}

func TestApplyLeavesNoPlaceholders(t *testing.T) {
	lib := NewLibrary(Builtin())

	for _, p := range lib.All() {
		t.Run(p.ID, func(t *testing.T) {
			data, err := lib.Apply(p.ID, map[string]string{})
			require.NoError(t, err)
			assert.False(t, prompt.HasPlaceholders(data.Content))
			assert.Equal(t, p.Name, data.Title)
		})
	}
}

func TestApplyUnknownPattern(t *testing.T) {
	lib := NewLibrary(Builtin())

	_, err := lib.Apply("nope", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBestPracticesNote(t *testing.T) {
	got := BestPracticesNote([]string{"one", "two"})
	assert.Equal(t, "Best practices for this pattern:\n- one\n- two", got)
}
