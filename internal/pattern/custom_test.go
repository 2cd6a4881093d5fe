package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Launch Notes", "launch-notes"},
		{"  webinar_invite  ", "webinar-invite"},
		{"Q3 -- Recap!!", "q3-recap"},
		{"---", ""},
		{"case-study", "case-study"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeID(tt.in))
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, Pattern{
		Name:           "Webinar Invite",
		Description:    "Invites prospects to a live webinar",
		Category:       "email",
		Template:       "Write an invite to {{event}} for {{audience}}.",
		MarketingGoals: []string{"Lead Generation"},
		ContentTypes:   []string{"Email"},
		Difficulty:     Beginner,
		Effectiveness:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "webinar-invite", FileName), path)

	patterns, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, "webinar-invite", p.ID)
	assert.Equal(t, "Webinar Invite", p.Name)
	assert.Equal(t, "Write an invite to {{event}} for {{audience}}.", p.Template)
	assert.Equal(t, []string{"Lead Generation"}, p.MarketingGoals)
	assert.Equal(t, Beginner, p.Difficulty)
	assert.Equal(t, 7, p.Effectiveness)
}

func TestSaveRejectsEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := Save(dir, Pattern{Name: "!!!", Template: "x"})
	assert.Error(t, err)

	_, err = Save(dir, Pattern{Name: "Empty", Template: "   "})
	assert.Error(t, err)
}

func TestLoadDirSkipsInvalid(t *testing.T) {
	dir := t.TempDir()

	write := func(id, content string) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, id), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, id, FileName), []byte(content), 0644))
	}

	write("no-frontmatter", "just a template")
	write("no-template", "---\nname: Nothing\n---\n")
	write("derived-id", "---\nname: Derived\n---\n\nHello {{name}}")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty-dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.md"), []byte("ignored"), 0644))

	patterns, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "derived-id", patterns[0].ID)
	assert.Equal(t, "Hello {{name}}", patterns[0].Template)
}

func TestLoadDirMissing(t *testing.T) {
	patterns, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, patterns)

	patterns, err = LoadDir("")
	assert.NoError(t, err)
	assert.Empty(t, patterns)
}
