package prompt

// Data is the prompt value that flows through every pipeline stage.
// SpecificDetails is cumulative: optimizer and orchestrator notes are appended to it.
type Data struct {
	Title           string `json:"title" yaml:"title,omitempty"`
	Content         string `json:"content" yaml:"content,omitempty"`
	Model           string `json:"model" yaml:"model,omitempty"`
	Goal            string `json:"goal" yaml:"goal,omitempty"`
	OutputFormat    string `json:"outputFormat" yaml:"output_format,omitempty"`
	Style           string `json:"style" yaml:"style,omitempty"`
	Tone            string `json:"tone" yaml:"tone,omitempty"`
	ActionVerb      string `json:"actionVerb" yaml:"action_verb,omitempty"`
	SpecificDetails string `json:"specificDetails" yaml:"specific_details,omitempty"`
	UseRolePlaying  bool   `json:"useRolePlaying" yaml:"use_role_playing,omitempty"`
	Role            string `json:"role" yaml:"role,omitempty"`
}

// Global fallbacks used when a pattern does not set a default
const (
	DefaultModel        = "GPT-4"
	DefaultGoal         = "generate-content"
	DefaultOutputFormat = "paragraph"
	DefaultStyle        = "professional"
	DefaultTone         = "informative"
	DefaultActionVerb   = "Create"
)

// AppendDetails adds a note to SpecificDetails without replacing earlier notes
func (d *Data) AppendDetails(note string) {
	d.SpecificDetails += note
}

// orDefault returns v unless it is empty
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// WithDefaults returns a copy of d where empty descriptive fields take the global fallbacks
func (d Data) WithDefaults() Data {
	d.Model = orDefault(d.Model, DefaultModel)
	d.Goal = orDefault(d.Goal, DefaultGoal)
	d.OutputFormat = orDefault(d.OutputFormat, DefaultOutputFormat)
	d.Style = orDefault(d.Style, DefaultStyle)
	d.Tone = orDefault(d.Tone, DefaultTone)
	d.ActionVerb = orDefault(d.ActionVerb, DefaultActionVerb)
	return d
}
