package profile

// Provider is the vendor family behind a model profile
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderXAI       Provider = "xai"
	ProviderGoogle    Provider = "google"
	ProviderJasper    Provider = "jasper"
	ProviderCopyAI    Provider = "copyai"
)

// Profile describes how to write prompts for one target model
type Profile struct {
	Name                string
	Provider            Provider
	ContextWindow       int
	Strengths           []string
	Weaknesses          []string
	PreferredFormats    []string
	SpecialInstructions []string
	CompatibleTools     []string
	OptimizationTips    []string
}

// Public is the API view of a profile. Special instructions are withheld.
type Public struct {
	Name             string   `json:"name"`
	Provider         Provider `json:"provider"`
	ContextWindow    int      `json:"contextWindow"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	PreferredFormats []string `json:"preferredFormats"`
	CompatibleTools  []string `json:"compatibleTools"`
	OptimizationTips []string `json:"optimizationTips"`
}

// Public returns the consumer-safe view of p
func (p Profile) Public() Public {
	return Public{
		Name:             p.Name,
		Provider:         p.Provider,
		ContextWindow:    p.ContextWindow,
		Strengths:        p.Strengths,
		Weaknesses:       p.Weaknesses,
		PreferredFormats: p.PreferredFormats,
		CompatibleTools:  p.CompatibleTools,
		OptimizationTips: p.OptimizationTips,
	}
}
