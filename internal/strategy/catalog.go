package strategy

// Goal is a content marketing objective
type Goal struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	RecommendedPatterns []string `json:"recommendedPatterns"`
	RecommendedModels   []string `json:"recommendedModels"`
	OutputFormats       []string `json:"recommendedOutputFormats"`
	Tones               []string `json:"recommendedTones"`
	Styles              []string `json:"recommendedStyles"`
}

// ContentType is a kind of deliverable
type ContentType struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	RecommendedPatterns []string `json:"recommendedPatterns"`
	RecommendedModels   []string `json:"recommendedModels"`
	OutputFormats       []string `json:"recommendedOutputFormats"`
	Tones               []string `json:"recommendedTones"`
	Styles              []string `json:"recommendedStyles"`
	AverageLength       string   `json:"averageLength"`
}

// Catalog ids the freeform path falls back to
const (
	DefaultGoalID              = "brand-awareness"
	DefaultTypeID              = "blog-post"
	PromptEngineeringGoalID    = "thought-leadership"
	PromptEngineeringTypeID    = "prompt-engineering"
	PromptEngineeringPatternID = "llm-prompt-engineering"
)

// Goals returns the built-in goals in matching order
func Goals() []Goal {
	return []Goal{
		{
			ID:                  "brand-awareness",
			Name:                "Brand Awareness",
			Description:         "Increase visibility and recognition of your brand",
			RecommendedPatterns: []string{"social-media-campaign", "blog-outline"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus", "Jasper"},
			OutputFormats:       []string{"paragraph", "bullet-points"},
			Tones:               []string{"conversational", "enthusiastic", "friendly"},
			Styles:              []string{"creative", "persuasive"},
		},
		{
			ID:                  "lead-generation",
			Name:                "Lead Generation",
			Description:         "Capture potential customer information and interest",
			RecommendedPatterns: []string{"email-sequence", "seo-article"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus", "Jasper", "CopyAI"},
			OutputFormats:       []string{"paragraph", "bullet-points"},
			Tones:               []string{"persuasive", "professional", "friendly"},
			Styles:              []string{"persuasive", "professional"},
		},
		{
			ID:                  "conversion",
			Name:                "Conversion",
			Description:         "Turn prospects into customers",
			RecommendedPatterns: []string{"product-description", "email-sequence"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus", "Jasper", "CopyAI"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"persuasive", "enthusiastic", "urgent"},
			Styles:              []string{"persuasive", "professional"},
		},
		{
			ID:                  "customer-retention",
			Name:                "Customer Retention",
			Description:         "Keep existing customers engaged and loyal",
			RecommendedPatterns: []string{"email-sequence", "social-media-campaign"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus", "Jasper"},
			OutputFormats:       []string{"paragraph", "bullet-points"},
			Tones:               []string{"friendly", "appreciative", "helpful"},
			Styles:              []string{"conversational", "professional"},
		},
		{
			ID:                  "seo",
			Name:                "SEO",
			Description:         "Improve search engine rankings and organic traffic",
			RecommendedPatterns: []string{"seo-article", "blog-outline"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"informative", "authoritative"},
			Styles:              []string{"informative", "professional"},
		},
		{
			ID:                  "thought-leadership",
			Name:                "Thought Leadership",
			Description:         "Establish authority and expertise in your industry",
			RecommendedPatterns: []string{"seo-article", "blog-outline"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus"},
			OutputFormats:       []string{"paragraph", "bullet-points"},
			Tones:               []string{"authoritative", "informative", "professional"},
			Styles:              []string{"informative", "professional"},
		},
	}
}

// ContentTypes returns the built-in content types in matching order
func ContentTypes() []ContentType {
	return []ContentType{
		{
			ID:                  "prompt-engineering",
			Name:                "Prompt Engineering",
			Description:         "Specialized prompts for optimizing LLM outputs",
			RecommendedPatterns: []string{"llm-prompt-engineering"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"technical", "professional", "instructive"},
			Styles:              []string{"technical", "professional", "instructive"},
			AverageLength:       "500-1,000 words",
		},
		{
			ID:                  "blog-post",
			Name:                "Blog Post",
			Description:         "Long-form content published on a blog",
			RecommendedPatterns: []string{"blog-outline", "seo-article"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"conversational", "informative", "professional"},
			Styles:              []string{"informative", "conversational", "professional"},
			AverageLength:       "1,000-2,000 words",
		},
		{
			ID:                  "social-media-post",
			Name:                "Social Media Post",
			Description:         "Short-form content for social platforms",
			RecommendedPatterns: []string{"social-media-campaign"},
			RecommendedModels:   []string{"GPT-4", "GPT-3.5 Turbo", "Jasper", "CopyAI"},
			OutputFormats:       []string{"paragraph", "bullet-points"},
			Tones:               []string{"conversational", "enthusiastic", "friendly"},
			Styles:              []string{"creative", "conversational", "persuasive"},
			AverageLength:       "50-280 characters",
		},
		{
			ID:                  "email",
			Name:                "Email",
			Description:         "Content delivered directly to subscriber inboxes",
			RecommendedPatterns: []string{"email-sequence"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus", "Jasper", "CopyAI"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"conversational", "friendly", "persuasive"},
			Styles:              []string{"conversational", "persuasive", "professional"},
			AverageLength:       "300-500 words",
		},
		{
			ID:                  "product-description",
			Name:                "Product Description",
			Description:         "Content that describes and sells a product",
			RecommendedPatterns: []string{"product-description"},
			RecommendedModels:   []string{"GPT-4", "GPT-3.5 Turbo", "Jasper", "CopyAI"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"enthusiastic", "persuasive"},
			Styles:              []string{"persuasive", "professional"},
			AverageLength:       "200-400 words",
		},
		{
			ID:                  "landing-page",
			Name:                "Landing Page",
			Description:         "Focused page designed to convert visitors",
			RecommendedPatterns: []string{"product-description"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus", "Jasper", "CopyAI"},
			OutputFormats:       []string{"paragraph", "bullet-points"},
			Tones:               []string{"persuasive", "enthusiastic"},
			Styles:              []string{"persuasive", "professional"},
			AverageLength:       "500-1,000 words",
		},
		{
			ID:                  "whitepaper",
			Name:                "Whitepaper",
			Description:         "In-depth, authoritative document on a specific topic",
			RecommendedPatterns: []string{"seo-article"},
			RecommendedModels:   []string{"GPT-4", "Claude 3 Opus"},
			OutputFormats:       []string{"paragraph"},
			Tones:               []string{"authoritative", "professional", "informative"},
			Styles:              []string{"informative", "professional"},
			AverageLength:       "2,000-5,000 words",
		},
	}
}
