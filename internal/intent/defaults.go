package intent

import "strings"

// GenerationDefaults returns fill-in values for any placeholders still left in a
// prompt at generation time. Topic and model are read from the prompt title.
func GenerationDefaults(title string) map[string]string {
	topic := extractTitle(title)

	targetLLM := DefaultTargetLLM
	if v, ok := firstGroup(genericModel, title); ok {
		targetLLM = v
	}
	lower := strings.ToLower(title)
	if strings.Contains(lower, "different llm") || strings.Contains(lower, "different ai model") {
		if v, ok := firstGroup(namedModelRe, title); ok {
			targetLLM = v
		}
	}

	return map[string]string{
		"title":             topic,
		"audience":          "content creators and marketers",
		"topic":             topic,
		"goal":              "educating the audience and establishing authority",
		"hook":              "a compelling statistic or question",
		"keyTakeaway":       "the importance of the topic",
		"desiredAction":     "implement the strategies discussed",
		"tone":              "conversational yet informative",
		"primaryKeyword":    topic,
		"secondaryKeywords": "related industry terms",

		"industry":     "artificial intelligence and content creation",
		"statistic":    "Studies show that well-engineered prompts can improve AI response relevance by up to 70%",
		"mainSection1": "Understanding the Fundamentals",
		"mainSection2": "Key Strategies and Techniques",
		"mainSection3": "Practical Applications",
		"mainSection4": "Future Trends and Developments",
		"point1_1":     "Core concepts and terminology",
		"point1_2":     "Historical development and context",
		"point1_3":     "Current state of the technology",
		"point2_1":     "Best practices and methodologies",
		"point2_2":     "Common challenges and solutions",
		"point2_3":     "Tools and resources available",
		"point3_1":     "Case study from the industry",
		"point3_2":     "Implementation steps and guidelines",
		"point3_3":     "Measuring success and ROI",

		"targetLLM": targetLLM,
		"purpose":   "creating high-quality content",
		"modelName": targetLLM,

		"product/service":   "our AI content platform",
		"duration":          "4 weeks",
		"postsPerPlatform":  "5-7",
		"valueProposition":  "increased productivity and content quality",
		"twitterFocus":      "quick tips and industry news",
		"instagramEmphasis": "visual results and success stories",
		"facebookFocus":     "community building and user testimonials",
		"linkedinHashtags":  "#AIWriting #ContentCreation #ProductivityTips",
		"twitterHashtags":   "#AI #ContentMarketing #WritingTips",
		"instagramHashtags": "#ContentCreators #AITools #DigitalMarketing",
		"brandVoice":        "helpful, innovative, and approachable",

		"numberOfEmails":          "5",
		"funnelStage":             "consideration",
		"conversionGoal":          "signing up for a free trial",
		"painPoint":               "time-consuming content creation process",
		"valueEvidence":           "case studies and testimonials",
		"commonObjection":         "concerns about AI-generated content quality",
		"socialProofExample":      "success stories from similar businesses",
		"urgencyElement":          "limited-time discount offer",
		"incentive":               "extended trial period",
		"personalizationElements": "name, company, and industry",
		"length":                  "medium-length (300-500 words)",
	}
}
