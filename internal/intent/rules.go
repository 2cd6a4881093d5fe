package intent

import (
	"regexp"
	"strings"
)

// Rule fills one template variable from the request.
// found holds the values produced by earlier rules.
type Rule struct {
	Name    string
	Extract func(input string, found map[string]string) string
}

var (
	titleRe       = regexp.MustCompile(`(?i)(?:about|on|for|regarding|titled?)\s+["']?([^"'\n.,]+)`)
	audienceRe    = regexp.MustCompile(`(?i)(?:for|targeting|aimed at|to)\s+["']?([^"'\n.,]+(?:\s+audience|s|ers|ors|people|professionals|experts|beginners|users)?)`)
	audienceTail  = regexp.MustCompile(`(?i)\s+(audience|s|ers|ors|people)$`)
	namedModelRe  = regexp.MustCompile(`(?i)(?:for|using|with|in)\s+["']?(GPT-4|GPT-3\.5|Claude|Gemini|Llama|Mistral|Bard|PaLM)(?:\s+|$)`)
	genericModel  = regexp.MustCompile(`(?i)(?:for|using|with|in)\s+["']?([A-Za-z0-9-]+(?:\s+[A-Za-z0-9]+)?(?:\s+[A-Za-z0-9]+)?)(?:\s+LLMs?|\s+models?|\s+AI)`)
	purposeRe     = regexp.MustCompile(`(?i)(?:for|to)\s+["']?([^"'\n.,]+(?:\s+purposes?|ing|tion|ment|goals?)?)`)
	purposeTail   = regexp.MustCompile(`(?i)\s+(purposes?|ing|tion|ment|goals?)$`)
	industryRe    = regexp.MustCompile(`(?i)(?:in|for|within|the)\s+["']?([^"'\n.,]+(?:\s+industry|sector|field|market|niche)?)`)
	industryTail  = regexp.MustCompile(`(?i)\s+(industry|sector|field|market|niche)$`)
	topicLeadIn   = regexp.MustCompile(`^Create a prompt for GPT-4 about `)
	analysisBlock = "PART 1: LLM ANALYSIS"
)

// DefaultTargetLLM is used when no model can be read from the request
const DefaultTargetLLM = "GPT-4"

// firstGroup returns the trimmed first capture of re in s
func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func extractTitle(input string) string {
	if v, ok := firstGroup(titleRe, input); ok {
		return v
	}
	return input
}

func extractTargetLLM(input string) string {
	value := DefaultTargetLLM
	if v, ok := firstGroup(namedModelRe, input); ok {
		value = v
	} else if v, ok := firstGroup(genericModel, input); ok {
		value = v
	}

	// "for different LLMs" names no model
	if strings.Contains(strings.ToLower(input), "different llm") && strings.EqualFold(value, "different") {
		value = DefaultTargetLLM
	}
	return value
}

// suffixed extracts with re, strips tail, and falls back to def
func suffixed(re, tail *regexp.Regexp, def string) func(string, map[string]string) string {
	return func(input string, _ map[string]string) string {
		v, ok := firstGroup(re, input)
		if !ok {
			return def
		}
		return tail.ReplaceAllString(v, "")
	}
}

// constant always yields v
func constant(v string) func(string, map[string]string) string {
	return func(string, map[string]string) string { return v }
}

// titleOrInput mirrors an already extracted title, else the whole request
func titleOrInput(input string, found map[string]string) string {
	if t := found["title"]; t != "" {
		return t
	}
	return input
}

// DefaultRules is the extraction chain in precedence order
func DefaultRules() []Rule {
	return []Rule{
		{Name: "title", Extract: func(input string, _ map[string]string) string { return extractTitle(input) }},
		{Name: "audience", Extract: suffixed(audienceRe, audienceTail, "content creators and marketers")},
		{Name: "topic", Extract: titleOrInput},
		{Name: "targetLLM", Extract: func(input string, _ map[string]string) string { return extractTargetLLM(input) }},
		{Name: "purpose", Extract: suffixed(purposeRe, purposeTail, "creating high-quality content")},
		{Name: "industry", Extract: suffixed(industryRe, industryTail, "artificial intelligence and content creation")},
		{Name: "goal", Extract: constant("educating the audience and establishing authority")},
		{Name: "hook", Extract: constant("a compelling statistic or question")},
		{Name: "keyTakeaway", Extract: constant("the importance of the topic")},
		{Name: "desiredAction", Extract: constant("implement the strategies discussed")},
		{Name: "tone", Extract: constant("conversational yet informative")},
		{Name: "primaryKeyword", Extract: titleOrInput},
		{Name: "secondaryKeywords", Extract: constant("related industry terms")},
		{Name: "statistic", Extract: constant("Studies show that well-engineered prompts can improve AI response relevance by up to 70%")},
		{Name: "mainSection1", Extract: constant("Understanding the Fundamentals")},
		{Name: "mainSection2", Extract: constant("Key Strategies and Techniques")},
		{Name: "mainSection3", Extract: constant("Practical Applications")},
		{Name: "mainSection4", Extract: constant("Future Trends and Developments")},
	}
}
