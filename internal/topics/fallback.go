package topics

import (
	"github.com/article-writer-api/internal/models"
)

// fallbackSource marks curated topics substituted when every provider
// fails or returns nothing.
const fallbackSource = "curated"

// nicheFallbacks is the hand-curated trending substitute, keyed by niche
var nicheFallbacks = map[string][]models.Topic{
	"technology": {
		{Title: "How AI Is Changing Everyday Software", Description: "Practical ways machine learning features are showing up in consumer apps", Source: fallbackSource, Relevance: 0.5},
		{Title: "The Rise of Passwordless Authentication", Description: "Passkeys and what they mean for account security", Source: fallbackSource, Relevance: 0.45},
		{Title: "Edge Computing Explained", Description: "Why processing data closer to users matters", Source: fallbackSource, Relevance: 0.4},
	},
	"health": {
		{Title: "Sleep Hygiene Habits That Actually Work", Description: "Evidence-backed routines for better rest", Source: fallbackSource, Relevance: 0.5},
		{Title: "Strength Training for Beginners", Description: "Getting started safely without a gym", Source: fallbackSource, Relevance: 0.45},
		{Title: "Understanding Ultra-Processed Foods", Description: "What the label really tells you", Source: fallbackSource, Relevance: 0.4},
	},
	"business": {
		{Title: "Remote Work and the Four-Day Week", Description: "How companies are restructuring the work week", Source: fallbackSource, Relevance: 0.5},
		{Title: "Small Business Cash Flow Basics", Description: "Managing money in the first year", Source: fallbackSource, Relevance: 0.45},
		{Title: "Subscription Pricing Strategies", Description: "When recurring revenue models work", Source: fallbackSource, Relevance: 0.4},
	},
	"lifestyle": {
		{Title: "Minimalism Without the Extremes", Description: "Decluttering that fits real life", Source: fallbackSource, Relevance: 0.5},
		{Title: "Digital Detox Strategies", Description: "Reducing screen time without quitting", Source: fallbackSource, Relevance: 0.45},
		{Title: "Morning Routines of Productive People", Description: "What the research actually supports", Source: fallbackSource, Relevance: 0.4},
	},
	"entertainment": {
		{Title: "The Streaming Wars in 2025", Description: "How platforms compete for attention", Source: fallbackSource, Relevance: 0.5},
		{Title: "Why Video Game Adaptations Finally Work", Description: "From cursed genre to prestige TV", Source: fallbackSource, Relevance: 0.45},
		{Title: "The Comeback of Vinyl and Physical Media", Description: "Collectors drive an analog revival", Source: fallbackSource, Relevance: 0.4},
	},
	"sports": {
		{Title: "Analytics and the Modern Game", Description: "How data reshaped professional sports", Source: fallbackSource, Relevance: 0.5},
		{Title: "Recovery Science for Amateur Athletes", Description: "What pros do that you can too", Source: fallbackSource, Relevance: 0.45},
		{Title: "The Growth of Women's Leagues", Description: "Attendance and viewership records keep falling", Source: fallbackSource, Relevance: 0.4},
	},
	"education": {
		{Title: "Microlearning and Skill Stacking", Description: "Short-form learning that sticks", Source: fallbackSource, Relevance: 0.5},
		{Title: "AI Tutors in the Classroom", Description: "Promise and pitfalls of automated teaching", Source: fallbackSource, Relevance: 0.45},
		{Title: "Is the Four-Year Degree Still Worth It", Description: "Alternatives gaining ground with employers", Source: fallbackSource, Relevance: 0.4},
	},
	"travel": {
		{Title: "Slow Travel and Longer Stays", Description: "Why travelers are trading itineraries for immersion", Source: fallbackSource, Relevance: 0.5},
		{Title: "Off-Season Destinations Worth the Trip", Description: "Beating crowds and prices", Source: fallbackSource, Relevance: 0.45},
		{Title: "Working Remotely From Anywhere", Description: "Digital nomad visas compared", Source: fallbackSource, Relevance: 0.4},
	},
	"food": {
		{Title: "Fermentation at Home", Description: "From sourdough to kimchi, a starter guide", Source: fallbackSource, Relevance: 0.5},
		{Title: "Plant-Based Cooking for Skeptics", Description: "Meals that win over meat eaters", Source: fallbackSource, Relevance: 0.45},
		{Title: "The Economics of Eating Out", Description: "Why restaurant prices keep climbing", Source: fallbackSource, Relevance: 0.4},
	},
	"fashion": {
		{Title: "Capsule Wardrobes Done Right", Description: "Fewer pieces, more outfits", Source: fallbackSource, Relevance: 0.5},
		{Title: "Secondhand Style Goes Mainstream", Description: "Thrifting and resale platforms boom", Source: fallbackSource, Relevance: 0.45},
		{Title: "Sustainable Fabrics to Watch", Description: "Beyond organic cotton", Source: fallbackSource, Relevance: 0.4},
	},
	"science": {
		{Title: "What the Webb Telescope Has Found So Far", Description: "Discoveries rewriting astronomy textbooks", Source: fallbackSource, Relevance: 0.5},
		{Title: "CRISPR Therapies Reach Patients", Description: "Gene editing moves from lab to clinic", Source: fallbackSource, Relevance: 0.45},
		{Title: "The Race for Fusion Energy", Description: "Recent milestones and what they mean", Source: fallbackSource, Relevance: 0.4},
	},
	"politics": {
		{Title: "How Election Polling Works", Description: "Reading the numbers without the spin", Source: fallbackSource, Relevance: 0.5},
		{Title: "Local Government Decisions That Affect You", Description: "Why city council matters more than you think", Source: fallbackSource, Relevance: 0.45},
		{Title: "Regulating Big Tech Around the World", Description: "Comparing approaches across regions", Source: fallbackSource, Relevance: 0.4},
	},
}

// genericFallback is the last resort when the niche has no curated list
var genericFallback = []models.Topic{
	{Title: "Trending Topics in Your Niche", Description: "Popular themes readers are searching for right now", Source: fallbackSource, Relevance: 0.3},
}

// Fallback returns the curated topic list for a niche, or a single
// generic item when the niche has no curated entry.
func Fallback(niche string) []models.Topic {
	if topics, ok := nicheFallbacks[niche]; ok {
		out := make([]models.Topic, len(topics))
		copy(out, topics)
		return out
	}
	out := make([]models.Topic, len(genericFallback))
	copy(out, genericFallback)
	return out
}
