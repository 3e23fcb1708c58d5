package main

// Sample is a rough prompt sent to the relay.
type Sample struct {
	Name string
	Text string
}

// Samples are rough prompts of increasing length and vagueness, used for
// latency measurement.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "write a poem",
	},
	{
		Name: "short",
		Text: "explain kubernetes to me",
	},
	{
		Name: "medium",
		Text: "I need an email to my landlord about the heating being broken again, it's the third time this winter and I want them to fix it properly this time not just a quick patch. be polite but firm",
	},
	{
		Name: "long",
		Text: `help me plan a product launch. we are a small startup (6 people) selling a note taking app for students, launch is in 6 weeks.
we have almost no marketing budget, maybe 2000 dollars. we have a waitlist of 800 people and a tiktok with 3k followers.
I want a week by week plan with what to do, who should do it and how to measure if it worked. also tell me what we should NOT waste time on.`,
	},
	{
		Name: "code",
		Text: "write python code that reads a csv and finds duplicates",
	},
}

// QualitySamples are shown side by side with their rewrite in quality mode.
var QualitySamples = []Sample{
	{Name: "vague", Text: "tell me about dogs"},
	{Name: "task", Text: "summarize this article for me"},
	{Name: "creative", Text: "story about a robot"},
	{Name: "business", Text: "make a marketing plan"},
	{Name: "technical", Text: "how do I make my website faster"},
	{Name: "learning", Text: "teach me spanish"},
}
