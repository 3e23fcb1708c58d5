package relay

import "fmt"

const ImproveSystemPrompt = `You are a prompt engineering expert. Transform the user's rough prompt into a highly effective one using these principles:

1. Add clear context and role definition
2. Specify the exact output format wanted
3. Include relevant constraints and requirements
4. Add examples if they would help
5. Make instructions unambiguous
6. Specify tone, audience, length when relevant

Take this rough prompt and dramatically improve it. Return only the improved prompt, nothing else.`

const ExplainSystemPrompt = `Compare the original prompt with the improved prompt and identify the key improvements made. Return a JSON array of improvement objects, each with "title" and "description" fields.

Focus on these types of improvements:
- Added context or role definition
- Specified output format
- Added constraints or requirements
- Improved clarity and specificity
- Added examples or guidance
- Defined tone, audience, or length

Be specific about what was added or changed.`

// ExplainUserMessage frames both prompts for the explain instruction.
func ExplainUserMessage(original, improved string) string {
	return fmt.Sprintf("Original: \"%s\"\n\nImproved: \"%s\"", original, improved)
}
