package transform

import "fmt"

// Supported transformation commands. The set is closed; anything else is
// rejected before a single upstream token is spent.
const (
	CommandSummarize        = "summarize"
	CommandImproveWriting   = "improve_writing"
	CommandMakeShorter      = "make_shorter"
	CommandToneProfessional = "tone_professional"
)

var promptTemplates = map[string]string{
	CommandSummarize:        "Summarize the following text concisely, preserving the key points:\n\n%s",
	CommandImproveWriting:   "Improve the writing of the following text. Fix grammar, clarity, and flow while keeping the original meaning:\n\n%s",
	CommandMakeShorter:      "Rewrite the following text to be significantly shorter while keeping its meaning:\n\n%s",
	CommandToneProfessional: "Rewrite the following text in a professional tone:\n\n%s",
}

// buildPrompt renders the prompt for a command, or ok=false for an unknown
// command.
func buildPrompt(command, selectedText string) (string, bool) {
	tmpl, ok := promptTemplates[command]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(tmpl, selectedText), true
}

// Commands returns the supported command names.
func Commands() []string {
	names := make([]string, 0, len(promptTemplates))
	for name := range promptTemplates {
		names = append(names, name)
	}
	return names
}
