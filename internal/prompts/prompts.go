// Package prompts holds the fixed instruction templates sent to the chat
// gateway. Each builder is a pure function from validated request fields to a
// system instruction and a user instruction; no state, no I/O.
package prompts

// Prompt pairs the system instruction with the rendered user instruction.
type Prompt struct {
	System string
	User   string
}
