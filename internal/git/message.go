package git

import "strings"

// scissors marks the start of the diff appended by "git commit -v".
const scissors = "------------------------ >8 ------------------------"

// Message is a commit message with comment lines removed.
type Message struct {
	Raw   string
	Lines []string
}

// ParseMessage strips comment lines and everything below the scissors line.
// Trailing blank lines are dropped.
func ParseMessage(raw, commentChar string) Message {
	if commentChar == "" {
		commentChar = DefaultCommentChar
	}

	var lines []string
	for line := range strings.SplitSeq(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, commentChar) {
			if strings.Contains(line, scissors) {
				break
			}
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Message{Raw: raw, Lines: lines}
}

// IsEmpty reports whether the message has no content.
func (m Message) IsEmpty() bool {
	return len(m.Lines) == 0
}

// Subject returns the first line.
func (m Message) Subject() string {
	if len(m.Lines) == 0 {
		return ""
	}
	return m.Lines[0]
}

// Body returns all lines after the subject and the separating blank line.
func (m Message) Body() []string {
	if len(m.Lines) < 2 {
		return nil
	}
	body := m.Lines[1:]
	if body[0] == "" {
		body = body[1:]
	}
	return body
}

// IsFixup reports whether the subject marks an autosquash commit.
func (m Message) IsFixup() bool {
	s := m.Subject()
	return strings.HasPrefix(s, "fixup!") || strings.HasPrefix(s, "squash!")
}

// String returns the cleaned message.
func (m Message) String() string {
	return strings.Join(m.Lines, "\n")
}
