// Package exercises holds the small warm-up exercises that ship alongside the API.
package exercises

import (
	"fmt"
	"strings"
)

type Message struct {
	Sender  string
	Content string
}

// Display renders the message as "sender: content".
func (m Message) Display() string {
	return fmt.Sprintf("%s: %s", m.Sender, m.Content)
}

type Robot struct {
	Model1 string
	Model2 string
}

// FullName joins both model names with a hyphen.
func (r Robot) FullName() string {
	return fmt.Sprintf("%s-%s", r.Model1, r.Model2)
}

// GadgetCategory classifies a product code by its first letter. The check is
// case-sensitive.
func GadgetCategory(code string) string {
	switch {
	case strings.HasPrefix(code, "T"):
		return "tablet"
	case strings.HasPrefix(code, "P"):
		return "phone"
	case strings.HasPrefix(code, "N"):
		return "notebook"
	default:
		return "unknown"
	}
}
