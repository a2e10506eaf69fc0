// Package lead holds the contact details captured after a run.
package lead

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

var (
	ErrEmail    = errors.New("lead: please enter a valid email address")
	ErrInterest = errors.New("lead: unknown interest")
)

// Interests offered by the results form, in display order.
var Interests = []string{
	"Discovery Proteomics",
	"Targeted Proteomics",
	"Biomarker Verification",
	"Not Sure",
}

const DefaultInterest = "Discovery Proteomics"

type Lead struct {
	Email     string
	Name      string
	Interest  string
	Score     int
	Collected int
}

// Validate trims the fields in place and checks them.
func (l *Lead) Validate() error {
	l.Email = strings.TrimSpace(l.Email)
	l.Name = strings.TrimSpace(l.Name)
	if l.Email == "" || !strings.Contains(l.Email, "@") {
		return ErrEmail
	}
	if l.Interest == "" {
		l.Interest = DefaultInterest
	}
	for _, interest := range Interests {
		if interest == l.Interest {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInterest, l.Interest)
}

// Sink receives a submitted lead. It must not block the game loop.
type Sink func(Lead)

// LogSink only logs; there is no backend.
func LogSink(l Lead) {
	log.Printf("lead: email=%s name=%q interest=%q score=%d collected=%d",
		l.Email, l.Name, l.Interest, l.Score, l.Collected)
}

// NextInterest cycles through Interests.
func NextInterest(current string) string {
	for i, interest := range Interests {
		if interest == current {
			return Interests[(i+1)%len(Interests)]
		}
	}
	return Interests[0]
}

// ShareLine is the text copied to the clipboard from the results screen.
func ShareLine(score, collected int) string {
	return fmt.Sprintf("I scored %d points and collected %d proteins in Protein Run!", score, collected)
}
