package service

import (
	"fmt"
	"strings"
)

// PrescriptionService assembles the single formatted prescription text block
// submitted when a doctor completes a visit.
type PrescriptionService struct{}

func NewPrescriptionService() *PrescriptionService {
	return &PrescriptionService{}
}

// Compose builds the prescription text: diagnosis, numbered medications,
// optional notes and follow-up date. Blank medication lines are skipped;
// the caller guarantees at least one non-blank line and a non-blank
// diagnosis.
func (s *PrescriptionService) Compose(diagnosis string, medications []string, notes, followUpDate string) string {
	var b strings.Builder

	b.WriteString("Diagnosis: ")
	b.WriteString(strings.TrimSpace(diagnosis))
	b.WriteString("\n\nMedications:\n")

	number := 0
	for _, medication := range medications {
		medication = strings.TrimSpace(medication)
		if medication == "" {
			continue
		}
		number++
		fmt.Fprintf(&b, "%d. %s\n", number, medication)
	}

	if notes = strings.TrimSpace(notes); notes != "" {
		b.WriteString("\nNotes: ")
		b.WriteString(notes)
		b.WriteString("\n")
	}

	if followUpDate = strings.TrimSpace(followUpDate); followUpDate != "" {
		b.WriteString("\nFollow-up: ")
		b.WriteString(followUpDate)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
