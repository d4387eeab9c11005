package telegram

import (
	"errors"
	"strings"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

var (
	errDraftFormat         = errors.New("question draft must have five lines")
	errDraftSeveralCorrect = errors.New("question draft marks more than one option")
)

// correctMarker prefixes the correct option in a draft.
const correctMarker = "*"

// questionDraft is a question as typed by an author, before validation.
type questionDraft struct {
	Text    string
	Options [entities.NumOptions]string
	Correct *int // nil when no option is marked
}

// parseQuestionDraft reads a five line message: the question followed by four
// options, one of them prefixed with "*". Field contents are left to
// entities.NewQuestion to validate.
func parseQuestionDraft(text string) (questionDraft, error) {
	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), "\n")
	if len(lines) != entities.NumOptions+1 {
		return questionDraft{}, errDraftFormat
	}

	d := questionDraft{Text: lines[0]}
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, correctMarker) {
			if d.Correct != nil {
				return questionDraft{}, errDraftSeveralCorrect
			}
			idx := i
			d.Correct = &idx
			line = strings.TrimPrefix(line, correctMarker)
		}
		d.Options[i] = line
	}

	return d, nil
}
