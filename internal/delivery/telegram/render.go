package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
)

func renderAuthorMenu(count int) string {
	return fmt.Sprintf("<b>Author menu</b>\n\n%s", msgQuestionsAvailable(count))
}

func renderTakerMenu(count int) string {
	if count == 0 {
		return "<b>Student menu</b>\n\n" + msgNoQuestions
	}
	return fmt.Sprintf("<b>Student menu</b>\n\n%s", msgQuestionsAvailable(count))
}

// renderQuestionCard renders a question for its author, correct option ticked.
func renderQuestionCard(q entities.Question) string {
	var sb strings.Builder
	sb.WriteString("<b>")
	sb.WriteString(esc(q.Text))
	sb.WriteString("</b>\n")

	for i, option := range q.Options {
		mark := "▫️"
		if q.IsCorrect(i) {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "\n%s %s. %s", mark, entities.OptionLabel(i), esc(option))
	}

	return sb.String()
}

// renderQuestion renders the current question of a running test.
func renderQuestion(view service.SessionView) string {
	if view.Question == nil {
		return msgNoActiveTest
	}

	return fmt.Sprintf(
		"<b>Question %d</b> of %d\n\n%s\n\n<i>Answered: %d/%d</i>",
		view.Index+1,
		view.Total,
		esc(view.Question.Text),
		view.Answered,
		view.Total,
	)
}

// renderResult renders the score and the per-question review: the correct
// option is marked ✓ and a wrong choice ✗.
func renderResult(report *entities.ScoreReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n\n", msgResultsTitle)
	fmt.Fprintf(&sb, "Score: <b>%d/%d</b>\n", report.Correct, report.Total)
	fmt.Fprintf(&sb, "Percentage: <b>%d%%</b>\n", report.Percentage)
	if d := report.Duration(); d > 0 {
		fmt.Fprintf(&sb, "Time: %s\n", d)
	}
	sb.WriteString(report.Verdict())
	sb.WriteString("\n")

	for i, r := range report.Breakdown {
		status := "✅"
		if !r.IsCorrect {
			status = "❌"
		}
		fmt.Fprintf(&sb, "\n%s <b>%d. %s</b>\n", status, i+1, esc(r.Text))

		for j, option := range r.Options {
			switch {
			case j == r.CorrectOption:
				fmt.Fprintf(&sb, "✓ %s. %s\n", entities.OptionLabel(j), esc(option))
			case j == r.Chosen:
				fmt.Fprintf(&sb, "✗ %s. %s\n", entities.OptionLabel(j), esc(option))
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
