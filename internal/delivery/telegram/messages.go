// messages.go contains message templates for Telegram.

package telegram

import (
	"fmt"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
)

// Error messages.
const (
	msgInternalError       = "Something went wrong. Please try again later."
	msgUnknownCommand      = "Unknown command. Available commands:\n\n/start — choose your role\n/add — add a question\n/list — list questions\n/test — take the test"
	msgNoQuestions         = "No questions available. Please ask an author to add some questions."
	msgNoActiveTest        = "There is no test in progress. Use /test to start one."
	msgInvalidOption       = "Please choose one of the four options."
	msgQuestionNotFound    = "This question no longer exists."
	msgOutdatedButton      = "This button is outdated."
	msgAnswerFirst         = "Please select an answer first."
	msgAnswerBeforeSubmit  = "Please answer question %d before submitting."
	msgDraftSeveralCorrect = "Mark exactly one option with *."
	msgDraftFormat         = "Please send the question in five lines: the question, then four options.\n" +
		"Mark the correct option with *.\n\n" + draftExample
)

// Info messages.
const (
	msgWelcome        = "<b>MCQ Exam</b>\n\nAuthors add multiple-choice questions, students take the test and get a scored review.\n\nWho are you?"
	msgHelp           = "<b>Author</b>\n/add — add a question\n/list — list and delete questions\n\n<b>Student</b>\n/test — take the test\n\n/start — switch role"
	msgAddPrompt      = "Send the new question in five lines: the question, then four options. Mark the correct option with *.\n\n<pre>" + draftExample + "</pre>"
	msgQuestionAdded  = "Question added successfully!"
	msgNoQuestionsYet = "No questions added yet."
	msgDeleteConfirm  = "Delete this question?"
	msgDeleted        = "Question deleted."
	msgCancelled      = "Cancelled."
	msgResultsTitle   = "Test results"
)

const draftExample = "What is the capital of France?\nBerlin\n*Paris\nMadrid\nRome"

// msgQuestionsAvailable renders "N question(s) available".
func msgQuestionsAvailable(n int) string {
	if n == 1 {
		return "1 question available"
	}
	return fmt.Sprintf("%d questions available", n)
}

// validationMessage turns a rejected draft into a corrective prompt.
func validationMessage(err *entities.ValidationError) string {
	switch err.Field {
	case entities.FieldQuestion:
		return "Please enter the question text."
	case entities.FieldCorrectAnswer:
		return "Please select the correct answer: mark one option with *."
	}

	for i := 0; i < entities.NumOptions; i++ {
		if err.Field == entities.OptionField(i) {
			return fmt.Sprintf("Please fill in option %s.", entities.OptionLabel(i))
		}
	}

	return "Please fill in all fields and select the correct answer."
}
