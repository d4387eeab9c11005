package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/mcq-exam-bot/internal/domain/entities"
	"github.com/aliskhannn/mcq-exam-bot/internal/service"
	"github.com/aliskhannn/mcq-exam-bot/internal/storage"
)

// buildRoleKeyboard builds the role selection keyboard.
func buildRoleKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✍️ Author", buildRoleCallback(string(storage.RoleAuthor))),
			tgbotapi.NewInlineKeyboardButtonData("🎓 Student", buildRoleCallback(string(storage.RoleTaker))),
		),
	)
}

// buildAuthorKeyboard builds the author menu.
func buildAuthorKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add question", actionAdd),
			tgbotapi.NewInlineKeyboardButtonData("📋 Questions", actionList),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Switch role", actionSwitch),
		),
	)
}

// buildTakerKeyboard builds the student menu. The start button is left out
// when there is nothing to answer.
func buildTakerKeyboard(count int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if count > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start test", actionStart),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 Switch role", actionSwitch),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildCancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖️ Cancel", actionCancel),
		),
	)
}

func buildQuestionCardKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", buildDeleteCallback(id)),
		),
	)
}

func buildDeleteConfirmKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete", buildDeleteConfirmCallback(id)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No", buildDeleteCancelCallback(id)),
		),
	)
}

// buildQuestionKeyboard builds option buttons for the current question,
// marking the chosen one, and the navigation row.
func buildQuestionKeyboard(view service.SessionView) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if view.Question != nil {
		for i, option := range view.Question.Options {
			label := entities.OptionLabel(i) + ". " + option
			if view.Answer == i {
				label = "✅ " + label
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, buildOptionCallback(view.Index, i)),
			))
		}
	}

	var nav []tgbotapi.InlineKeyboardButton
	if view.CanGoPrevious {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", actionPrevious))
	}
	if view.IsLast {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("📨 Submit", actionSubmit))
	} else {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", actionNext))
	}
	rows = append(rows, nav)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultKeyboard builds keyboard for the results screen.
func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Retake test", actionRetake),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Switch role", actionSwitch),
		),
	)
}
