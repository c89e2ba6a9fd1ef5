package assistant

import (
	"fmt"
	"strings"
)

// BuildChatReply composes the canned assistant answer. The reply nudges the
// user to clarify intent and acknowledges an established dialog once the
// history grows past a few messages.
func BuildChatReply(message string, historyLength int) string {
	historyLine := "• Это один из первых запросов, поэтому я уточняю детали."
	if historyLength > 3 {
		historyLine = "• У нас уже сложилась хорошая история диалога — продолжаем в том же духе."
	}

	return strings.Join([]string{
		fmt.Sprintf("Спасибо за сообщение! Я зафиксировал ваш запрос: «%s».", message),
		"Вот что я могу предложить:",
		historyLine,
		"• Попробуйте сформулировать конечную цель, чтобы я подготовил точный ответ.",
	}, "\n")
}
