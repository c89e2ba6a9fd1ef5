package assistant

import (
	"fmt"
	"strings"
)

type ContentRequest struct {
	Topic       string
	ContentType string
	Tone        string
	Length      string
}

// BuildContent renders a markdown article skeleton around the requested topic.
func BuildContent(req ContentRequest) string {
	toneLabel := ""
	if req.Tone != "" {
		toneLabel = fmt.Sprintf("Тон: %s.", req.Tone)
	}

	var lengthLabel string
	switch req.Length {
	case "short":
		lengthLabel = "Краткое содержание"
	case "long":
		lengthLabel = "Расширенный материал"
	default:
		lengthLabel = "Сбалансированный формат"
	}

	sections := []string{
		fmt.Sprintf("# %s\n\n%s. %s", req.Topic, lengthLabel, toneLabel),
		"## Введение\n\n" +
			fmt.Sprintf("Раскрываем тему «%s» с акцентом на практическую ценность. Подготавливаем читателя к ключевым выводам и объясняем, почему вопрос важен именно сейчас.", req.Topic),
		"## Основные идеи\n\n" +
			fmt.Sprintf("1. Основное преимущество: «%s» открывает новые возможности и помогает принимать решения быстрее.\n2. Практическое применение: Опишите два-три сценария, где тема приносит максимальную выгоду.\n3. Советы по внедрению: Дайте пошаговый план, который можно адаптировать под разные команды.", req.Topic),
		"## Заключение\n\n" +
			"Подведите итог и сформулируйте призыв к действию — предложите читателю сделать следующий шаг, например, протестировать идею или обсудить ее с коллегами.",
	}

	return strings.Join(sections, "\n\n")
}
