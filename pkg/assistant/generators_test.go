package assistant

import (
	"strings"
	"testing"
)

func TestBuildContent(t *testing.T) {
	got := BuildContent(ContentRequest{Topic: "Микросервисы", ContentType: "article", Tone: "деловой", Length: "short"})

	if !strings.HasPrefix(got, "# Микросервисы\n\n") {
		t.Errorf("content should open with the topic heading, got %q", got[:40])
	}
	if !strings.Contains(got, "Краткое содержание") {
		t.Error("short length should produce the compact label")
	}
	if !strings.Contains(got, "Тон: деловой.") {
		t.Error("tone label missing")
	}
	for _, section := range []string{"## Введение", "## Основные идеи", "## Заключение"} {
		if !strings.Contains(got, section) {
			t.Errorf("section %q missing", section)
		}
	}
}

func TestBuildContentLengthLabels(t *testing.T) {
	tests := []struct {
		length string
		want   string
	}{
		{length: "short", want: "Краткое содержание"},
		{length: "long", want: "Расширенный материал"},
		{length: "", want: "Сбалансированный формат"},
		{length: "medium", want: "Сбалансированный формат"},
	}
	for _, tt := range tests {
		got := BuildContent(ContentRequest{Topic: "Тема", Length: tt.length})
		if !strings.Contains(got, tt.want) {
			t.Errorf("length %q: label %q missing", tt.length, tt.want)
		}
	}
}

func TestBuildChatReply(t *testing.T) {
	early := BuildChatReply("привет", 1)
	if !strings.Contains(early, "«привет»") {
		t.Error("reply should quote the incoming message")
	}
	if !strings.Contains(early, "один из первых запросов") {
		t.Error("short history should use the first-contact line")
	}

	established := BuildChatReply("привет", 4)
	if !strings.Contains(established, "хорошая история диалога") {
		t.Error("longer history should acknowledge the dialog")
	}
	if len(strings.Split(established, "\n")) != 4 {
		t.Errorf("reply should span four lines, got %d", len(strings.Split(established, "\n")))
	}
}

func TestBuildMarketingIdea(t *testing.T) {
	withAudience := BuildMarketingIdea("запуск продукта", "email", "стартапы")
	if !strings.Contains(withAudience, "«запуск продукта»") {
		t.Error("topic missing from the idea")
	}
	if !strings.Contains(withAudience, "Канал: email.") {
		t.Error("channel missing from the idea")
	}
	if !strings.Contains(withAudience, "Целевая аудитория: стартапы.") {
		t.Error("audience missing from the idea")
	}

	withoutAudience := BuildMarketingIdea("запуск продукта", "email", "")
	if strings.Contains(withoutAudience, "Целевая аудитория") {
		t.Error("empty audience should omit the audience fragment")
	}
	if !strings.Contains(withoutAudience, "бесплатный чек-лист") {
		t.Error("call to action missing from the idea")
	}
}
