package assistant

import (
	"fmt"
	"strings"
)

// BuildMarketingIdea assembles a promotion pitch for the topic and channel.
// The audience fragment is omitted when not provided.
func BuildMarketingIdea(topic, channel, audience string) string {
	parts := []string{
		fmt.Sprintf("Акцент на теме «%s»", topic),
		fmt.Sprintf("Канал: %s.", channel),
	}
	if audience != "" {
		parts = append(parts, fmt.Sprintf("Целевая аудитория: %s.", audience))
	}
	parts = append(parts, "Предложение: расскажите кейс с реальными цифрами и предложите бесплатный чек-лист.")
	return strings.Join(parts, " ")
}
