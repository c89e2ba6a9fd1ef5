package assistant

import (
	"encoding/base64"
	"fmt"
)

const placeholderSVG = `<?xml version="1.0" encoding="UTF-8"?>
  <svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">
    <defs>
      <linearGradient id="gradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
        <stop offset="0%%" stop-color="#6366f1" />
        <stop offset="100%%" stop-color="#22d3ee" />
      </linearGradient>
    </defs>
    <rect width="512" height="512" fill="url(#gradient)" rx="32" />
    <text x="50%%" y="45%%" font-family="Inter, sans-serif" font-size="36" fill="#ffffff" text-anchor="middle" opacity="0.85">
      %s
    </text>
    <text x="50%%" y="70%%" font-family="Inter, sans-serif" font-size="22" fill="#ffffff" text-anchor="middle" opacity="0.75">
      %s
    </text>
  </svg>`

// RenderPlaceholderImage produces a branded gradient SVG as a base64 data URI.
// The prompt is truncated to its first 60 characters for the caption.
func RenderPlaceholderImage(prompt, style string) string {
	if style == "" {
		style = "AI Helper"
	}

	caption := prompt
	if runes := []rune(caption); len(runes) > 60 {
		caption = string(runes[:60])
	}

	svg := fmt.Sprintf(placeholderSVG, style, caption)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// ClampImageCount bounds the requested image count to [1, 4]. Zero or a
// missing count defaults to one.
func ClampImageCount(count int) int {
	if count < 1 {
		return 1
	}
	if count > 4 {
		return 4
	}
	return count
}
