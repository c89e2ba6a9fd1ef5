package integration

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProjectCRUDOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "projects")

	resp := doRequest(t, app, http.MethodPost, "/api/projects", map[string]interface{}{
		"name":        "Контент-план",
		"type":        "content",
		"description": "посты на месяц",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Project struct {
			Id   string `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"project"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "Контент-план", created.Project.Name)

	resp = doRequest(t, app, http.MethodPut, "/api/projects/"+created.Project.Id, map[string]string{
		"name": "Контент-план v2",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Project struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"project"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Контент-план v2", updated.Project.Name)
	assert.Equal(t, "content", updated.Project.Type)

	resp = doRequest(t, app, http.MethodGet, "/api/projects", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Projects []struct {
			Id string `json:"id"`
		} `json:"projects"`
	}
	decodeBody(t, resp, &list)
	assert.Len(t, list.Projects, 1)

	resp = doRequest(t, app, http.MethodDelete, "/api/projects/"+created.Project.Id, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/projects/"+created.Project.Id, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectNotFoundShapes(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "notfound")

	// An unknown id and a malformed id produce the same response.
	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		resp := doRequest(t, app, http.MethodGet, "/api/projects/"+id, nil, token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "id %q", id)

		var body struct {
			Error string `json:"error"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "project not found", body.Error, "id %q", id)
	}
}

func TestAIEndpointsOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "ai")

	resp := doRequest(t, app, http.MethodPost, "/api/ai/content/generate", map[string]string{
		"topic":       "Запуск подкаста",
		"contentType": "article",
		"length":      "short",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var content struct {
		Content string `json:"content"`
	}
	decodeBody(t, resp, &content)
	assert.True(t, strings.HasPrefix(content.Content, "# Запуск подкаста"))

	resp = doRequest(t, app, http.MethodPost, "/api/ai/text/analyze", map[string]string{
		"text": "Первое предложение. Второе предложение!",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis struct {
		Metrics struct {
			WordCount     int `json:"wordCount"`
			SentenceCount int `json:"sentenceCount"`
		} `json:"metrics"`
		Suggestions []string `json:"suggestions"`
	}
	decodeBody(t, resp, &analysis)
	assert.Equal(t, 4, analysis.Metrics.WordCount)
	assert.Equal(t, 2, analysis.Metrics.SentenceCount)
	assert.NotEmpty(t, analysis.Suggestions)

	resp = doRequest(t, app, http.MethodPost, "/api/ai/chat/message", map[string]string{
		"message": "Помоги с планом",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var chat struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	decodeBody(t, resp, &chat)
	assert.Len(t, chat.Messages, 2)
	assert.Equal(t, "user", chat.Messages[0].Role)
	assert.Equal(t, "assistant", chat.Messages[1].Role)

	resp = doRequest(t, app, http.MethodPost, "/api/ai/image/generate", map[string]interface{}{
		"prompt": "горы на рассвете",
		"count":  10,
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var images struct {
		Images []struct {
			Id  string `json:"id"`
			URL string `json:"url"`
		} `json:"images"`
	}
	decodeBody(t, resp, &images)
	assert.Len(t, images.Images, 4, "count is clamped to four")
	for _, image := range images.Images {
		assert.True(t, strings.HasPrefix(image.URL, "data:image/svg+xml;base64,"))
	}

	resp = doRequest(t, app, http.MethodPost, "/api/ai/marketing/ideas", map[string]string{
		"topic":   "черная пятница",
		"channel": "email",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var marketing struct {
		Idea struct {
			Idea string `json:"idea"`
		} `json:"idea"`
		History []struct {
			Id string `json:"id"`
		} `json:"history"`
	}
	decodeBody(t, resp, &marketing)
	assert.Contains(t, marketing.Idea.Idea, "«черная пятница»")
	assert.Len(t, marketing.History, 1)

	// Whitespace-only text is rejected before anything is charged.
	resp = doRequest(t, app, http.MethodPost, "/api/ai/voice/synthesize", map[string]string{
		"text": "   ",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var blank struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &blank)
	assert.Equal(t, "text is required", blank.Error)

	resp = doRequest(t, app, http.MethodPost, "/api/ai/voice/synthesize", map[string]string{
		"text":  "Добрый день",
		"voice": "male-en",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var voice struct {
		Audio string `json:"audio"`
		Voice string `json:"voice"`
		Speed string `json:"speed"`
	}
	decodeBody(t, resp, &voice)
	assert.NotEmpty(t, voice.Audio)
	assert.Equal(t, "male-en", voice.Voice)
	assert.Equal(t, "normal", voice.Speed)

	resp = doRequest(t, app, http.MethodPost, "/api/ai/voice/transcribe", map[string]string{
		"audio": voice.Audio,
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var transcribe struct {
		Transcript string `json:"transcript"`
	}
	decodeBody(t, resp, &transcribe)
	assert.NotEmpty(t, transcribe.Transcript)

	// Seven calls so far, all charged against the same usage period.
	resp = doRequest(t, app, http.MethodGet, "/api/dashboard", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard struct {
		Snapshot struct {
			ContentGenerated int `json:"contentGenerated"`
			TextAnalyzed     int `json:"textAnalyzed"`
			ChatMessages     int `json:"chatMessages"`
			MarketingIdeas   int `json:"marketingIdeas"`
			Usage            struct {
				RequestsUsed int `json:"requestsUsed"`
				TokensUsed   int `json:"tokensUsed"`
			} `json:"usage"`
		} `json:"snapshot"`
		Requests []struct {
			Type string `json:"type"`
		} `json:"requests"`
	}
	decodeBody(t, resp, &dashboard)
	assert.Equal(t, 1, dashboard.Snapshot.ContentGenerated)
	assert.Equal(t, 1, dashboard.Snapshot.TextAnalyzed)
	assert.Equal(t, 2, dashboard.Snapshot.ChatMessages)
	assert.Equal(t, 1, dashboard.Snapshot.MarketingIdeas)
	assert.Equal(t, 7, dashboard.Snapshot.Usage.RequestsUsed)
	assert.Greater(t, dashboard.Snapshot.Usage.TokensUsed, 0)
	assert.Len(t, dashboard.Requests, 7)
}

func TestFileEndpointsOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "files")

	resp := doRequest(t, app, http.MethodPost, "/api/files", map[string]string{
		"filename": "draft.txt",
		"mimeType": "text/plain",
		"content":  base64.StdEncoding.EncodeToString([]byte("черновик")),
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded struct {
		File struct {
			Id        string `json:"id"`
			SizeBytes int64  `json:"sizeBytes"`
		} `json:"file"`
	}
	decodeBody(t, resp, &uploaded)
	assert.Equal(t, int64(len("черновик")), uploaded.File.SizeBytes)

	resp = doRequest(t, app, http.MethodPost, "/api/files", map[string]string{
		"filename": "bad.bin",
		"mimeType": "application/octet-stream",
		"content":  "definitely !!! not base64",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "content must be valid base64", body.Error)

	resp = doRequest(t, app, http.MethodDelete, "/api/files/"+uploaded.File.Id, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/files/"+uploaded.File.Id, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAIModelEndpointsOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "models")

	resp := doRequest(t, app, http.MethodPost, "/api/ai/models", map[string]interface{}{
		"provider":  "openai",
		"modelName": "gpt-4o-mini",
		"parameters": map[string]interface{}{
			"temperature": 0.7,
		},
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Model struct {
			Id       string `json:"id"`
			Provider string `json:"provider"`
			IsActive bool   `json:"isActive"`
		} `json:"model"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "openai", created.Model.Provider)
	assert.True(t, created.Model.IsActive)

	// The models listing must not be swallowed by the catch-all AI routes.
	resp = doRequest(t, app, http.MethodGet, "/api/ai/models", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Models []struct {
			Id string `json:"id"`
		} `json:"models"`
	}
	decodeBody(t, resp, &list)
	assert.Len(t, list.Models, 1)

	resp = doRequest(t, app, http.MethodDelete, "/api/ai/models/"+created.Model.Id, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/ai/models/"+created.Model.Id, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfileOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "profile")

	resp := doRequest(t, app, http.MethodPut, "/api/users/profile", map[string]string{
		"name":      "Новое имя",
		"avatarUrl": "https://cdn.example.com/a.png",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		User struct {
			Name      string `json:"name"`
			AvatarURL string `json:"avatarUrl"`
		} `json:"user"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Новое имя", updated.User.Name)
	assert.Equal(t, "https://cdn.example.com/a.png", updated.User.AvatarURL)

	resp = doRequest(t, app, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	decodeBody(t, resp, &me)
	assert.Equal(t, "Новое имя", me.User.Name)
}
