package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionetto/portfolio-server/internal/assistant"
	"github.com/lionetto/portfolio-server/internal/auth"
	"github.com/lionetto/portfolio-server/internal/blob"
	"github.com/lionetto/portfolio-server/internal/events"
	"github.com/lionetto/portfolio-server/internal/factory"
	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/services"
	"github.com/lionetto/portfolio-server/internal/store/file"
)

const adminPassword = "correct-horse"

type scriptedGenerator struct {
	reply string
	err   error
}

func (g *scriptedGenerator) Generate(ctx context.Context, system string, history []model.ChatMessage) (string, error) {
	return g.reply, g.err
}

type testEnv struct {
	server     *httptest.Server
	uploadsDir string
	gen        *scriptedGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zerolog.Nop()
	st, err := file.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, factory.EnsureSeeded(context.Background(), st, log))

	uploadsDir := t.TempDir()
	blobs, err := blob.NewDiskStore(uploadsDir)
	require.NoError(t, err)

	bus := events.NewBus(4)
	gate := auth.NewStatic(adminPassword)
	content := services.NewContentService(st, gate, blobs, bus, log)
	gallery := services.NewGalleryService(st, gate, blobs, bus, log)

	gen := &scriptedGenerator{reply: "Certo, posso aiutarti."}
	sessions := assistant.NewSessions(gen)

	srv := httptest.NewServer(NewRouter(content, gallery, gate, sessions, bus, uploadsDir))
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, uploadsDir: uploadsDir, gen: gen}
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(e.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(e.server.URL + path)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestGetSiteContentReturnsSeed(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/api/site-content")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc model.SiteContent
	decodeBody(t, resp, &doc)
	assert.Equal(t, "Federica Lionetto", doc.Hero.Name)
	assert.NotEmpty(t, doc.Skills)
}

func TestSaveSiteContentRequiresPassword(t *testing.T) {
	env := newTestEnv(t)

	doc := model.DefaultSiteContent()
	doc.Hero.Badge = "Updated Badge"

	resp := env.postJSON(t, "/api/site-content", map[string]any{
		"content":  doc,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// The document must be untouched after the rejected write.
	var current model.SiteContent
	decodeBody(t, env.get(t, "/api/site-content"), &current)
	assert.NotEqual(t, "Updated Badge", current.Hero.Badge)
}

func TestSaveSiteContentRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	doc := model.DefaultSiteContent()
	doc.Hero.Quote = "Nuova citazione."

	resp := env.postJSON(t, "/api/site-content", map[string]any{
		"content":  doc,
		"password": adminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok struct {
		Success bool `json:"success"`
	}
	decodeBody(t, resp, &ok)
	assert.True(t, ok.Success)

	var current model.SiteContent
	decodeBody(t, env.get(t, "/api/site-content"), &current)
	assert.Equal(t, "Nuova citazione.", current.Hero.Quote)
}

func TestSaveSiteContentRejectsMissingDocument(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/site-content", map[string]any{
		"password": adminPassword,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/login", map[string]string{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errBody struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "Password errata", errBody.Message)

	resp = env.postJSON(t, "/api/login", map[string]string{"password": adminPassword})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ok struct {
		Success bool `json:"success"`
	}
	decodeBody(t, resp, &ok)
	assert.True(t, ok.Success)
}

func TestListPortfolioReturnsSeed(t *testing.T) {
	env := newTestEnv(t)

	var items []model.PortfolioItem
	decodeBody(t, env.get(t, "/api/portfolio"), &items)
	require.Len(t, items, 4)
	assert.Equal(t, "Social Media Design", items[0].Title)
}

func TestCreatePortfolioItemAndServeUpload(t *testing.T) {
	env := newTestEnv(t)

	payload := []byte{0x89, 'P', 'N', 'G'}
	body, contentType := multipartBody(t, map[string]string{
		"title":    "Poster",
		"link":     "https://example.com/poster",
		"password": adminPassword,
	}, "image", "poster.png", payload)

	resp, err := http.Post(env.server.URL+"/api/portfolio", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item model.PortfolioItem
	decodeBody(t, resp, &item)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Poster", item.Title)
	require.True(t, strings.HasPrefix(item.Image, "/uploads/"))
	assert.True(t, strings.HasSuffix(item.Image, ".png"))

	// The stored blob is served back through the static route.
	served := env.get(t, item.Image)
	require.Equal(t, http.StatusOK, served.StatusCode)
	data, err := io.ReadAll(served.Body)
	require.NoError(t, err)
	_ = served.Body.Close()
	assert.Equal(t, payload, data)

	var items []model.PortfolioItem
	decodeBody(t, env.get(t, "/api/portfolio"), &items)
	assert.Len(t, items, 5)
}

func TestCreatePortfolioItemWithoutImage(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":    "No Image",
		"password": adminPassword,
	}, "", "", nil)

	resp, err := http.Post(env.server.URL+"/api/portfolio", contentType, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreatePortfolioItemRequiresPassword(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":    "Intruder",
		"password": "wrong",
	}, "image", "x.png", []byte("img"))

	resp, err := http.Post(env.server.URL+"/api/portfolio", contentType, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// No blob may survive a rejected create.
	entries, err := os.ReadDir(env.uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeletePortfolioItem(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":    "Ephemeral",
		"password": adminPassword,
	}, "image", "e.png", []byte("img"))
	resp, err := http.Post(env.server.URL+"/api/portfolio", contentType, body)
	require.NoError(t, err)
	var item model.PortfolioItem
	decodeBody(t, resp, &item)

	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/api/portfolio/%s", env.server.URL, item.ID),
		strings.NewReader(fmt.Sprintf(`{"password":%q}`, adminPassword)))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	var items []model.PortfolioItem
	decodeBody(t, env.get(t, "/api/portfolio"), &items)
	for _, it := range items {
		assert.NotEqual(t, item.ID, it.ID)
	}

	// Blob removal is part of the delete.
	_, statErr := os.Stat(filepath.Join(env.uploadsDir, filepath.Base(item.Image)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeletePortfolioItemUnknownID(t *testing.T) {
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodDelete,
		env.server.URL+"/api/portfolio/no-such-item",
		strings.NewReader(fmt.Sprintf(`{"password":%q}`, adminPassword)))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestUploadProfileImage(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"password": adminPassword,
	}, "image", "me.jpg", []byte("jpeg-bytes"))

	resp, err := http.Post(env.server.URL+"/api/profile-image", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	decodeBody(t, resp, &out)
	assert.True(t, strings.HasPrefix(out.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(out.ImageURL, ".jpg"))
}

func TestUploadProfileImageMissingFileReportsUnauthorizedFirst(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{
		"password": "wrong",
	}, "", "", nil)

	resp, err := http.Post(env.server.URL+"/api/profile-image", contentType, body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestChatSessionFlow(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var started struct {
		SessionID string `json:"sessionId"`
		Greeting  string `json:"greeting"`
	}
	decodeBody(t, resp, &started)
	require.NotEmpty(t, started.SessionID)
	assert.Contains(t, started.Greeting, "Federica Lionetto")

	resp = env.postJSON(t, "/api/chat/sessions/"+started.SessionID+"/messages",
		map[string]string{"message": "Che competenze hai?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var turn struct {
		Reply string `json:"reply"`
	}
	decodeBody(t, resp, &turn)
	assert.Equal(t, "Certo, posso aiutarti.", turn.Reply)
}

func TestChatFallbackWhenGeneratorFails(t *testing.T) {
	env := newTestEnv(t)
	env.gen.err = fmt.Errorf("upstream unavailable")

	resp := env.postJSON(t, "/api/chat/sessions", nil)
	var started struct {
		SessionID string `json:"sessionId"`
	}
	decodeBody(t, resp, &started)

	resp = env.postJSON(t, "/api/chat/sessions/"+started.SessionID+"/messages",
		map[string]string{"message": "Ciao"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var turn struct {
		Reply string `json:"reply"`
	}
	decodeBody(t, resp, &turn)
	assert.Equal(t, assistant.FallbackReply, turn.Reply)
}

func TestChatUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/chat/sessions/missing/messages",
		map[string]string{"message": "Ciao"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestChatEmptyMessageRejected(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/api/chat/sessions", nil)
	var started struct {
		SessionID string `json:"sessionId"`
	}
	decodeBody(t, resp, &started)

	resp = env.postJSON(t, "/api/chat/sessions/"+started.SessionID+"/messages",
		map[string]string{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &health)
	assert.Equal(t, "UP", health.Status)
}
