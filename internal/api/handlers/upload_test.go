package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/nalin-pixel/ai-music-studio-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadReference(t *testing.T) {
	router, store := setupTestRouter(t)

	body, contentType := multipartBody(t, "file", "song.flac", []byte("not really audio"), nil)
	req, err := http.NewRequest("POST", "/api/upload/reference", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	id, ok := response["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	// Original extension is kept
	dest := store.UploadPath(storage.PrefixReference, id, "song.flac", ".mp3")
	assert.True(t, strings.HasSuffix(dest, ".flac"))
	saved, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "not really audio", string(saved))

	analysis, ok := response["analysis"].(map[string]interface{})
	require.True(t, ok, "response should have an 'analysis' object")

	bpm, ok := analysis["bpm"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, bpm, float64(70))
	assert.LessOrEqual(t, bpm, float64(140))

	assert.Contains(t,
		[]interface{}{"C Major", "A Minor", "G Minor", "D Major", "F# Minor"},
		analysis["key"])
	assert.Contains(t,
		[]interface{}{"LoFi", "Trap", "EDM", "Rock", "Bollywood", "Chillhop", "Romantic"},
		analysis["style"])
}

// TestUploadReferenceWithoutExtension checks the .mp3 fallback for
// extension-less filenames.
func TestUploadReferenceWithoutExtension(t *testing.T) {
	router, store := setupTestRouter(t)

	body, contentType := multipartBody(t, "file", "song", []byte("x"), nil)
	req, err := http.NewRequest("POST", "/api/upload/reference", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	id := response["id"].(string)
	dest := store.UploadPath(storage.PrefixReference, id, "song", ".mp3")
	assert.True(t, strings.HasSuffix(dest, ".mp3"))
	_, err = os.Stat(dest)
	assert.NoError(t, err)
}

func TestUploadVoice(t *testing.T) {
	router, store := setupTestRouter(t)

	body, contentType := multipartBody(t, "file", "sample.wav", []byte("voice bytes"), nil)
	req, err := http.NewRequest("POST", "/api/upload/voice", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	id, ok := response["id"].(string)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(id), voiceIDPrefixLen)

	assert.Equal(t, "voice_custom_"+id[:voiceIDPrefixLen], response["voice_id"])
	assert.Equal(t, "Voice uploaded (simulated)", response["message"])

	_, err = os.Stat(store.UploadPath(storage.PrefixVoice, id, "sample.wav", ".wav"))
	assert.NoError(t, err)
}

func TestUploadRequiresFile(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/api/upload/reference", "/api/upload/voice"} {
		body, contentType := multipartBody(t, "", "", nil, map[string]string{"other": "field"})
		req, err := http.NewRequest("POST", path, body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "POST %s without a file", path)
	}
}
