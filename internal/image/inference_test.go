package image

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsPrompt(t *testing.T) {
	image := []byte("\x89PNG\r\n\x1a\nfake")
	prompts := []string{"A cat", "  padded prompt  ", "quotes \" and\nnewlines", "猫"}

	for _, prompt := range prompts {
		t.Run(prompt, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer hf_secret", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				raw, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var body map[string]any
				require.NoError(t, json.Unmarshal(raw, &body))
				assert.Equal(t, map[string]any{"inputs": prompt}, body)

				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write(image)
			}))
			defer srv.Close()

			g := &InferenceGenerator{Client: srv.Client(), URL: srv.URL, Token: "hf_secret"}
			got, err := g.Generate(context.Background(), prompt)
			require.NoError(t, err)
			assert.Equal(t, image, got)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestGenerateAcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	g := &InferenceGenerator{Client: srv.Client(), URL: srv.URL}
	got, err := g.Generate(context.Background(), "A cat")
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), got)
}

func TestGenerateFailsOnStatus(t *testing.T) {
	for _, status := range []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"Model is currently loading"}`, status)
			}))
			defer srv.Close()

			g := &InferenceGenerator{Client: srv.Client(), URL: srv.URL, Token: "hf_secret"}
			got, err := g.Generate(context.Background(), "A cat")
			assert.ErrorIs(t, err, ErrGenerationFailed)
			assert.Nil(t, got)
		})
	}
}

func TestGenerateFailsOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := &InferenceGenerator{Client: http.DefaultClient, URL: url, Token: "hf_secret"}
	_, err := g.Generate(context.Background(), "A cat")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}
