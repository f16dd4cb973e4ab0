package inject

import (
	"context"
	"testing"
	"time"

	"github.com/dmorgan81/imagegen/internal/config"
	"github.com/dmorgan81/imagegen/internal/image"
	"github.com/dmorgan81/imagegen/internal/prompt"
	"github.com/dmorgan81/imagegen/internal/store"
	"github.com/dmorgan81/imagegen/internal/view"
	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		InferenceURL:  config.DefaultInferenceURL,
		Token:         "hf_secret",
		DownloadDir:   t.TempDir(),
		Theme:         "dark",
		ToastDuration: time.Second,
	}
}

func TestSetupWithoutAWS(t *testing.T) {
	cfg := testConfig(t)
	injector := Setup(context.Background(), cfg)
	t.Cleanup(func() { _ = injector.Shutdown() })

	gen, err := do.Invoke[image.Generator](injector)
	require.NoError(t, err)
	inference, ok := gen.(*image.InferenceGenerator)
	require.True(t, ok)
	assert.Equal(t, config.DefaultInferenceURL, inference.URL)
	assert.Equal(t, "hf_secret", inference.Token)

	saver, err := do.Invoke[store.Saver](injector)
	require.NoError(t, err)
	assert.Equal(t, &store.FileSaver{Dir: cfg.DownloadDir}, saver)

	examples, err := do.Invoke[*prompt.Examples](injector)
	require.NoError(t, err)
	assert.Equal(t, prompt.Defaults, examples.All())

	m, err := do.Invoke[view.Model](injector)
	require.NoError(t, err)
	assert.Equal(t, view.Idle, m.State())
	assert.Equal(t, "dark", m.Theme().Name)
}

func TestSetupWithBucket(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	cfg := testConfig(t)
	cfg.DownloadBucket = "images"

	injector := Setup(context.Background(), cfg)
	t.Cleanup(func() { _ = injector.Shutdown() })

	saver, err := do.Invoke[store.Saver](injector)
	require.NoError(t, err)
	s3saver, ok := saver.(*store.S3Saver)
	require.True(t, ok)
	assert.Equal(t, "images", s3saver.Bucket)
}

func TestMissingTokenIsNotValidated(t *testing.T) {
	cfg := testConfig(t)
	cfg.Token = ""

	injector := Setup(context.Background(), cfg)
	t.Cleanup(func() { _ = injector.Shutdown() })

	token, err := do.InvokeNamed[string](injector, "inference_token")
	require.NoError(t, err)
	assert.Empty(t, token)
}
