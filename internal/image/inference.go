package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/samber/do"
)

type request struct {
	Inputs string `json:"inputs"`
}

// InferenceGenerator posts prompts to a hosted inference endpoint that
// answers with the encoded image as the response body.
type InferenceGenerator struct {
	Client *http.Client
	URL    string
	Token  string
}

func NewInferenceGenerator(i *do.Injector) (Generator, error) {
	return &InferenceGenerator{
		Client: do.MustInvoke[*http.Client](i),
		URL:    do.MustInvokeNamed[string](i, "inference_url"),
		Token:  do.MustInvokeNamed[string](i, "inference_token"),
	}, nil
}

func (g *InferenceGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	log := log.FromContextOrDiscard(ctx).With("url", g.URL)
	log.Info("generating image", "prompt", prompt)

	body, err := json.Marshal(request{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	req.Header.Set("Authorization", "Bearer "+g.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("inference endpoint rejected request", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status code %d", ErrGenerationFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	log.Info("received image", "bytes", len(data), "content-type", resp.Header.Get("Content-Type"))
	return data, nil
}
