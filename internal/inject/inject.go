package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/dmorgan81/imagegen/internal/config"
	"github.com/dmorgan81/imagegen/internal/image"
	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/dmorgan81/imagegen/internal/param"
	"github.com/dmorgan81/imagegen/internal/prompt"
	"github.com/dmorgan81/imagegen/internal/store"
	"github.com/dmorgan81/imagegen/internal/theme"
	"github.com/dmorgan81/imagegen/internal/view"
	"github.com/samber/do"
	"github.com/samber/lo"
)

// Setup registers every service. Providers are lazy, so AWS is only touched
// when a parameter path or a download bucket is configured.
func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.Provide[image.Generator](injector, image.NewInferenceGenerator)
	do.Provide[store.Saver](injector, lo.Ternary(cfg.DownloadBucket != "", store.NewS3Saver, store.NewFileSaver))
	do.Provide[*prompt.Examples](injector, prompt.NewExamples)

	do.ProvideNamed[string](injector, "inference_token", func(i *do.Injector) (string, error) {
		if cfg.Token != "" || cfg.TokenParam == "" {
			return cfg.Token, nil
		}
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.TokenParam)
	})
	do.ProvideNamed[[]string](injector, "prompts", func(i *do.Injector) ([]string, error) {
		if cfg.PromptsParam == "" {
			return prompt.Defaults, nil
		}
		return do.MustInvoke[param.Fetcher](i).FetchAll(ctx, cfg.PromptsParam)
	})
	do.ProvideNamedValue[string](injector, "inference_url", cfg.InferenceURL)
	do.ProvideNamedValue[string](injector, "download_dir", cfg.DownloadDir)
	do.ProvideNamedValue[string](injector, "download_bucket", cfg.DownloadBucket)

	do.Provide[view.Model](injector, func(i *do.Injector) (view.Model, error) {
		return view.New(ctx, view.Deps{
			Generator:     do.MustInvoke[image.Generator](i),
			Saver:         do.MustInvoke[store.Saver](i),
			Examples:      do.MustInvoke[*prompt.Examples](i),
			Theme:         theme.Resolve(cfg.Theme),
			ToastDuration: cfg.ToastDuration,
		}), nil
	})

	return injector
}
