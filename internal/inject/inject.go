package inject

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/dmorgan81/imagecreator/internal/handler"
	"github.com/dmorgan81/imagecreator/internal/image"
	"github.com/dmorgan81/imagecreator/internal/log"
	"github.com/dmorgan81/imagecreator/internal/param"
	"github.com/dmorgan81/imagecreator/internal/store"
	"github.com/pkg/errors"
	"github.com/samber/do"
	"github.com/samber/lo"
)

const defaultBedrockRegion = "us-east-1"

var ErrModelIDNotSet = errors.New("modelId is not set")

// Setup wires the injector and resolves the model id. A missing model id is
// reported here so the function fails before it accepts any invocation.
func Setup(ctx context.Context) (*do.Injector, error) {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return config.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*bedrockruntime.Client](injector, func(i *do.Injector) (*bedrockruntime.Client, error) {
		region := lo.Ternary(os.Getenv("BEDROCK_REGION") != "", os.Getenv("BEDROCK_REGION"), defaultBedrockRegion)
		return bedrockruntime.NewFromConfig(do.MustInvoke[aws.Config](i), func(o *bedrockruntime.Options) {
			o.Region = region
		}), nil
	})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.Provide[image.Generator](injector, image.NewTitanGenerator)
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		do.ProvideValue[store.Uploader](injector, &store.FileUploader{Dir: dir})
	} else {
		do.Provide[store.Uploader](injector, store.NewS3Uploader)
	}

	do.ProvideNamed[string](injector, "model_id", func(i *do.Injector) (string, error) {
		if id := os.Getenv("modelId"); id != "" {
			return id, nil
		}
		path := os.Getenv("MODEL_ID_PARAM")
		if path == "" {
			return "", ErrModelIDNotSet
		}
		fetcher, err := do.Invoke[param.Fetcher](i)
		if err != nil {
			return "", err
		}
		id, err := fetcher.Fetch(ctx, path)
		if err != nil {
			return "", errors.Wrapf(err, "fetching model id from %s", path)
		}
		if id == "" {
			return "", ErrModelIDNotSet
		}
		return id, nil
	})
	do.ProvideNamedValue[string](injector, "bucket", store.Bucket)

	do.Provide[*handler.Handler](injector, handler.NewHandler)

	modelID, err := do.InvokeNamed[string](injector, "model_id")
	if err != nil {
		return nil, err
	}
	log.Info("model configured", "model", modelID)

	return injector, nil
}
