package image

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/dmorgan81/imagecreator/internal/log"
	"github.com/pkg/errors"
	"github.com/samber/do"
)

var (
	ErrNoImages     = errors.New("model returned no images")
	ErrModelFailure = errors.New("model reported an error")
)

// InvokeModelAPI is the subset of *bedrockruntime.Client used by TitanGenerator.
type InvokeModelAPI interface {
	InvokeModel(context.Context, *bedrockruntime.InvokeModelInput, ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// TitanGenerator generates images with a Bedrock model that speaks the
// Titan image generator request schema.
type TitanGenerator struct {
	Client  InvokeModelAPI
	ModelID string
}

func NewTitanGenerator(i *do.Injector) (Generator, error) {
	return &TitanGenerator{
		Client:  do.MustInvoke[*bedrockruntime.Client](i),
		ModelID: do.MustInvokeNamed[string](i, "model_id"),
	}, nil
}

func (g *TitanGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("bedrock").With("model", g.ModelID)
	log.Info("generating image", "config", req.ImageGenerationConfig)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encoding model request")
	}

	out, err := g.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.ModelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "invoking model")
	}

	var resp Response
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, errors.Wrap(err, "parsing model response")
	}
	if resp.Error != "" {
		return nil, errors.Wrap(ErrModelFailure, resp.Error)
	}
	if len(resp.Images) == 0 {
		return nil, ErrNoImages
	}

	img, err := base64.StdEncoding.DecodeString(resp.Images[0])
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	log.Info("received image", "size", len(img))
	return img, nil
}
