package image

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBedrock struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeBedrock) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0xff}

func TestTextToImagePayload(t *testing.T) {
	body, err := json.Marshal(TextToImage("a red bicycle"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"taskType": "TEXT_IMAGE",
		"textToImageParams": {"text": "a red bicycle"},
		"imageGenerationConfig": {
			"numberOfImages": 1,
			"quality": "standard",
			"cfgScale": 8.0,
			"height": 512,
			"width": 512,
			"seed": 0
		}
	}`, string(body))
}

func TestGenerate(t *testing.T) {
	client := &fakeBedrock{body: `{"images":["` + base64.StdEncoding.EncodeToString(pngBytes) + `"]}`}
	g := &TitanGenerator{Client: client, ModelID: "amazon.titan-image-generator-v1"}

	img, err := g.Generate(context.Background(), TextToImage("a red bicycle"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, img)

	assert.Equal(t, "amazon.titan-image-generator-v1", aws.ToString(client.input.ModelId))
	assert.Equal(t, "application/json", aws.ToString(client.input.ContentType))
	var sent Request
	require.NoError(t, json.Unmarshal(client.input.Body, &sent))
	assert.Equal(t, TextToImage("a red bicycle"), sent)
}

func TestGenerateUsesFirstImage(t *testing.T) {
	first := base64.StdEncoding.EncodeToString([]byte("first"))
	second := base64.StdEncoding.EncodeToString([]byte("second"))
	g := &TitanGenerator{Client: &fakeBedrock{body: `{"images":["` + first + `","` + second + `"]}`}}

	img, err := g.Generate(context.Background(), TextToImage("cats"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(img))
}

func TestGenerateFaults(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeBedrock
		is     error
	}{
		{name: "invoke error", client: &fakeBedrock{err: errors.New("throttled")}},
		{name: "malformed body", client: &fakeBedrock{body: `not json`}},
		{name: "no images", client: &fakeBedrock{body: `{"images":[]}`}, is: ErrNoImages},
		{name: "missing images", client: &fakeBedrock{body: `{}`}, is: ErrNoImages},
		{name: "model error", client: &fakeBedrock{body: `{"images":[],"error":"content filtered"}`}, is: ErrModelFailure},
		{name: "bad base64", client: &fakeBedrock{body: `{"images":["%%%"]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &TitanGenerator{Client: tt.client, ModelID: "m"}
			img, err := g.Generate(context.Background(), TextToImage("cats"))
			require.Error(t, err)
			assert.Nil(t, img)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
