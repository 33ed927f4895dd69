package image

import "context"

const TaskTextImage = "TEXT_IMAGE"

type Quality string

const (
	QualityStandard Quality = "standard"
	QualityPremium  Quality = "premium"
)

type TextToImageParams struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	NumberOfImages int     `json:"numberOfImages"`
	Quality        Quality `json:"quality"`
	CfgScale       float64 `json:"cfgScale"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	Seed           int     `json:"seed"`
}

// Request is the body sent to the model.
type Request struct {
	TaskType              string            `json:"taskType"`
	TextToImageParams     TextToImageParams `json:"textToImageParams"`
	ImageGenerationConfig GenerationConfig  `json:"imageGenerationConfig"`
}

// Response is the body returned by the model. Images are base64 encoded.
type Response struct {
	Images []string `json:"images"`
	Error  string   `json:"error,omitempty"`
}

// TextToImage builds a request for a single 512x512 standard quality image.
func TextToImage(prompt string) Request {
	return Request{
		TaskType:          TaskTextImage,
		TextToImageParams: TextToImageParams{Text: prompt},
		ImageGenerationConfig: GenerationConfig{
			NumberOfImages: 1,
			Quality:        QualityStandard,
			CfgScale:       8.0,
			Height:         512,
			Width:          512,
			Seed:           0,
		},
	}
}

type Generator interface {
	Generate(context.Context, Request) ([]byte, error)
}
