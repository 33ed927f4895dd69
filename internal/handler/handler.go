package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dmorgan81/imagecreator/internal/image"
	"github.com/dmorgan81/imagecreator/internal/log"
	"github.com/dmorgan81/imagecreator/internal/store"
	"github.com/samber/do"
	"github.com/samber/lo"
)

type Handler struct {
	generator image.Generator
	uploader  store.Uploader
	now       func() time.Time
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return New(do.MustInvoke[image.Generator](i), do.MustInvoke[store.Uploader](i)), nil
}

func New(generator image.Generator, uploader store.Uploader) *Handler {
	return &Handler{generator: generator, uploader: uploader, now: time.Now}
}

// Handle generates an image from the request body and stores it. Validation
// and upload failures are reported as 400 responses; inference failures are
// returned as errors and fail the invocation.
func (h *Handler) Handle(ctx context.Context, request *events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler")
	log.Info("handling lambda invocation")

	if request == nil {
		log.Info("request is nil")
		return NewResponse(http.StatusBadRequest, msgRequestNotSet), nil
	}
	log = log.With("method", request.HTTPMethod)

	if request.HTTPMethod != http.MethodPost {
		log.Info("method is not POST")
		return NewResponse(http.StatusBadRequest, msgPostOnly), nil
	}

	// API Gateway hands a null body over as "".
	if request.Body == "" {
		log.Info("prompt is empty")
		return NewResponse(http.StatusBadRequest, msgNoPrompt), nil
	}
	prompt := request.Body
	log.Info("received prompt", "content-type", header(request.Headers, "content-type"), "length", len(prompt))

	img, err := h.generator.Generate(ctx, image.TextToImage(prompt))
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	name := store.ImageName(h.now())
	log = log.With("image", name)

	if err := h.uploader.Upload(ctx, store.UploadParams{
		Name:        name,
		Data:        img,
		ContentType: "image/png",
	}); err != nil {
		log.Error("error uploading image to target bucket", "error", err)
		return NewResponse(http.StatusBadRequest, msgUploadFailed), nil
	}

	log.Info("image uploaded to target bucket")
	return NewResponse(http.StatusOK, msgUploaded), nil
}

func header(headers map[string]string, key string) string {
	entry, _ := lo.Find(lo.Entries(headers), func(e lo.Entry[string, string]) bool {
		return strings.EqualFold(e.Key, key)
	})
	return entry.Value
}
