package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dmorgan81/imagecreator/internal/handler"
	"github.com/dmorgan81/imagecreator/internal/inject"
	"github.com/dmorgan81/imagecreator/internal/log"
	"github.com/samber/do"
)

func main() {
	logger := log.New(os.Stderr, log.ParseLevel(os.Getenv("LOG_LEVEL")))
	ctx := log.NewContext(context.Background(), logger)
	injector, err := inject.Setup(ctx)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	handler := do.MustInvoke[*handler.Handler](injector)
	lambda.StartWithOptions(handler.Handle, lambda.WithContext(ctx), lambda.WithEnableSIGTERM(func() {
		_ = injector.Shutdown()
	}))
}
