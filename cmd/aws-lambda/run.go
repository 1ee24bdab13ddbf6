package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/Philanthropists/parseint/internal/batch"
	"github.com/Philanthropists/parseint/internal/cache"
	"github.com/Philanthropists/parseint/internal/logging"
	"github.com/Philanthropists/parseint/internal/render"
)

const (
	versionFile = "version"
	maxInputs   = 10000
)

type Request struct {
	Inputs []string `json:"inputs"`
}

type Response struct {
	Results []render.Record `json:"results"`
	Summary batch.Summary   `json:"summary"`
}

// Warm invocations share the cache.
var parser cache.Parser

func getVersion() (string, error) {
	f, err := os.Open(versionFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func configureLogger() error {
	logger, err := logging.Build(false, zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	version := "dev"
	if v, err := getVersion(); err == nil {
		version = v
	}

	logging.SetCustomGlobalLogger(logger.With(zap.String("version", version)))

	return nil
}

func handle(ctx context.Context, req Request) (Response, error) {
	if len(req.Inputs) > maxInputs {
		return Response{}, fmt.Errorf("too many inputs: %d, max is %d", len(req.Inputs), maxInputs)
	}

	items, summary, err := batch.Run(ctx, 0, req.Inputs, parser.ParseInt)
	if err != nil {
		return Response{}, err
	}

	logging.FromContext(ctx).Info("parsed inputs",
		logging.Int("total", summary.Total),
		logging.Int("failed", summary.Failed),
	)

	return Response{
		Results: render.Records(items),
		Summary: summary,
	}, nil
}

func HandleRequest(ctx context.Context, req Request) (Response, error) {
	if err := configureLogger(); err != nil {
		return Response{}, fmt.Errorf("could not configure logger: %w", err)
	}

	const awsLambdaTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(ctx, awsLambdaTimeout)
	defer cancel()

	return handle(logging.New().GetContext(ctx), req)
}

func main() {
	lambda.Start(HandleRequest)
}
