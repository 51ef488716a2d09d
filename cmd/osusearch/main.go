package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/osusearch/config"
	"github.com/prognoshealth/osusearch/search"
	"github.com/prognoshealth/osusearch/secrets"
	"github.com/prognoshealth/osusearch/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed loading configuration")
	}

	log, err := cfg.Logger()
	if err != nil {
		logrus.WithError(err).Fatal("failed building logger")
	}

	tokens := secrets.NewSecretsManagerProvider(cfg.SecretRegion, cfg.SecretID, log)
	records := upstream.NewClient(cfg.UpstreamBaseURL)

	handler := search.NewHandler(tokens, records, log)

	log.WithFields(logrus.Fields{
		"secret_region": cfg.SecretRegion,
		"secret_id":     cfg.SecretID,
		"upstream":      cfg.UpstreamBaseURL,
	}).Info("starting osusearch")

	lambda.Start(handler.Handle)
}
