// Package secrets resolves the upstream bearer token from aws secrets manager.
package secrets

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TokenProvider returns the bearer token used for upstream requests.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// tokenSecret is the json document stored in the secret.
type tokenSecret struct {
	Token string `json:"Token"`
}

// SecretsManagerProvider looks up the token in secrets manager. Every call to
// Token performs exactly one GetSecretValue request, nothing is cached.
type SecretsManagerProvider struct {
	Region   string
	SecretID string
	Log      logrus.FieldLogger

	svcFunc func(client.ConfigProvider) secretsmanageriface.SecretsManagerAPI
}

// NewSecretsManagerProvider returns a provider for the secret in region.
func NewSecretsManagerProvider(region string, secretID string, log logrus.FieldLogger) *SecretsManagerProvider {
	return &SecretsManagerProvider{
		Region:   region,
		SecretID: secretID,
		Log:      log,
	}
}

// svc is used internally to assist stubs on secretsmanager for testing
func (p *SecretsManagerProvider) svc(cp client.ConfigProvider) secretsmanageriface.SecretsManagerAPI {
	if p.svcFunc != nil {
		return p.svcFunc(cp)
	}

	return secretsmanager.New(cp)
}

func (p *SecretsManagerProvider) log() logrus.FieldLogger {
	if p.Log != nil {
		return p.Log
	}

	return logrus.StandardLogger()
}

// Token fetches the secret and extracts its Token field.
//
// Failures from the store are logged with a diagnostic and returned as a
// *RetrievalError wrapping the original error.
func (p *SecretsManagerProvider) Token(ctx context.Context) (string, error) {
	s, err := session.NewSession(&aws.Config{
		Region: aws.String(p.Region),
	})

	if err != nil {
		return "", p.fail(err)
	}

	output, err := p.svc(s).GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(p.SecretID),
	})

	if err != nil {
		return "", p.fail(err)
	}

	return TokenFromSecret(output)
}

// fail logs the classified failure and returns it.
func (p *SecretsManagerProvider) fail(err error) error {
	rerr := NewRetrievalError(err)

	p.log().WithFields(logrus.Fields{
		"secret_id": p.SecretID,
		"code":      rerr.Code,
		"kind":      rerr.Kind.String(),
	}).Error(rerr.Message())

	return rerr
}

// TokenFromSecret extracts the token from a GetSecretValue response. The
// string form is preferred. SecretBinary arrives already decoded from the
// wire; a payload that is not json is treated as base64 text and decoded once.
func TokenFromSecret(output *secretsmanager.GetSecretValueOutput) (string, error) {
	if output == nil {
		return "", errors.New("empty secret value")
	}

	var payload []byte

	if output.SecretString != nil {
		payload = []byte(*output.SecretString)
	} else if output.SecretBinary != nil {
		payload = output.SecretBinary

		if !json.Valid(payload) {
			b, err := base64.StdEncoding.DecodeString(string(payload))
			if err != nil {
				return "", errors.Wrap(err, "unable to decode binary secret")
			}

			payload = b
		}
	} else {
		return "", errors.New("secret has neither a string nor a binary value")
	}

	secret := new(tokenSecret)
	if err := json.Unmarshal(payload, secret); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal secret")
	}

	if secret.Token == "" {
		return "", errors.New("secret has no Token value")
	}

	return secret.Token, nil
}
