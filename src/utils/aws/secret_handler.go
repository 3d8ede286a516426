package aws_handler

import (
	"fmt"

	"stockholdings/src/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// SecretGetter reads a plain string secret by id.
type SecretGetter interface {
	GetSecretValue(secretID string) (string, error)
}

type SecretManager struct {
	svc secretsmanageriface.SecretsManagerAPI
}

func NewSecretManager(svc secretsmanageriface.SecretsManagerAPI) *SecretManager {
	return &SecretManager{svc: svc}
}

// NewSecretManagerForRegion opens a session with the default credential chain.
func NewSecretManagerForRegion(region string) (*SecretManager, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region)},
	)
	if err != nil {
		return nil, err
	}
	return NewSecretManager(secretsmanager.New(sess)), nil
}

func (s *SecretManager) GetSecretValue(secretID string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	}

	result, err := s.svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretID)
	}
	return *result.SecretString, nil
}

// ResolveJWTSecret returns the signing key from Secrets Manager when
// SecretName is configured and the inline JWTSecret otherwise. getter may be
// nil, in which case a client for cfg.Region is created on demand.
func ResolveJWTSecret(cfg config.AuthConfig, getter SecretGetter) (string, error) {
	if cfg.SecretName == "" {
		if cfg.JWTSecret == "" {
			return "", fmt.Errorf("auth.jwtSecret is empty and auth.secretName is not set")
		}
		return cfg.JWTSecret, nil
	}

	if getter == nil {
		sm, err := NewSecretManagerForRegion(cfg.Region)
		if err != nil {
			return "", fmt.Errorf("creating secrets manager client: %w", err)
		}
		getter = sm
	}

	secret, err := getter.GetSecretValue(cfg.SecretName)
	if err != nil {
		return "", fmt.Errorf("reading secret %s: %w", cfg.SecretName, err)
	}
	if secret == "" {
		return "", fmt.Errorf("secret %s is empty", cfg.SecretName)
	}
	return secret, nil
}
