package aws_handler_test

import (
	"errors"
	"testing"

	"stockholdings/src/config"
	aws_handler "stockholdings/src/utils/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsManager struct {
	secretsmanageriface.SecretsManagerAPI
	values map[string]string
	err    error
	asked  []string
}

func (f *fakeSecretsManager) GetSecretValue(input *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error) {
	f.asked = append(f.asked, aws.StringValue(input.SecretId))
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[aws.StringValue(input.SecretId)]
	if !ok {
		return &secretsmanager.GetSecretValueOutput{}, nil
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func TestResolveJWTSecretInline(t *testing.T) {
	secret, err := aws_handler.ResolveJWTSecret(config.AuthConfig{JWTSecret: "inline"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)

	_, err = aws_handler.ResolveJWTSecret(config.AuthConfig{}, nil)
	assert.Error(t, err)
}

func TestResolveJWTSecretFromSecretsManager(t *testing.T) {
	fake := &fakeSecretsManager{values: map[string]string{"stocks/jwt": "from-aws"}}
	sm := aws_handler.NewSecretManager(fake)

	secret, err := aws_handler.ResolveJWTSecret(config.AuthConfig{
		JWTSecret:  "ignored",
		SecretName: "stocks/jwt",
	}, sm)
	require.NoError(t, err)
	assert.Equal(t, "from-aws", secret)
	assert.Equal(t, []string{"stocks/jwt"}, fake.asked)
}

func TestResolveJWTSecretErrors(t *testing.T) {
	failing := aws_handler.NewSecretManager(&fakeSecretsManager{err: errors.New("AccessDeniedException")})
	_, err := aws_handler.ResolveJWTSecret(config.AuthConfig{SecretName: "stocks/jwt"}, failing)
	assert.ErrorContains(t, err, "AccessDeniedException")

	binaryOnly := aws_handler.NewSecretManager(&fakeSecretsManager{values: map[string]string{}})
	_, err = aws_handler.ResolveJWTSecret(config.AuthConfig{SecretName: "stocks/jwt"}, binaryOnly)
	assert.ErrorContains(t, err, "no string value")
}
