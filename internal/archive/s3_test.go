package archive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hsm-gustavo/smart-pantry/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func stubAWSConfig(t *testing.T, err error) *awsconfig.LoadOptions {
	t.Helper()
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			_ = fn(&lo)
		}
		if err != nil {
			return aws.Config{}, err
		}
		return aws.Config{Region: lo.Region, Credentials: lo.Credentials}, nil
	}
	return &lo
}

func TestUpload(t *testing.T) {
	fp := &fakePutter{}
	u := &S3Uploader{client: fp, bucket: "pantry-exports"}

	err := u.Upload(context.Background(), "exports/a/1.csv", []byte("id,name\n"), "text/csv")
	require.NoError(t, err)

	assert.Equal(t, "pantry-exports", aws.ToString(fp.in.Bucket))
	assert.Equal(t, "exports/a/1.csv", aws.ToString(fp.in.Key))
	assert.Equal(t, "text/csv", aws.ToString(fp.in.ContentType))
	assert.Equal(t, int64(8), aws.ToInt64(fp.in.ContentLength))
	assert.Equal(t, "id,name\n", string(fp.body))
}

func TestUpload_Error(t *testing.T) {
	u := &S3Uploader{client: &fakePutter{err: errors.New("access denied")}, bucket: "b"}

	err := u.Upload(context.Background(), "k.csv", nil, "text/csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "k.csv")
	assert.Contains(t, err.Error(), "access denied")
}

func TestNewS3Uploader_Disabled(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), config.ArchiveConfig{})
	assert.Error(t, err)
}

func TestNewS3Uploader_CustomEndpoint(t *testing.T) {
	lo := stubAWSConfig(t, nil)

	u, err := NewS3Uploader(context.Background(), config.ArchiveConfig{
		Bucket:    "pantry-exports",
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	assert.Equal(t, "pantry-exports", u.Bucket())
	assert.Equal(t, "us-east-1", lo.Region)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "minioadmin", creds.AccessKeyID)

	client, ok := u.client.(*s3.Client)
	require.True(t, ok)
	opts := client.Options()
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Uploader_DefaultChain(t *testing.T) {
	lo := stubAWSConfig(t, nil)

	u, err := NewS3Uploader(context.Background(), config.ArchiveConfig{Bucket: "b", Region: "eu-west-1"})
	require.NoError(t, err)

	assert.Nil(t, lo.Credentials)
	client := u.client.(*s3.Client)
	assert.Nil(t, client.Options().BaseEndpoint)
	assert.False(t, client.Options().UsePathStyle)
}

func TestNewS3Uploader_LoadError(t *testing.T) {
	stubAWSConfig(t, errors.New("no profile"))

	_, err := NewS3Uploader(context.Background(), config.ArchiveConfig{Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile")
}
