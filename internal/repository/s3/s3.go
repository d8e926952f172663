// Package s3 implements the repository as one object in an S3-compatible bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"club-transfer-ledger/config"
	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/repository/document"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const contentType = "application/json"

// S3 keeps the ledger document as a single object that every save replaces.
type S3 struct {
	log    *zap.SugaredLogger
	cfg    config.S3Config
	client *s3.Client

	httpClient   *http.Client
	accessKey    string
	secretKey    string
	sessionToken string
}

// Option customizes client construction.
type Option func(*S3)

// WithHTTPClient overrides the transport used by the SDK. Used by tests to
// point the client at an in-process bucket.
func WithHTTPClient(c *http.Client) Option {
	return func(s *S3) { s.httpClient = c }
}

// WithStaticCredentials overrides the credentials taken from config.S3Config.
func WithStaticCredentials(accessKey, secretKey, sessionToken string) Option {
	return func(s *S3) {
		s.accessKey = accessKey
		s.secretKey = secretKey
		s.sessionToken = sessionToken
	}
}

// New creates an S3 repository instance.
func New(log *zap.SugaredLogger, cfg config.S3Config, opts ...Option) *S3 {
	s := &S3{
		log:          log.Named("repo.s3"),
		cfg:          cfg,
		accessKey:    cfg.AccessKeyID,
		secretKey:    cfg.SecretAccessKey,
		sessionToken: cfg.SessionToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnStart builds the SDK client.
func (s *S3) OnStart(ctx context.Context) error {
	region := s.cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if s.accessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.accessKey, s.secretKey, s.sessionToken),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = s.cfg.PathStyle
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
		if s.httpClient != nil {
			o.HTTPClient = s.httpClient
		}
		// S3-compatible stores such as MinIO reject aws-chunked trailers.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
	s.log.Infow("s3 ready", "bucket", s.cfg.Bucket, "key", s.cfg.Key, "endpoint", s.cfg.Endpoint)
	return nil
}

// OnStop is a no-op; the SDK client holds no open resources.
func (s *S3) OnStop(_ context.Context) error {
	return nil
}

// Load fetches the document object.
func (s *S3) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.cfg.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return entities.Snapshot{}, false, nil
		}
		return entities.Snapshot{}, false, fmt.Errorf("get s3://%s/%s: %w", s.cfg.Bucket, s.cfg.Key, err)
	}
	defer func() { _ = out.Body.Close() }()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return entities.Snapshot{}, false, fmt.Errorf("read s3 object: %w", err)
	}

	snapshot, err := document.Decode(payload)
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

// Save replaces the document object.
func (s *S3) Save(ctx context.Context, snapshot entities.Snapshot) error {
	payload, err := document.Encode(snapshot)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(s.cfg.Key),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		s.log.Errorw("failed to save ledger document", "error", err, "bucket", s.cfg.Bucket, "key", s.cfg.Key)
		return fmt.Errorf("put s3://%s/%s: %w", s.cfg.Bucket, s.cfg.Key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
