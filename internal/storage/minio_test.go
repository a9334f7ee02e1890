package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignGet_SignsLocally(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)
	store := &MinioStore{client: client, bucket: "attachments"}

	raw, err := store.PresignGet(context.Background(), "work-orders/3/abc.pdf", "Rechnung.pdf", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/attachments/work-orders/3/abc.pdf", u.Path)
	assert.Equal(t, `attachment; filename="Rechnung.pdf"`, u.Query().Get("response-content-disposition"))
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestNewMinioStore_BadEndpoint(t *testing.T) {
	_, err := NewMinioStore(context.Background(), Options{Endpoint: "http://has-a-scheme:9000", Bucket: "x"})
	assert.Error(t, err)
}
