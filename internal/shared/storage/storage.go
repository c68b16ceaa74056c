package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/dormlife/community-api/internal/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const dormitoryCardPrefix = "dormitory_card"

var (
	ErrUnsupportedContentType = errors.New("storage: unsupported content type")
	ErrEmptyFile              = errors.New("storage: empty file")
)

// sniffLen is how much of the upload is inspected to detect its type.
const sniffLen = 3072

// allowedContentTypes maps each accepted image type to the extension its key gets.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// DocumentStore stores identity documents (dormitory cards) and hands back a reference URL.
type DocumentStore interface {
	MakeKey(filename, owner string) string
	Upload(ctx context.Context, file io.Reader, key string) (string, error)
	Delete(ctx context.Context, url string) error
}

// BlobStore is a DocumentStore backed by a gocloud.dev bucket (s3://, file://, mem://).
type BlobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	now           func() time.Time
}

// Open opens the bucket named by cfg.BucketURL.
func Open(ctx context.Context, cfg config.StorageConfig) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("스토리지 버킷 열기 실패: %w", err)
	}

	slog.Info("스토리지 버킷 연결 성공", "bucket", redactBucketURL(cfg.BucketURL))
	return NewBlobStore(bucket, cfg.PublicBaseURL), nil
}

func NewBlobStore(bucket *blob.Bucket, publicBaseURL string) *BlobStore {
	return &BlobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// MakeKey builds dormitory_card/<owner-id>/<yyyymmdd>-<random><ext>.
// The owner name is folded into a name-based UUID so it never appears in the key itself.
// The extension is only a hint; Upload replaces it with the one of the detected type.
func (s *BlobStore) MakeKey(filename, owner string) string {
	ownerID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(owner))
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("%s/%s/%s-%s%s",
		dormitoryCardPrefix,
		ownerID.String(),
		s.now().UTC().Format("20060102"),
		strings.ReplaceAll(uuid.NewString(), "-", ""),
		ext,
	)
}

// Upload detects the image type from the file's leading bytes, never from the
// client's filename or Content-Type header, stores it under key with the
// matching extension, and returns the public URL of the object.
func (s *BlobStore) Upload(ctx context.Context, file io.Reader, key string) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	if n == 0 {
		return "", fmt.Errorf("upload %s: %w", key, ErrEmptyFile)
	}
	head = head[:n]

	contentType, ext, ok := detectImage(head)
	if !ok {
		return "", fmt.Errorf("detected %q: %w", mimetype.Detect(head).String(), ErrUnsupportedContentType)
	}
	key = strings.TrimSuffix(key, path.Ext(key)) + ext

	// Cancelling the writer context discards a partial upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("open writer %s: %w", key, err)
	}

	if _, err := io.Copy(w, io.MultiReader(bytes.NewReader(head), file)); err != nil {
		cancel()
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close writer %s: %w", key, err)
	}

	return s.URL(key), nil
}

func detectImage(head []byte) (contentType, ext string, ok bool) {
	detected := mimetype.Detect(head)
	for contentType, ext := range allowedContentTypes {
		if detected.Is(contentType) {
			return contentType, ext, true
		}
	}
	return "", "", false
}

// Delete removes the object a URL returned by Upload points at.
// URLs that do not belong to this store are ignored.
func (s *BlobStore) Delete(ctx context.Context, url string) error {
	key, ok := s.KeyFromURL(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) URL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}
	return s.publicBaseURL + "/" + key
}

func (s *BlobStore) KeyFromURL(url string) (string, bool) {
	key := url
	if s.publicBaseURL != "" {
		var found bool
		key, found = strings.CutPrefix(url, s.publicBaseURL+"/")
		if !found {
			return "", false
		}
	}

	if !strings.HasPrefix(key, dormitoryCardPrefix+"/") {
		return "", false
	}
	return key, true
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(bucketURL string) string {
	if i := strings.IndexByte(bucketURL, '?'); i >= 0 {
		return bucketURL[:i]
	}
	return bucketURL
}

var _ DocumentStore = (*BlobStore)(nil)
