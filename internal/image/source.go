package imagepkg

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/idcardgen/internal/logger"
)

// SourceKind classifies an image reference.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceLocal
	SourceRemote
	SourceInline
)

func (k SourceKind) String() string {
	switch k {
	case SourceLocal:
		return "local"
	case SourceRemote:
		return "remote"
	case SourceInline:
		return "inline"
	default:
		return "none"
	}
}

var errOutsideAssets = errors.New("path escapes assets directory")

// Classify reports how ref would be loaded.
func Classify(ref string) SourceKind {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)
	switch {
	case ref == "":
		return SourceNone
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SourceRemote
	case strings.HasPrefix(lower, "data:"):
		return SourceInline
	default:
		return SourceLocal
	}
}

// Resolver loads caller-supplied image references. It holds no per-request
// state and is safe for concurrent use.
type Resolver struct {
	assetsDir string
	client    *http.Client
	timeout   time.Duration
}

// NewResolver returns a resolver reading local paths under assetsDir and
// bounding each remote fetch by timeout.
func NewResolver(assetsDir string, timeout time.Duration) *Resolver {
	return &Resolver{
		assetsDir: assetsDir,
		client:    &http.Client{},
		timeout:   timeout,
	}
}

// Resolve returns the decoded image for ref, or nil when ref is empty or
// cannot be loaded. Failures are logged and never returned; the caller
// substitutes its default asset.
func (r *Resolver) Resolve(ctx context.Context, ref string) image.Image {
	ref = strings.TrimSpace(ref)
	kind := Classify(ref)
	if kind == SourceNone {
		return nil
	}
	img, err := r.load(ctx, kind, ref)
	if err != nil {
		logger.WarnCtx(ctx, "image source unavailable, using default",
			zap.String("kind", kind.String()),
			zap.String("ref", summarizeRef(kind, ref)),
			zap.Error(err),
		)
		return nil
	}
	return img
}

func (r *Resolver) load(ctx context.Context, kind SourceKind, ref string) (image.Image, error) {
	switch kind {
	case SourceRemote:
		if r.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}
		return DownloadImage(ctx, r.client, ref)
	case SourceInline:
		b, err := decodeDataURI(ref, maxImageBytes)
		if err != nil {
			return nil, err
		}
		return decodeBytes(b)
	case SourceLocal:
		path, err := r.localPath(ref)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return decodeBytes(b)
	}
	return nil, fmt.Errorf("unsupported source kind %s", kind)
}

// localPath maps ref into the assets directory. A leading assets directory
// component is accepted so "public/logo.png" and "logo.png" are the same.
func (r *Resolver) localPath(ref string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if filepath.IsAbs(clean) {
		return "", errOutsideAssets
	}
	root := filepath.Clean(r.assetsDir)
	if strings.HasPrefix(clean, root+string(filepath.Separator)) {
		clean = strings.TrimPrefix(clean, root+string(filepath.Separator))
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errOutsideAssets
	}
	return filepath.Join(root, clean), nil
}

// decodeDataURI parses data:[<mediatype>][;base64],<data>. Payloads that
// decode to more than limit bytes are rejected.
func decodeDataURI(ref string, limit int) ([]byte, error) {
	comma := strings.IndexByte(ref, ',')
	if comma < 0 {
		return nil, errors.New("data uri has no payload")
	}
	meta := strings.ToLower(ref[len("data:"):comma])
	payload := ref[comma+1:]

	if strings.HasSuffix(meta, ";base64") {
		payload = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, payload)
		if base64.RawStdEncoding.DecodedLen(len(strings.TrimRight(payload, "="))) > limit {
			return nil, fmt.Errorf("inline payload exceeds %d bytes", limit)
		}
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		return b, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data uri payload: %w", err)
	}
	if len(s) > limit {
		return nil, fmt.Errorf("inline payload exceeds %d bytes", limit)
	}
	return []byte(s), nil
}

func summarizeRef(kind SourceKind, ref string) string {
	if kind == SourceInline && len(ref) > 48 {
		return ref[:48] + "..."
	}
	return ref
}
