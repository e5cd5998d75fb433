package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Henlorata/FrakHub-sub001/internal/config"
	"github.com/Henlorata/FrakHub-sub001/internal/domain"
)

// ErrHostDisabled is returned when no asset host credentials are configured.
var ErrHostDisabled = errors.New("asset host not configured")

// Host stores and removes images on the remote asset host.
type Host interface {
	Upload(ctx context.Context, file io.Reader, folder domain.AssetFolder, publicID string) (*domain.Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryHost implements Host on the Cloudinary upload API.
type CloudinaryHost struct {
	cld  *cloudinary.Cloudinary
	root string
}

// NewHost returns a Cloudinary-backed host, or a disabled host when
// credentials are missing.
func NewHost(cfg config.AssetConfig) (Host, error) {
	if !cfg.Configured() {
		return disabledHost{}, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld, root: cfg.RootFolder}, nil
}

// Upload stores file under root/folder/publicID.
func (h *CloudinaryHost) Upload(ctx context.Context, file io.Reader, folder domain.AssetFolder, publicID string) (*domain.Asset, error) {
	res, err := h.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   path.Join(h.root, string(folder)),
		PublicID: publicID,
	})
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}
	return &domain.Asset{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Format:   res.Format,
		Bytes:    res.Bytes,
	}, nil
}

// Destroy removes publicID. An already missing asset is not an error.
func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) error {
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	switch res.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("destroy %s: %s", publicID, res.Result)
	}
}

type disabledHost struct{}

func (disabledHost) Upload(context.Context, io.Reader, domain.AssetFolder, string) (*domain.Asset, error) {
	return nil, ErrHostDisabled
}

func (disabledHost) Destroy(context.Context, string) error {
	return ErrHostDisabled
}
