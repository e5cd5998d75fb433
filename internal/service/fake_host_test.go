package service

import (
	"context"
	"io"
	"sync"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
)

type fakeHost struct {
	mu         sync.Mutex
	uploaded   []string
	destroyed  []string
	uploadErr  error
	destroyErr error
}

func (f *fakeHost) Upload(_ context.Context, file io.Reader, folder domain.AssetFolder, publicID string) (*domain.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	id := "frakhub/" + string(folder) + "/" + publicID
	f.uploaded = append(f.uploaded, id)
	return &domain.Asset{
		URL:      "https://res.cloudinary.com/demo/image/upload/v1/" + id + ".png",
		PublicID: id,
		Format:   "png",
		Bytes:    len(body),
	}, nil
}

func (f *fakeHost) Destroy(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}
