package domain

// AssetFolder is a logical bucket on the asset host.
type AssetFolder string

const (
	AssetFolderAvatars  AssetFolder = "avatars"
	AssetFolderEvidence AssetFolder = "evidence"
)

// Valid reports whether f is a known folder.
func (f AssetFolder) Valid() bool {
	return f == AssetFolderAvatars || f == AssetFolderEvidence
}

// Asset is an image stored on the remote asset host.
type Asset struct {
	URL      string
	PublicID string
	Format   string
	Bytes    int
}
