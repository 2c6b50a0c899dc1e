package service

// DriveServiceInterface defines the contract for Drive media storage
type DriveServiceInterface interface {
	UploadImage(name, mimeType string, data []byte) (string, error)
	DownloadImage(fileID string) ([]byte, error)
}
