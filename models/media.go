package models

// MediaFile represents an uploaded image stored in Drive with cached variants
// Example: {"fileId": "1AbC...", "url": "https://drive.google.com/uc?id=1AbC...", "thumbUrl": "/media/1AbC.../image?size=thumb", "mediumUrl": "/media/1AbC.../image?size=medium"}
type MediaFile struct {
	FileID    string `json:"fileId"`
	URL       string `json:"url"`
	ThumbURL  string `json:"thumbUrl"`
	MediumURL string `json:"mediumUrl"`
}
