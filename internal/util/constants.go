package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage = "image/"
)

var AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".svg"}
