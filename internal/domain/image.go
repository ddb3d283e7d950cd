package domain

// Image описывает изображение продукта, которое хранится в S3
type Image struct {
	ObjectKey   string
	Bytes       []byte
	Size        int64
	ContentType string
}

func NewImage(objectKey string, data []byte, size int64, contentType string) *Image {
	return &Image{
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
