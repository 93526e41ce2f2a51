package entities

// ImageUpload - содержимое картинки, пришедшее от клиента.
// Идентификатор файла назначается сервисом при загрузке в blob storage.
type ImageUpload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}
