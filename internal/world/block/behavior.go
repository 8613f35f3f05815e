package block

// BlockBehavior описывает материал блока: имя и слот текстуры для рендера
type BlockBehavior interface {
	ID() BlockID
	Name() string
	// TextureSlot возвращает индекс текстуры в массиве сэмплеров шейдера
	TextureSlot() int32
	// TexturePath возвращает путь к файлу текстуры относительно каталога ассетов
	TexturePath() string
}
