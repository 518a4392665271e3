package constants

// Range bounds the acceptable length or size of a field.
type Range struct {
	Min int64
	Max int64
}

// Includes reports whether n lies inside the range.
func (r Range) Includes(n int64) bool {
	return n >= r.Min && n <= r.Max
}

// Constraints groups the field ranges consumed by input validation.
type Constraints struct {
	VideoName          Range
	VideoDescription   Range
	VideoSupport       Range
	VideoTagsCount     Range
	VideoTagLength     Range
	VideoFileSize      Range // bytes
	VideoDuration      Range // seconds
	CaptionFileSize    Range // bytes
	ImageFileSize      Range // bytes
	Username           Range
	UserPassword       Range
	UserDescription    Range
	ChannelName        Range
	ChannelDisplayName Range
	ChannelDescription Range
	ChannelSupport     Range
}

const (
	kilobyte = int64(1000)
	megabyte = 1000 * kilobyte
	gigabyte = 1000 * megabyte
)

func buildConstraints(test bool) Constraints {
	c := Constraints{
		VideoName:          Range{Min: 3, Max: 120},
		VideoDescription:   Range{Min: 3, Max: 10000},
		VideoSupport:       Range{Min: 3, Max: 1000},
		VideoTagsCount:     Range{Min: 0, Max: 5},
		VideoTagLength:     Range{Min: 2, Max: 30},
		VideoFileSize:      Range{Min: 10, Max: 8 * gigabyte},
		VideoDuration:      Range{Min: 1, Max: 60 * 60 * 10},
		CaptionFileSize:    Range{Min: 1, Max: 20 * megabyte},
		ImageFileSize:      Range{Min: 1, Max: 10 * megabyte},
		Username:           Range{Min: 1, Max: 50},
		UserPassword:       Range{Min: 6, Max: 255},
		UserDescription:    Range{Min: 3, Max: 1000},
		ChannelName:        Range{Min: 1, Max: 50},
		ChannelDisplayName: Range{Min: 1, Max: 120},
		ChannelDescription: Range{Min: 3, Max: 1000},
		ChannelSupport:     Range{Min: 3, Max: 1000},
	}

	// fixture uploads are tiny, keep the cap low to exercise rejections
	if test {
		c.VideoFileSize.Max = 100 * megabyte
	}

	return c
}

// Fields is the active constraint table of this instance.
var Fields = buildConstraints(testMode) //nolint:gochecknoglobals
